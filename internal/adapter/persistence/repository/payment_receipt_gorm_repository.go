package repository

import (
	"context"

	"jobledger/internal/domain/entities"
	"jobledger/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type PaymentReceiptGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentReceiptRepository = (*PaymentReceiptGormRepository)(nil)

func NewPaymentReceiptGormRepository(db *gorm.DB) *PaymentReceiptGormRepository {
	return &PaymentReceiptGormRepository{db: db}
}

func (r *PaymentReceiptGormRepository) Create(ctx context.Context, p entities.PaymentReceipt) (entities.PaymentReceipt, error) {
	row := paymentReceiptRow{
		ID:                 p.ID,
		JobID:              p.JobID,
		InvoiceNumber:      p.InvoiceNumber,
		Amount:             p.Amount,
		Date:               p.Date.UTC(),
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.PaymentReceipt{}, err
	}
	return p, nil
}

func (r *PaymentReceiptGormRepository) ListByJobID(ctx context.Context, jobID int64) ([]entities.PaymentReceipt, error) {
	var rows []paymentReceiptRow
	if err := r.db.WithContext(ctx).Where("job_id = ?", jobID).Order("date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	list := make([]entities.PaymentReceipt, 0, len(rows))
	for _, row := range rows {
		list = append(list, entities.PaymentReceipt{
			ID:                 row.ID,
			JobID:              row.JobID,
			InvoiceNumber:      row.InvoiceNumber,
			Amount:             row.Amount,
			Date:               row.Date.UTC(),
			Status:             entities.PaymentReceiptStatus(row.Status),
			ProviderPayloadRaw: []byte(row.ProviderPayloadRaw),
		})
	}
	return list, nil
}
