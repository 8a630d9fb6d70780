package repository

import (
	"fmt"
	"time"

	"jobledger/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type customerRow struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:200;not null"`
	Email     string `gorm:"size:200"`
	Phone     string `gorm:"size:50"`
	Address   string `gorm:"type:text"`
	CreatedAt time.Time
}

func (customerRow) TableName() string { return "customers" }

type jobRow struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	CustomerID     int64           `gorm:"not null;index"`
	EstimateNumber string          `gorm:"size:16;not null;uniqueIndex"`
	InvoiceNumber  *string         `gorm:"size:16;uniqueIndex"`
	Status         string          `gorm:"size:32;not null;index"`
	EstimateDate   *time.Time
	ApprovalDate   *time.Time
	StartDate      *time.Time
	CompletionDate *time.Time
	InvoiceDate    *time.Time
	PaymentDate    *time.Time
	TotalAmount    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Notes          string          `gorm:"type:text"`
	LineItems      []lineItemRow   `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (jobRow) TableName() string { return "jobs" }

type lineItemRow struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	JobID       int64           `gorm:"not null;index:idx_line_items_job_item,priority:1"`
	ItemNumber  int             `gorm:"not null;index:idx_line_items_job_item,priority:2"`
	Action      string          `gorm:"size:100;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Description string          `gorm:"type:text;not null"`
}

func (lineItemRow) TableName() string { return "line_items" }

type paymentReceiptRow struct {
	ID                 string          `gorm:"primaryKey;size:64"`
	JobID              int64           `gorm:"not null;index"`
	InvoiceNumber      string          `gorm:"size:16;not null"`
	Amount             decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Date               time.Time       `gorm:"not null"`
	Status             string          `gorm:"size:32;not null"`
	ProviderPayloadRaw string          `gorm:"type:text"`
}

func (paymentReceiptRow) TableName() string { return "payment_receipts" }

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&customerRow{}, &jobRow{}, &lineItemRow{}, &paymentReceiptRow{})
}

func toJobRow(j entities.Job) jobRow {
	row := jobRow{
		ID:             j.ID,
		CustomerID:     j.CustomerID,
		EstimateNumber: j.EstimateNumber,
		InvoiceNumber:  j.InvoiceNumber,
		Status:         j.Status.Slug(),
		EstimateDate:   j.EstimateDate,
		ApprovalDate:   j.ApprovalDate,
		StartDate:      j.StartDate,
		CompletionDate: j.CompletionDate,
		InvoiceDate:    j.InvoiceDate,
		PaymentDate:    j.PaymentDate,
		TotalAmount:    j.TotalAmount,
		Notes:          j.Notes,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
	for _, it := range j.LineItems {
		row.LineItems = append(row.LineItems, toLineItemRow(it))
	}
	return row
}

func fromJobRow(row jobRow) (entities.Job, error) {
	status, err := entities.ParseJobStatus(row.Status)
	if err != nil {
		return entities.Job{}, fmt.Errorf("job %d: %w", row.ID, err)
	}
	j := entities.Job{
		ID:             row.ID,
		CustomerID:     row.CustomerID,
		EstimateNumber: row.EstimateNumber,
		InvoiceNumber:  row.InvoiceNumber,
		Status:         status,
		EstimateDate:   utcPtr(row.EstimateDate),
		ApprovalDate:   utcPtr(row.ApprovalDate),
		StartDate:      utcPtr(row.StartDate),
		CompletionDate: utcPtr(row.CompletionDate),
		InvoiceDate:    utcPtr(row.InvoiceDate),
		PaymentDate:    utcPtr(row.PaymentDate),
		TotalAmount:    row.TotalAmount,
		Notes:          row.Notes,
		CreatedAt:      row.CreatedAt.UTC(),
		UpdatedAt:      row.UpdatedAt.UTC(),
	}
	if row.LineItems != nil {
		j.LineItems = make([]entities.LineItem, 0, len(row.LineItems))
		for _, it := range row.LineItems {
			j.LineItems = append(j.LineItems, fromLineItemRow(it))
		}
	}
	return j, nil
}

func toLineItemRow(it entities.LineItem) lineItemRow {
	return lineItemRow{
		ID:          it.ID,
		JobID:       it.JobID,
		ItemNumber:  it.ItemNumber,
		Action:      it.Action,
		Amount:      it.Amount,
		Description: it.Description,
	}
}

func fromLineItemRow(row lineItemRow) entities.LineItem {
	return entities.LineItem{
		ID:          row.ID,
		JobID:       row.JobID,
		ItemNumber:  row.ItemNumber,
		Action:      row.Action,
		Amount:      row.Amount,
		Description: row.Description,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
