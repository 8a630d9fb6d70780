package interfaces

import (
	"context"

	"jobledger/internal/domain/entities"
)

// IPaymentReceiptRepository persists receipts of collected payments.
type IPaymentReceiptRepository interface {
	Create(ctx context.Context, r entities.PaymentReceipt) (entities.PaymentReceipt, error)
	ListByJobID(ctx context.Context, jobID int64) ([]entities.PaymentReceipt, error)
}
