package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentReceiptStatus string

const (
	PaymentReceiptApproved PaymentReceiptStatus = "approved"
	PaymentReceiptRejected PaymentReceiptStatus = "rejected"
)

// PaymentReceipt records a payment collected through the payment provider for
// an invoiced job.
//
// Storage model (SQL or DynamoDB):
//   - PK: id (provider payment id)
//   - index: job_id
//
// ProviderPayloadRaw keeps the provider response for audit.
type PaymentReceipt struct {
	ID                 string               `json:"id"`
	JobID              int64                `json:"job_id"`
	InvoiceNumber      string               `json:"invoice_number"`
	Amount             decimal.Decimal      `json:"amount"`
	Date               time.Time            `json:"date"`
	Status             PaymentReceiptStatus `json:"status"`
	ProviderPayloadRaw json.RawMessage      `json:"provider_payload_raw,omitempty"`
}
