package response

import (
	"encoding/json"
	"time"

	"jobledger/internal/domain/entities"
)

type PaymentReceiptResponse struct {
	ID            string    `json:"id"`
	JobID         int64     `json:"job_id"`
	InvoiceNumber string    `json:"invoice_number"`
	Amount        string    `json:"amount" example:"350.50"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status" example:"approved"`

	ProviderPayload map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPaymentReceipt(p entities.PaymentReceipt) PaymentReceiptResponse {
	resp := PaymentReceiptResponse{
		ID:            p.ID,
		JobID:         p.JobID,
		InvoiceNumber: p.InvoiceNumber,
		Amount:        Money(p.Amount),
		Date:          p.Date,
		Status:        string(p.Status),
	}
	if len(p.ProviderPayloadRaw) > 0 {
		var payload map[string]interface{}
		if err := json.Unmarshal(p.ProviderPayloadRaw, &payload); err == nil {
			resp.ProviderPayload = payload
		}
	}
	return resp
}

func FromPaymentReceipts(list []entities.PaymentReceipt) []PaymentReceiptResponse {
	out := make([]PaymentReceiptResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPaymentReceipt(p))
	}
	return out
}
