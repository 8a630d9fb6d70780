package request

import (
	"errors"
	"strings"
	"time"

	"jobledger/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

var ErrInvalidPaymentDate = errors.New("payment_date must be formatted as YYYY-MM-DD")

type LineItemRequest struct {
	Action      string          `json:"action"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"100.00"`
	Description string          `json:"description"`
}

// CreateEstimateRequest opens a new job in "Estimate Created".
type CreateEstimateRequest struct {
	CustomerID int64             `json:"customer_id" binding:"required"`
	LineItems  []LineItemRequest `json:"line_items"`
	Notes      string            `json:"notes"`
}

// UpdateEstimateRequest replaces the line items and/or the notes of an
// estimate. Omitted fields are left as they are.
type UpdateEstimateRequest struct {
	LineItems *[]LineItemRequest `json:"line_items"`
	Notes     *string            `json:"notes"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

type RecordPaymentRequest struct {
	PaymentDate string `json:"payment_date" example:"2025-03-16"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Approved"`
}

func ToLineItems(items []LineItemRequest) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.LineItem{
			Action:      strings.TrimSpace(it.Action),
			Amount:      it.Amount,
			Description: strings.TrimSpace(it.Description),
		})
	}
	return out
}

// ResolveLineItems returns nil when line items were not sent, which the use
// case reads as "keep the current items".
func (r UpdateEstimateRequest) ResolveLineItems() []entities.LineItem {
	if r.LineItems == nil {
		return nil
	}
	return ToLineItems(*r.LineItems)
}

// ResolvePaymentDate parses the optional payment date as a calendar date.
func (r RecordPaymentRequest) ResolvePaymentDate() (*time.Time, error) {
	v := strings.TrimSpace(r.PaymentDate)
	if v == "" {
		return nil, nil
	}
	d, err := time.Parse(DateLayout, v)
	if err != nil {
		return nil, ErrInvalidPaymentDate
	}
	return &d, nil
}
