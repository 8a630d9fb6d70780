package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Job is a unit of work tracked from estimate to paid invoice. A single record
// lives through the whole lifecycle; Status decides whether it reads as an
// estimate, an active job or an invoice.
//
// Storage model (SQL):
//   - PK: id (auto increment)
//   - UNIQUE: estimate_number, invoice_number (NULL allowed)
//   - line_items.job_id -> jobs.id
type Job struct {
	ID             int64           `json:"id"`
	CustomerID     int64           `json:"customer_id"`
	EstimateNumber string          `json:"estimate_number"`
	InvoiceNumber  *string         `json:"invoice_number"`
	Status         JobStatus       `json:"status"`
	EstimateDate   *time.Time      `json:"estimate_date"`
	ApprovalDate   *time.Time      `json:"approval_date"`
	StartDate      *time.Time      `json:"start_date"`
	CompletionDate *time.Time      `json:"completion_date"`
	InvoiceDate    *time.Time      `json:"invoice_date"`
	PaymentDate    *time.Time      `json:"payment_date"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Notes          string          `json:"notes"`
	LineItems      []LineItem      `json:"line_items,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// LineItem is one billable entry of a job. ItemNumber runs 1..N without gaps.
type LineItem struct {
	ID          int64           `json:"id"`
	JobID       int64           `json:"job_id"`
	ItemNumber  int             `json:"item_number"`
	Action      string          `json:"action"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// SumLineItems returns the exact decimal total of items.
func SumLineItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}

// NumberLineItems returns a copy of items renumbered 1..N and bound to jobID.
func NumberLineItems(jobID int64, items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	for i, it := range items {
		it.ID = 0
		it.JobID = jobID
		it.ItemNumber = i + 1
		out[i] = it
	}
	return out
}

// DateField names a milestone date column of a job.
type DateField string

const (
	DateFieldNone       DateField = ""
	DateFieldEstimate   DateField = "estimate_date"
	DateFieldApproval   DateField = "approval_date"
	DateFieldStart      DateField = "start_date"
	DateFieldCompletion DateField = "completion_date"
	DateFieldInvoice    DateField = "invoice_date"
	DateFieldPayment    DateField = "payment_date"
)

// MilestoneDate returns the value currently held by field.
func (j Job) MilestoneDate(field DateField) *time.Time {
	switch field {
	case DateFieldEstimate:
		return j.EstimateDate
	case DateFieldApproval:
		return j.ApprovalDate
	case DateFieldStart:
		return j.StartDate
	case DateFieldCompletion:
		return j.CompletionDate
	case DateFieldInvoice:
		return j.InvoiceDate
	case DateFieldPayment:
		return j.PaymentDate
	}
	return nil
}

// JobPatch is a partial update of a job. Nil fields are left untouched.
type JobPatch struct {
	Status        *JobStatus
	DateField     DateField
	Date          *time.Time
	InvoiceNumber *string
	Notes         *string
}
