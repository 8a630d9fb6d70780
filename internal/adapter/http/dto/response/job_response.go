package response

import (
	"time"

	"jobledger/internal/domain/aging"
	"jobledger/internal/domain/entities"
	"jobledger/internal/domain/workflow"
	"jobledger/internal/usecase"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type LineItemResponse struct {
	ID          int64  `json:"id"`
	ItemNumber  int    `json:"item_number"`
	Action      string `json:"action"`
	Amount      string `json:"amount" example:"100.00"`
	Description string `json:"description"`
}

type AgingResponse struct {
	IsOverdue        bool   `json:"is_overdue"`
	DaysOverdue      int    `json:"days_overdue"`
	DaysSinceInvoice int    `json:"days_since_invoice"`
	Bucket           string `json:"bucket,omitempty"`
}

type JobResponse struct {
	ID             int64              `json:"id"`
	CustomerID     int64              `json:"customer_id"`
	Customer       *CustomerResponse  `json:"customer,omitempty"`
	EstimateNumber string             `json:"estimate_number"`
	InvoiceNumber  *string            `json:"invoice_number"`
	Status         string             `json:"status" example:"Estimate Created"`
	StatusSlug     string             `json:"status_slug" example:"estimate_created"`
	NextStatus     *string            `json:"next_status"`
	CanEdit        bool               `json:"can_edit"`
	CanDelete      bool               `json:"can_delete"`
	EstimateDate   *string            `json:"estimate_date"`
	ApprovalDate   *string            `json:"approval_date"`
	StartDate      *string            `json:"start_date"`
	CompletionDate *string            `json:"completion_date"`
	InvoiceDate    *string            `json:"invoice_date"`
	PaymentDate    *string            `json:"payment_date"`
	TotalAmount    string             `json:"total_amount" example:"350.50"`
	Notes          string             `json:"notes"`
	LineItems      []LineItemResponse `json:"line_items"`
	Aging          *AgingResponse     `json:"aging,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	resp := JobResponse{
		ID:             j.ID,
		CustomerID:     j.CustomerID,
		EstimateNumber: j.EstimateNumber,
		InvoiceNumber:  j.InvoiceNumber,
		Status:         j.Status.String(),
		StatusSlug:     j.Status.Slug(),
		CanEdit:        workflow.CanEditJob(j.Status),
		CanDelete:      workflow.CanDeleteJob(j.Status),
		EstimateDate:   formatDate(j.EstimateDate),
		ApprovalDate:   formatDate(j.ApprovalDate),
		StartDate:      formatDate(j.StartDate),
		CompletionDate: formatDate(j.CompletionDate),
		InvoiceDate:    formatDate(j.InvoiceDate),
		PaymentDate:    formatDate(j.PaymentDate),
		TotalAmount:    Money(j.TotalAmount),
		Notes:          j.Notes,
		LineItems:      make([]LineItemResponse, 0, len(j.LineItems)),
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
	if next, ok := workflow.NextStatus(j.Status); ok {
		label := next.String()
		resp.NextStatus = &label
	}
	for _, it := range j.LineItems {
		resp.LineItems = append(resp.LineItems, LineItemResponse{
			ID:          it.ID,
			ItemNumber:  it.ItemNumber,
			Action:      it.Action,
			Amount:      Money(it.Amount),
			Description: it.Description,
		})
	}
	return resp
}

func FromJobView(v usecase.JobView) JobResponse {
	resp := FromJob(v.Job)
	if v.Customer != nil {
		c := FromCustomer(*v.Customer)
		resp.Customer = &c
	}
	resp.Aging = fromAging(v.Aging)
	return resp
}

func FromJobViews(views []usecase.JobView) []JobResponse {
	out := make([]JobResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromJobView(v))
	}
	return out
}

// Money renders an amount with two decimal places.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func fromAging(r aging.Result) *AgingResponse {
	return &AgingResponse{
		IsOverdue:        r.IsOverdue,
		DaysOverdue:      r.DaysOverdue,
		DaysSinceInvoice: r.DaysSinceInvoice,
		Bucket:           r.Bucket,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(dateLayout)
	return &s
}
