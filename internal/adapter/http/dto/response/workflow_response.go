package response

import (
	"jobledger/internal/domain/entities"
	"jobledger/internal/domain/workflow"
	"jobledger/internal/usecase"
)

// StatusResponse describes one lifecycle status for UI gating.
type StatusResponse struct {
	Order      int     `json:"order"`
	Status     string  `json:"status"`
	Slug       string  `json:"slug"`
	NextStatus *string `json:"next_status"`
	DateField  string  `json:"date_field,omitempty"`
	CanEdit    bool    `json:"can_edit"`
	CanDelete  bool    `json:"can_delete"`
	CanApprove bool    `json:"can_approve"`
}

func FromStatuses(statuses []entities.JobStatus) []StatusResponse {
	out := make([]StatusResponse, 0, len(statuses))
	for _, s := range statuses {
		r := StatusResponse{
			Order:      int(s),
			Status:     s.String(),
			Slug:       s.Slug(),
			DateField:  string(workflow.DateFieldFor(s)),
			CanEdit:    workflow.CanEditJob(s),
			CanDelete:  workflow.CanDeleteJob(s),
			CanApprove: workflow.CanApprove(s),
		}
		if next, ok := workflow.NextStatus(s); ok {
			label := next.String()
			r.NextStatus = &label
		}
		out = append(out, r)
	}
	return out
}

type DashboardResponse struct {
	EstimateCount    int    `json:"estimate_count"`
	ActiveCount      int    `json:"active_count"`
	InvoicedCount    int    `json:"invoiced_count"`
	PaidCount        int    `json:"paid_count"`
	OutstandingTotal string `json:"outstanding_total"`
	OverdueCount     int    `json:"overdue_count"`
	OverdueTotal     string `json:"overdue_total"`
	PaidTotal        string `json:"paid_total"`
}

func FromDashboard(s usecase.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		EstimateCount:    s.EstimateCount,
		ActiveCount:      s.ActiveCount,
		InvoicedCount:    s.InvoicedCount,
		PaidCount:        s.PaidCount,
		OutstandingTotal: Money(s.OutstandingTotal),
		OverdueCount:     s.OverdueCount,
		OverdueTotal:     Money(s.OverdueTotal),
		PaidTotal:        Money(s.PaidTotal),
	}
}
