package usecase

import (
	"context"
	"sort"
	"time"

	"jobledger/internal/domain/aging"
	"jobledger/internal/domain/entities"
	"jobledger/internal/domain/workflow"
	"jobledger/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// JobView is a job annotated for display: its customer, its line items and
// its aging as of the time of the read.
type JobView struct {
	Job      entities.Job
	Customer *entities.Customer
	Aging    aging.Result
}

type JobFilter struct {
	Group       workflow.Group
	CustomerID  int64
	OverdueOnly bool
}

type DashboardSummary struct {
	EstimateCount    int
	ActiveCount      int
	InvoicedCount    int
	PaidCount        int
	OutstandingTotal decimal.Decimal
	OverdueCount     int
	OverdueTotal     decimal.Decimal
	PaidTotal        decimal.Decimal
}

func (u *JobUseCase) GetJob(ctx context.Context, id int64) (JobView, error) {
	const op = "get_job"
	job, err := u.load(ctx, op, id)
	if err != nil {
		return JobView{}, err
	}
	if job.LineItems == nil {
		items, err := u.repo.FindLineItemsByJobID(ctx, id)
		if err != nil {
			return JobView{}, u.storeFailure(op, id, err)
		}
		job.LineItems = items
	}
	views, err := u.annotate(ctx, op, []entities.Job{job})
	if err != nil {
		return JobView{}, err
	}
	return views[0], nil
}

// ListJobs returns jobs newest first. Overdue filtering happens after aging is
// computed, since overdue is never stored.
func (u *JobUseCase) ListJobs(ctx context.Context, filter JobFilter) ([]JobView, error) {
	const op = "list_jobs"
	group := filter.Group
	if group == "" {
		group = workflow.GroupAll
	}
	statuses := workflow.StatusesIn(group)
	if statuses == nil {
		return nil, u.fail(op, validation("Unknown status group '%s'.", filter.Group))
	}
	// Only unpaid invoices can be overdue.
	if filter.OverdueOnly {
		statuses = overdueEligible(statuses)
		if len(statuses) == 0 {
			return []JobView{}, nil
		}
	}

	jobs, err := u.repo.ListJobs(ctx, interfaces.JobQuery{Statuses: statuses, CustomerID: filter.CustomerID})
	if err != nil {
		return nil, u.storeFailure(op, 0, err)
	}
	views, err := u.annotate(ctx, op, jobs)
	if err != nil {
		return nil, err
	}
	if filter.OverdueOnly {
		overdue := views[:0]
		for _, v := range views {
			if v.Aging.IsOverdue {
				overdue = append(overdue, v)
			}
		}
		views = overdue
	}
	sort.SliceStable(views, func(i, j int) bool { return views[i].Job.ID > views[j].Job.ID })
	return views, nil
}

func (u *JobUseCase) Dashboard(ctx context.Context) (DashboardSummary, error) {
	jobs, err := u.repo.ListJobs(ctx, interfaces.JobQuery{})
	if err != nil {
		return DashboardSummary{}, u.storeFailure("dashboard", 0, err)
	}

	now := u.agingDate()
	sum := DashboardSummary{
		OutstandingTotal: decimal.Zero,
		OverdueTotal:     decimal.Zero,
		PaidTotal:        decimal.Zero,
	}
	for _, j := range jobs {
		switch {
		case workflow.IsEstimate(j.Status):
			sum.EstimateCount++
		case workflow.IsActive(j.Status):
			sum.ActiveCount++
		case workflow.IsInvoiced(j.Status):
			sum.InvoicedCount++
			sum.OutstandingTotal = sum.OutstandingTotal.Add(j.TotalAmount)
			if u.aging.EvaluateJob(j, now).IsOverdue {
				sum.OverdueCount++
				sum.OverdueTotal = sum.OverdueTotal.Add(j.TotalAmount)
			}
		case workflow.IsPaid(j.Status):
			sum.PaidCount++
			sum.PaidTotal = sum.PaidTotal.Add(j.TotalAmount)
		}
	}
	return sum, nil
}

func overdueEligible(statuses []entities.JobStatus) []entities.JobStatus {
	var out []entities.JobStatus
	for _, s := range statuses {
		if workflow.IsInvoiced(s) {
			out = append(out, s)
		}
	}
	return out
}

// agingDate is today in the business zone, on the same midnight UTC basis as
// stored milestone dates, so aging counts whole calendar days.
func (u *JobUseCase) agingDate() time.Time {
	return u.today()
}

func (u *JobUseCase) annotate(ctx context.Context, op string, jobs []entities.Job) ([]JobView, error) {
	if len(jobs) == 0 {
		return []JobView{}, nil
	}
	seen := make(map[int64]struct{}, len(jobs))
	ids := make([]int64, 0, len(jobs))
	for _, j := range jobs {
		if _, ok := seen[j.CustomerID]; !ok {
			seen[j.CustomerID] = struct{}{}
			ids = append(ids, j.CustomerID)
		}
	}
	customers, err := u.customers.GetByIDs(ctx, ids)
	if err != nil {
		return nil, u.storeFailure(op, 0, err)
	}

	now := u.agingDate()
	views := make([]JobView, 0, len(jobs))
	for _, j := range jobs {
		v := JobView{Job: j, Aging: u.aging.EvaluateJob(j, now)}
		if c, ok := customers[j.CustomerID]; ok {
			c := c
			v.Customer = &c
		}
		views = append(views, v)
	}
	return views, nil
}
