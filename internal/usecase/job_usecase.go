package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobledger/internal/clock"
	"jobledger/internal/domain/aging"
	"jobledger/internal/domain/entities"
	"jobledger/internal/domain/workflow"
	"jobledger/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const defaultMaxIdentifierAttempts = 5

// IJobUseCase is the only way to change a job's status, identifiers and
// milestone dates. Every method returns a *Error on failure.
type IJobUseCase interface {
	CreateEstimate(ctx context.Context, customerID int64, items []entities.LineItem, notes string) (entities.Job, error)
	UpdateEstimate(ctx context.Context, id int64, items []entities.LineItem, notes *string) (entities.Job, error)
	DeleteEstimate(ctx context.Context, id int64) error
	MarkEstimateSent(ctx context.Context, id int64) (entities.Job, error)
	ApproveEstimate(ctx context.Context, id int64) (entities.Job, error)
	StartJob(ctx context.Context, id int64) (entities.Job, error)
	CompleteJob(ctx context.Context, id int64) (entities.Job, error)
	UpdateJobStatus(ctx context.Context, id int64, requested entities.JobStatus) (entities.Job, error)
	CreateInvoice(ctx context.Context, id int64) (entities.Job, error)
	RecordPayment(ctx context.Context, id int64, paymentDate *time.Time) (entities.Job, error)
	UpdateJobNotes(ctx context.Context, id int64, notes string) (entities.Job, error)

	GetJob(ctx context.Context, id int64) (JobView, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]JobView, error)
	Dashboard(ctx context.Context) (DashboardSummary, error)
}

type JobUseCase struct {
	repo        interfaces.IJobRepository
	customers   interfaces.ICustomerRepository
	ids         *IdentifierGenerator
	clock       clock.Clock
	loc         *time.Location
	aging       aging.Calculator
	maxAttempts int
	observer    interfaces.ILifecycleObserver
	logger      *zap.Logger
}

var _ IJobUseCase = (*JobUseCase)(nil)

type JobOption func(*JobUseCase)

// WithLocation sets the zone in which "today" is evaluated.
func WithLocation(loc *time.Location) JobOption {
	return func(u *JobUseCase) {
		if loc != nil {
			u.loc = loc
		}
	}
}

func WithDueDays(days int) JobOption {
	return func(u *JobUseCase) { u.aging = aging.NewCalculator(days) }
}

func WithMaxIdentifierAttempts(n int) JobOption {
	return func(u *JobUseCase) {
		if n > 0 {
			u.maxAttempts = n
		}
	}
}

func WithObserver(o interfaces.ILifecycleObserver) JobOption {
	return func(u *JobUseCase) {
		if o != nil {
			u.observer = o
		}
	}
}

// WithRandom replaces the source of the three digit estimate segment.
func WithRandom(intn func(n int) int) JobOption {
	return func(u *JobUseCase) {
		if intn != nil {
			u.ids.intn = intn
		}
	}
}

func NewJobUseCase(repo interfaces.IJobRepository, customers interfaces.ICustomerRepository, clk clock.Clock, logger *zap.Logger, opts ...JobOption) *JobUseCase {
	if clk == nil {
		clk = clock.Real{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	u := &JobUseCase{
		repo:        repo,
		customers:   customers,
		clock:       clk,
		loc:         time.UTC,
		aging:       aging.NewCalculator(aging.DefaultDueDays),
		maxAttempts: defaultMaxIdentifierAttempts,
		observer:    noopObserver{},
		logger:      logger,
	}
	u.ids = NewIdentifierGenerator(repo, clk, u.loc)
	for _, opt := range opts {
		opt(u)
	}
	u.ids.loc = u.loc
	return u
}

func (u *JobUseCase) CreateEstimate(ctx context.Context, customerID int64, items []entities.LineItem, notes string) (entities.Job, error) {
	const op = "create_estimate"
	if customerID <= 0 {
		return entities.Job{}, u.fail(op, validation("A customer is required."))
	}
	cleaned, vErr := validateLineItems(items)
	if vErr != nil {
		return entities.Job{}, u.fail(op, vErr)
	}

	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return entities.Job{}, u.storeFailure(op, 0, err)
	}
	if customer.ID == 0 {
		return entities.Job{}, u.fail(op, notFound("Customer %d not found.", customerID))
	}

	today := u.today()
	for attempt := 1; attempt <= u.maxAttempts; attempt++ {
		number, err := u.ids.NextEstimateNumber(ctx)
		if err != nil {
			return entities.Job{}, u.storeFailure(op, 0, err)
		}

		job := entities.Job{
			CustomerID:     customerID,
			EstimateNumber: number,
			Status:         workflow.InitialStatus,
			EstimateDate:   &today,
			TotalAmount:    entities.SumLineItems(cleaned),
			Notes:          strings.TrimSpace(notes),
			LineItems:      entities.NumberLineItems(0, cleaned),
		}
		created, err := u.repo.InsertJob(ctx, job)
		if errors.Is(err, interfaces.ErrDuplicateIdentifier) {
			u.observer.IdentifierConflict("estimate")
			u.logger.Warn("[job][usecase] estimate number collision, retrying",
				zap.String("estimate_number", number), zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return entities.Job{}, u.storeFailure(op, 0, err)
		}

		u.observer.TransitionRecorded(created.Status)
		u.logger.Info("[job][usecase] estimate created",
			zap.Int64("job_id", created.ID), zap.String("estimate_number", created.EstimateNumber),
			zap.String("total_amount", created.TotalAmount.StringFixed(2)))
		return created, nil
	}
	return entities.Job{}, u.fail(op, conflict("Could not allocate a unique estimate number. Please try again."))
}

// UpdateEstimate replaces the full line item set when items is non-nil and
// the notes when notes is non-nil. Only estimates may be edited.
func (u *JobUseCase) UpdateEstimate(ctx context.Context, id int64, items []entities.LineItem, notes *string) (entities.Job, error) {
	const op = "update_estimate"
	job, err := u.load(ctx, op, id)
	if err != nil {
		return entities.Job{}, err
	}
	if !workflow.CanEditJob(job.Status) {
		return entities.Job{}, u.fail(op, stateError("Job in status '%s' can no longer be edited.", job.Status))
	}
	if notes != nil {
		trimmed := strings.TrimSpace(*notes)
		notes = &trimmed
	}

	var updated entities.Job
	switch {
	case items != nil:
		cleaned, vErr := validateLineItems(items)
		if vErr != nil {
			return entities.Job{}, u.fail(op, vErr)
		}
		updated, err = u.repo.ReplaceLineItems(ctx, id, job.Status, entities.NumberLineItems(id, cleaned), notes)
	case notes != nil:
		updated, err = u.repo.UpdateJob(ctx, id, job.Status, entities.JobPatch{Notes: notes})
	default:
		return job, nil
	}
	if err != nil {
		return entities.Job{}, u.writeFailure(op, id, err)
	}
	u.logger.Info("[job][usecase] estimate updated", zap.Int64("job_id", id),
		zap.Bool("line_items_replaced", items != nil), zap.String("total_amount", updated.TotalAmount.StringFixed(2)))
	return updated, nil
}

func (u *JobUseCase) DeleteEstimate(ctx context.Context, id int64) error {
	const op = "delete_estimate"
	job, err := u.load(ctx, op, id)
	if err != nil {
		return err
	}
	if !workflow.CanDeleteJob(job.Status) {
		return u.fail(op, stateError("Job in status '%s' cannot be deleted.", job.Status))
	}
	if err := u.repo.DeleteJob(ctx, id, job.Status); err != nil {
		return u.writeFailure(op, id, err)
	}
	u.logger.Info("[job][usecase] estimate deleted", zap.Int64("job_id", id), zap.String("estimate_number", job.EstimateNumber))
	return nil
}

func (u *JobUseCase) MarkEstimateSent(ctx context.Context, id int64) (entities.Job, error) {
	return u.UpdateJobStatus(ctx, id, entities.JobStatusEstimateSent)
}

// ApproveEstimate accepts both estimate statuses: sending is optional.
func (u *JobUseCase) ApproveEstimate(ctx context.Context, id int64) (entities.Job, error) {
	return u.advance(ctx, "approve_estimate", id, entities.JobStatusApproved, workflow.Approval, nil)
}

func (u *JobUseCase) StartJob(ctx context.Context, id int64) (entities.Job, error) {
	return u.UpdateJobStatus(ctx, id, entities.JobStatusInProgress)
}

func (u *JobUseCase) CompleteJob(ctx context.Context, id int64) (entities.Job, error) {
	return u.UpdateJobStatus(ctx, id, entities.JobStatusCompleted)
}

// UpdateJobStatus moves a job to requested under the strict successor rule.
// Invoicing and payment carry extra work and are routed to their operations.
func (u *JobUseCase) UpdateJobStatus(ctx context.Context, id int64, requested entities.JobStatus) (entities.Job, error) {
	switch requested {
	case entities.JobStatusInvoiced:
		return u.CreateInvoice(ctx, id)
	case entities.JobStatusPaid:
		return u.RecordPayment(ctx, id, nil)
	}
	if !requested.Valid() {
		return entities.Job{}, u.fail("update_status", validation("Unknown status."))
	}
	return u.advance(ctx, "update_status", id, requested, strictTo(requested), nil)
}

func (u *JobUseCase) CreateInvoice(ctx context.Context, id int64) (entities.Job, error) {
	const op = "create_invoice"
	for attempt := 1; attempt <= u.maxAttempts; attempt++ {
		var number string
		job, err := u.advance(ctx, op, id, entities.JobStatusInvoiced, strictTo(entities.JobStatusInvoiced),
			func(current entities.Job, patch *entities.JobPatch) error {
				if current.InvoiceNumber != nil {
					return stateError("Job already has invoice number %s.", *current.InvoiceNumber)
				}
				n, err := u.ids.NextInvoiceNumber(ctx)
				if errors.Is(err, ErrInvoiceSequenceExhausted) {
					return conflict("No invoice numbers left for today.")
				}
				if err != nil {
					return err
				}
				number = n
				patch.InvoiceNumber = &number
				return nil
			})
		if errors.Is(err, interfaces.ErrDuplicateIdentifier) {
			u.observer.IdentifierConflict("invoice")
			u.logger.Warn("[job][usecase] invoice number collision, retrying",
				zap.Int64("job_id", id), zap.String("invoice_number", number), zap.Int("attempt", attempt))
			continue
		}
		return job, err
	}
	return entities.Job{}, u.fail(op, conflict("Could not allocate a unique invoice number. Please try again."))
}

// RecordPayment closes an invoice. paymentDate defaults to today and may be
// neither in the future nor before the invoice date.
func (u *JobUseCase) RecordPayment(ctx context.Context, id int64, paymentDate *time.Time) (entities.Job, error) {
	return u.advance(ctx, "record_payment", id, entities.JobStatusPaid, strictTo(entities.JobStatusPaid),
		func(current entities.Job, patch *entities.JobPatch) error {
			if paymentDate == nil {
				return nil
			}
			paid := clock.Today(*paymentDate, time.UTC)
			if paid.After(u.today()) {
				return validation("Payment date cannot be in the future.")
			}
			if current.InvoiceDate != nil && paid.Before(*current.InvoiceDate) {
				return validation("Payment date cannot be before the invoice date.")
			}
			patch.Date = &paid
			return nil
		})
}

func (u *JobUseCase) UpdateJobNotes(ctx context.Context, id int64, notes string) (entities.Job, error) {
	const op = "update_notes"
	job, err := u.load(ctx, op, id)
	if err != nil {
		return entities.Job{}, err
	}
	if !workflow.CanEditNotes(job.Status) {
		return entities.Job{}, u.fail(op, stateError("Notes of a paid invoice cannot be changed."))
	}
	trimmed := strings.TrimSpace(notes)
	updated, err := u.repo.UpdateJob(ctx, id, job.Status, entities.JobPatch{Notes: &trimmed})
	if err != nil {
		return entities.Job{}, u.writeFailure(op, id, err)
	}
	return updated, nil
}

// decider evaluates a transition from the job's current status.
type decider func(current entities.JobStatus) workflow.Decision

func strictTo(requested entities.JobStatus) decider {
	return func(current entities.JobStatus) workflow.Decision {
		return workflow.Transition(current, requested)
	}
}

// advance runs load -> validate -> write for a status transition. prepare may
// add fields to the patch or veto the transition with an error. A duplicate
// identifier error from the store is returned unwrapped so callers can retry.
func (u *JobUseCase) advance(
	ctx context.Context,
	op string,
	id int64,
	target entities.JobStatus,
	decide decider,
	prepare func(current entities.Job, patch *entities.JobPatch) error,
) (entities.Job, error) {
	job, err := u.load(ctx, op, id)
	if err != nil {
		return entities.Job{}, err
	}

	decision := decide(job.Status)
	if !decision.Legal {
		return entities.Job{}, u.fail(op, stateError("%s", workflow.TransitionMessage(job.Status, target)))
	}

	status := target
	patch := entities.JobPatch{Status: &status, DateField: decision.DateField}
	if prepare != nil {
		if err := prepare(job, &patch); err != nil {
			var ue *Error
			if errors.As(err, &ue) {
				return entities.Job{}, u.fail(op, ue)
			}
			return entities.Job{}, u.storeFailure(op, id, err)
		}
	}
	if patch.DateField != entities.DateFieldNone && patch.Date == nil {
		today := u.today()
		patch.Date = &today
	}

	updated, err := u.repo.UpdateJob(ctx, id, job.Status, patch)
	if errors.Is(err, interfaces.ErrDuplicateIdentifier) {
		return entities.Job{}, err
	}
	if err != nil {
		return entities.Job{}, u.writeFailure(op, id, err)
	}

	u.observer.TransitionRecorded(updated.Status)
	u.logger.Info("[job][usecase] status changed", zap.String("operation", op), zap.Int64("job_id", id),
		zap.Stringer("from", job.Status), zap.Stringer("to", updated.Status))
	return updated, nil
}

func (u *JobUseCase) load(ctx context.Context, op string, id int64) (entities.Job, error) {
	if id <= 0 {
		return entities.Job{}, u.fail(op, validation("Invalid job id."))
	}
	job, err := u.repo.FindJobByID(ctx, id)
	if err != nil {
		return entities.Job{}, u.storeFailure(op, id, err)
	}
	if job.ID == 0 {
		return entities.Job{}, u.fail(op, notFound("Job %d not found.", id))
	}
	return job, nil
}

func (u *JobUseCase) today() time.Time {
	return clock.Today(u.clock.Now(), u.loc)
}

func (u *JobUseCase) fail(op string, e *Error) *Error {
	u.observer.OperationFailed(op, string(e.Kind))
	u.logger.Debug("[job][usecase] operation rejected", zap.String("operation", op),
		zap.String("kind", string(e.Kind)), zap.String("reason", e.Message))
	return e
}

// writeFailure maps errors of conditional writes.
func (u *JobUseCase) writeFailure(op string, id int64, err error) *Error {
	if errors.Is(err, interfaces.ErrStatusChanged) {
		return u.fail(op, stateError("Job %d was changed by another request. Reload and try again.", id))
	}
	return u.storeFailure(op, id, err)
}

func (u *JobUseCase) storeFailure(op string, id int64, err error) *Error {
	u.observer.OperationFailed(op, string(KindInternal))
	u.logger.Error("[job][usecase] store failure", zap.String("operation", op), zap.Int64("job_id", id), zap.Error(err))
	return internal(err)
}

func validateLineItems(items []entities.LineItem) ([]entities.LineItem, *Error) {
	if len(items) == 0 {
		return nil, validation("At least one line item is required.")
	}
	cleaned := make([]entities.LineItem, 0, len(items))
	for i, it := range items {
		it.Action = strings.TrimSpace(it.Action)
		it.Description = strings.TrimSpace(it.Description)
		switch {
		case it.Action == "":
			return nil, validation("Line item %d: action is required.", i+1)
		case it.Description == "":
			return nil, validation("Line item %d: description is required.", i+1)
		case it.Amount.IsNegative():
			return nil, validation("Line item %d: amount cannot be negative.", i+1)
		}
		cleaned = append(cleaned, it)
	}
	return cleaned, nil
}

type noopObserver struct{}

func (noopObserver) TransitionRecorded(entities.JobStatus) {}
func (noopObserver) IdentifierConflict(string) {}
func (noopObserver) OperationFailed(string, string) {}
