package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"jobledger/internal/clock"
	"jobledger/internal/domain/entities"
	"jobledger/internal/domain/workflow"
	"jobledger/internal/usecase/interfaces"
	mock_interfaces "jobledger/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	testNow   = time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	testToday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
)

type recordingObserver struct {
	transitions []entities.JobStatus
	conflicts   []string
	failures    []string
}

func (o *recordingObserver) TransitionRecorded(to entities.JobStatus) {
	o.transitions = append(o.transitions, to)
}

func (o *recordingObserver) IdentifierConflict(kind string) {
	o.conflicts = append(o.conflicts, kind)
}

func (o *recordingObserver) OperationFailed(operation, kind string) {
	o.failures = append(o.failures, operation+":"+kind)
}

type jobFixture struct {
	repo      *mock_interfaces.MockIJobRepository
	customers *mock_interfaces.MockICustomerRepository
	clock     *clock.FakeClock
	observer  *recordingObserver
	uc        *JobUseCase
}

func newJobFixture(t *testing.T, opts ...JobOption) *jobFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &jobFixture{
		repo:      mock_interfaces.NewMockIJobRepository(ctrl),
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		clock:     clock.NewFakeClock(testNow),
		observer:  &recordingObserver{},
	}
	base := []JobOption{WithRandom(func(int) int { return 23 }), WithObserver(f.observer)}
	f.uc = NewJobUseCase(f.repo, f.customers, f.clock, zap.NewNop(), append(base, opts...)...)
	return f
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func storedJob(status entities.JobStatus) entities.Job {
	return entities.Job{
		ID:             1,
		CustomerID:     7,
		EstimateNumber: "250301T111A",
		Status:         status,
		EstimateDate:   datePtr(2025, 3, 1),
		TotalAmount:    dec("100.00"),
		LineItems: []entities.LineItem{
			{ID: 10, JobID: 1, ItemNumber: 1, Action: "Repair", Amount: dec("100.00"), Description: "Faucet"},
		},
	}
}

func invoicedJob() entities.Job {
	j := storedJob(entities.JobStatusInvoiced)
	number := "250301001"
	j.InvoiceNumber = &number
	j.InvoiceDate = datePtr(2025, 3, 1)
	return j
}

// applyPatch emulates the store: it applies patch to j the way a conditional
// update would and records the patch in got.
func applyPatch(j entities.Job, got *entities.JobPatch) func(context.Context, int64, entities.JobStatus, entities.JobPatch) (entities.Job, error) {
	return func(_ context.Context, _ int64, _ entities.JobStatus, p entities.JobPatch) (entities.Job, error) {
		*got = p
		if p.Status != nil {
			j.Status = *p.Status
		}
		if p.InvoiceNumber != nil && j.InvoiceNumber == nil {
			j.InvoiceNumber = p.InvoiceNumber
		}
		if p.Notes != nil {
			j.Notes = *p.Notes
		}
		if p.Date != nil && j.MilestoneDate(p.DateField) == nil {
			switch p.DateField {
			case entities.DateFieldApproval:
				j.ApprovalDate = p.Date
			case entities.DateFieldStart:
				j.StartDate = p.Date
			case entities.DateFieldCompletion:
				j.CompletionDate = p.Date
			case entities.DateFieldInvoice:
				j.InvoiceDate = p.Date
			case entities.DateFieldPayment:
				j.PaymentDate = p.Date
			}
		}
		return j, nil
	}
}

func expectKind(t *testing.T, err error, kind ErrorKind) *Error {
	t.Helper()
	var ue *Error
	if !errors.As(err, &ue) {
		t.Fatalf("expected *Error of kind %s, got %v", kind, err)
	}
	if ue.Kind != kind {
		t.Fatalf("expected kind %s, got %s (%s)", kind, ue.Kind, ue.Message)
	}
	return ue
}

func TestJobUseCase_CreateEstimate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newJobFixture(t)
		f.customers.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Customer{ID: 7, Name: "Ada"}, nil)
		f.repo.EXPECT().CountIdentifiersWithPrefix(gomock.Any(), interfaces.ColumnEstimateNumber, "250310").Return(0, nil)
		f.repo.EXPECT().InsertJob(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j entities.Job) (entities.Job, error) {
			j.ID = 1
			return j, nil
		})

		items := []entities.LineItem{
			{Action: " Repair ", Amount: dec("100.25"), Description: "Faucet"},
			{Action: "Install", Amount: dec("50.25"), Description: " Sink "},
		}
		job, err := f.uc.CreateEstimate(context.Background(), 7, items, "  call first ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.EstimateNumber != "250310T123A" {
			t.Fatalf("expected estimate number 250310T123A, got %s", job.EstimateNumber)
		}
		if job.Status != entities.JobStatusEstimateCreated {
			t.Fatalf("expected Estimate Created, got %v", job.Status)
		}
		if job.EstimateDate == nil || !job.EstimateDate.Equal(testToday) {
			t.Fatalf("expected estimate date %v, got %v", testToday, job.EstimateDate)
		}
		if job.ApprovalDate != nil || job.InvoiceNumber != nil {
			t.Fatalf("expected no later milestones, got %+v", job)
		}
		if !job.TotalAmount.Equal(dec("150.50")) {
			t.Fatalf("expected total 150.50, got %s", job.TotalAmount)
		}
		if len(job.LineItems) != 2 || job.LineItems[0].ItemNumber != 1 || job.LineItems[1].ItemNumber != 2 {
			t.Fatalf("expected items numbered 1..2, got %+v", job.LineItems)
		}
		if job.LineItems[0].Action != "Repair" || job.LineItems[1].Description != "Sink" {
			t.Fatalf("expected trimmed item text, got %+v", job.LineItems)
		}
		if job.Notes != "call first" {
			t.Fatalf("expected trimmed notes, got %q", job.Notes)
		}
		if len(f.observer.transitions) != 1 || f.observer.transitions[0] != entities.JobStatusEstimateCreated {
			t.Fatalf("expected one recorded transition, got %v", f.observer.transitions)
		}
	})

	t.Run("retries on duplicate estimate number", func(t *testing.T) {
		f := newJobFixture(t)
		f.customers.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Customer{ID: 7}, nil)
		gomock.InOrder(
			f.repo.EXPECT().CountIdentifiersWithPrefix(gomock.Any(), interfaces.ColumnEstimateNumber, "250310").Return(0, nil),
			f.repo.EXPECT().InsertJob(gomock.Any(), gomock.Any()).Return(entities.Job{}, interfaces.ErrDuplicateIdentifier),
			f.repo.EXPECT().CountIdentifiersWithPrefix(gomock.Any(), interfaces.ColumnEstimateNumber, "250310").Return(1, nil),
			f.repo.EXPECT().InsertJob(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j entities.Job) (entities.Job, error) {
				j.ID = 2
				return j, nil
			}),
		)

		items := []entities.LineItem{{Action: "Repair", Amount: dec("10"), Description: "Door"}}
		job, err := f.uc.CreateEstimate(context.Background(), 7, items, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.EstimateNumber != "250310T123B" {
			t.Fatalf("expected 250310T123B, got %s", job.EstimateNumber)
		}
		if len(f.observer.conflicts) != 1 || f.observer.conflicts[0] != "estimate" {
			t.Fatalf("expected one estimate conflict, got %v", f.observer.conflicts)
		}
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		f := newJobFixture(t, WithMaxIdentifierAttempts(2))
		f.customers.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Customer{ID: 7}, nil)
		f.repo.EXPECT().CountIdentifiersWithPrefix(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).Times(2)
		f.repo.EXPECT().InsertJob(gomock.Any(), gomock.Any()).Return(entities.Job{}, interfaces.ErrDuplicateIdentifier).Times(2)

		items := []entities.LineItem{{Action: "Repair", Amount: dec("10"), Description: "Door"}}
		_, err := f.uc.CreateEstimate(context.Background(), 7, items, "")
		expectKind(t, err, KindConflict)
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected errors.Is(err, ErrConflict)")
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		f := newJobFixture(t)
		f.customers.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Customer{}, nil)

		items := []entities.LineItem{{Action: "Repair", Amount: dec("10"), Description: "Door"}}
		_, err := f.uc.CreateEstimate(context.Background(), 7, items, "")
		ue := expectKind(t, err, KindNotFound)
		if ue.Message != "Customer 7 not found." {
			t.Fatalf("unexpected message %q", ue.Message)
		}
	})

	t.Run("customer store error", func(t *testing.T) {
		f := newJobFixture(t)
		f.customers.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Customer{}, errors.New("db"))

		items := []entities.LineItem{{Action: "Repair", Amount: dec("10"), Description: "Door"}}
		_, err := f.uc.CreateEstimate(context.Background(), 7, items, "")
		ue := expectKind(t, err, KindInternal)
		if ue.Message != "An internal error occurred" {
			t.Fatalf("internal errors must not leak details, got %q", ue.Message)
		}
	})

	invalid := []struct {
		name       string
		customerID int64
		items      []entities.LineItem
	}{
		{name: "missing customer", customerID: 0, items: []entities.LineItem{{Action: "a", Amount: dec("1"), Description: "d"}}},
		{name: "no line items", customerID: 7, items: nil},
		{name: "blank action", customerID: 7, items: []entities.LineItem{{Action: "  ", Amount: dec("1"), Description: "d"}}},
		{name: "blank description", customerID: 7, items: []entities.LineItem{{Action: "a", Amount: dec("1"), Description: ""}}},
		{name: "negative amount", customerID: 7, items: []entities.LineItem{{Action: "a", Amount: dec("-0.01"), Description: "d"}}},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			f := newJobFixture(t)
			_, err := f.uc.CreateEstimate(context.Background(), tc.customerID, tc.items, "")
			expectKind(t, err, KindValidation)
		})
	}
}

func TestJobUseCase_Transitions(t *testing.T) {
	cases := []struct {
		name      string
		from      entities.JobStatus
		call      func(uc *JobUseCase) (entities.Job, error)
		want      entities.JobStatus
		wantField entities.DateField
	}{
		{
			name: "send estimate",
			from: entities.JobStatusEstimateCreated,
			call: func(uc *JobUseCase) (entities.Job, error) {
				return uc.MarkEstimateSent(context.Background(), 1)
			},
			want:      entities.JobStatusEstimateSent,
			wantField: entities.DateFieldNone,
		},
		{
			name: "approve without sending",
			from: entities.JobStatusEstimateCreated,
			call: func(uc *JobUseCase) (entities.Job, error) {
				return uc.ApproveEstimate(context.Background(), 1)
			},
			want:      entities.JobStatusApproved,
			wantField: entities.DateFieldApproval,
		},
		{
			name: "approve sent estimate",
			from: entities.JobStatusEstimateSent,
			call: func(uc *JobUseCase) (entities.Job, error) {
				return uc.ApproveEstimate(context.Background(), 1)
			},
			want:      entities.JobStatusApproved,
			wantField: entities.DateFieldApproval,
		},
		{
			name: "start job",
			from: entities.JobStatusApproved,
			call: func(uc *JobUseCase) (entities.Job, error) {
				return uc.StartJob(context.Background(), 1)
			},
			want:      entities.JobStatusInProgress,
			wantField: entities.DateFieldStart,
		},
		{
			name: "complete job",
			from: entities.JobStatusInProgress,
			call: func(uc *JobUseCase) (entities.Job, error) {
				return uc.CompleteJob(context.Background(), 1)
			},
			want:      entities.JobStatusCompleted,
			wantField: entities.DateFieldCompletion,
		},
		{
			name: "generic status update",
			from: entities.JobStatusEstimateSent,
			call: func(uc *JobUseCase) (entities.Job, error) {
				return uc.UpdateJobStatus(context.Background(), 1, entities.JobStatusApproved)
			},
			want:      entities.JobStatusApproved,
			wantField: entities.DateFieldApproval,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newJobFixture(t)
			var patch entities.JobPatch
			f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(tc.from), nil)
			f.repo.EXPECT().UpdateJob(gomock.Any(), int64(1), tc.from, gomock.Any()).DoAndReturn(applyPatch(storedJob(tc.from), &patch))

			job, err := tc.call(f.uc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if job.Status != tc.want {
				t.Fatalf("expected status %v, got %v", tc.want, job.Status)
			}
			if patch.Status == nil || *patch.Status != tc.want {
				t.Fatalf("expected patch status %v, got %v", tc.want, patch.Status)
			}
			if patch.DateField != tc.wantField {
				t.Fatalf("expected date field %q, got %q", tc.wantField, patch.DateField)
			}
			if tc.wantField == entities.DateFieldNone {
				if patch.Date != nil {
					t.Fatalf("expected no date stamped, got %v", patch.Date)
				}
			} else if patch.Date == nil || !patch.Date.Equal(testToday) {
				t.Fatalf("expected date %v, got %v", testToday, patch.Date)
			}
			if len(f.observer.transitions) != 1 || f.observer.transitions[0] != tc.want {
				t.Fatalf("expected transition to %v recorded, got %v", tc.want, f.observer.transitions)
			}
		})
	}
}

func TestJobUseCase_IllegalTransitions(t *testing.T) {
	cases := []struct {
		name string
		from entities.JobStatus
		to   entities.JobStatus
		call func(uc *JobUseCase) (entities.Job, error)
	}{
		{
			name: "start an unapproved estimate",
			from: entities.JobStatusEstimateCreated,
			to:   entities.JobStatusInProgress,
			call: func(uc *JobUseCase) (entities.Job, error) { return uc.StartJob(context.Background(), 1) },
		},
		{
			name: "approve twice",
			from: entities.JobStatusApproved,
			to:   entities.JobStatusApproved,
			call: func(uc *JobUseCase) (entities.Job, error) { return uc.ApproveEstimate(context.Background(), 1) },
		},
		{
			name: "complete without starting",
			from: entities.JobStatusApproved,
			to:   entities.JobStatusCompleted,
			call: func(uc *JobUseCase) (entities.Job, error) { return uc.CompleteJob(context.Background(), 1) },
		},
		{
			name: "move backwards",
			from: entities.JobStatusInProgress,
			to:   entities.JobStatusEstimateSent,
			call: func(uc *JobUseCase) (entities.Job, error) {
				return uc.UpdateJobStatus(context.Background(), 1, entities.JobStatusEstimateSent)
			},
		},
		{
			name: "send a paid job",
			from: entities.JobStatusPaid,
			to:   entities.JobStatusEstimateSent,
			call: func(uc *JobUseCase) (entities.Job, error) { return uc.MarkEstimateSent(context.Background(), 1) },
		},
		{
			name: "invoice an unfinished job",
			from: entities.JobStatusInProgress,
			to:   entities.JobStatusInvoiced,
			call: func(uc *JobUseCase) (entities.Job, error) { return uc.CreateInvoice(context.Background(), 1) },
		},
		{
			name: "pay a completed job",
			from: entities.JobStatusCompleted,
			to:   entities.JobStatusPaid,
			call: func(uc *JobUseCase) (entities.Job, error) { return uc.RecordPayment(context.Background(), 1, nil) },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newJobFixture(t)
			f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(tc.from), nil)

			_, err := tc.call(f.uc)
			ue := expectKind(t, err, KindState)
			if want := workflow.TransitionMessage(tc.from, tc.to); ue.Message != want {
				t.Fatalf("expected message %q, got %q", want, ue.Message)
			}
			if len(f.observer.transitions) != 0 {
				t.Fatalf("expected no transition recorded, got %v", f.observer.transitions)
			}
		})
	}
}

func TestJobUseCase_StartJobMessage(t *testing.T) {
	f := newJobFixture(t)
	f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(entities.JobStatusEstimateCreated), nil)

	_, err := f.uc.StartJob(context.Background(), 1)
	want := "Cannot transition from 'Estimate Created' to 'In Progress'. Status must progress in order."
	if err == nil || err.Error() != want {
		t.Fatalf("expected %q, got %v", want, err)
	}
}

func TestJobUseCase_UpdateJobStatus_Routing(t *testing.T) {
	t.Run("invoiced goes through invoicing", func(t *testing.T) {
		f := newJobFixture(t)
		var patch entities.JobPatch
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(entities.JobStatusCompleted), nil)
		f.repo.EXPECT().CountIdentifiersWithPrefix(gomock.Any(), interfaces.ColumnInvoiceNumber, "250310").Return(0, nil)
		f.repo.EXPECT().UpdateJob(gomock.Any(), int64(1), entities.JobStatusCompleted, gomock.Any()).
			DoAndReturn(applyPatch(storedJob(entities.JobStatusCompleted), &patch))

		job, err := f.uc.UpdateJobStatus(context.Background(), 1, entities.JobStatusInvoiced)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.InvoiceNumber == nil || *job.InvoiceNumber != "250310001" {
			t.Fatalf("expected invoice number 250310001, got %v", job.InvoiceNumber)
		}
	})

	t.Run("paid goes through payment recording", func(t *testing.T) {
		f := newJobFixture(t)
		var patch entities.JobPatch
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(invoicedJob(), nil)
		f.repo.EXPECT().UpdateJob(gomock.Any(), int64(1), entities.JobStatusInvoiced, gomock.Any()).
			DoAndReturn(applyPatch(invoicedJob(), &patch))

		job, err := f.uc.UpdateJobStatus(context.Background(), 1, entities.JobStatusPaid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.PaymentDate == nil || !job.PaymentDate.Equal(testToday) {
			t.Fatalf("expected payment date today, got %v", job.PaymentDate)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newJobFixture(t)
		_, err := f.uc.UpdateJobStatus(context.Background(), 1, entities.JobStatus(42))
		expectKind(t, err, KindValidation)
	})
}

func TestJobUseCase_LoadFailures(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newJobFixture(t)
		_, err := f.uc.StartJob(context.Background(), 0)
		expectKind(t, err, KindValidation)
	})

	t.Run("not found", func(t *testing.T) {
		f := newJobFixture(t)
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(9)).Return(entities.Job{}, nil)

		_, err := f.uc.CompleteJob(context.Background(), 9)
		ue := expectKind(t, err, KindNotFound)
		if ue.Message != "Job 9 not found." {
			t.Fatalf("unexpected message %q", ue.Message)
		}
	})

	t.Run("store error", func(t *testing.T) {
		f := newJobFixture(t)
		dbErr := errors.New("connection reset")
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(entities.Job{}, dbErr)

		_, err := f.uc.ApproveEstimate(context.Background(), 1)
		expectKind(t, err, KindInternal)
		if !errors.Is(err, dbErr) {
			t.Fatalf("expected the store error to be wrapped")
		}
		if strings.Contains(err.Error(), "connection reset") {
			t.Fatalf("internal error leaked details: %v", err)
		}
	})
}

func TestJobUseCase_ConcurrentStatusChange(t *testing.T) {
	f := newJobFixture(t)
	f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(entities.JobStatusApproved), nil)
	f.repo.EXPECT().UpdateJob(gomock.Any(), int64(1), entities.JobStatusApproved, gomock.Any()).
		Return(entities.Job{}, interfaces.ErrStatusChanged)

	_, err := f.uc.StartJob(context.Background(), 1)
	ue := expectKind(t, err, KindState)
	if !strings.Contains(ue.Message, "changed by another request") {
		t.Fatalf("unexpected message %q", ue.Message)
	}
	if len(f.observer.transitions) != 0 {
		t.Fatalf("expected no transition recorded, got %v", f.observer.transitions)
	}
}

func TestJobUseCase_CreateInvoice(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newJobFixture(t)
		var patch entities.JobPatch
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(entities.JobStatusCompleted), nil)
		f.repo.EXPECT().CountIdentifiersWithPrefix(gomock.Any(), interfaces.ColumnInvoiceNumber, "250310").Return(2, nil)
		f.repo.EXPECT().UpdateJob(gomock.Any(), int64(1), entities.JobStatusCompleted, gomock.Any()).
			DoAndReturn(applyPatch(storedJob(entities.JobStatusCompleted), &patch))

		job, err := f.uc.CreateInvoice(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.InvoiceNumber == nil || *patch.InvoiceNumber != "250310003" {
			t.Fatalf("expected invoice number 250310003, got %v", patch.InvoiceNumber)
		}
		if patch.DateField != entities.DateFieldInvoice || patch.Date == nil || !patch.Date.Equal(testToday) {
			t.Fatalf("expected invoice date today, got %q %v", patch.DateField, patch.Date)
		}
		if job.Status != entities.JobStatusInvoiced {
			t.Fatalf("expected Invoiced, got %v", job.Status)
		}
	})

	t.Run("retries on duplicate invoice number", func(t *testing.T) {
		f := newJobFixture(t)
		var patch entities.JobPatch
		gomock.InOrder(
			f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(entities.JobStatusCompleted), nil),
			f.repo.EXPECT().CountIdentifiersWithPrefix(gomock.Any(), interfaces.ColumnInvoiceNumber, "250310").Return(0, nil),
			f.repo.EXPECT().UpdateJob(gomock.Any(), int64(1), entities.JobStatusCompleted, gomock.Any()).
				Return(entities.Job{}, interfaces.ErrDuplicateIdentifier),
			f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(entities.JobStatusCompleted), nil),
			f.repo.EXPECT().CountIdentifiersWithPrefix(gomock.Any(), interfaces.ColumnInvoiceNumber, "250310").Return(1, nil),
			f.repo.EXPECT().UpdateJob(gomock.Any(), int64(1), entities.JobStatusCompleted, gomock.Any()).
				DoAndReturn(applyPatch(storedJob(entities.JobStatusCompleted), &patch)),
		)

		job, err := f.uc.CreateInvoice(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.InvoiceNumber == nil || *job.InvoiceNumber != "250310002" {
			t.Fatalf("expected 250310002, got %v", job.InvoiceNumber)
		}
		if len(f.observer.conflicts) != 1 || f.observer.conflicts[0] != "invoice" {
			t.Fatalf("expected one invoice conflict, got %v", f.observer.conflicts)
		}
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		f := newJobFixture(t, WithMaxIdentifierAttempts(2))
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(entities.JobStatusCompleted), nil).Times(2)
		f.repo.EXPECT().CountIdentifiersWithPrefix(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).Times(2)
		f.repo.EXPECT().UpdateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Job{}, interfaces.ErrDuplicateIdentifier).Times(2)

		_, err := f.uc.CreateInvoice(context.Background(), 1)
		expectKind(t, err, KindConflict)
	})

	t.Run("daily sequence exhausted", func(t *testing.T) {
		f := newJobFixture(t)
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(entities.JobStatusCompleted), nil)
		f.repo.EXPECT().CountIdentifiersWithPrefix(gomock.Any(), interfaces.ColumnInvoiceNumber, "250310").Return(999, nil)

		_, err := f.uc.CreateInvoice(context.Background(), 1)
		ue := expectKind(t, err, KindConflict)
		if ue.Message != "No invoice numbers left for today." {
			t.Fatalf("unexpected message %q", ue.Message)
		}
	})

	t.Run("invoice number already assigned", func(t *testing.T) {
		f := newJobFixture(t)
		job := storedJob(entities.JobStatusCompleted)
		number := "250301001"
		job.InvoiceNumber = &number
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(job, nil)

		_, err := f.uc.CreateInvoice(context.Background(), 1)
		expectKind(t, err, KindState)
	})

	t.Run("count error", func(t *testing.T) {
		f := newJobFixture(t)
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(entities.JobStatusCompleted), nil)
		f.repo.EXPECT().CountIdentifiersWithPrefix(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errors.New("db"))

		_, err := f.uc.CreateInvoice(context.Background(), 1)
		expectKind(t, err, KindInternal)
	})
}

func TestJobUseCase_RecordPayment(t *testing.T) {
	t.Run("defaults to today", func(t *testing.T) {
		f := newJobFixture(t)
		var patch entities.JobPatch
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(invoicedJob(), nil)
		f.repo.EXPECT().UpdateJob(gomock.Any(), int64(1), entities.JobStatusInvoiced, gomock.Any()).
			DoAndReturn(applyPatch(invoicedJob(), &patch))

		job, err := f.uc.RecordPayment(context.Background(), 1, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.DateField != entities.DateFieldPayment || patch.Date == nil || !patch.Date.Equal(testToday) {
			t.Fatalf("expected payment date today, got %q %v", patch.DateField, patch.Date)
		}
		if job.Status != entities.JobStatusPaid {
			t.Fatalf("expected Paid, got %v", job.Status)
		}
	})

	t.Run("explicit date is truncated to the day", func(t *testing.T) {
		f := newJobFixture(t)
		var patch entities.JobPatch
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(invoicedJob(), nil)
		f.repo.EXPECT().UpdateJob(gomock.Any(), int64(1), entities.JobStatusInvoiced, gomock.Any()).
			DoAndReturn(applyPatch(invoicedJob(), &patch))

		paid := time.Date(2025, 3, 5, 18, 45, 0, 0, time.UTC)
		if _, err := f.uc.RecordPayment(context.Background(), 1, &paid); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC); patch.Date == nil || !patch.Date.Equal(want) {
			t.Fatalf("expected %v, got %v", want, patch.Date)
		}
	})

	t.Run("same day as the invoice", func(t *testing.T) {
		f := newJobFixture(t)
		var patch entities.JobPatch
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(invoicedJob(), nil)
		f.repo.EXPECT().UpdateJob(gomock.Any(), int64(1), entities.JobStatusInvoiced, gomock.Any()).
			DoAndReturn(applyPatch(invoicedJob(), &patch))

		if _, err := f.uc.RecordPayment(context.Background(), 1, datePtr(2025, 3, 1)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("future date", func(t *testing.T) {
		f := newJobFixture(t)
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(invoicedJob(), nil)

		_, err := f.uc.RecordPayment(context.Background(), 1, datePtr(2025, 3, 11))
		ue := expectKind(t, err, KindValidation)
		if ue.Message != "Payment date cannot be in the future." {
			t.Fatalf("unexpected message %q", ue.Message)
		}
	})

	t.Run("before the invoice date", func(t *testing.T) {
		f := newJobFixture(t)
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(invoicedJob(), nil)

		_, err := f.uc.RecordPayment(context.Background(), 1, datePtr(2025, 2, 28))
		ue := expectKind(t, err, KindValidation)
		if ue.Message != "Payment date cannot be before the invoice date." {
			t.Fatalf("unexpected message %q", ue.Message)
		}
	})
}

func TestJobUseCase_UpdateEstimate(t *testing.T) {
	t.Run("replaces line items and notes", func(t *testing.T) {
		f := newJobFixture(t)
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(entities.JobStatusEstimateSent), nil)
		f.repo.EXPECT().ReplaceLineItems(gomock.Any(), int64(1), entities.JobStatusEstimateSent, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, _ entities.JobStatus, items []entities.LineItem, notes *string) (entities.Job, error) {
				if len(items) != 2 || items[0].ItemNumber != 1 || items[1].ItemNumber != 2 || items[1].JobID != 1 {
					t.Fatalf("expected items renumbered for job 1, got %+v", items)
				}
				if notes == nil || *notes != "revised" {
					t.Fatalf("expected trimmed notes, got %v", notes)
				}
				j := storedJob(entities.JobStatusEstimateSent)
				j.LineItems = items
				j.TotalAmount = entities.SumLineItems(items)
				j.Notes = *notes
				return j, nil
			})

		notes := " revised "
		items := []entities.LineItem{
			{Action: "Repair", Amount: dec("80"), Description: "Faucet"},
			{Action: "Replace", Amount: dec("45.5"), Description: "Valve"},
		}
		job, err := f.uc.UpdateEstimate(context.Background(), 1, items, &notes)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !job.TotalAmount.Equal(dec("125.50")) {
			t.Fatalf("expected total 125.50, got %s", job.TotalAmount)
		}
	})

	t.Run("notes only", func(t *testing.T) {
		f := newJobFixture(t)
		var patch entities.JobPatch
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(entities.JobStatusEstimateCreated), nil)
		f.repo.EXPECT().UpdateJob(gomock.Any(), int64(1), entities.JobStatusEstimateCreated, gomock.Any()).
			DoAndReturn(applyPatch(storedJob(entities.JobStatusEstimateCreated), &patch))

		notes := "bring ladder"
		job, err := f.uc.UpdateEstimate(context.Background(), 1, nil, &notes)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.Status != nil || patch.DateField != entities.DateFieldNone {
			t.Fatalf("notes update must not touch status, got %+v", patch)
		}
		if job.Notes != "bring ladder" {
			t.Fatalf("expected notes saved, got %q", job.Notes)
		}
	})

	t.Run("nothing to change", func(t *testing.T) {
		f := newJobFixture(t)
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(entities.JobStatusEstimateCreated), nil)

		job, err := f.uc.UpdateEstimate(context.Background(), 1, nil, nil)
		if err != nil || job.ID != 1 {
			t.Fatalf("expected the loaded job back, got %+v (%v)", job, err)
		}
	})

	t.Run("approved jobs are locked", func(t *testing.T) {
		f := newJobFixture(t)
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(entities.JobStatusApproved), nil)

		items := []entities.LineItem{{Action: "Repair", Amount: dec("1"), Description: "x"}}
		_, err := f.uc.UpdateEstimate(context.Background(), 1, items, nil)
		ue := expectKind(t, err, KindState)
		if ue.Message != "Job in status 'Approved' can no longer be edited." {
			t.Fatalf("unexpected message %q", ue.Message)
		}
	})

	t.Run("empty item set", func(t *testing.T) {
		f := newJobFixture(t)
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(entities.JobStatusEstimateCreated), nil)

		_, err := f.uc.UpdateEstimate(context.Background(), 1, []entities.LineItem{}, nil)
		expectKind(t, err, KindValidation)
	})

	t.Run("status changed meanwhile", func(t *testing.T) {
		f := newJobFixture(t)
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(entities.JobStatusEstimateSent), nil)
		f.repo.EXPECT().ReplaceLineItems(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Job{}, interfaces.ErrStatusChanged)

		items := []entities.LineItem{{Action: "Repair", Amount: dec("1"), Description: "x"}}
		_, err := f.uc.UpdateEstimate(context.Background(), 1, items, nil)
		expectKind(t, err, KindState)
	})
}

func TestJobUseCase_DeleteEstimate(t *testing.T) {
	t.Run("deletes an estimate", func(t *testing.T) {
		f := newJobFixture(t)
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(entities.JobStatusEstimateSent), nil)
		f.repo.EXPECT().DeleteJob(gomock.Any(), int64(1), entities.JobStatusEstimateSent).Return(nil)

		if err := f.uc.DeleteEstimate(context.Background(), 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("approved jobs cannot be deleted", func(t *testing.T) {
		f := newJobFixture(t)
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(entities.JobStatusApproved), nil)

		err := f.uc.DeleteEstimate(context.Background(), 1)
		ue := expectKind(t, err, KindState)
		if ue.Message != "Job in status 'Approved' cannot be deleted." {
			t.Fatalf("unexpected message %q", ue.Message)
		}
	})

	t.Run("approved meanwhile", func(t *testing.T) {
		f := newJobFixture(t)
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(entities.JobStatusEstimateCreated), nil)
		f.repo.EXPECT().DeleteJob(gomock.Any(), int64(1), entities.JobStatusEstimateCreated).Return(interfaces.ErrStatusChanged)

		err := f.uc.DeleteEstimate(context.Background(), 1)
		expectKind(t, err, KindState)
	})
}

func TestJobUseCase_UpdateJobNotes(t *testing.T) {
	t.Run("active job", func(t *testing.T) {
		f := newJobFixture(t)
		var patch entities.JobPatch
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(entities.JobStatusInProgress), nil)
		f.repo.EXPECT().UpdateJob(gomock.Any(), int64(1), entities.JobStatusInProgress, gomock.Any()).
			DoAndReturn(applyPatch(storedJob(entities.JobStatusInProgress), &patch))

		job, err := f.uc.UpdateJobNotes(context.Background(), 1, "  gate code 1234 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Notes != "gate code 1234" || patch.Status != nil {
			t.Fatalf("unexpected result %+v, patch %+v", job, patch)
		}
	})

	t.Run("paid job", func(t *testing.T) {
		f := newJobFixture(t)
		f.repo.EXPECT().FindJobByID(gomock.Any(), int64(1)).Return(storedJob(entities.JobStatusPaid), nil)

		_, err := f.uc.UpdateJobNotes(context.Background(), 1, "late")
		expectKind(t, err, KindState)
	})
}

func TestKindOf(t *testing.T) {
	if KindOf(errors.New("x")) != KindInternal {
		t.Fatalf("foreign errors should be internal")
	}
	if KindOf(validation("bad")) != KindValidation {
		t.Fatalf("expected validation kind")
	}
	if !errors.Is(stateError("nope"), ErrState) {
		t.Fatalf("state errors should match ErrState")
	}
	if errors.Is(stateError("nope"), ErrNotFound) {
		t.Fatalf("state errors should not match ErrNotFound")
	}
}
