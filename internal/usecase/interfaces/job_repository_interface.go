package interfaces

import (
	"context"
	"errors"

	"jobledger/internal/domain/entities"
)

var (
	// ErrDuplicateIdentifier is returned when a write violates the uniqueness
	// of estimate_number or invoice_number.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	// ErrStatusChanged is returned by conditional writes when the job no longer
	// holds the status the caller loaded.
	ErrStatusChanged = errors.New("job status changed concurrently")
)

// IdentifierColumn names a column holding minted identifiers.
type IdentifierColumn string

const (
	ColumnEstimateNumber IdentifierColumn = "estimate_number"
	ColumnInvoiceNumber  IdentifierColumn = "invoice_number"
)

// JobQuery selects jobs for listings. Empty Statuses means any status.
type JobQuery struct {
	Statuses   []entities.JobStatus
	CustomerID int64
}

// IJobRepository abstracts persistence of jobs and their line items.
//
// Reads return a zero Job (ID == 0) and a nil error when nothing matches.
// Every multi-row write (job + items, item replacement, delete) runs in a
// single transaction. Writes taking an expected status only apply while the
// job still holds it and return ErrStatusChanged otherwise. Milestone dates
// already set are never overwritten.
type IJobRepository interface {
	FindJobByID(ctx context.Context, id int64) (entities.Job, error)
	InsertJob(ctx context.Context, job entities.Job) (entities.Job, error)
	UpdateJob(ctx context.Context, id int64, expected entities.JobStatus, patch entities.JobPatch) (entities.Job, error)
	DeleteJob(ctx context.Context, id int64, expected entities.JobStatus) error
	FindLineItemsByJobID(ctx context.Context, jobID int64) ([]entities.LineItem, error)
	ReplaceLineItems(ctx context.Context, jobID int64, expected entities.JobStatus, items []entities.LineItem, notes *string) (entities.Job, error)
	CountIdentifiersWithPrefix(ctx context.Context, column IdentifierColumn, prefix string) (int, error)
	ListJobs(ctx context.Context, q JobQuery) ([]entities.Job, error)
}
