package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobledger/internal/domain/entities"
	"jobledger/internal/usecase/interfaces"

	"gorm.io/gorm"
)

var milestoneColumns = map[entities.DateField]string{
	entities.DateFieldEstimate:   "estimate_date",
	entities.DateFieldApproval:   "approval_date",
	entities.DateFieldStart:      "start_date",
	entities.DateFieldCompletion: "completion_date",
	entities.DateFieldInvoice:    "invoice_date",
	entities.DateFieldPayment:    "payment_date",
}

var identifierColumns = map[interfaces.IdentifierColumn]string{
	interfaces.ColumnEstimateNumber: "estimate_number",
	interfaces.ColumnInvoiceNumber:  "invoice_number",
}

// JobGormRepository persists jobs and line items in a SQL database.
//
// Table requirements (see Migrate):
//   - jobs: UNIQUE(estimate_number), UNIQUE(invoice_number)
//   - line_items: (job_id, item_number)
type JobGormRepository struct {
	db  *gorm.DB
	now func() time.Time
}

var _ interfaces.IJobRepository = (*JobGormRepository)(nil)

func NewJobGormRepository(db *gorm.DB) *JobGormRepository {
	return &JobGormRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (r *JobGormRepository) FindJobByID(ctx context.Context, id int64) (entities.Job, error) {
	return findJob(r.db.WithContext(ctx), id)
}

func (r *JobGormRepository) InsertJob(ctx context.Context, job entities.Job) (entities.Job, error) {
	row := toJobRow(job)
	row.ID = 0
	for i := range row.LineItems {
		row.LineItems[i].ID = 0
		row.LineItems[i].JobID = 0
	}
	now := r.now()
	row.CreatedAt, row.UpdatedAt = now, now

	var out entities.Job
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return translateWriteErr(err)
		}
		var err error
		out, err = findJob(tx, row.ID)
		return err
	})
	if err != nil {
		return entities.Job{}, err
	}
	return out, nil
}

func (r *JobGormRepository) UpdateJob(ctx context.Context, id int64, expected entities.JobStatus, patch entities.JobPatch) (entities.Job, error) {
	updates := map[string]any{"updated_at": r.now()}
	if patch.Status != nil {
		updates["status"] = patch.Status.Slug()
	}
	if patch.DateField != entities.DateFieldNone && patch.Date != nil {
		col, ok := milestoneColumns[patch.DateField]
		if !ok {
			return entities.Job{}, fmt.Errorf("unknown milestone field %q", patch.DateField)
		}
		// Milestones are append-only: keep an existing value.
		updates[col] = gorm.Expr("COALESCE("+col+", ?)", patch.Date.UTC())
	}
	if patch.InvoiceNumber != nil {
		updates["invoice_number"] = gorm.Expr("COALESCE(invoice_number, ?)", *patch.InvoiceNumber)
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}

	var out entities.Job
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&jobRow{}).
			Where("id = ? AND status = ?", id, expected.Slug()).
			Updates(updates)
		if res.Error != nil {
			return translateWriteErr(res.Error)
		}
		if res.RowsAffected == 0 {
			return interfaces.ErrStatusChanged
		}
		var err error
		out, err = findJob(tx, id)
		return err
	})
	if err != nil {
		return entities.Job{}, err
	}
	return out, nil
}

func (r *JobGormRepository) DeleteJob(ctx context.Context, id int64, expected entities.JobStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&jobRow{}).Where("id = ? AND status = ?", id, expected.Slug()).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return interfaces.ErrStatusChanged
		}
		if err := tx.Where("job_id = ?", id).Delete(&lineItemRow{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&jobRow{}).Error
	})
}

func (r *JobGormRepository) FindLineItemsByJobID(ctx context.Context, jobID int64) ([]entities.LineItem, error) {
	var rows []lineItemRow
	if err := r.db.WithContext(ctx).Where("job_id = ?", jobID).Order("item_number ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.LineItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, fromLineItemRow(row))
	}
	return items, nil
}

// ReplaceLineItems swaps the whole item set, renumbers it 1..N and stores the
// new total in one transaction, so readers never see a job without items or
// with a stale total.
func (r *JobGormRepository) ReplaceLineItems(ctx context.Context, jobID int64, expected entities.JobStatus, items []entities.LineItem, notes *string) (entities.Job, error) {
	numbered := entities.NumberLineItems(jobID, items)
	updates := map[string]any{
		"total_amount": entities.SumLineItems(numbered),
		"updated_at":   r.now(),
	}
	if notes != nil {
		updates["notes"] = *notes
	}

	var out entities.Job
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&jobRow{}).Where("id = ? AND status = ?", jobID, expected.Slug()).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return interfaces.ErrStatusChanged
		}
		if err := tx.Where("job_id = ?", jobID).Delete(&lineItemRow{}).Error; err != nil {
			return err
		}
		if len(numbered) > 0 {
			rows := make([]lineItemRow, 0, len(numbered))
			for _, it := range numbered {
				rows = append(rows, toLineItemRow(it))
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		var err error
		out, err = findJob(tx, jobID)
		return err
	})
	if err != nil {
		return entities.Job{}, err
	}
	return out, nil
}

func (r *JobGormRepository) CountIdentifiersWithPrefix(ctx context.Context, column interfaces.IdentifierColumn, prefix string) (int, error) {
	col, ok := identifierColumns[column]
	if !ok {
		return 0, fmt.Errorf("unknown identifier column %q", column)
	}
	var n int64
	err := r.db.WithContext(ctx).Model(&jobRow{}).Where(col+" LIKE ?", prefix+"%").Count(&n).Error
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *JobGormRepository) ListJobs(ctx context.Context, q interfaces.JobQuery) ([]entities.Job, error) {
	tx := r.db.WithContext(ctx).Model(&jobRow{}).Preload("LineItems", orderLineItems)
	if len(q.Statuses) > 0 {
		slugs := make([]string, 0, len(q.Statuses))
		for _, s := range q.Statuses {
			slugs = append(slugs, s.Slug())
		}
		tx = tx.Where("status IN ?", slugs)
	}
	if q.CustomerID > 0 {
		tx = tx.Where("customer_id = ?", q.CustomerID)
	}

	var rows []jobRow
	if err := tx.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	jobs := make([]entities.Job, 0, len(rows))
	for _, row := range rows {
		job, err := fromJobRow(row)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func findJob(tx *gorm.DB, id int64) (entities.Job, error) {
	var row jobRow
	err := tx.Preload("LineItems", orderLineItems).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Job{}, nil
	}
	if err != nil {
		return entities.Job{}, err
	}
	job, err := fromJobRow(row)
	if err != nil {
		return entities.Job{}, err
	}
	if job.LineItems == nil {
		job.LineItems = []entities.LineItem{}
	}
	return job, nil
}

func orderLineItems(db *gorm.DB) *gorm.DB {
	return db.Order("item_number ASC")
}
