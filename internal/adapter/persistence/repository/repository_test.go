package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobledger/internal/domain/entities"
	"jobledger/internal/usecase/interfaces"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, Migrate(db))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB) entities.Customer {
	t.Helper()
	c, err := NewCustomerGormRepository(db).Create(context.Background(), entities.Customer{Name: "Acme Homes", Email: "ops@acme.test"})
	require.NoError(t, err)
	return c
}

func newEstimate(customerID int64, number string) entities.Job {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	items := []entities.LineItem{
		{Action: "Install", Amount: decimal.NewFromInt(100), Description: "Water heater"},
		{Action: "Haul", Amount: decimal.RequireFromString("50.5"), Description: "Old unit removal"},
	}
	return entities.Job{
		CustomerID:     customerID,
		EstimateNumber: number,
		Status:         entities.JobStatusEstimateCreated,
		EstimateDate:   &day,
		TotalAmount:    entities.SumLineItems(items),
		LineItems:      entities.NumberLineItems(0, items),
	}
}

func TestJobGormRepository_InsertAndFind(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	c := seedCustomer(t, db)
	repo := NewJobGormRepository(db)

	created, err := repo.InsertJob(ctx, newEstimate(c.ID, "250310T123A"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, entities.JobStatusEstimateCreated, created.Status)
	assert.True(t, created.TotalAmount.Equal(decimal.RequireFromString("150.5")))
	require.Len(t, created.LineItems, 2)
	assert.Equal(t, 1, created.LineItems[0].ItemNumber)
	assert.Equal(t, 2, created.LineItems[1].ItemNumber)
	assert.Equal(t, created.ID, created.LineItems[1].JobID)

	found, err := repo.FindJobByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "250310T123A", found.EstimateNumber)
	assert.Nil(t, found.InvoiceNumber)

	missing, err := repo.FindJobByID(ctx, created.ID+100)
	require.NoError(t, err)
	assert.Zero(t, missing.ID)
}

func TestJobGormRepository_UnknownStoredStatus(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	c := seedCustomer(t, db)
	repo := NewJobGormRepository(db)

	created, err := repo.InsertJob(ctx, newEstimate(c.ID, "250310T123A"))
	require.NoError(t, err)
	require.NoError(t, db.Model(&jobRow{}).Where("id = ?", created.ID).Update("status", "archived").Error)

	_, err = repo.FindJobByID(ctx, created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "archived")

	_, err = repo.ListJobs(ctx, interfaces.JobQuery{})
	require.Error(t, err)
}

func TestJobGormRepository_DuplicateEstimateNumber(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	c := seedCustomer(t, db)
	repo := NewJobGormRepository(db)

	_, err := repo.InsertJob(ctx, newEstimate(c.ID, "250310T123A"))
	require.NoError(t, err)

	_, err = repo.InsertJob(ctx, newEstimate(c.ID, "250310T123A"))
	assert.True(t, errors.Is(err, interfaces.ErrDuplicateIdentifier), "got %v", err)
}

func TestJobGormRepository_UpdateJobConditional(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	c := seedCustomer(t, db)
	repo := NewJobGormRepository(db)
	job, err := repo.InsertJob(ctx, newEstimate(c.ID, "250310T123A"))
	require.NoError(t, err)

	approved := entities.JobStatusApproved
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	updated, err := repo.UpdateJob(ctx, job.ID, entities.JobStatusEstimateCreated, entities.JobPatch{
		Status:    &approved,
		DateField: entities.DateFieldApproval,
		Date:      &day,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.JobStatusApproved, updated.Status)
	require.NotNil(t, updated.ApprovalDate)
	assert.True(t, updated.ApprovalDate.Equal(day))

	// Stale expectation.
	_, err = repo.UpdateJob(ctx, job.ID, entities.JobStatusEstimateCreated, entities.JobPatch{Status: &approved})
	assert.ErrorIs(t, err, interfaces.ErrStatusChanged)
}

func TestJobGormRepository_MilestonesAreNotOverwritten(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	c := seedCustomer(t, db)
	repo := NewJobGormRepository(db)
	job, err := repo.InsertJob(ctx, newEstimate(c.ID, "250310T123A"))
	require.NoError(t, err)

	later := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	notes := "touched"
	updated, err := repo.UpdateJob(ctx, job.ID, entities.JobStatusEstimateCreated, entities.JobPatch{
		DateField: entities.DateFieldEstimate,
		Date:      &later,
		Notes:     &notes,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.EstimateDate)
	assert.True(t, updated.EstimateDate.Equal(*job.EstimateDate))
	assert.Equal(t, "touched", updated.Notes)
}

func TestJobGormRepository_InvoiceNumberUniqueAndSticky(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	c := seedCustomer(t, db)
	repo := NewJobGormRepository(db)

	first, err := repo.InsertJob(ctx, newEstimate(c.ID, "250310T123A"))
	require.NoError(t, err)
	second, err := repo.InsertJob(ctx, newEstimate(c.ID, "250310T456B"))
	require.NoError(t, err)

	number := "250315001"
	updated, err := repo.UpdateJob(ctx, first.ID, entities.JobStatusEstimateCreated, entities.JobPatch{InvoiceNumber: &number})
	require.NoError(t, err)
	require.NotNil(t, updated.InvoiceNumber)
	assert.Equal(t, number, *updated.InvoiceNumber)

	_, err = repo.UpdateJob(ctx, second.ID, entities.JobStatusEstimateCreated, entities.JobPatch{InvoiceNumber: &number})
	assert.ErrorIs(t, err, interfaces.ErrDuplicateIdentifier)

	other := "250315002"
	updated, err = repo.UpdateJob(ctx, first.ID, entities.JobStatusEstimateCreated, entities.JobPatch{InvoiceNumber: &other})
	require.NoError(t, err)
	assert.Equal(t, number, *updated.InvoiceNumber)
}

func TestJobGormRepository_ReplaceLineItems(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	c := seedCustomer(t, db)
	repo := NewJobGormRepository(db)
	job, err := repo.InsertJob(ctx, newEstimate(c.ID, "250310T123A"))
	require.NoError(t, err)

	notes := "revised"
	replaced, err := repo.ReplaceLineItems(ctx, job.ID, entities.JobStatusEstimateCreated, []entities.LineItem{
		{ItemNumber: 7, Action: "Repair", Amount: decimal.NewFromInt(80), Description: "Valve"},
	}, &notes)
	require.NoError(t, err)
	require.Len(t, replaced.LineItems, 1)
	assert.Equal(t, 1, replaced.LineItems[0].ItemNumber)
	assert.True(t, replaced.TotalAmount.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, "revised", replaced.Notes)

	items, err := repo.FindLineItemsByJobID(ctx, job.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = repo.ReplaceLineItems(ctx, job.ID, entities.JobStatusEstimateSent, nil, nil)
	assert.ErrorIs(t, err, interfaces.ErrStatusChanged)
}

func TestJobGormRepository_DeleteJob(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	c := seedCustomer(t, db)
	repo := NewJobGormRepository(db)
	job, err := repo.InsertJob(ctx, newEstimate(c.ID, "250310T123A"))
	require.NoError(t, err)

	assert.ErrorIs(t, repo.DeleteJob(ctx, job.ID, entities.JobStatusEstimateSent), interfaces.ErrStatusChanged)
	require.NoError(t, repo.DeleteJob(ctx, job.ID, entities.JobStatusEstimateCreated))

	found, err := repo.FindJobByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Zero(t, found.ID)
	items, err := repo.FindLineItemsByJobID(ctx, job.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestJobGormRepository_CountAndList(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	c := seedCustomer(t, db)
	repo := NewJobGormRepository(db)

	for _, n := range []string{"250310T111A", "250310T222B", "250311T333A"} {
		_, err := repo.InsertJob(ctx, newEstimate(c.ID, n))
		require.NoError(t, err)
	}

	n, err := repo.CountIdentifiersWithPrefix(ctx, interfaces.ColumnEstimateNumber, "250310")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.CountIdentifiersWithPrefix(ctx, interfaces.ColumnInvoiceNumber, "250310")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	all, err := repo.ListJobs(ctx, interfaces.JobQuery{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Greater(t, all[0].ID, all[1].ID)
	assert.Len(t, all[0].LineItems, 2)

	none, err := repo.ListJobs(ctx, interfaces.JobQuery{Statuses: []entities.JobStatus{entities.JobStatusPaid}})
	require.NoError(t, err)
	assert.Empty(t, none)

	byCustomer, err := repo.ListJobs(ctx, interfaces.JobQuery{CustomerID: c.ID + 1})
	require.NoError(t, err)
	assert.Empty(t, byCustomer)
}

func TestCustomerGormRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCustomerGormRepository(db)

	b, err := repo.Create(ctx, entities.Customer{Name: "Birch Lane"})
	require.NoError(t, err)
	a, err := repo.Create(ctx, entities.Customer{Name: "Acme Homes", Phone: "555-0100"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "555-0100", got.Phone)

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Zero(t, missing.ID)

	byIDs, err := repo.GetByIDs(ctx, []int64{a.ID, b.ID, 999})
	require.NoError(t, err)
	assert.Len(t, byIDs, 2)
	assert.Equal(t, "Birch Lane", byIDs[b.ID].Name)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Acme Homes", list[0].Name)
}

func TestPaymentReceiptGormRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPaymentReceiptGormRepository(db)

	older := entities.PaymentReceipt{
		ID:            "r-1",
		JobID:         7,
		InvoiceNumber: "250315001",
		Amount:        decimal.NewFromInt(150),
		Date:          time.Date(2025, 3, 16, 10, 0, 0, 0, time.UTC),
		Status:        entities.PaymentReceiptRejected,
	}
	newer := older
	newer.ID = "r-2"
	newer.Date = older.Date.Add(time.Hour)
	newer.Status = entities.PaymentReceiptApproved
	newer.ProviderPayloadRaw = []byte(`{"id":"1"}`)

	_, err := repo.Create(ctx, older)
	require.NoError(t, err)
	_, err = repo.Create(ctx, newer)
	require.NoError(t, err)

	list, err := repo.ListByJobID(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "r-2", list[0].ID)
	assert.Equal(t, entities.PaymentReceiptApproved, list[0].Status)
	assert.JSONEq(t, `{"id":"1"}`, string(list[0].ProviderPayloadRaw))
	assert.True(t, list[1].Amount.Equal(decimal.NewFromInt(150)))

	empty, err := repo.ListByJobID(ctx, 8)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
