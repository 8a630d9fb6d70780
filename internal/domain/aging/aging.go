// Package aging derives the overdue state of invoices. Results are computed on
// every read and never stored.
package aging

import (
	"math"
	"time"

	"jobledger/internal/domain/entities"
)

const DefaultDueDays = 30

const day = 24 * time.Hour

// Receivables buckets, by days overdue.
const (
	BucketCurrent = "current"
	Bucket1To30   = "1-30"
	Bucket31To60  = "31-60"
	Bucket61To90  = "61-90"
	BucketOver90  = "90+"
)

type Result struct {
	IsOverdue        bool   `json:"is_overdue"`
	DaysOverdue      int    `json:"days_overdue"`
	DaysSinceInvoice int    `json:"days_since_invoice"`
	Bucket           string `json:"bucket,omitempty"`
}

// Calculator evaluates aging against a payment term of DueDays.
type Calculator struct {
	DueDays int
}

func NewCalculator(dueDays int) Calculator {
	if dueDays <= 0 {
		dueDays = DefaultDueDays
	}
	return Calculator{DueDays: dueDays}
}

// Evaluate uses the default 30 day term.
func Evaluate(status entities.JobStatus, invoiceDate, paymentDate *time.Time, now time.Time) Result {
	return NewCalculator(DefaultDueDays).Evaluate(status, invoiceDate, paymentDate, now)
}

// Evaluate reports whether an invoice is overdue at now. Paid jobs and jobs
// without an invoice date are never overdue. paymentDate is accepted for
// completeness; only status decides whether a job is settled. now must be on
// the same basis as invoiceDate (midnight UTC of a calendar day) for the day
// count to be exact.
func (c Calculator) Evaluate(status entities.JobStatus, invoiceDate, paymentDate *time.Time, now time.Time) Result {
	if status == entities.JobStatusPaid || invoiceDate == nil {
		return Result{}
	}

	since := int(math.Floor(float64(now.Sub(*invoiceDate)) / float64(day)))
	res := Result{DaysSinceInvoice: since}
	if since > c.DueDays {
		res.IsOverdue = true
		res.DaysOverdue = since - c.DueDays
	}
	res.Bucket = bucketFor(res.DaysOverdue)
	return res
}

// EvaluateJob is Evaluate applied to a job's fields.
func (c Calculator) EvaluateJob(j entities.Job, now time.Time) Result {
	return c.Evaluate(j.Status, j.InvoiceDate, j.PaymentDate, now)
}

func bucketFor(daysOverdue int) string {
	switch {
	case daysOverdue <= 0:
		return BucketCurrent
	case daysOverdue <= 30:
		return Bucket1To30
	case daysOverdue <= 60:
		return Bucket31To60
	case daysOverdue <= 90:
		return Bucket61To90
	default:
		return BucketOver90
	}
}
