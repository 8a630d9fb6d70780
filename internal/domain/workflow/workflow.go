// Package workflow holds the fixed, linear job lifecycle:
//
//	Estimate Created -> Estimate Sent -> Approved -> In Progress -> Completed -> Invoiced -> Paid
//
// Every function here is pure. The job use case re-validates with these
// functions before each write; callers outside it use them only to decide
// what to offer.
package workflow

import (
	"fmt"

	"jobledger/internal/domain/entities"
)

var (
	InitialStatus  = entities.JobStatusEstimateCreated
	TerminalStatus = entities.JobStatusPaid
)

var dateFields = map[entities.JobStatus]entities.DateField{
	entities.JobStatusEstimateCreated: entities.DateFieldEstimate,
	entities.JobStatusEstimateSent:    entities.DateFieldNone,
	entities.JobStatusApproved:        entities.DateFieldApproval,
	entities.JobStatusInProgress:      entities.DateFieldStart,
	entities.JobStatusCompleted:       entities.DateFieldCompletion,
	entities.JobStatusInvoiced:        entities.DateFieldInvoice,
	entities.JobStatusPaid:            entities.DateFieldPayment,
}

// Decision is the outcome of evaluating a requested transition.
type Decision struct {
	Legal     bool
	DateField entities.DateField
}

// NextStatus returns the immediate successor of s, or false for Paid and invalid values.
func NextStatus(s entities.JobStatus) (entities.JobStatus, bool) {
	if !s.Valid() || s == TerminalStatus {
		return 0, false
	}
	return s + 1, true
}

// CanTransitionTo reports whether requested is the immediate successor of current.
func CanTransitionTo(current, requested entities.JobStatus) bool {
	next, ok := NextStatus(current)
	return ok && requested == next
}

// CanApprove reports whether an estimate may be approved from current. Approval
// may skip "Estimate Sent".
func CanApprove(current entities.JobStatus) bool {
	return current == entities.JobStatusEstimateCreated || current == entities.JobStatusEstimateSent
}

// DateFieldFor returns the milestone field stamped on entering s.
func DateFieldFor(s entities.JobStatus) entities.DateField {
	return dateFields[s]
}

// Transition evaluates current -> requested under the strict successor rule.
func Transition(current, requested entities.JobStatus) Decision {
	if !CanTransitionTo(current, requested) {
		return Decision{}
	}
	return Decision{Legal: true, DateField: DateFieldFor(requested)}
}

// Approval evaluates a transition into Approved, which also accepts Estimate Created.
func Approval(current entities.JobStatus) Decision {
	if !CanApprove(current) {
		return Decision{}
	}
	return Decision{Legal: true, DateField: entities.DateFieldApproval}
}

func CanEditJob(s entities.JobStatus) bool {
	return IsEstimate(s)
}

func CanDeleteJob(s entities.JobStatus) bool {
	return IsEstimate(s)
}

// CanEditNotes reports whether notes may still change. Paid jobs are closed.
func CanEditNotes(s entities.JobStatus) bool {
	return s.Valid() && !IsPaid(s)
}

// TransitionMessage is the user facing text for an illegal transition.
func TransitionMessage(current, requested entities.JobStatus) string {
	return fmt.Sprintf("Cannot transition from '%s' to '%s'. Status must progress in order.", current, requested)
}
