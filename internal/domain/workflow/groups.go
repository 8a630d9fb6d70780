package workflow

import (
	"fmt"
	"strings"

	"jobledger/internal/domain/entities"
)

// Group is a named set of statuses. Queries and reports must select statuses
// through a Group instead of listing them inline.
type Group string

const (
	GroupAll       Group = "all"
	GroupEstimates Group = "estimates"
	GroupActive    Group = "active"
	GroupInvoiced  Group = "invoiced"
	GroupPaid      Group = "paid"
)

func IsEstimate(s entities.JobStatus) bool {
	return s == entities.JobStatusEstimateCreated || s == entities.JobStatusEstimateSent
}

// IsActive covers approved work that has not been invoiced yet.
func IsActive(s entities.JobStatus) bool {
	return s >= entities.JobStatusApproved && s <= entities.JobStatusCompleted
}

// IsInvoiced is true for invoices awaiting payment.
func IsInvoiced(s entities.JobStatus) bool {
	return s == entities.JobStatusInvoiced
}

func IsPaid(s entities.JobStatus) bool {
	return s == entities.JobStatusPaid
}

var groupPredicates = map[Group]func(entities.JobStatus) bool{
	GroupAll:       entities.JobStatus.Valid,
	GroupEstimates: IsEstimate,
	GroupActive:    IsActive,
	GroupInvoiced:  IsInvoiced,
	GroupPaid:      IsPaid,
}

// StatusesIn returns the statuses of g in lifecycle order.
func StatusesIn(g Group) []entities.JobStatus {
	pred, ok := groupPredicates[g]
	if !ok {
		return nil
	}
	var out []entities.JobStatus
	for _, s := range entities.JobStatuses() {
		if pred(s) {
			out = append(out, s)
		}
	}
	return out
}

// ParseGroup maps a query value to a Group; the empty string means GroupAll.
func ParseGroup(raw string) (Group, error) {
	v := Group(strings.ToLower(strings.TrimSpace(raw)))
	if v == "" {
		return GroupAll, nil
	}
	if _, ok := groupPredicates[v]; !ok {
		return "", fmt.Errorf("unknown status group %q", raw)
	}
	return v, nil
}
