package entities

import (
	"fmt"
	"strings"
)

// JobStatus is the lifecycle stage of a job. Values are declared in lifecycle order,
// so comparing two statuses compares their position in the workflow.
type JobStatus int

const (
	JobStatusEstimateCreated JobStatus = iota + 1
	JobStatusEstimateSent
	JobStatusApproved
	JobStatusInProgress
	JobStatusCompleted
	JobStatusInvoiced
	JobStatusPaid
)

var jobStatusLabels = map[JobStatus]string{
	JobStatusEstimateCreated: "Estimate Created",
	JobStatusEstimateSent:    "Estimate Sent",
	JobStatusApproved:        "Approved",
	JobStatusInProgress:      "In Progress",
	JobStatusCompleted:       "Completed",
	JobStatusInvoiced:        "Invoiced",
	JobStatusPaid:            "Paid",
}

// JobStatuses lists every status in lifecycle order.
func JobStatuses() []JobStatus {
	return []JobStatus{
		JobStatusEstimateCreated,
		JobStatusEstimateSent,
		JobStatusApproved,
		JobStatusInProgress,
		JobStatusCompleted,
		JobStatusInvoiced,
		JobStatusPaid,
	}
}

func (s JobStatus) Valid() bool {
	_, ok := jobStatusLabels[s]
	return ok
}

func (s JobStatus) String() string {
	if label, ok := jobStatusLabels[s]; ok {
		return label
	}
	return fmt.Sprintf("JobStatus(%d)", int(s))
}

// Slug is the snake_case form used in query strings.
func (s JobStatus) Slug() string {
	return strings.ReplaceAll(strings.ToLower(s.String()), " ", "_")
}

// ParseJobStatus accepts either the label ("Estimate Sent") or the slug ("estimate_sent").
func ParseJobStatus(raw string) (JobStatus, error) {
	v := strings.TrimSpace(raw)
	for _, s := range JobStatuses() {
		if strings.EqualFold(v, s.String()) || strings.EqualFold(v, s.Slug()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown job status %q", raw)
}

func (s JobStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid job status %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *JobStatus) UnmarshalText(b []byte) error {
	parsed, err := ParseJobStatus(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
