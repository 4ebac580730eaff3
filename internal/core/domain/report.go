package domain

import "time"

// RecordResult is the outcome of reconciling one desired record.
type RecordResult struct {
	Name    string
	Applied []Operation // operations submitted successfully; empty when in sync
	Err     error       // per-record failure, nil on success
}

// PassReport is the complete outcome of one reconciliation pass. Per-target and
// per-record errors are collected here rather than raised immediately, so a
// caller managing many records gets a full picture of partial failure. Nothing
// in a report is fatal to the process; the caller decides what fails the run.
type PassReport struct {
	ID            string
	StartedAt     time.Time
	FinishedAt    time.Time
	Targets       []Target
	Results       []RecordResult
	Errors        []error
	ParseWarnings int
}

// Failed reports whether any target or record error was collected.
func (r *PassReport) Failed() bool {
	return len(r.Errors) > 0
}

// AppliedOperations counts the update operations submitted across all records.
func (r *PassReport) AppliedOperations() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Applied)
	}
	return n
}

// PassSummary is the persisted digest of one pass, as read back from the audit
// journal.
type PassSummary struct {
	ID          string
	StartedAt   time.Time
	FinishedAt  time.Time
	TargetCount int
	RecordCount int
	ErrorCount  int
}
