package domain

import "fmt"

// TransferError means the zone-transfer transport exited abnormally or produced
// unparsable output for one target. It is scoped to that target: records under
// other targets still reconcile.
type TransferError struct {
	Target Target
	Output string
	Err    error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("zone transfer for %s failed: %v", e.Target, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }

// UpdateError means the dynamic-update transport exited abnormally while
// flushing one record. The submitted script and captured output are retained
// for reporting.
type UpdateError struct {
	Name   string
	Script string
	Output string
	Err    error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("dynamic update for %s failed: %v (output: %s)", e.Name, e.Err, e.Output)
}

func (e *UpdateError) Unwrap() error { return e.Err }

// ParseWarning records one malformed transcript line the parser skipped. It is
// diagnostic only: a warning never fails a pass.
type ParseWarning struct {
	Line   string
	Reason string
}

func (w *ParseWarning) Error() string {
	return fmt.Sprintf("skipped transcript line %q: %s", w.Line, w.Reason)
}

// ResolutionError means a desired record could not be resolved to a transfer
// target, typically because it lacks a zone.
type ResolutionError struct {
	Name   string
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve target for %s: %s", e.Name, e.Reason)
}
