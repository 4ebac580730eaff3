package ports

import (
	"context"
	"time"

	"github.com/poyrazK/zonesync/internal/core/domain"
)

// TransferTransport runs a zone transfer for one target and returns the raw
// text transcript. On failure it returns whatever output was captured together
// with the error.
type TransferTransport interface {
	Transfer(ctx context.Context, target domain.Target) (string, error)
}

// UpdateTransport submits one generated update script as a single transaction,
// authenticated via the caller-supplied key reference. It returns the captured
// output in both the success and failure case.
type UpdateTransport interface {
	Submit(ctx context.Context, keyFile string, script string) (string, error)
}

// TranscriptCache stores raw transcripts between passes, keyed by target.
type TranscriptCache interface {
	Get(ctx context.Context, target domain.Target) (string, bool)
	Set(ctx context.Context, target domain.Target, transcript string, ttl time.Duration)
}

// AuditRepository persists reconciliation pass outcomes.
type AuditRepository interface {
	SavePass(ctx context.Context, report *domain.PassReport) error
	ListPasses(ctx context.Context, limit int) ([]domain.PassSummary, error)
	Ping(ctx context.Context) error
}

// Reconciler drives one full reconciliation pass over a set of desired records.
type Reconciler interface {
	Run(ctx context.Context, desired []domain.Record) (*domain.PassReport, error)
}
