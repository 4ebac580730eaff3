package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/poyrazK/zonesync/internal/axfr"
	"github.com/poyrazK/zonesync/internal/core/domain"
	"github.com/poyrazK/zonesync/internal/core/ports"
	"github.com/poyrazK/zonesync/internal/infrastructure/metrics"
)

// Reconciler drives one full pass: resolve targets, transfer and parse zones,
// plan each desired record against the live index, flush the plans and collect
// every per-target and per-record error into the report.
type Reconciler struct {
	// Cache, when set, serves transcripts between passes. Audit, when set,
	// receives the finished report. Both are optional.
	Cache    ports.TranscriptCache
	Audit    ports.AuditRepository
	CacheTTL time.Duration

	transfer ports.TransferTransport
	executor *Executor
	parser   *axfr.Parser
	logger   *slog.Logger
}

// NewReconciler creates a Reconciler using the given transports.
func NewReconciler(transfer ports.TransferTransport, update ports.UpdateTransport, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		CacheTTL: 5 * time.Minute,
		transfer: transfer,
		executor: NewExecutor(update, logger),
		parser:   axfr.NewParser(logger),
		logger:   logger,
	}
}

// Run executes one reconciliation pass over the desired records. The returned
// report carries every collected error; the error return is non-nil only when
// the context is cancelled mid-pass.
func (r *Reconciler) Run(ctx context.Context, desired []domain.Record) (*domain.PassReport, error) {
	report := &domain.PassReport{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
	}
	defer func() {
		report.FinishedAt = time.Now()
		metrics.PassDuration.Observe(report.FinishedAt.Sub(report.StartedAt).Seconds())
	}()

	targets, errs := ResolveTargets(desired)
	report.Targets = targets
	report.Errors = append(report.Errors, errs...)

	index, failed := r.buildIndex(ctx, targets, report)
	if err := ctx.Err(); err != nil {
		return report, err
	}

	for i := range desired {
		rec := &desired[i]
		if rec.Zone == "" {
			// Already reported by ResolveTargets.
			continue
		}
		if terr, ok := failed[domain.Target{Zone: rec.Zone, Server: rec.Server}]; ok {
			// The transfer for this record's target failed; live state is
			// unknown, so planning would risk duplicate adds. The record
			// still gets a result entry so the report accounts for it.
			metrics.RecordsReconciledTotal.WithLabelValues("skipped").Inc()
			report.Results = append(report.Results, domain.RecordResult{Name: rec.Name, Err: terr})
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}

		plan := BuildPlan(rec, index.Match(rec.Name))
		if plan.Empty() {
			r.logger.Debug("record already in sync", "name", rec.Name, "type", rec.Type)
			metrics.RecordsReconciledTotal.WithLabelValues("in_sync").Inc()
			report.Results = append(report.Results, domain.RecordResult{Name: rec.Name})
			continue
		}

		if err := r.executor.Flush(ctx, plan); err != nil {
			r.logger.Error("record flush failed", "name", rec.Name, "error", err)
			metrics.RecordsReconciledTotal.WithLabelValues("failed").Inc()
			report.Errors = append(report.Errors, err)
			report.Results = append(report.Results, domain.RecordResult{Name: rec.Name, Err: err})
			continue
		}

		r.logger.Info("record reconciled", "name", rec.Name, "type", rec.Type, "operations", len(plan.Ops))
		metrics.RecordsReconciledTotal.WithLabelValues("applied").Inc()
		report.Results = append(report.Results, domain.RecordResult{Name: rec.Name, Applied: plan.Ops})
	}

	if r.Audit != nil {
		if err := r.Audit.SavePass(ctx, report); err != nil {
			r.logger.Error("saving pass audit failed", "pass_id", report.ID, "error", err)
		}
	}

	return report, nil
}

// buildIndex transfers and parses every target, merging the results into one
// live-record index. Targets whose transfer or parse failed are reported and
// returned in the failed map, keyed to the scoping error, so their records are
// skipped, not misplanned.
func (r *Reconciler) buildIndex(ctx context.Context, targets []domain.Target, report *domain.PassReport) (*axfr.Index, map[domain.Target]error) {
	index := axfr.NewIndex()
	failed := make(map[domain.Target]error)

	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			failed[t] = &domain.TransferError{Target: t, Err: err}
			continue
		}

		transcript, err := r.fetchTranscript(ctx, t)
		if err != nil {
			r.logger.Error("zone transfer failed", "target", t.String(), "error", err)
			metrics.TransfersTotal.WithLabelValues("error").Inc()
			report.Errors = append(report.Errors, err)
			failed[t] = err
			continue
		}

		res, err := r.parser.Parse(strings.NewReader(transcript))
		if err != nil {
			r.logger.Error("transcript unreadable", "target", t.String(), "error", err)
			metrics.TransfersTotal.WithLabelValues("error").Inc()
			terr := &domain.TransferError{Target: t, Err: err}
			report.Errors = append(report.Errors, terr)
			failed[t] = terr
			continue
		}

		metrics.TransfersTotal.WithLabelValues("ok").Inc()
		if n := len(res.Warnings); n > 0 {
			metrics.ParseWarningsTotal.Add(float64(n))
			report.ParseWarnings += n
		}
		r.logger.Info("zone transferred", "target", t.String(), "records", len(res.Records), "skipped_lines", len(res.Warnings))
		index.Add(res.Records...)
	}

	return index, failed
}

func (r *Reconciler) fetchTranscript(ctx context.Context, t domain.Target) (string, error) {
	if r.Cache != nil {
		if transcript, ok := r.Cache.Get(ctx, t); ok {
			r.logger.Debug("transcript cache hit", "target", t.String())
			metrics.TranscriptCacheOps.WithLabelValues("hit").Inc()
			return transcript, nil
		}
		metrics.TranscriptCacheOps.WithLabelValues("miss").Inc()
	}

	out, err := r.transfer.Transfer(ctx, t)
	if err != nil {
		return "", &domain.TransferError{Target: t, Output: out, Err: err}
	}

	if r.Cache != nil {
		r.Cache.Set(ctx, t, out, r.CacheTTL)
	}
	return out, nil
}
