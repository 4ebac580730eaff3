package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransfersTotal tracks zone transfer attempts by outcome
	TransfersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zonesync_transfers_total",
		Help: "Total number of zone transfers attempted",
	}, []string{"result"})

	// ParseWarningsTotal tracks malformed transcript lines skipped by the parser
	ParseWarningsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "zonesync_parse_warnings_total",
		Help: "Total number of malformed transcript lines skipped",
	})

	// UpdateOperationsTotal tracks dynamic-update operations by action and outcome
	UpdateOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zonesync_update_operations_total",
		Help: "Total number of dynamic-update operations submitted",
	}, []string{"action", "result"})

	// RecordsReconciledTotal tracks per-record reconciliation outcomes
	RecordsReconciledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zonesync_records_reconciled_total",
		Help: "Total number of desired records processed, by outcome",
	}, []string{"result"})

	// TranscriptCacheOps tracks transcript cache hits and misses
	TranscriptCacheOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zonesync_transcript_cache_operations_total",
		Help: "Total number of transcript cache hits and misses",
	}, []string{"result"})

	// PassDuration tracks full reconciliation pass duration
	PassDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "zonesync_pass_duration_seconds",
		Help:    "Histogram of reconciliation pass duration",
		Buckets: prometheus.DefBuckets,
	})
)
