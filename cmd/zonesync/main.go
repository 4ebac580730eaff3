package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/poyrazK/zonesync/internal/adapters/cache"
	"github.com/poyrazK/zonesync/internal/adapters/repository"
	"github.com/poyrazK/zonesync/internal/adapters/transfer"
	"github.com/poyrazK/zonesync/internal/adapters/update"
	"github.com/poyrazK/zonesync/internal/config"
	"github.com/poyrazK/zonesync/internal/core/domain"
	"github.com/poyrazK/zonesync/internal/core/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	manifestPath := flag.String("manifest", "zonesync.yaml", "Path to the desired-state manifest")
	metricsAddr := flag.String("metrics-addr", "", "Expose prometheus metrics on this address (empty disables)")
	cacheTTL := flag.Duration("cache-ttl", 5*time.Minute, "How long zone transcripts stay cached")
	noCache := flag.Bool("no-cache", false, "Bypass the transcript cache and always re-transfer")
	tries := flag.Int("tries", 0, "Retry count passed to the transfer tool (0 omits the flag)")
	strict := flag.Bool("strict", false, "Exit non-zero when any record fails to reconcile")
	timeout := flag.Duration("timeout", 10*time.Minute, "Overall deadline for the reconciliation pass")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	transferTool := transfer.NewDigAdapter(logger)
	transferTool.Tries = *tries
	updateTool := update.NewNsupdateAdapter(logger)

	rec := services.NewReconciler(transferTool, updateTool, logger)
	rec.CacheTTL = *cacheTTL

	if addr := os.Getenv("REDIS_ADDR"); addr != "" && !*noCache {
		rec.Cache = cache.NewRedisCache(addr, os.Getenv("REDIS_PASSWORD"), 0)
	}

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		db, err := sql.Open("pgx", dbURL)
		if err != nil {
			log.Fatalf("Unable to connect to database: %v\n", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			fmt.Printf("Warning: Could not ping database: %v\n", err)
		}
		rec.Audit = repository.NewPostgresRepository(db)
	}

	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				logger.Error("metrics listener failed", "addr", *metricsAddr, "error", err)
			}
		}()
	}

	manifest, err := config.Load(*manifestPath)
	if err != nil {
		log.Fatalf("Unable to load manifest: %v\n", err)
	}
	desired, err := manifest.DesiredRecords()
	if err != nil {
		log.Fatalf("Invalid manifest: %v\n", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	report, err := rec.Run(ctx, desired)
	if err != nil {
		log.Fatalf("Reconciliation pass aborted: %v\n", err)
	}

	logger.Info("pass finished",
		"pass_id", report.ID,
		"targets", len(report.Targets),
		"records", len(report.Results),
		"operations", report.AppliedOperations(),
		"parse_warnings", report.ParseWarnings,
		"errors", len(report.Errors))
	for _, e := range report.Errors {
		logger.Error("pass error", "pass_id", report.ID, "error", e)
	}

	os.Exit(exitCode(report, *strict))
}

// exitCode maps a pass report to the process exit status. Collected errors only
// fail the run in strict mode; the pass itself always completes.
func exitCode(report *domain.PassReport, strict bool) int {
	if strict && report.Failed() {
		return 1
	}
	return 0
}
