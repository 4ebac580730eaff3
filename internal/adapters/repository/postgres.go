// Package repository persists reconciliation pass outcomes to PostgreSQL.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/poyrazK/zonesync/internal/core/domain"
)

// PostgresRepository implements ports.AuditRepository using PostgreSQL.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates and returns a new PostgresRepository instance.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// SavePass stores one pass summary and its per-record outcomes atomically.
func (r *PostgresRepository) SavePass(ctx context.Context, report *domain.PassReport) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin audit transaction: %w", err)
	}
	defer func() {
		if errRb := tx.Rollback(); errRb != nil && !errors.Is(errRb, sql.ErrTxDone) {
			log.Printf("failed to roll back audit transaction: %v", errRb)
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sync_passes (id, started_at, finished_at, target_count, record_count, error_count, parse_warnings)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		report.ID, report.StartedAt, report.FinishedAt,
		len(report.Targets), len(report.Results), len(report.Errors), report.ParseWarnings)
	if err != nil {
		return fmt.Errorf("insert pass %s: %w", report.ID, err)
	}

	for _, res := range report.Results {
		var errText sql.NullString
		if res.Err != nil {
			errText = sql.NullString{String: res.Err.Error(), Valid: true}
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO sync_record_results (id, pass_id, name, operation_count, error)
			 VALUES ($1, $2, $3, $4, $5)`,
			uuid.New().String(), report.ID, res.Name, len(res.Applied), errText)
		if err != nil {
			return fmt.Errorf("insert record result for %s: %w", res.Name, err)
		}
	}

	return tx.Commit()
}

// ListPasses returns the most recent pass summaries, newest first.
func (r *PostgresRepository) ListPasses(ctx context.Context, limit int) ([]domain.PassSummary, error) {
	rows, errQuery := r.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, target_count, record_count, error_count
		 FROM sync_passes ORDER BY started_at DESC LIMIT $1`, limit)
	if errQuery != nil {
		return nil, errQuery
	}
	defer func() {
		if errClose := rows.Close(); errClose != nil {
			log.Printf("failed to close rows: %v", errClose)
		}
	}()

	var passes []domain.PassSummary
	for rows.Next() {
		var p domain.PassSummary
		if errScan := rows.Scan(&p.ID, &p.StartedAt, &p.FinishedAt, &p.TargetCount, &p.RecordCount, &p.ErrorCount); errScan != nil {
			return nil, errScan
		}
		passes = append(passes, p)
	}
	return passes, rows.Err()
}

// Ping checks database connectivity.
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
