package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poyrazK/zonesync/internal/core/domain"
	"github.com/poyrazK/zonesync/internal/core/ports"
	"github.com/poyrazK/zonesync/internal/infrastructure/metrics"
)

// Executor serializes one record's plan into the update transport's script
// syntax and submits it as a single transaction.
type Executor struct {
	update ports.UpdateTransport
	logger *slog.Logger
}

// NewExecutor creates and returns a new Executor instance.
func NewExecutor(update ports.UpdateTransport, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{update: update, logger: logger}
}

// BuildScript renders a plan in the update transport's line grammar:
//
//	server <server>        (only when the record names one)
//	update add|delete <name> <ttl> <type> <value>
//	send
//
// All of a record's operations belong to one script with a single trailing
// send, so they commit as one transaction. TXT values are double-quoted here
// and nowhere else.
func BuildScript(server string, plan *domain.Plan) string {
	var b strings.Builder
	if server != "" {
		fmt.Fprintf(&b, "server %s\n", server)
	}
	for _, op := range plan.Ops {
		fmt.Fprintf(&b, "update %s %s %d %s %s\n", op.Action, op.Name, op.TTL, op.Type, quoteValue(op.Type, op.Value))
	}
	b.WriteString("send\n")
	return b.String()
}

func quoteValue(t domain.RecordType, v string) string {
	if t == domain.TypeTXT {
		return "\"" + v + "\""
	}
	return v
}

// Flush submits the plan. A transport failure is returned as an UpdateError
// carrying the submitted script and captured output; it is scoped to this one
// record and must not abort reconciliation of others.
func (e *Executor) Flush(ctx context.Context, plan *domain.Plan) error {
	if plan.Empty() {
		return nil
	}
	rec := plan.Record
	script := BuildScript(rec.Server, plan)

	e.logger.Debug("submitting update script", "name", rec.Name, "operations", len(plan.Ops))
	out, err := e.update.Submit(ctx, rec.KeyFile, script)
	if err != nil {
		for _, op := range plan.Ops {
			metrics.UpdateOperationsTotal.WithLabelValues(string(op.Action), "error").Inc()
		}
		return &domain.UpdateError{Name: rec.Name, Script: script, Output: out, Err: err}
	}

	for _, op := range plan.Ops {
		metrics.UpdateOperationsTotal.WithLabelValues(string(op.Action), "ok").Inc()
	}
	return nil
}
