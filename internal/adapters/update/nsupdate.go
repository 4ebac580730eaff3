// Package update implements the dynamic-update transport by driving the
// nsupdate command-line tool.
package update

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// NsupdateAdapter implements ports.UpdateTransport by exec'ing nsupdate and
// feeding it the generated script on stdin. Each Submit is one process
// invocation, so one record's operations always commit as one transaction.
type NsupdateAdapter struct {
	Binary string // update tool, defaults to "nsupdate"

	logger *slog.Logger
}

// NewNsupdateAdapter creates and returns a new NsupdateAdapter instance.
func NewNsupdateAdapter(logger *slog.Logger) *NsupdateAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &NsupdateAdapter{Binary: "nsupdate", logger: logger}
}

// Submit runs the update tool with the script on stdin. Stdout and stderr are
// captured interleaved and returned in both the success and failure case.
func (a *NsupdateAdapter) Submit(ctx context.Context, keyFile string, script string) (string, error) {
	var args []string
	if keyFile != "" {
		args = append(args, "-k", keyFile)
	}

	a.logger.Debug("running dynamic update", "binary", a.Binary, "key", keyFile)

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, a.Binary, args...)
	cmd.Stdin = strings.NewReader(script)
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return out.String(), fmt.Errorf("%s: %w", a.Binary, err)
	}
	return out.String(), nil
}
