// Package transfer implements the zone-transfer transport by driving the dig
// command-line tool.
package transfer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/poyrazK/zonesync/internal/core/domain"
)

// DigAdapter implements ports.TransferTransport by exec'ing
// `dig [@server] axfr <zone> +nostats [+tries=N]` and capturing stdout as the
// transcript.
type DigAdapter struct {
	Binary string // transfer tool, defaults to "dig"
	Tries  int    // retry count passed through as +tries=N; 0 omits the flag

	logger *slog.Logger
}

// NewDigAdapter creates and returns a new DigAdapter instance.
func NewDigAdapter(logger *slog.Logger) *DigAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &DigAdapter{Binary: "dig", logger: logger}
}

// Transfer runs one zone transfer. On a non-zero exit the captured stderr is
// returned alongside the error so the caller can report it.
func (a *DigAdapter) Transfer(ctx context.Context, target domain.Target) (string, error) {
	var args []string
	if target.Server != "" {
		args = append(args, "@"+target.Server)
	}
	args = append(args, "axfr", target.Zone, "+nostats")
	if a.Tries > 0 {
		args = append(args, fmt.Sprintf("+tries=%d", a.Tries))
	}

	a.logger.Debug("running zone transfer", "binary", a.Binary, "args", strings.Join(args, " "))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, a.Binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stderr.String(), fmt.Errorf("%s %s: %w", a.Binary, strings.Join(args, " "), err)
	}
	return stdout.String(), nil
}
