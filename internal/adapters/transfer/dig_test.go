package transfer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poyrazK/zonesync/internal/core/domain"
)

// fakeTool writes an executable shell script standing in for dig.
func fakeTool(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fakedig")
	script := "#!/bin/sh\n" + body
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write fake tool: %v", err)
	}
	return path
}

func TestDigAdapter_Transfer(t *testing.T) {
	a := NewDigAdapter(nil)
	a.Binary = fakeTool(t, `echo "www.example.com.	300	IN	A	10.0.0.1"`)

	out, err := a.Transfer(context.Background(), domain.Target{Zone: "example.com"})
	if err != nil {
		t.Fatalf("Transfer failed: %v", err)
	}
	if !strings.Contains(out, "www.example.com.") {
		t.Errorf("Expected transcript on stdout, got %q", out)
	}
}

func TestDigAdapter_Arguments(t *testing.T) {
	a := NewDigAdapter(nil)
	a.Tries = 3
	a.Binary = fakeTool(t, `echo "$@"`)

	out, err := a.Transfer(context.Background(), domain.Target{Zone: "example.com", Server: "ns1.example.com"})
	if err != nil {
		t.Fatalf("Transfer failed: %v", err)
	}
	want := "@ns1.example.com axfr example.com +nostats +tries=3"
	if strings.TrimSpace(out) != want {
		t.Errorf("Expected args %q, got %q", want, strings.TrimSpace(out))
	}
}

func TestDigAdapter_NoServerOmitsAt(t *testing.T) {
	a := NewDigAdapter(nil)
	a.Binary = fakeTool(t, `echo "$@"`)

	out, err := a.Transfer(context.Background(), domain.Target{Zone: "example.com"})
	if err != nil {
		t.Fatalf("Transfer failed: %v", err)
	}
	if strings.Contains(out, "@") {
		t.Errorf("Expected no @server argument, got %q", out)
	}
}

func TestDigAdapter_FailureReturnsStderr(t *testing.T) {
	a := NewDigAdapter(nil)
	a.Binary = fakeTool(t, "echo 'transfer failed: REFUSED' >&2\nexit 9")

	out, err := a.Transfer(context.Background(), domain.Target{Zone: "example.com"})
	if err == nil {
		t.Fatal("Expected an error for a non-zero exit")
	}
	if !strings.Contains(out, "REFUSED") {
		t.Errorf("Expected captured stderr, got %q", out)
	}
	if !strings.Contains(err.Error(), "exit status 9") {
		t.Errorf("Expected exit status in error, got %v", err)
	}
}
