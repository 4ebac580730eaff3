package testutil

import (
	"context"
	"errors"
	"time"

	"github.com/poyrazK/zonesync/internal/core/domain"
)

// MockTransferTransport implements ports.TransferTransport for testing.
// Transcripts are keyed by target.String().
type MockTransferTransport struct {
	Transcripts map[string]string
	Fail        map[string]bool
	Calls       []domain.Target
}

func (m *MockTransferTransport) Transfer(_ context.Context, target domain.Target) (string, error) {
	m.Calls = append(m.Calls, target)
	if m.Fail[target.String()] {
		return "; transfer failed", errors.New("transfer failed")
	}
	return m.Transcripts[target.String()], nil
}

// MockUpdateTransport implements ports.UpdateTransport for testing. It records
// every submitted script and key reference.
type MockUpdateTransport struct {
	Scripts []string
	Keys    []string
	Output  string
	Err     error
}

func (m *MockUpdateTransport) Submit(_ context.Context, keyFile string, script string) (string, error) {
	m.Scripts = append(m.Scripts, script)
	m.Keys = append(m.Keys, keyFile)
	return m.Output, m.Err
}

// MockTranscriptCache implements ports.TranscriptCache for testing.
type MockTranscriptCache struct {
	Entries map[string]string
	Hits    int
	Misses  int
	Sets    int
}

func (m *MockTranscriptCache) Get(_ context.Context, target domain.Target) (string, bool) {
	v, ok := m.Entries[target.String()]
	if ok {
		m.Hits++
	} else {
		m.Misses++
	}
	return v, ok
}

func (m *MockTranscriptCache) Set(_ context.Context, target domain.Target, transcript string, _ time.Duration) {
	if m.Entries == nil {
		m.Entries = make(map[string]string)
	}
	m.Entries[target.String()] = transcript
	m.Sets++
}
