// Package config loads the desired-state manifest that declares which records
// zonesync reconciles.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/poyrazK/zonesync/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// Defaults apply to every record that omits the corresponding field.
type Defaults struct {
	Zone    string `yaml:"zone"`
	Server  string `yaml:"server"`
	TTL     uint32 `yaml:"ttl"`
	KeyFile string `yaml:"keyfile"`
}

// RecordSpec is one declared record in the manifest.
type RecordSpec struct {
	Name    string   `yaml:"name"`
	Zone    string   `yaml:"zone"`
	Server  string   `yaml:"server"`
	TTL     uint32   `yaml:"ttl"`
	Type    string   `yaml:"type"`
	Content []string `yaml:"content"`
	Ensure  string   `yaml:"ensure"`
	KeyFile string   `yaml:"keyfile"`
}

// Manifest is the desired-state declaration for one reconciliation run.
type Manifest struct {
	Defaults Defaults     `yaml:"defaults"`
	Records  []RecordSpec `yaml:"records"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// DesiredRecords applies the manifest defaults and converts every declaration
// into a validated domain record. The first invalid declaration fails the
// whole load: a half-read manifest must never drive updates.
func (m *Manifest) DesiredRecords() ([]domain.Record, error) {
	records := make([]domain.Record, 0, len(m.Records))

	for i, spec := range m.Records {
		rec := domain.Record{
			Name:    strings.TrimSuffix(spec.Name, "."),
			TTL:     spec.TTL,
			Class:   "IN",
			Type:    domain.RecordType(strings.ToUpper(spec.Type)),
			Content: trimDots(spec.Content),
			Ensure:  domain.Ensure(spec.Ensure),
			Zone:    spec.Zone,
			Server:  spec.Server,
			KeyFile: spec.KeyFile,
		}
		if rec.Ensure == "" {
			rec.Ensure = domain.EnsurePresent
		}
		if rec.Zone == "" {
			rec.Zone = m.Defaults.Zone
		}
		if rec.Server == "" {
			rec.Server = m.Defaults.Server
		}
		if rec.TTL == 0 {
			rec.TTL = m.Defaults.TTL
		}
		if rec.KeyFile == "" {
			rec.KeyFile = m.Defaults.KeyFile
		}

		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, spec.Name, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func trimDots(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSuffix(v, ".")
	}
	return out
}
