// Package services implements the reconciliation engine: target resolution,
// update planning, script execution and the driver that ties them together.
package services

import (
	"github.com/poyrazK/zonesync/internal/core/domain"
)

// ResolveTargets derives the distinct set of (zone, server) pairs that must be
// transferred for the given desired records. Equal pairs collapse to one; a
// record without a zone yields a ResolutionError and contributes no target.
func ResolveTargets(desired []domain.Record) ([]domain.Target, []error) {
	seen := make(map[domain.Target]struct{})
	var targets []domain.Target
	var errs []error

	for _, rec := range desired {
		if rec.Zone == "" {
			errs = append(errs, &domain.ResolutionError{Name: rec.Name, Reason: "record declares no zone"})
			continue
		}
		t := domain.Target{Zone: rec.Zone, Server: rec.Server}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		targets = append(targets, t)
	}

	return targets, errs
}
