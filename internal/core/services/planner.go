package services

import (
	"slices"

	"github.com/poyrazK/zonesync/internal/core/domain"
)

// BuildPlan computes the ordered operations that converge one desired record,
// given its matching live record (or nil when the name is not live).
//
// An existing record being changed is always removed first, one delete per
// previously-live value under its previously-live type, before the new values
// are added. This delete-before-add order holds even for a pure TTL or content
// change, so no stale value lingers under an incompatible old type.
func BuildPlan(desired *domain.Record, live *domain.Record) *domain.Plan {
	plan := &domain.Plan{Record: desired}

	if desired.Ensure == domain.EnsureAbsent {
		if live == nil {
			// Nothing live under this name; deleting would be a no-op.
			return plan
		}
		values := desired.Content
		ttl := live.TTL
		if len(live.OldContent) > 0 {
			values = live.OldContent
		}
		for _, v := range values {
			plan.Ops = append(plan.Ops, domain.Operation{
				Action: domain.ActionDelete,
				Name:   desired.Name,
				TTL:    ttl,
				Type:   desired.Type,
				Value:  v,
			})
		}
		return plan
	}

	if upToDate(desired, live) {
		return plan
	}

	addTTL := desired.TTL
	if live != nil {
		if addTTL == 0 {
			addTTL = live.TTL
		}
		for _, v := range live.OldContent {
			plan.Ops = append(plan.Ops, domain.Operation{
				Action: domain.ActionDelete,
				Name:   desired.Name,
				TTL:    live.TTL,
				Type:   live.OldType,
				Value:  v,
			})
		}
	}
	for _, v := range desired.Content {
		plan.Ops = append(plan.Ops, domain.Operation{
			Action: domain.ActionAdd,
			Name:   desired.Name,
			TTL:    addTTL,
			Type:   desired.Type,
			Value:  v,
		})
	}

	return plan
}

// upToDate reports whether the live record already matches the desired one, in
// which case no operations are needed. A desired TTL of zero means "keep
// whatever is live".
func upToDate(desired *domain.Record, live *domain.Record) bool {
	if live == nil {
		return false
	}
	if live.OldType != desired.Type {
		return false
	}
	if desired.TTL != 0 && desired.TTL != live.TTL {
		return false
	}
	return slices.Equal(live.OldContent, desired.Content)
}
