package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var validLabelRegex = regexp.MustCompile(`^[a-zA-Z0-9_]([a-zA-Z0-9-_]{0,61}[a-zA-Z0-9])?$`)

// ValidateName checks that the provided name is a valid DNS name in canonical
// form (no trailing root dot).
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if strings.HasSuffix(name, ".") {
		return fmt.Errorf("name must not carry a trailing dot")
	}
	if len(name) > 253 {
		return fmt.Errorf("name exceeds 253 characters")
	}
	for _, label := range strings.Split(name, ".") {
		if len(label) > 63 {
			return fmt.Errorf("label '%s' exceeds 63 characters", label)
		}
		if label == "" {
			return fmt.Errorf("name contains empty label")
		}
		if !validLabelRegex.MatchString(label) {
			return fmt.Errorf("label '%s' contains invalid characters or format", label)
		}
	}
	return nil
}

// Validate checks a desired record declaration before it enters planning.
// Live records produced by the transcript parser are not validated this way;
// the parser already skips lines it cannot shape into a record.
func (r *Record) Validate() error {
	if err := ValidateName(r.Name); err != nil {
		return err
	}
	if r.Type == "" {
		return fmt.Errorf("record type cannot be empty")
	}
	switch r.Ensure {
	case EnsurePresent, EnsureAbsent:
	default:
		return fmt.Errorf("ensure must be 'present' or 'absent', got '%s'", r.Ensure)
	}
	if r.Ensure == EnsurePresent && len(r.Content) == 0 {
		return fmt.Errorf("a present record needs at least one content value")
	}
	for _, v := range r.Content {
		if v == "" {
			return fmt.Errorf("record content values cannot be empty")
		}
	}
	return nil
}
