package enums

import (
	"fmt"
	"strings"
)

// EntityStatus is the single visibility state shared by all catalog entities.
type EntityStatus string

const (
	EntityStatusActive   EntityStatus = "active"
	EntityStatusInactive EntityStatus = "inactive"
)

var validEntityStatuses = []EntityStatus{EntityStatusActive, EntityStatusInactive}

// String implements fmt.Stringer.
func (s EntityStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known EntityStatus.
func (s EntityStatus) IsValid() bool {
	for _, candidate := range validEntityStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// Toggle returns the opposite status.
func (s EntityStatus) Toggle() EntityStatus {
	if s == EntityStatusActive {
		return EntityStatusInactive
	}
	return EntityStatusActive
}

// ParseEntityStatus converts raw input into an EntityStatus. Input is
// case-folded so legacy payloads sending "Active"/"Inactive" keep working.
func ParseEntityStatus(value string) (EntityStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validEntityStatuses {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid status %q", value)
}
