package enums

import "fmt"

// CartOwnerMode selects how cart state is scoped for a deployment: by an
// anonymous server-issued session or by the authenticated user id.
type CartOwnerMode string

const (
	CartOwnerModeSession CartOwnerMode = "session"
	CartOwnerModeUser    CartOwnerMode = "user"
)

var validCartOwnerModes = []CartOwnerMode{CartOwnerModeSession, CartOwnerModeUser}

// String implements fmt.Stringer.
func (m CartOwnerMode) String() string {
	return string(m)
}

// IsValid reports whether the value is a known CartOwnerMode.
func (m CartOwnerMode) IsValid() bool {
	for _, candidate := range validCartOwnerModes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseCartOwnerMode converts raw input into a CartOwnerMode.
func ParseCartOwnerMode(value string) (CartOwnerMode, error) {
	for _, candidate := range validCartOwnerModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cart owner mode %q", value)
}
