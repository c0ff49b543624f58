package entity

import "fmt"

// PermissionState is the resolved notification permission for an origin.
type PermissionState string

const (
	// PermissionAllow means the origin may show notifications.
	PermissionAllow PermissionState = "allow"

	// PermissionBlock means the origin must not show notifications.
	PermissionBlock PermissionState = "block"

	// PermissionAsk means no per-origin decision exists and the user must be
	// prompted. Ask is never stored per origin; it is the absence of an entry
	// in both origin lists, resolved against the default policy.
	PermissionAsk PermissionState = "ask"
)

// FactoryDefaultPolicy is the default policy for a fresh profile.
const FactoryDefaultPolicy = PermissionAsk

// IsValid reports whether s is one of the three known states.
func (s PermissionState) IsValid() bool {
	switch s {
	case PermissionAllow, PermissionBlock, PermissionAsk:
		return true
	}
	return false
}

// ParsePermissionState converts a string into a PermissionState.
func ParsePermissionState(raw string) (PermissionState, error) {
	s := PermissionState(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown permission state %q", raw)
	}
	return s, nil
}

// NormalizePolicy maps a stored default-policy value to a valid state.
// Unset or unknown values resolve to the factory default, so a profile that
// never configured a policy and one that explicitly chose "ask" behave the
// same way.
func NormalizePolicy(raw string) PermissionState {
	s := PermissionState(raw)
	if !s.IsValid() {
		return FactoryDefaultPolicy
	}
	return s
}

// DecisionDelta reports which origin lists a recorded decision actually
// changed, so callers only propagate deltas that matter.
type DecisionDelta struct {
	AllowedChanged bool
	DeniedChanged  bool
}

// Changed reports whether the decision changed either list.
func (d DecisionDelta) Changed() bool {
	return d.AllowedChanged || d.DeniedChanged
}
