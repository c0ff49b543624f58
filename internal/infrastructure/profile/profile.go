// Package profile provides browsing-profile adapters.
package profile

import "github.com/bnema/webnotify/internal/application/port"

// Static is a profile whose ephemerality is fixed at construction, the way a
// window is either private or not for its whole lifetime.
type Static struct {
	ephemeral bool
}

// NewStatic creates a profile. ephemeral profiles never persist decisions.
func NewStatic(ephemeral bool) *Static {
	return &Static{ephemeral: ephemeral}
}

// IsEphemeral reports whether this is a private profile.
func (p *Static) IsEphemeral() bool {
	return p.ephemeral
}

var _ port.Profile = (*Static)(nil)
