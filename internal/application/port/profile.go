package port

import (
	"context"

	"github.com/bnema/webnotify/internal/domain/entity"
)

// Profile answers whether the active profile is ephemeral (private browsing).
// Decisions made in an ephemeral profile are never persisted; they live only
// in that session's cache view.
type Profile interface {
	IsEphemeral() bool
}

// DisplayNameResolver maps an origin to the name shown in prompts and
// notifications. Extension origins resolve to the extension name; everything
// else falls back to the origin host.
type DisplayNameResolver interface {
	DisplayNameForOrigin(ctx context.Context, origin entity.Origin) string
}
