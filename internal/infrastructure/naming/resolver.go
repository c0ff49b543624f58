// Package naming resolves origins to the names shown in prompts and
// notifications.
package naming

import (
	"context"

	"github.com/bnema/webnotify/internal/application/port"
	"github.com/bnema/webnotify/internal/domain/entity"
)

// ExtensionNameLookup answers the human-readable name for an extension
// origin, or "" when the origin is not a known extension.
type ExtensionNameLookup func(origin entity.Origin) string

const nameCacheSize = 128

// Resolver maps an origin to its display name. Extension origins resolve
// through the lookup; everything else shows the origin host. Resolved names
// are memoized per origin.
type Resolver struct {
	lookup ExtensionNameLookup
	memo   *nameCache
}

// NewResolver creates a resolver. lookup may be nil when no extension
// registry is available.
func NewResolver(lookup ExtensionNameLookup) *Resolver {
	return &Resolver{
		lookup: lookup,
		memo:   newNameCache(nameCacheSize),
	}
}

// DisplayNameForOrigin returns the name to present for origin.
func (r *Resolver) DisplayNameForOrigin(_ context.Context, origin entity.Origin) string {
	if name, ok := r.memo.get(origin); ok {
		return name
	}
	name := r.resolve(origin)
	r.memo.set(origin, name)
	return name
}

func (r *Resolver) resolve(origin entity.Origin) string {
	if r.lookup != nil {
		if name := r.lookup(origin); name != "" {
			return name
		}
	}
	if host := origin.Host(); host != "" {
		return host
	}
	return string(origin)
}

var _ port.DisplayNameResolver = (*Resolver)(nil)
