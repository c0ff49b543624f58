// Package cache provides the read-optimized mirror of notification
// permission state consulted off the control context.
package cache

import (
	"sort"
	"sync"

	"github.com/bnema/webnotify/internal/domain/entity"
)

// Permissions is an in-memory snapshot of the allowed/denied origin sets and
// the default policy. It is read from the dispatch side and written only by
// the sync channel consumer; it never touches the persistent store.
//
// Until the first full snapshot arrives the cache is uninitialized and every
// query answers ask. Under-permissioning is safe; over-permissioning is not.
type Permissions struct {
	mu            sync.RWMutex
	allowed       map[entity.Origin]struct{}
	denied        map[entity.Origin]struct{}
	defaultPolicy entity.PermissionState
	initialized   bool
}

// NewPermissions creates an empty, uninitialized cache.
func NewPermissions() *Permissions {
	return &Permissions{
		allowed:       make(map[entity.Origin]struct{}),
		denied:        make(map[entity.Origin]struct{}),
		defaultPolicy: entity.FactoryDefaultPolicy,
	}
}

// Query resolves the permission state for origin: allow if in the allowed
// set, block if in the denied set, otherwise the default policy. Queries
// against an uninitialized cache answer ask.
func (c *Permissions) Query(origin entity.Origin) entity.PermissionState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.initialized {
		return entity.PermissionAsk
	}
	if _, ok := c.allowed[origin]; ok {
		return entity.PermissionAllow
	}
	if _, ok := c.denied[origin]; ok {
		return entity.PermissionBlock
	}
	return c.defaultPolicy
}

// Initialized reports whether the first full snapshot has been applied.
func (c *Permissions) Initialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initialized
}

// ApplyFullSnapshot replaces both origin sets and the default policy
// atomically and marks the cache initialized.
func (c *Permissions) ApplyFullSnapshot(allowed, denied []entity.Origin, policy entity.PermissionState) {
	allowedSet := make(map[entity.Origin]struct{}, len(allowed))
	for _, o := range allowed {
		allowedSet[o] = struct{}{}
	}
	deniedSet := make(map[entity.Origin]struct{}, len(denied))
	for _, o := range denied {
		deniedSet[o] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.allowed = allowedSet
	c.denied = deniedSet
	c.defaultPolicy = policy
	c.initialized = true
}

// ApplyIncrementalAllow inserts origin into the allowed set and removes it
// from the denied set if present.
func (c *Permissions) ApplyIncrementalAllow(origin entity.Origin) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.denied, origin)
	c.allowed[origin] = struct{}{}
}

// ApplyIncrementalDeny inserts origin into the denied set and removes it
// from the allowed set if present.
func (c *Permissions) ApplyIncrementalDeny(origin entity.Origin) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.allowed, origin)
	c.denied[origin] = struct{}{}
}

// ApplyDefaultPolicy replaces the default policy only.
func (c *Permissions) ApplyDefaultPolicy(policy entity.PermissionState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defaultPolicy = policy
}

// Snapshot returns the current sets (sorted) and default policy. Intended for
// diagnostics and tests.
func (c *Permissions) Snapshot() (allowed, denied []entity.Origin, policy entity.PermissionState) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	allowed = sortedOrigins(c.allowed)
	denied = sortedOrigins(c.denied)
	return allowed, denied, c.defaultPolicy
}

func sortedOrigins(set map[entity.Origin]struct{}) []entity.Origin {
	out := make([]entity.Origin, 0, len(set))
	for o := range set {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
