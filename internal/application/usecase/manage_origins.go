// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/webnotify/internal/application/port"
	"github.com/bnema/webnotify/internal/domain/entity"
	"github.com/bnema/webnotify/internal/domain/repository"
	"github.com/bnema/webnotify/internal/infrastructure/cache"
	"github.com/bnema/webnotify/internal/logging"
)

// ManageOriginsUseCase owns every mutation of the durable permission state
// and its propagation into the dispatch-side cache. It runs on the control
// context only.
//
// Propagation is explicit: the write path enqueues the exact delta onto the
// sync channel instead of going through a generic change-notification stream,
// so a decision write can never re-trigger a redundant or reordered cache
// update of itself.
type ManageOriginsUseCase struct {
	store   repository.DecisionStore
	profile port.Profile
	view    *cache.Permissions
	sync    *cache.SyncChannel
}

// NewManageOriginsUseCase creates the origin management use case. view is the
// cache fed by sync; for ephemeral profiles it is the only place session
// decisions live, so reads resolve against it instead of the store.
func NewManageOriginsUseCase(
	store repository.DecisionStore,
	profile port.Profile,
	view *cache.Permissions,
	sync *cache.SyncChannel,
) *ManageOriginsUseCase {
	return &ManageOriginsUseCase{
		store:   store,
		profile: profile,
		view:    view,
		sync:    sync,
	}
}

// InitCache ships the initial full snapshot into the cache. For an ephemeral
// profile the snapshot is empty with the factory default policy; the store is
// not touched.
func (uc *ManageOriginsUseCase) InitCache(ctx context.Context) error {
	if uc.profile.IsEphemeral() {
		uc.sync.EnqueueFullSnapshot(nil, nil, entity.FactoryDefaultPolicy)
		return nil
	}
	return uc.rebuildCache(ctx)
}

// GrantPermission records an allow decision for origin and propagates it.
// Ephemeral profiles skip persistence; the decision still reaches the cache
// so it holds for the rest of the session.
func (uc *ManageOriginsUseCase) GrantPermission(ctx context.Context, origin entity.Origin) error {
	return uc.recordDecision(ctx, origin, true)
}

// DenyPermission records a block decision for origin and propagates it.
func (uc *ManageOriginsUseCase) DenyPermission(ctx context.Context, origin entity.Origin) error {
	return uc.recordDecision(ctx, origin, false)
}

func (uc *ManageOriginsUseCase) recordDecision(ctx context.Context, origin entity.Origin, allow bool) error {
	log := logging.FromContext(ctx)

	if !uc.profile.IsEphemeral() {
		delta, err := uc.store.RecordDecision(ctx, origin, allow)
		if err != nil {
			return fmt.Errorf("record decision for %s: %w", origin, err)
		}
		if !delta.Changed() {
			log.Debug().Str("origin", string(origin)).Bool("allow", allow).Msg("decision unchanged")
		}
	}

	// The incremental command also removes the origin from the opposite set,
	// so a single message covers a list move.
	if allow {
		uc.sync.EnqueueAllow(origin)
	} else {
		uc.sync.EnqueueDeny(origin)
	}
	return nil
}

// ContentSetting resolves the authoritative permission state for origin. For
// a persistent profile the store is authoritative and the control context
// reads it instead of the asynchronously updated cache. For an ephemeral
// profile the store holds nothing; the cache view carries the session's
// decisions and answers directly, so an origin granted earlier in the session
// is not asked again.
func (uc *ManageOriginsUseCase) ContentSetting(ctx context.Context, origin entity.Origin) (entity.PermissionState, error) {
	if uc.profile.IsEphemeral() {
		return uc.view.Query(origin), nil
	}

	allowed, err := uc.store.Allowed(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve content setting: %w", err)
	}
	for _, o := range allowed {
		if o == origin {
			return entity.PermissionAllow, nil
		}
	}

	denied, err := uc.store.Denied(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve content setting: %w", err)
	}
	for _, o := range denied {
		if o == origin {
			return entity.PermissionBlock, nil
		}
	}

	return uc.store.DefaultPolicy(ctx)
}

// DefaultPolicy returns the stored default policy. Ephemeral profiles report
// the policy from the session cache view.
func (uc *ManageOriginsUseCase) DefaultPolicy(ctx context.Context) (entity.PermissionState, error) {
	if uc.profile.IsEphemeral() {
		_, _, policy := uc.view.Snapshot()
		return policy, nil
	}
	return uc.store.DefaultPolicy(ctx)
}

// SetDefaultPolicy persists the default policy and propagates it. Ephemeral
// profiles skip persistence but still see the policy in their cache view.
func (uc *ManageOriginsUseCase) SetDefaultPolicy(ctx context.Context, policy entity.PermissionState) error {
	normalized := entity.NormalizePolicy(string(policy))

	if !uc.profile.IsEphemeral() {
		if err := uc.store.SetDefaultPolicy(ctx, normalized); err != nil {
			return fmt.Errorf("set default policy: %w", err)
		}
	}

	uc.sync.EnqueueDefaultPolicy(normalized)
	return nil
}

// Allowed lists the allowed origins. Persistent profiles report the store's
// insertion order; ephemeral profiles report the session cache view, sorted.
func (uc *ManageOriginsUseCase) Allowed(ctx context.Context) ([]entity.Origin, error) {
	if uc.profile.IsEphemeral() {
		allowed, _, _ := uc.view.Snapshot()
		return allowed, nil
	}
	return uc.store.Allowed(ctx)
}

// Denied lists the denied origins, mirroring Allowed's ordering rules.
func (uc *ManageOriginsUseCase) Denied(ctx context.Context) ([]entity.Origin, error) {
	if uc.profile.IsEphemeral() {
		_, denied, _ := uc.view.Snapshot()
		return denied, nil
	}
	return uc.store.Denied(ctx)
}

// ResetOrigin removes origin from whichever list contains it and rebuilds the
// cache snapshot. Resetting an origin that is in neither list is caller
// misuse: logged, no state change.
func (uc *ManageOriginsUseCase) ResetOrigin(ctx context.Context, origin entity.Origin) error {
	log := logging.FromContext(ctx)

	if uc.profile.IsEphemeral() {
		allowed, denied, policy := uc.view.Snapshot()
		keptAllowed, inAllowed := withoutOrigin(allowed, origin)
		keptDenied, inDenied := withoutOrigin(denied, origin)
		if !inAllowed && !inDenied {
			log.Warn().Str("origin", string(origin)).Msg("reset requested for origin that was neither allowed nor denied")
			return nil
		}
		uc.sync.EnqueueFullSnapshot(keptAllowed, keptDenied, policy)
		return nil
	}

	delta, err := uc.store.ResetOrigin(ctx, origin)
	if err != nil {
		return fmt.Errorf("reset origin %s: %w", origin, err)
	}
	if !delta.Changed() {
		log.Warn().Str("origin", string(origin)).Msg("reset requested for origin that was neither allowed nor denied")
		return nil
	}

	// Resets are rare; a full snapshot rebuild is simpler than shipping a
	// dedicated removal command.
	return uc.rebuildCache(ctx)
}

// ResetAll clears both origin lists (default policy untouched) and rebuilds
// the cache snapshot.
func (uc *ManageOriginsUseCase) ResetAll(ctx context.Context) error {
	if uc.profile.IsEphemeral() {
		_, _, policy := uc.view.Snapshot()
		uc.sync.EnqueueFullSnapshot(nil, nil, policy)
		return nil
	}

	if err := uc.store.ResetAll(ctx); err != nil {
		return fmt.Errorf("reset all origins: %w", err)
	}
	return uc.rebuildCache(ctx)
}

func (uc *ManageOriginsUseCase) rebuildCache(ctx context.Context) error {
	allowed, err := uc.store.Allowed(ctx)
	if err != nil {
		return fmt.Errorf("rebuild cache snapshot: %w", err)
	}
	denied, err := uc.store.Denied(ctx)
	if err != nil {
		return fmt.Errorf("rebuild cache snapshot: %w", err)
	}
	policy, err := uc.store.DefaultPolicy(ctx)
	if err != nil {
		return fmt.Errorf("rebuild cache snapshot: %w", err)
	}

	uc.sync.EnqueueFullSnapshot(allowed, denied, policy)
	return nil
}

func withoutOrigin(origins []entity.Origin, origin entity.Origin) ([]entity.Origin, bool) {
	kept := make([]entity.Origin, 0, len(origins))
	found := false
	for _, o := range origins {
		if o == origin {
			found = true
			continue
		}
		kept = append(kept, o)
	}
	return kept, found
}
