package repository

import (
	"context"

	"github.com/bnema/webnotify/internal/domain/entity"
)

// DecisionStore defines persistence for notification permission decisions:
// the allowed and denied origin lists plus the profile-wide default policy.
//
// An origin appears in at most one of the two lists at any time; RecordDecision
// maintains that invariant as a single logical update. List order is the
// insertion order and is preserved across reads for stable persistence diffs.
type DecisionStore interface {
	// DefaultPolicy returns the stored default policy, normalized so that an
	// unset value reads as the factory default.
	DefaultPolicy(ctx context.Context) (entity.PermissionState, error)

	// SetDefaultPolicy persists the default policy. Invalid or unset values
	// are normalized to the factory default before writing.
	SetDefaultPolicy(ctx context.Context, policy entity.PermissionState) error

	// Allowed returns the allowed origin list in insertion order.
	Allowed(ctx context.Context) ([]entity.Origin, error)

	// Denied returns the denied origin list in insertion order.
	Denied(ctx context.Context) ([]entity.Origin, error)

	// RecordDecision moves origin into the allowed list and out of the denied
	// list (allow=true), or the reverse. Adding to a list the origin is
	// already in is a no-op for that list. The returned delta reports which
	// lists actually changed; nothing is persisted when neither did.
	RecordDecision(ctx context.Context, origin entity.Origin, allow bool) (entity.DecisionDelta, error)

	// ResetOrigin removes origin from whichever list contains it. Returns
	// entity.DecisionDelta zero value and no error if the origin was in
	// neither list; the caller is expected to treat that as misuse and log.
	ResetOrigin(ctx context.Context, origin entity.Origin) (entity.DecisionDelta, error)

	// ResetAll clears both origin lists. The default policy is untouched.
	ResetAll(ctx context.Context) error
}
