package port

import (
	"context"

	"github.com/bnema/webnotify/internal/domain/entity"
)

// PromptOutcome is the user's response reported by a decision surface.
type PromptOutcome int

const (
	// PromptAccepted means the user granted the permission.
	PromptAccepted PromptOutcome = iota
	// PromptDenied means the user refused the permission.
	PromptDenied
	// PromptDismissed means the prompt was closed without an explicit choice.
	PromptDismissed
)

// String returns a human-readable representation of the outcome.
func (o PromptOutcome) String() string {
	switch o {
	case PromptAccepted:
		return "accepted"
	case PromptDenied:
		return "denied"
	case PromptDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// PermissionPrompter is the decision surface shown when an origin asks for
// notification permission. Implementations present the prompt asynchronously
// on the control context and invoke respond exactly once with the outcome;
// closing the surface without a choice reports PromptDismissed.
type PermissionPrompter interface {
	ShowPermissionPrompt(
		ctx context.Context,
		origin entity.Origin,
		displayName string,
		respond func(outcome PromptOutcome),
	)
}
