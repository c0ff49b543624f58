package port

import (
	"context"

	"github.com/bnema/webnotify/internal/domain/entity"
)

// NotificationEvents receives the lifecycle events of one shown notification.
// It is implemented by the dispatch proxy; the presenter calls these as the
// notification progresses through its lifetime.
type NotificationEvents interface {
	// Displayed fires when the notification became visible.
	Displayed(ctx context.Context)

	// Clicked fires when the user activated the notification.
	Clicked(ctx context.Context)

	// Closed fires when the notification left the screen. byUser is true when
	// the user closed it rather than the system.
	Closed(ctx context.Context, byUser bool)

	// Errored fires when the notification could not be shown.
	Errored(ctx context.Context)
}

// NotificationPresenter is the external delivery collaborator that puts
// notifications on screen. Rendering and animation are its concern entirely.
type NotificationPresenter interface {
	// Add displays the notification. Events must be forwarded to events.
	Add(ctx context.Context, n entity.Notification, events NotificationEvents)

	// Cancel removes a displayed notification addressed by ref. Returns false
	// when no matching notification was on screen.
	Cancel(ctx context.Context, ref entity.NotificationRef) bool
}
