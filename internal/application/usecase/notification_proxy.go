package usecase

import (
	"context"
	"sync"

	"github.com/bnema/webnotify/internal/application/port"
	"github.com/bnema/webnotify/internal/domain/entity"
	"github.com/bnema/webnotify/internal/logging"
)

// NotificationProxy ties one shown notification back to its originating
// session and forwards lifecycle events over the event sink. Each distinct
// event kind is forwarded at most once per notification identity; repeats are
// logged and dropped.
type NotificationProxy struct {
	ref  entity.NotificationRef
	sink port.NotificationEventSink

	mu        sync.Mutex
	displayed bool
	clicked   bool
	closed    bool
	errored   bool
}

// NewNotificationProxy creates a proxy for the given notification identity.
func NewNotificationProxy(ref entity.NotificationRef, sink port.NotificationEventSink) *NotificationProxy {
	return &NotificationProxy{ref: ref, sink: sink}
}

// Ref returns the notification identity this proxy addresses.
func (p *NotificationProxy) Ref() entity.NotificationRef {
	return p.ref
}

// Displayed forwards the shown event.
func (p *NotificationProxy) Displayed(ctx context.Context) {
	if !p.fireOnce(ctx, &p.displayed, "displayed") {
		return
	}
	p.sink.NotifyDisplayed(ctx, p.ref)
}

// Clicked forwards the click event.
func (p *NotificationProxy) Clicked(ctx context.Context) {
	if !p.fireOnce(ctx, &p.clicked, "clicked") {
		return
	}
	p.sink.NotifyClicked(ctx, p.ref)
}

// Closed forwards the close event. byUser is true when the user closed the
// notification rather than the system.
func (p *NotificationProxy) Closed(ctx context.Context, byUser bool) {
	if !p.fireOnce(ctx, &p.closed, "closed") {
		return
	}
	p.sink.NotifyClosed(ctx, p.ref, byUser)
}

// Errored forwards the display-failure event.
func (p *NotificationProxy) Errored(ctx context.Context) {
	if !p.fireOnce(ctx, &p.errored, "error") {
		return
	}
	p.sink.NotifyError(ctx, p.ref)
}

func (p *NotificationProxy) fireOnce(ctx context.Context, fired *bool, event string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if *fired {
		logging.FromContext(ctx).Warn().
			Str("event", event).
			Int("notification_id", p.ref.NotificationID).
			Msg("duplicate notification event, dropping")
		return false
	}
	*fired = true
	return true
}

var _ port.NotificationEvents = (*NotificationProxy)(nil)
