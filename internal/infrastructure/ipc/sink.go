// Package ipc carries completion notices and notification lifecycle events
// back to the session that initiated them.
package ipc

import (
	"context"

	"github.com/bnema/webnotify/internal/application/port"
	"github.com/bnema/webnotify/internal/domain/entity"
	"github.com/bnema/webnotify/internal/logging"
)

// LogSink records deliveries as structured log events. It stands in for the
// renderer message channel when no live session transport is attached, which
// is the case for the CLI; deliveries to sessions that no longer exist are
// simply dropped on the floor, matching the fire-and-forget contract.
type LogSink struct{}

// NewLogSink creates the logging delivery sink.
func NewLogSink() *LogSink {
	return &LogSink{}
}

// DeliverPermissionResult logs the permission-request completion notice.
func (s *LogSink) DeliverPermissionResult(ctx context.Context, session entity.SessionHandle, requestID int) {
	logging.FromContext(ctx).Info().
		Str("session", string(session)).
		Int("request_id", requestID).
		Msg("permission request completed")
}

// NotifyDisplayed logs the shown event.
func (s *LogSink) NotifyDisplayed(ctx context.Context, ref entity.NotificationRef) {
	s.logEvent(ctx, ref, "displayed")
}

// NotifyClicked logs the click event.
func (s *LogSink) NotifyClicked(ctx context.Context, ref entity.NotificationRef) {
	s.logEvent(ctx, ref, "clicked")
}

// NotifyClosed logs the close event.
func (s *LogSink) NotifyClosed(ctx context.Context, ref entity.NotificationRef, byUser bool) {
	logging.FromContext(ctx).Info().
		Str("session", string(ref.Session)).
		Int("notification_id", ref.NotificationID).
		Bool("by_user", byUser).
		Str("event", "closed").
		Msg("notification event")
}

// NotifyError logs the display-failure event.
func (s *LogSink) NotifyError(ctx context.Context, ref entity.NotificationRef) {
	s.logEvent(ctx, ref, "error")
}

func (s *LogSink) logEvent(ctx context.Context, ref entity.NotificationRef, event string) {
	logging.FromContext(ctx).Info().
		Str("session", string(ref.Session)).
		Int("notification_id", ref.NotificationID).
		Str("event", event).
		Msg("notification event")
}

var (
	_ port.PermissionResultSink  = (*LogSink)(nil)
	_ port.NotificationEventSink = (*LogSink)(nil)
)
