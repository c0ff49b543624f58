package port

import (
	"context"

	"github.com/bnema/webnotify/internal/domain/entity"
)

// PermissionResultSink delivers permission-request completion notices back to
// the requesting session. Delivery is fire-and-forget and at most once per
// request id; implementations swallow notices addressed to sessions that no
// longer exist.
type PermissionResultSink interface {
	DeliverPermissionResult(ctx context.Context, session entity.SessionHandle, requestID int)
}

// NotificationEventSink forwards notification lifecycle events over IPC to the
// session that created the notification.
type NotificationEventSink interface {
	NotifyDisplayed(ctx context.Context, ref entity.NotificationRef)
	NotifyClicked(ctx context.Context, ref entity.NotificationRef)
	NotifyClosed(ctx context.Context, ref entity.NotificationRef, byUser bool)
	NotifyError(ctx context.Context, ref entity.NotificationRef)
}
