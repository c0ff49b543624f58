package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/webnotify/internal/application/port"
	"github.com/bnema/webnotify/internal/domain/entity"
	"github.com/bnema/webnotify/internal/domain/render"
	"github.com/bnema/webnotify/internal/logging"
)

// ShowNotificationParams carries one display request from a session.
type ShowNotificationParams struct {
	Origin entity.Origin

	// IsHTML selects a page-supplied content URL over text fields.
	IsHTML      bool
	ContentsURL string

	IconURL   string
	Title     string
	Body      string
	Direction entity.TextDirection

	// ReplaceID collapses successive notifications carrying the same tag.
	ReplaceID string

	Session        entity.SessionHandle
	Slot           int
	NotificationID int
	Worker         bool
}

// ShowNotificationUseCase displays notifications for origins whose permission
// resolved to allow, and cancels them on request. It performs no permission
// logic itself.
type ShowNotificationUseCase struct {
	presenter port.NotificationPresenter
	events    port.NotificationEventSink
	names     port.DisplayNameResolver
}

// NewShowNotificationUseCase creates the notification display use case.
func NewShowNotificationUseCase(
	presenter port.NotificationPresenter,
	events port.NotificationEventSink,
	names port.DisplayNameResolver,
) *ShowNotificationUseCase {
	return &ShowNotificationUseCase{
		presenter: presenter,
		events:    events,
		names:     names,
	}
}

// Show builds the dispatch proxy and displayable payload for the request and
// hands both to the presenter. Text notifications are upconverted to a data:
// URL; HTML notifications pass their content URL through.
func (uc *ShowNotificationUseCase) Show(ctx context.Context, p ShowNotificationParams) error {
	log := logging.FromContext(ctx)

	ref := entity.NotificationRef{
		Session:        p.Session,
		Slot:           p.Slot,
		NotificationID: p.NotificationID,
		Worker:         p.Worker,
	}
	proxy := NewNotificationProxy(ref, uc.events)

	contents := p.ContentsURL
	if !p.IsHTML {
		rendered, err := render.DataURL(p.IconURL, p.Title, p.Body, p.Direction)
		if err != nil {
			return fmt.Errorf("render notification content: %w", err)
		}
		contents = rendered
	}

	n := entity.Notification{
		Origin:      p.Origin,
		ContentURL:  contents,
		DisplayName: uc.names.DisplayNameForOrigin(ctx, p.Origin),
		ReplaceID:   p.ReplaceID,
		Ref:         ref,
	}

	log.Debug().
		Str("origin", string(p.Origin)).
		Int("notification_id", p.NotificationID).
		Bool("worker", p.Worker).
		Msg("showing notification")

	uc.presenter.Add(ctx, n, proxy)
	return nil
}

// Cancel removes a displayed notification. The ref addresses the existing
// notification only; no permission state is consulted or changed.
func (uc *ShowNotificationUseCase) Cancel(ctx context.Context, session entity.SessionHandle, slot, notificationID int) bool {
	ref := entity.NotificationRef{
		Session:        session,
		Slot:           slot,
		NotificationID: notificationID,
	}
	return uc.presenter.Cancel(ctx, ref)
}
