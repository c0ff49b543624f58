package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/webnotify/internal/application/port/mocks"
	"github.com/bnema/webnotify/internal/application/usecase"
	"github.com/bnema/webnotify/internal/domain/entity"
)

func testRef() entity.NotificationRef {
	return entity.NotificationRef{
		Session:        testSession,
		Slot:           3,
		NotificationID: 42,
	}
}

func TestNotificationProxy_ForwardsEachEventOnce(t *testing.T) {
	ctx := testContext(t)
	sink := mocks.NewMockNotificationEventSink(t)
	proxy := usecase.NewNotificationProxy(testRef(), sink)

	sink.EXPECT().NotifyDisplayed(mock.Anything, testRef()).Once()
	sink.EXPECT().NotifyClicked(mock.Anything, testRef()).Once()
	sink.EXPECT().NotifyClosed(mock.Anything, testRef(), true).Once()

	proxy.Displayed(ctx)
	proxy.Clicked(ctx)
	proxy.Closed(ctx, true)

	// Repeats are dropped, not forwarded; the mock would fail on a second
	// delivery of any of these.
	proxy.Displayed(ctx)
	proxy.Clicked(ctx)
	proxy.Closed(ctx, false)
}

func TestNotificationProxy_ErrorForwardedOnce(t *testing.T) {
	ctx := testContext(t)
	sink := mocks.NewMockNotificationEventSink(t)
	proxy := usecase.NewNotificationProxy(testRef(), sink)

	sink.EXPECT().NotifyError(mock.Anything, testRef()).Once()

	proxy.Errored(ctx)
	proxy.Errored(ctx)
}

func TestNotificationProxy_DistinctEventsIndependent(t *testing.T) {
	ctx := testContext(t)
	sink := mocks.NewMockNotificationEventSink(t)
	proxy := usecase.NewNotificationProxy(testRef(), sink)

	sink.EXPECT().NotifyDisplayed(mock.Anything, testRef()).Once()
	sink.EXPECT().NotifyError(mock.Anything, testRef()).Once()

	// A dropped duplicate of one event kind must not block another kind.
	proxy.Displayed(ctx)
	proxy.Displayed(ctx)
	proxy.Errored(ctx)
}
