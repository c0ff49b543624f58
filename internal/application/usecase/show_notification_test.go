package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webnotify/internal/application/port"
	"github.com/bnema/webnotify/internal/application/port/mocks"
	"github.com/bnema/webnotify/internal/application/usecase"
	"github.com/bnema/webnotify/internal/domain/entity"
)

func newShowFixture(t *testing.T) (*usecase.ShowNotificationUseCase, *mocks.MockNotificationPresenter) {
	t.Helper()

	presenter := mocks.NewMockNotificationPresenter(t)
	sink := mocks.NewMockNotificationEventSink(t)

	names := mocks.NewMockDisplayNameResolver(t)
	names.EXPECT().DisplayNameForOrigin(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entity.Origin) string { return o.Host() }).
		Maybe()

	return usecase.NewShowNotificationUseCase(presenter, sink, names), presenter
}

func TestShowNotification_TextUpconvertedToDataURL(t *testing.T) {
	ctx := testContext(t)
	uc, presenter := newShowFixture(t)

	var shown entity.Notification
	presenter.EXPECT().Add(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, n entity.Notification, events port.NotificationEvents) {
			shown = n
			require.NotNil(t, events)
		}).
		Once()

	err := uc.Show(ctx, usecase.ShowNotificationParams{
		Origin:         testOrigin,
		Title:          "Hello",
		Body:           "World",
		Direction:      entity.DirectionLeftToRight,
		Session:        testSession,
		Slot:           0,
		NotificationID: 5,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(shown.ContentURL, "data:text/html;charset=utf-8,"))
	assert.Equal(t, "news.example.com", shown.DisplayName)
	assert.Equal(t, 5, shown.Ref.NotificationID)
}

func TestShowNotification_HTMLPassesContentURLThrough(t *testing.T) {
	ctx := testContext(t)
	uc, presenter := newShowFixture(t)

	var shown entity.Notification
	presenter.EXPECT().Add(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, n entity.Notification, _ port.NotificationEvents) {
			shown = n
		}).
		Once()

	err := uc.Show(ctx, usecase.ShowNotificationParams{
		Origin:         testOrigin,
		IsHTML:         true,
		ContentsURL:    "https://news.example.com/notification.html",
		Session:        testSession,
		NotificationID: 6,
	})
	require.NoError(t, err)

	assert.Equal(t, "https://news.example.com/notification.html", shown.ContentURL)
}

func TestShowNotification_ReplaceIDCarried(t *testing.T) {
	ctx := testContext(t)
	uc, presenter := newShowFixture(t)

	var shown entity.Notification
	presenter.EXPECT().Add(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, n entity.Notification, _ port.NotificationEvents) {
			shown = n
		}).
		Once()

	err := uc.Show(ctx, usecase.ShowNotificationParams{
		Origin:    testOrigin,
		Title:     "t",
		Body:      "b",
		ReplaceID: "tag-1",
		Session:   testSession,
	})
	require.NoError(t, err)

	assert.Equal(t, "tag-1", shown.ReplaceID)
}

func TestShowNotification_Cancel(t *testing.T) {
	ctx := testContext(t)
	uc, presenter := newShowFixture(t)

	ref := entity.NotificationRef{Session: testSession, Slot: 2, NotificationID: 9}
	presenter.EXPECT().Cancel(mock.Anything, ref).Return(true).Once()

	assert.True(t, uc.Cancel(ctx, testSession, 2, 9))
}

func TestShowNotification_CancelUnknownReturnsFalse(t *testing.T) {
	ctx := testContext(t)
	uc, presenter := newShowFixture(t)

	presenter.EXPECT().Cancel(mock.Anything, mock.Anything).Return(false).Once()

	assert.False(t, uc.Cancel(ctx, testSession, 0, 404))
}
