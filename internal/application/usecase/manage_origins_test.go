package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webnotify/internal/application/usecase"
	"github.com/bnema/webnotify/internal/domain/entity"
	"github.com/bnema/webnotify/internal/domain/repository/mocks"
	"github.com/bnema/webnotify/internal/infrastructure/cache"
	"github.com/bnema/webnotify/internal/infrastructure/profile"
	"github.com/bnema/webnotify/internal/logging"
)

const (
	allowedOrigin = entity.Origin("https://allowed.example.com")
	deniedOrigin  = entity.Origin("https://denied.example.com")
	freshOrigin   = entity.Origin("https://fresh.example.com")
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// originsFixture wires the use case against a mocked store and a live cache
// with its sync consumer running.
type originsFixture struct {
	store *mocks.MockDecisionStore
	cache *cache.Permissions
	sync  *cache.SyncChannel
	uc    *usecase.ManageOriginsUseCase
}

func newOriginsFixture(t *testing.T, ctx context.Context, ephemeral bool) *originsFixture {
	t.Helper()

	store := mocks.NewMockDecisionStore(t)
	permCache := cache.NewPermissions()
	syncChannel := cache.NewSyncChannel(permCache)

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = syncChannel.Run(runCtx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return &originsFixture{
		store: store,
		cache: permCache,
		sync:  syncChannel,
		uc:    usecase.NewManageOriginsUseCase(store, profile.NewStatic(ephemeral), permCache, syncChannel),
	}
}

func TestManageOrigins_InitCache(t *testing.T) {
	ctx := testContext(t)
	f := newOriginsFixture(t, ctx, false)

	f.store.EXPECT().Allowed(mock.Anything).Return([]entity.Origin{allowedOrigin}, nil)
	f.store.EXPECT().Denied(mock.Anything).Return([]entity.Origin{deniedOrigin}, nil)
	f.store.EXPECT().DefaultPolicy(mock.Anything).Return(entity.PermissionAsk, nil)

	require.NoError(t, f.uc.InitCache(ctx))
	require.NoError(t, f.sync.Flush(ctx))

	assert.Equal(t, entity.PermissionAllow, f.cache.Query(allowedOrigin))
	assert.Equal(t, entity.PermissionBlock, f.cache.Query(deniedOrigin))
	assert.Equal(t, entity.PermissionAsk, f.cache.Query(freshOrigin))
}

func TestManageOrigins_InitCacheEphemeral(t *testing.T) {
	ctx := testContext(t)
	f := newOriginsFixture(t, ctx, true)

	// The store must not be read; the mock would fail on any call.
	require.NoError(t, f.uc.InitCache(ctx))
	require.NoError(t, f.sync.Flush(ctx))

	assert.True(t, f.cache.Initialized())
	assert.Equal(t, entity.FactoryDefaultPolicy, f.cache.Query(freshOrigin))
}

func TestManageOrigins_GrantPermission(t *testing.T) {
	ctx := testContext(t)
	f := newOriginsFixture(t, ctx, false)
	f.cache.ApplyFullSnapshot(nil, nil, entity.PermissionAsk)

	f.store.EXPECT().RecordDecision(mock.Anything, freshOrigin, true).
		Return(entity.DecisionDelta{AllowedChanged: true}, nil)

	require.NoError(t, f.uc.GrantPermission(ctx, freshOrigin))
	require.NoError(t, f.sync.Flush(ctx))

	assert.Equal(t, entity.PermissionAllow, f.cache.Query(freshOrigin))
}

func TestManageOrigins_DenyMovesOutOfAllowed(t *testing.T) {
	ctx := testContext(t)
	f := newOriginsFixture(t, ctx, false)
	f.cache.ApplyFullSnapshot([]entity.Origin{allowedOrigin}, nil, entity.PermissionAsk)

	f.store.EXPECT().RecordDecision(mock.Anything, allowedOrigin, false).
		Return(entity.DecisionDelta{AllowedChanged: true, DeniedChanged: true}, nil)

	require.NoError(t, f.uc.DenyPermission(ctx, allowedOrigin))
	require.NoError(t, f.sync.Flush(ctx))

	assert.Equal(t, entity.PermissionBlock, f.cache.Query(allowedOrigin))
}

func TestManageOrigins_EphemeralDecisionSkipsStore(t *testing.T) {
	ctx := testContext(t)
	f := newOriginsFixture(t, ctx, true)
	f.cache.ApplyFullSnapshot(nil, nil, entity.PermissionAsk)

	// No store expectations: persistence must be skipped entirely. The
	// decision still reaches the cache for the rest of the session.
	require.NoError(t, f.uc.GrantPermission(ctx, freshOrigin))
	require.NoError(t, f.sync.Flush(ctx))

	assert.Equal(t, entity.PermissionAllow, f.cache.Query(freshOrigin))
}

func TestManageOrigins_ContentSetting(t *testing.T) {
	ctx := testContext(t)

	t.Run("explicit decisions win", func(t *testing.T) {
		f := newOriginsFixture(t, ctx, false)
		f.store.EXPECT().Allowed(mock.Anything).Return([]entity.Origin{allowedOrigin}, nil)

		setting, err := f.uc.ContentSetting(ctx, allowedOrigin)
		require.NoError(t, err)
		assert.Equal(t, entity.PermissionAllow, setting)
	})

	t.Run("denied list consulted second", func(t *testing.T) {
		f := newOriginsFixture(t, ctx, false)
		f.store.EXPECT().Allowed(mock.Anything).Return(nil, nil)
		f.store.EXPECT().Denied(mock.Anything).Return([]entity.Origin{deniedOrigin}, nil)

		setting, err := f.uc.ContentSetting(ctx, deniedOrigin)
		require.NoError(t, err)
		assert.Equal(t, entity.PermissionBlock, setting)
	})

	t.Run("undecided falls back to default policy", func(t *testing.T) {
		f := newOriginsFixture(t, ctx, false)
		f.store.EXPECT().Allowed(mock.Anything).Return(nil, nil)
		f.store.EXPECT().Denied(mock.Anything).Return(nil, nil)
		f.store.EXPECT().DefaultPolicy(mock.Anything).Return(entity.PermissionBlock, nil)

		setting, err := f.uc.ContentSetting(ctx, freshOrigin)
		require.NoError(t, err)
		assert.Equal(t, entity.PermissionBlock, setting)
	})

	t.Run("ephemeral resolves from session cache view", func(t *testing.T) {
		f := newOriginsFixture(t, ctx, true)

		// No store expectations: the view answers, not the store. A decision
		// made earlier in the session must resolve without another prompt.
		require.NoError(t, f.uc.InitCache(ctx))
		require.NoError(t, f.uc.GrantPermission(ctx, allowedOrigin))
		require.NoError(t, f.sync.Flush(ctx))

		setting, err := f.uc.ContentSetting(ctx, allowedOrigin)
		require.NoError(t, err)
		assert.Equal(t, entity.PermissionAllow, setting)

		setting, err = f.uc.ContentSetting(ctx, freshOrigin)
		require.NoError(t, err)
		assert.Equal(t, entity.PermissionAsk, setting)
	})
}

func TestManageOrigins_SetDefaultPolicyNormalizes(t *testing.T) {
	ctx := testContext(t)
	f := newOriginsFixture(t, ctx, false)
	f.cache.ApplyFullSnapshot(nil, nil, entity.PermissionAsk)

	f.store.EXPECT().SetDefaultPolicy(mock.Anything, entity.FactoryDefaultPolicy).Return(nil)

	require.NoError(t, f.uc.SetDefaultPolicy(ctx, entity.PermissionState("bogus")))
	require.NoError(t, f.sync.Flush(ctx))

	_, _, policy := f.cache.Snapshot()
	assert.Equal(t, entity.FactoryDefaultPolicy, policy)
}

func TestManageOrigins_ResetOrigin(t *testing.T) {
	ctx := testContext(t)
	f := newOriginsFixture(t, ctx, false)
	f.cache.ApplyFullSnapshot([]entity.Origin{allowedOrigin}, nil, entity.PermissionAsk)

	f.store.EXPECT().ResetOrigin(mock.Anything, allowedOrigin).
		Return(entity.DecisionDelta{AllowedChanged: true}, nil)
	f.store.EXPECT().Allowed(mock.Anything).Return(nil, nil)
	f.store.EXPECT().Denied(mock.Anything).Return(nil, nil)
	f.store.EXPECT().DefaultPolicy(mock.Anything).Return(entity.PermissionAsk, nil)

	require.NoError(t, f.uc.ResetOrigin(ctx, allowedOrigin))
	require.NoError(t, f.sync.Flush(ctx))

	assert.Equal(t, entity.PermissionAsk, f.cache.Query(allowedOrigin))
}

func TestManageOrigins_ResetUnknownOriginIsNoOp(t *testing.T) {
	ctx := testContext(t)
	f := newOriginsFixture(t, ctx, false)
	f.cache.ApplyFullSnapshot(nil, nil, entity.PermissionAsk)

	f.store.EXPECT().ResetOrigin(mock.Anything, freshOrigin).
		Return(entity.DecisionDelta{}, nil)

	// No rebuild expectations: a zero delta must not touch the cache.
	require.NoError(t, f.uc.ResetOrigin(ctx, freshOrigin))
	require.NoError(t, f.sync.Flush(ctx))
}

func TestManageOrigins_EphemeralResetOrigin(t *testing.T) {
	ctx := testContext(t)
	f := newOriginsFixture(t, ctx, true)

	require.NoError(t, f.uc.InitCache(ctx))
	require.NoError(t, f.uc.GrantPermission(ctx, allowedOrigin))
	require.NoError(t, f.uc.DenyPermission(ctx, deniedOrigin))
	require.NoError(t, f.sync.Flush(ctx))

	// The store mock has no expectations; the reset works purely on the view.
	require.NoError(t, f.uc.ResetOrigin(ctx, allowedOrigin))
	require.NoError(t, f.sync.Flush(ctx))

	assert.Equal(t, entity.PermissionAsk, f.cache.Query(allowedOrigin))
	assert.Equal(t, entity.PermissionBlock, f.cache.Query(deniedOrigin))
}

func TestManageOrigins_EphemeralResetAll(t *testing.T) {
	ctx := testContext(t)
	f := newOriginsFixture(t, ctx, true)

	require.NoError(t, f.uc.InitCache(ctx))
	require.NoError(t, f.uc.SetDefaultPolicy(ctx, entity.PermissionBlock))
	require.NoError(t, f.uc.GrantPermission(ctx, allowedOrigin))
	require.NoError(t, f.sync.Flush(ctx))

	require.NoError(t, f.uc.ResetAll(ctx))
	require.NoError(t, f.sync.Flush(ctx))

	// Lists cleared, session policy untouched.
	allowed, denied, policy := f.cache.Snapshot()
	assert.Empty(t, allowed)
	assert.Empty(t, denied)
	assert.Equal(t, entity.PermissionBlock, policy)

	got, err := f.uc.DefaultPolicy(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionBlock, got)
}

func TestManageOrigins_ResetAll(t *testing.T) {
	ctx := testContext(t)
	f := newOriginsFixture(t, ctx, false)
	f.cache.ApplyFullSnapshot([]entity.Origin{allowedOrigin}, []entity.Origin{deniedOrigin}, entity.PermissionBlock)

	f.store.EXPECT().ResetAll(mock.Anything).Return(nil)
	f.store.EXPECT().Allowed(mock.Anything).Return(nil, nil)
	f.store.EXPECT().Denied(mock.Anything).Return(nil, nil)
	f.store.EXPECT().DefaultPolicy(mock.Anything).Return(entity.PermissionBlock, nil)

	require.NoError(t, f.uc.ResetAll(ctx))
	require.NoError(t, f.sync.Flush(ctx))

	// Lists cleared, default policy untouched.
	assert.Equal(t, entity.PermissionBlock, f.cache.Query(allowedOrigin))
	assert.Equal(t, entity.PermissionBlock, f.cache.Query(deniedOrigin))

	allowed, denied, policy := f.cache.Snapshot()
	assert.Empty(t, allowed)
	assert.Empty(t, denied)
	assert.Equal(t, entity.PermissionBlock, policy)
}
