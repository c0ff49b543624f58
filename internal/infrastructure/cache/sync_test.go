package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webnotify/internal/domain/entity"
	"github.com/bnema/webnotify/internal/infrastructure/cache"
	"github.com/bnema/webnotify/internal/logging"
)

func syncTestCtx(t *testing.T) context.Context {
	t.Helper()
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func startConsumer(t *testing.T, ctx context.Context, s *cache.SyncChannel) {
	t.Helper()
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.Run(runCtx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func TestSyncChannel_AppliesInOrder(t *testing.T) {
	ctx := syncTestCtx(t)
	c := cache.NewPermissions()
	s := cache.NewSyncChannel(c)
	startConsumer(t, ctx, s)

	s.EnqueueFullSnapshot(nil, nil, entity.PermissionAsk)
	s.EnqueueAllow(originA)
	s.EnqueueDeny(originA)
	s.EnqueueAllow(originB)
	s.EnqueueDefaultPolicy(entity.PermissionBlock)
	require.NoError(t, s.Flush(ctx))

	// The later deny for originA wins over the earlier allow.
	assert.Equal(t, entity.PermissionBlock, c.Query(originA))
	assert.Equal(t, entity.PermissionAllow, c.Query(originB))
	assert.Equal(t, entity.PermissionBlock, c.Query("https://undecided.example.com"))
}

func TestSyncChannel_EnqueueBeforeConsumerStarts(t *testing.T) {
	ctx := syncTestCtx(t)
	c := cache.NewPermissions()
	s := cache.NewSyncChannel(c)

	// Enqueue never blocks, consumer or not.
	s.EnqueueFullSnapshot([]entity.Origin{originA}, nil, entity.PermissionAsk)
	s.EnqueueDeny(originB)

	assert.False(t, c.Initialized())

	startConsumer(t, ctx, s)
	require.NoError(t, s.Flush(ctx))

	assert.Equal(t, entity.PermissionAllow, c.Query(originA))
	assert.Equal(t, entity.PermissionBlock, c.Query(originB))
}

func TestSyncChannel_FlushRespectsContext(t *testing.T) {
	ctx := syncTestCtx(t)
	s := cache.NewSyncChannel(cache.NewPermissions())

	// No consumer running: Flush must give up with the context.
	flushCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()

	err := s.Flush(flushCtx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSyncChannel_SnapshotSupersedesEarlierCommands(t *testing.T) {
	ctx := syncTestCtx(t)
	c := cache.NewPermissions()
	s := cache.NewSyncChannel(c)
	startConsumer(t, ctx, s)

	s.EnqueueFullSnapshot(nil, nil, entity.PermissionAsk)
	s.EnqueueAllow(originA)
	s.EnqueueFullSnapshot(nil, nil, entity.PermissionAsk)
	require.NoError(t, s.Flush(ctx))

	assert.Equal(t, entity.PermissionAsk, c.Query(originA))
}
