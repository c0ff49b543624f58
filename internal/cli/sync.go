package cli

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/webnotify/internal/infrastructure/cache"
)

// RunWithSync runs fn with the single cache-sync consumer draining in the
// background, then flushes the channel so every command fn enqueued is applied
// before the consumer stops.
func RunWithSync(ctx context.Context, sync *cache.SyncChannel, fn func(ctx context.Context) error) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		if err := sync.Run(gctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	fnErr := fn(ctx)
	if fnErr == nil {
		fnErr = sync.Flush(ctx)
	}

	cancel()
	if err := g.Wait(); err != nil && fnErr == nil {
		fnErr = err
	}
	return fnErr
}
