// Package cli provides the webnotify command-line interface.
package cli

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver for database/sql
	_ "github.com/ncruces/go-sqlite3/embed"  // Embed SQLite for cross-platform compatibility

	"github.com/bnema/webnotify/internal/application/usecase"
	"github.com/bnema/webnotify/internal/config"
	"github.com/bnema/webnotify/internal/infrastructure/cache"
	"github.com/bnema/webnotify/internal/infrastructure/ipc"
	"github.com/bnema/webnotify/internal/infrastructure/naming"
	"github.com/bnema/webnotify/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/webnotify/internal/infrastructure/profile"
	"github.com/bnema/webnotify/internal/logging"
)

// App holds the CLI dependencies: configuration, database, cache plumbing and
// the permission use cases.
type App struct {
	Config *config.Config

	Cache *cache.Permissions
	Sync  *cache.SyncChannel

	Origins  *usecase.ManageOriginsUseCase
	Requests *usecase.RequestPermissionUseCase

	db  *sql.DB
	ctx context.Context
}

// NewApp loads configuration, opens the decision store and wires the
// permission use cases.
func NewApp() (*App, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := manager.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	db, err := sqlite.NewConnection(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := sqlite.NewDecisionStore(db)
	permCache := cache.NewPermissions()
	syncChannel := cache.NewSyncChannel(permCache)

	prof := profile.NewStatic(cfg.Permissions.Ephemeral)
	origins := usecase.NewManageOriginsUseCase(store, prof, permCache, syncChannel)

	requests := usecase.NewRequestPermissionUseCase(
		origins,
		permCache,
		nil, // decision surface attached by the ask command
		ipc.NewLogSink(),
		naming.NewResolver(nil),
		cfg.Permissions.PromptTimeout,
	)

	logger.Debug().Str("db_path", cfg.Database.Path).Msg("database connected")

	return &App{
		Config:   cfg,
		Cache:    permCache,
		Sync:     syncChannel,
		Origins:  origins,
		Requests: requests,
		db:       db,
		ctx:      ctx,
	}, nil
}

// Context returns the application context carrying the logger.
func (a *App) Context() context.Context {
	return a.ctx
}

// Close closes the database connection.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// WithSync runs fn with the cache-sync consumer alive, flushes any commands
// fn enqueued, then stops the consumer. Used by commands that touch the
// permission flow so the cache view settles before the process exits.
func (a *App) WithSync(fn func(ctx context.Context) error) error {
	return RunWithSync(a.ctx, a.Sync, fn)
}
