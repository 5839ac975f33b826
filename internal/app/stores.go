// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/biolink/internal/api"
	"github.com/taibuivan/biolink/internal/platform/config"
	"github.com/taibuivan/biolink/internal/platform/migration"
	pgstore "github.com/taibuivan/biolink/internal/platform/postgres"
	redisstore "github.com/taibuivan/biolink/internal/platform/redis"
	"github.com/taibuivan/biolink/internal/platform/sqlite"
	"github.com/taibuivan/biolink/internal/profile"
)

// blobStore is what every backend implements: both blobs.
type blobStore interface {
	profile.UserStore
	profile.SessionStore
}

// Stores holds the opened backends for the users and session blobs.
//
// When STORE_DRIVER and SESSION_DRIVER name the same driver, one connection
// serves both.
type Stores struct {
	Users   profile.UserStore
	Session profile.SessionStore
	Probes  []api.HealthCheck

	closers []func()
}

type backend struct {
	store blobStore
	probe *api.HealthCheck
	close func()
}

/*
OpenStores connects the backends selected by cfg and applies migrations.

Parameters:
  - context: context.Context (bounds connection and migration)
  - cfg: *config.Config
  - logger: *slog.Logger

Returns:
  - *Stores: Ready to hand to [profile.NewRepository]
  - error: Connection or migration failures
*/
func OpenStores(context context.Context, cfg *config.Config, logger *slog.Logger) (*Stores, error) {
	stores := &Stores{}
	opened := make(map[string]*backend, 2)

	open := func(driver string) (blobStore, error) {
		if existing, ok := opened[driver]; ok {
			return existing.store, nil
		}

		opening, err := openBackend(context, cfg, driver, logger)
		if err != nil {
			return nil, err
		}

		opened[driver] = opening
		if opening.probe != nil {
			stores.Probes = append(stores.Probes, *opening.probe)
		}
		if opening.close != nil {
			stores.closers = append(stores.closers, opening.close)
		}
		return opening.store, nil
	}

	users, err := open(cfg.StoreDriver)
	if err != nil {
		stores.Close()
		return nil, err
	}

	session, err := open(cfg.SessionDriver)
	if err != nil {
		stores.Close()
		return nil, err
	}

	stores.Users = users
	stores.Session = session

	logger.Info("stores_opened",
		slog.String("users_driver", cfg.StoreDriver),
		slog.String("session_driver", cfg.SessionDriver),
	)

	return stores, nil
}

// Close releases every backend in reverse opening order.
func (stores *Stores) Close() {
	for i := len(stores.closers) - 1; i >= 0; i-- {
		stores.closers[i]()
	}
	stores.closers = nil
}

func openBackend(startup context.Context, cfg *config.Config, driver string, logger *slog.Logger) (*backend, error) {
	switch driver {
	case config.DriverMemory:
		return &backend{store: profile.NewMemoryStore()}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(startup, cfg.SQLitePath, logger)
		if err != nil {
			return nil, fmt.Errorf("app_open_sqlite_failed: %w", err)
		}
		return &backend{
			store: profile.NewSQLiteStore(db),
			probe: &api.HealthCheck{Name: driver, Check: func(ctx context.Context) error { return sqlite.Ping(ctx, db) }},
			close: func() {
				if err := db.Close(); err != nil {
					logger.Error("sqlite_close_failed", slog.Any("error", err))
				}
			},
		}, nil

	case config.DriverPostgres:
		if err := migration.RunPostgres(cfg.DatabaseURL, logger); err != nil {
			return nil, fmt.Errorf("app_migrate_postgres_failed: %w", err)
		}
		pool, err := pgstore.NewPool(startup, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, fmt.Errorf("app_open_postgres_failed: %w", err)
		}
		return &backend{
			store: profile.NewPostgresStore(pool),
			probe: &api.HealthCheck{Name: driver, Check: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }},
			close: pool.Close,
		}, nil

	case config.DriverRedis:
		client, err := redisstore.NewClient(startup, cfg.RedisURL, logger)
		if err != nil {
			return nil, fmt.Errorf("app_open_redis_failed: %w", err)
		}
		return &backend{
			store: profile.NewRedisStore(client, cfg.RedisKeyPrefix),
			probe: &api.HealthCheck{Name: driver, Check: func(ctx context.Context) error { return redisstore.Ping(ctx, client) }},
			close: func() {
				if err := client.Close(); err != nil {
					logger.Error("redis_close_failed", slog.Any("error", err))
				}
			},
		}, nil

	default:
		return nil, fmt.Errorf("app: unknown store driver %q", driver)
	}
}
