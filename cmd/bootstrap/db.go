package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"seat-reservation/internal/infra/blobstore"
	"seat-reservation/internal/infra/db"
	"seat-reservation/internal/pkg/config"
	"seat-reservation/internal/usecase"

	"go.uber.org/fx"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverSQLite   = "sqlite"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewBlobStore,
	),
)

// NewBlobStore opens the store selected by STORE_DRIVER. Connections it opens
// are closed when the app stops.
func NewBlobStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (usecase.BlobStore, error) {
	logger.Info("Opening blob store", "driver", cfg.Store.Driver)

	switch cfg.Store.Driver {
	case DriverMemory:
		return blobstore.NewMemoryStore(), nil

	case DriverFile:
		return blobstore.NewFileStore(cfg.Store.Dir, logger)

	case DriverPostgres:
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				if cleanup != nil {
					cleanup()
				}
				return nil
			},
		})
		return blobstore.NewPostgresStore(context.Background(), pool, logger)

	case DriverRedis:
		client, err := blobstore.NewRedisClient(cfg.Redis, logger)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		return blobstore.NewRedisStore(client, logger), nil

	case DriverSQLite:
		sqlDB, err := blobstore.OpenSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return sqlDB.Close()
			},
		})
		return blobstore.NewSQLiteStore(context.Background(), sqlDB, logger)

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
}
