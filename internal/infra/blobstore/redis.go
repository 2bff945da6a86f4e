package blobstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"seat-reservation/internal/infra"
	"seat-reservation/internal/pkg/config"

	"github.com/go-redis/redis/v8"
)

type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisClient connects and pings; the caller owns Close.
func NewRedisClient(cfg config.RedisConfig, logger *slog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: 10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, infra.WrapRepoErr(logger, infra.KindUnavailable, "failed to connect to redis at "+cfg.Addr, err)
	}
	logger.Info("Connected to redis", "addr", cfg.Addr)
	return client, nil
}

func NewRedisStore(client *redis.Client, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, infra.WrapRepoErr(s.logger, infra.KindUnavailable, "failed to get blob", err)
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindUnavailable, "failed to set blob", err)
	}
	return nil
}
