// Package redis constructs the shared redis client.
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"item_backend/internal/platform/config"
)

// NewRedisClient connects to the configured redis instance and verifies the
// connection with a ping. The caller decides whether a failure is fatal; the
// cache layer runs without redis.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.Redis.Addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.Redis.Addr)
	return rdb, nil
}
