package cache

import (
	"context"
	"log/slog"
	"time"

	"restaurant-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil when caching is disabled or the server does not answer a ping.
func NewRedisClient(cfg config.CacheConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, stats cache disabled", "addr", cfg.Addr, "error", err.Error())
		_ = client.Close()
		return nil
	}
	return client
}
