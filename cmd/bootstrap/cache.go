package bootstrap

import (
	"context"

	"restaurant-booking/internal/infra/cache"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		NewStatsCache,
	),
)

// NewRedisClient returns nil when caching is disabled or Redis is unreachable.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := cache.NewRedisClient(cfg.Cache)
	if client == nil {
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

// NewStatsCache falls back to a no-op cache when client is nil. A nil
// *redis.Client must not reach redis.Cmdable as a typed nil.
func NewStatsCache(client *redis.Client, cfg config.Config) queries.StatsCache {
	var cmd redis.Cmdable
	if client != nil {
		cmd = client
	}
	return cache.NewStatsCache(cmd, cfg.Cache)
}
