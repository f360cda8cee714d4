package cache

import (
	"context"
	"encoding/json"
	"time"

	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const defaultStatsTTL = 30 * time.Second

// StatsCache stores daily stats as JSON under "<prefix>:stats:daily:<date>".
type StatsCache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewStatsCache returns a no-op cache when client is nil.
func NewStatsCache(client redis.Cmdable, cfg config.CacheConfig) queries.StatsCache {
	if client == nil {
		return queries.NewNopStatsCache()
	}
	ttl := cfg.StatsTTL
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}
	return &StatsCache{
		client: client,
		prefix: cfg.Prefix,
		ttl:    ttl,
	}
}

func (c *StatsCache) Get(ctx context.Context, date string) (*queries.DailyStatsView, bool, error) {
	raw, err := c.client.Get(ctx, c.key(date)).Bytes()
	if err != nil {
		if errs.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "failed to read stats cache")
	}

	var view queries.DailyStatsView
	if err := json.Unmarshal(raw, &view); err != nil {
		return nil, false, errs.Wrap(err, "failed to decode cached stats")
	}
	return &view, true, nil
}

func (c *StatsCache) Set(ctx context.Context, date string, stats *queries.DailyStatsView) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return errs.Wrap(err, "failed to encode stats")
	}
	if err := c.client.Set(ctx, c.key(date), raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write stats cache")
	}
	return nil
}

func (c *StatsCache) key(date string) string {
	if c.prefix == "" {
		return "stats:daily:" + date
	}
	return c.prefix + ":stats:daily:" + date
}
