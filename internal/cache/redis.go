package cache

import (
	"context"
	"time"

	"github.com/Domenick1991/bookingservice/config"
	"github.com/redis/go-redis/v9"
)

// RedisCache remembers which notification events were already delivered.
type RedisCache struct {
	client    *redis.Client
	dedupeTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, dedupeTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		dedupeTTL,
	)
}

func NewRedisCacheWithClient(client *redis.Client, dedupeTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, dedupeTTL: dedupeTTL}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) WasSent(ctx context.Context, eventID string) (bool, error) {
	n, err := c.client.Exists(ctx, sentKey(eventID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MarkSent remembers eventID for the dedupe TTL.
func (c *RedisCache) MarkSent(ctx context.Context, eventID string) error {
	return c.client.Set(ctx, sentKey(eventID), "sent", c.dedupeTTL).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func sentKey(eventID string) string {
	return "notify:event:" + eventID
}
