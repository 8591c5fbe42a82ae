package cache

import (
	"context"
	"store-monitor/logger"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache backed by a shared Redis instance. Safe for concurrent builders:
// redundant writes of the same key are idempotent, Redis never serves a
// partial value.
type redisCache struct {
	client *redis.Client
}

func NewRedisCache(address string) Cache {
	return &redisCache{
		client: redis.NewClient(&redis.Options{Addr: address}),
	}
}

func (c *redisCache) Get(key string) (string, bool) {
	value, err := c.client.Get(context.Background(), key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		logger.Warn("cache get %s failed: %v", key, err)
		return "", false
	}
	return value, true
}

func (c *redisCache) Set(key string, value string, ttl time.Duration) {
	err := c.client.Set(context.Background(), key, value, ttl).Err()
	if err != nil {
		logger.Warn("cache set %s failed: %v", key, err)
	}
}
