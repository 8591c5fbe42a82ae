package cache

import (
	"store-monitor/config"
	"time"
)

// Key-value cache with per-entry expiry. Implementations never return
// partially written or expired values; backend failures degrade to cache
// misses so callers always fall back to recomputation.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration)
}

// Create a cache from config: a shared Redis cache when an address is
// configured, an in-process cache otherwise.
func New(cfg *config.CacheConfig) Cache {
	if len(cfg.RedisAddress) > 0 {
		return NewRedisCache(cfg.RedisAddress)
	}
	return NewMemoryCache(cfg.MaxSize)
}
