package cache

import (
	"container/list"
	"sync"
	"time"
)

const defaultMaxSize = 10000

type entry struct {
	value   string
	expires time.Time
}

// In-process map cache with FIFO eviction above maxSize and lazy expiry
type memoryCache struct {
	sync.RWMutex

	entries map[string]entry
	keys    *list.List
	maxSize int
}

func NewMemoryCache(maxSize int) Cache {
	if maxSize <= 0 {
		maxSize = defaultMaxSize
	}
	return &memoryCache{
		entries: make(map[string]entry),
		keys:    list.New(),
		maxSize: maxSize,
	}
}

func (c *memoryCache) Set(key string, value string, ttl time.Duration) {
	c.Lock()
	defer c.Unlock()

	e := entry{value: value, expires: time.Now().Add(ttl)}
	if _, ok := c.entries[key]; ok {
		c.entries[key] = e
		return
	}
	c.entries[key] = e
	c.keys.PushBack(key)
	if c.keys.Len() > c.maxSize {
		front := c.keys.Front()
		c.keys.Remove(front)
		delete(c.entries, front.Value.(string))
	}
}

func (c *memoryCache) Get(key string) (string, bool) {
	c.RLock()
	defer c.RUnlock()

	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expires) {
		return "", false
	}
	return e.value, true
}
