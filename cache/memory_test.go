package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache(4)

	_, ok := c.Get("missing")
	require.False(t, ok)

	c.Set("a", "1", time.Minute)
	value, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, "1", value)

	c.Set("a", "2", time.Minute)
	value, ok = c.Get("a")
	require.True(t, ok)
	require.Equal(t, "2", value)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(4)

	c.Set("a", "1", 20*time.Millisecond)
	_, ok := c.Get("a")
	require.True(t, ok)

	time.Sleep(50 * time.Millisecond)
	_, ok = c.Get("a")
	require.False(t, ok)
}

func TestMemoryCacheEviction(t *testing.T) {
	c := NewMemoryCache(3)

	for i := 0; i < 4; i++ {
		c.Set(fmt.Sprintf("key%d", i), "value", time.Minute)
	}

	// Oldest key is evicted once the size bound is exceeded
	_, ok := c.Get("key0")
	require.False(t, ok)
	for i := 1; i < 4; i++ {
		_, ok := c.Get(fmt.Sprintf("key%d", i))
		require.True(t, ok)
	}
}
