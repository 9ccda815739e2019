package cacheStore

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value   string
	expires time.Time
}

// InMemoryCache is the fallback when redis is offline. Expired entries are
// dropped lazily on read, which is enough at this cache's size.
type InMemoryCache struct {
	mu      *sync.RWMutex
	entries map[string]entry
}

func InitInMemoryCache() *InMemoryCache {
	return &InMemoryCache{
		mu:      new(sync.RWMutex),
		entries: make(map[string]entry),
	}
}

func (c *InMemoryCache) Get(ctx context.Context, key string) (string, bool) {
	c.mu.RLock()
	e, found := c.entries[key]
	c.mu.RUnlock()

	if !found {
		return "", false
	}
	if time.Now().After(e.expires) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", false
	}
	return e.value, true
}

func (c *InMemoryCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expires: time.Now().Add(ttl)}
	return nil
}
