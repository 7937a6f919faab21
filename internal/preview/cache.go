package preview

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Cache stores rendered artifact sets. Implementations may be backed by
// Redis, Memcached or memory.
type Cache interface {
	// Get retrieves a value. Returns nil, nil if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value. If ttl is 0, the value does not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value.
	Delete(ctx context.Context, key string) error

	// Clear removes all values.
	Clear(ctx context.Context) error
}

// CacheKey identifies one rendering: an entity type under a feature set.
type CacheKey struct {
	Entity   string
	Features []string
}

// String returns the string representation of the cache key.
func (k CacheKey) String() string {
	return k.Entity + ":" + strings.Join(k.Features, ",")
}

type memoryItem struct {
	value   []byte
	expires time.Time
}

// MemoryCache is an in-process Cache.
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	now   func() time.Time
}

// NewMemoryCache returns an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: make(map[string]memoryItem), now: time.Now}
}

// Get implements Cache.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if !item.expires.IsZero() && !c.now().Before(item.expires) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil, nil
	}
	return item.value, nil
}

// Set implements Cache.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	item := memoryItem{value: value}
	if ttl > 0 {
		item.expires = c.now().Add(ttl)
	}
	c.mu.Lock()
	c.items[key] = item
	c.mu.Unlock()
	return nil
}

// Delete implements Cache.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
	return nil
}

// Clear implements Cache.
func (c *MemoryCache) Clear(context.Context) error {
	c.mu.Lock()
	c.items = make(map[string]memoryItem)
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored values, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
