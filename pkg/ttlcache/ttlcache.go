package ttlcache

import (
	"sync"
	"time"
)

const (
	// defaultHighWater triggers an eviction sweep after an insert.
	defaultHighWater = 2000
	// defaultLowWater is where a sweep stops early.
	defaultLowWater = 1500
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is an in-process TTL cache. It is an optimization only: entries live
// for at most their TTL, are evicted lazily on read, and the table is kept
// near the high-water mark by an advisory sweep after inserts. It is never
// shared across processes and must not be relied on for correctness.
type Cache[V any] struct {
	mu        sync.Mutex
	entries   map[string]entry[V]
	highWater int
	lowWater  int
	now       func() time.Time
}

// New creates an empty cache with the default size bounds.
func New[V any]() *Cache[V] {
	return &Cache[V]{
		entries:   make(map[string]entry[V]),
		highWater: defaultHighWater,
		lowWater:  defaultLowWater,
		now:       time.Now,
	}
}

// Get returns the value for key. An entry past its expiry is treated as
// absent and deleted.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key for ttl, overwriting any existing entry.
// If the table grows past the high-water mark, one pass over expired entries
// runs, stopping early once the size is back at or below the low-water mark.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{value: value, expiresAt: c.now().Add(ttl)}
	if len(c.entries) > c.highWater {
		c.sweepLocked()
	}
}

// Delete removes key if present.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len reports the current entry count, expired entries included.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Sweep removes expired entries. Intended for periodic maintenance; request
// paths rely on lazy eviction instead.
func (c *Cache[V]) Sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

func (c *Cache[V]) sweepLocked() {
	now := c.now()
	for key, e := range c.entries {
		if len(c.entries) <= c.lowWater {
			return
		}
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}
