package ttlcache

import "time"

// Export for testing

func (c *Cache[V]) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *Cache[V]) SetWaterMarks(high, low int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.highWater = high
	c.lowWater = low
}

func (c *Cache[V]) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}
