package fusion

import (
	"sync"
	"time"
)

// Cache holds generated fusions until they expire. A janitor goroutine
// purges expired entries every interval; Close stops it.
type Cache struct {
	mu    sync.Mutex
	items map[string]Fusion
	now   func() time.Time

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewCache creates a cache. A non-positive interval disables the janitor;
// expired entries are then dropped only on lookup or Purge.
func NewCache(interval time.Duration, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	c := &Cache{
		items: make(map[string]Fusion),
		now:   now,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	if interval > 0 {
		go c.janitor(interval)
	} else {
		close(c.done)
	}
	return c
}

func (c *Cache) janitor(interval time.Duration) {
	defer close(c.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.Purge()
		}
	}
}

// Get returns the live fusion stored under key.
func (c *Cache) Get(key string) (Fusion, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, ok := c.items[key]
	if !ok {
		return Fusion{}, false
	}
	if f.Expired(c.now()) {
		delete(c.items, key)
		return Fusion{}, false
	}
	return f, true
}

// Put stores f under key.
func (c *Cache) Put(key string, f Fusion) {
	c.mu.Lock()
	c.items[key] = f
	c.mu.Unlock()
}

// Purge removes every expired entry and reports how many were removed.
func (c *Cache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, f := range c.items {
		if f.Expired(now) {
			delete(c.items, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Close stops the janitor and waits for it to exit. It is safe to call more
// than once.
func (c *Cache) Close() {
	c.closeOnce.Do(func() {
		close(c.stop)
	})
	<-c.done
}
