package fusion

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestCacheExpiry(t *testing.T) {
	clock := newFakeClock()
	c := NewCache(0, clock.Now)
	defer c.Close()

	c.Put("k", Fusion{ID: "f1", ExpiresAt: clock.Now().Add(time.Hour)})

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "f1", got.ID)

	clock.Advance(time.Hour)
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCachePurge(t *testing.T) {
	clock := newFakeClock()
	c := NewCache(0, clock.Now)
	defer c.Close()

	c.Put("old", Fusion{ExpiresAt: clock.Now().Add(time.Minute)})
	c.Put("new", Fusion{ExpiresAt: clock.Now().Add(time.Hour)})
	clock.Advance(2 * time.Minute)

	assert.Equal(t, 1, c.Purge())
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("new")
	assert.True(t, ok)
}

func TestCacheJanitor(t *testing.T) {
	clock := newFakeClock()
	c := NewCache(5*time.Millisecond, clock.Now)

	c.Put("k", Fusion{ExpiresAt: clock.Now().Add(time.Second)})
	clock.Advance(time.Minute)

	assert.Eventually(t, func() bool { return c.Len() == 0 }, time.Second, 5*time.Millisecond)

	c.Close()
	c.Close()
}
