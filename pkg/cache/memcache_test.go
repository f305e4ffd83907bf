package cache

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestMemCacheExpiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	mc := NewMemCacheWithClock[string](clock, 0)
	defer mc.Close()

	mc.Set("player", "profile", 2*time.Minute)

	value, ok := mc.Get("player")
	assert.True(t, ok)
	assert.Equal(t, "profile", value)

	clock.Advance(119 * time.Second)
	_, ok = mc.Get("player")
	assert.True(t, ok)

	clock.Advance(time.Second)
	_, ok = mc.Get("player")
	assert.False(t, ok)
	assert.Equal(t, 0, mc.Len())
}

func TestMemCacheNoExpiration(t *testing.T) {
	clock := clockwork.NewFakeClock()
	mc := NewMemCacheWithClock[int](clock, 0)
	defer mc.Close()

	mc.Set("match", 42, NoExpiration)
	clock.Advance(365 * 24 * time.Hour)

	value, ok := mc.Get("match")
	assert.True(t, ok)
	assert.Equal(t, 42, value)
}

func TestMemCacheInvalidate(t *testing.T) {
	mc := NewMemCache[int](0)
	defer mc.Close()

	mc.Set("key", 1, time.Minute)
	mc.Invalidate("key")

	_, ok := mc.Get("key")
	assert.False(t, ok)
}

func TestMemCacheCleanupWorker(t *testing.T) {
	clock := clockwork.NewFakeClock()
	mc := NewMemCacheWithClock[string](clock, time.Minute)
	defer mc.Close()

	mc.Set("short", "a", 30*time.Second)
	mc.Set("forever", "b", NoExpiration)

	clock.BlockUntilContext(t.Context(), 1)
	clock.Advance(time.Minute)

	assert.Eventually(t, func() bool { return mc.Len() == 1 }, time.Second, 5*time.Millisecond)
	_, ok := mc.Get("forever")
	assert.True(t, ok)
}

func TestMemCacheCloseTwice(t *testing.T) {
	mc := NewMemCache[string](time.Minute)
	mc.Close()
	assert.NotPanics(t, mc.Close)
}
