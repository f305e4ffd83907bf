package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// MemCache is the in-memory cache contract used by the services.
type MemCache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T, ttl time.Duration)
	Invalidate(key string)
	Close()
}

// NoExpiration keeps an item until it is invalidated or the process exits.
const NoExpiration time.Duration = 0

// Simple cache item.
type memCacheItem[T any] struct {
	value     T
	expiresAt time.Time
}

func (i *memCacheItem[T]) expired(now time.Time) bool {
	return !i.expiresAt.IsZero() && !now.Before(i.expiresAt)
}

// TTLCache is a sync.Map backed cache with a background cleanup worker.
type TTLCache[T any] struct {
	memoryCache sync.Map
	clock       clockwork.Clock
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	closeOnce   sync.Once
}

// NewMemCache creates a cache using the wall clock.
func NewMemCache[T any](cleanupInterval time.Duration) *TTLCache[T] {
	return NewMemCacheWithClock[T](clockwork.NewRealClock(), cleanupInterval)
}

// NewMemCacheWithClock creates a cache driven by the given clock.
// A non positive cleanup interval disables the worker.
func NewMemCacheWithClock[T any](clock clockwork.Clock, cleanupInterval time.Duration) *TTLCache[T] {
	ctx, cancel := context.WithCancel(context.Background())
	mc := &TTLCache[T]{
		clock:  clock,
		ctx:    ctx,
		cancel: cancel,
	}

	if cleanupInterval > 0 {
		mc.startCleanupWorker(cleanupInterval)
	}

	return mc
}

// startCleanupWorker starts the background worker for memory cleaning.
func (mc *TTLCache[T]) startCleanupWorker(interval time.Duration) {
	ticker := mc.clock.NewTicker(interval)

	mc.wg.Add(1)
	go func() {
		defer mc.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ticker.Chan():
				mc.cleanup()
			case <-mc.ctx.Done():
				return
			}
		}
	}()
}

// cleanup go through each key and clean any expired key.
func (mc *TTLCache[T]) cleanup() {
	now := mc.clock.Now()
	mc.memoryCache.Range(func(key, value any) bool {
		if value.(*memCacheItem[T]).expired(now) {
			mc.memoryCache.Delete(key)
		}
		return true
	})
}

// Close shutdown the memory cache worker.
func (mc *TTLCache[T]) Close() {
	mc.closeOnce.Do(func() {
		mc.cancel()
		mc.wg.Wait()
	})
}

// Get returns the value of a key that has not expired.
func (mc *TTLCache[T]) Get(key string) (T, bool) {
	var zero T

	value, exists := mc.memoryCache.Load(key)
	if !exists {
		return zero, false
	}

	item := value.(*memCacheItem[T])
	if item.expired(mc.clock.Now()) {
		mc.memoryCache.CompareAndDelete(key, value)
		return zero, false
	}

	return item.value, true
}

// Set a given key on the cache. A ttl of NoExpiration keeps the value forever.
func (mc *TTLCache[T]) Set(key string, value T, ttl time.Duration) {
	item := &memCacheItem[T]{value: value}
	if ttl > 0 {
		item.expiresAt = mc.clock.Now().Add(ttl)
	}
	mc.memoryCache.Store(key, item)
}

// Invalidate drops a key.
func (mc *TTLCache[T]) Invalidate(key string) {
	mc.memoryCache.Delete(key)
}

// Len counts the stored items, expired ones included until the next cleanup.
func (mc *TTLCache[T]) Len() int {
	count := 0
	mc.memoryCache.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}
