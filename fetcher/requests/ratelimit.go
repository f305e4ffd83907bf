package requests

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Single fixed window limit.
type WindowLimit struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// Full rate limit, containing all the windows.
type RateLimiter struct {
	windows []*WindowLimit
	clock   clockwork.Clock
	mu      sync.Mutex
}

// Window describes a limit of Count requests per Interval.
type Window struct {
	Count    int
	Interval time.Duration
}

// NewRateLimiter creates a limiter enforcing every window at once.
func NewRateLimiter(clock clockwork.Clock, windows ...Window) *RateLimiter {
	now := clock.Now()
	limiter := &RateLimiter{clock: clock}
	for _, w := range windows {
		if w.Count <= 0 || w.Interval <= 0 {
			continue
		}
		limiter.windows = append(limiter.windows, &WindowLimit{
			limit:         w.Count,
			resetInterval: w.Interval,
			lastReset:     now,
		})
	}
	return limiter
}

// Reset the count of the windows that elapsed.
func (r *RateLimiter) resetCounts(now time.Time) {
	for _, window := range r.windows {
		if now.Sub(window.lastReset) >= window.resetInterval {
			window.count = 0
			window.lastReset = now
		}
	}
}

// tryAcquire takes a slot when every window allows it.
// Otherwise it returns how long to wait for the slowest window.
func (r *RateLimiter) tryAcquire() (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	r.resetCounts(now)

	var waitTime time.Duration
	for _, window := range r.windows {
		if window.count < window.limit {
			continue
		}
		if waitTill := window.resetInterval - now.Sub(window.lastReset); waitTill > waitTime {
			waitTime = waitTill
		}
	}

	if waitTime > 0 {
		return false, waitTime
	}

	for _, window := range r.windows {
		window.count++
	}
	return true, 0
}

// Wait blocks until a request can be made or the context is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		ok, waitTime := r.tryAcquire()
		if ok {
			return nil
		}

		timer := r.clock.NewTimer(waitTime)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.Chan():
		}
	}
}
