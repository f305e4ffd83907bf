package requests

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestTryAcquire(t *testing.T) {
	clock := clockwork.NewFakeClock()
	limiter := NewRateLimiter(clock,
		Window{Count: 2, Interval: time.Second},
		Window{Count: 3, Interval: time.Minute},
	)

	ok, _ := limiter.tryAcquire()
	assert.True(t, ok)
	ok, _ = limiter.tryAcquire()
	assert.True(t, ok)

	ok, wait := limiter.tryAcquire()
	assert.False(t, ok)
	assert.Equal(t, time.Second, wait)

	clock.Advance(time.Second)
	ok, _ = limiter.tryAcquire()
	assert.True(t, ok)

	// The minute window is now full.
	clock.Advance(time.Second)
	ok, wait = limiter.tryAcquire()
	assert.False(t, ok)
	assert.Equal(t, 58*time.Second, wait)
}

func TestInvalidWindowsAreIgnored(t *testing.T) {
	limiter := NewRateLimiter(clockwork.NewFakeClock(), Window{Count: 0, Interval: time.Second})
	for i := 0; i < 100; i++ {
		ok, _ := limiter.tryAcquire()
		assert.True(t, ok)
	}
}

func TestWaitUnblocksAfterReset(t *testing.T) {
	clock := clockwork.NewFakeClock()
	limiter := NewRateLimiter(clock, Window{Count: 1, Interval: time.Second})
	assert.NoError(t, limiter.Wait(context.Background()))

	done := make(chan error, 1)
	go func() { done <- limiter.Wait(context.Background()) }()

	assert.NoError(t, clock.BlockUntilContext(t.Context(), 1))
	clock.Advance(time.Second)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("wait did not return after the window reset")
	}
}

func TestWaitHonorsContext(t *testing.T) {
	clock := clockwork.NewFakeClock()
	limiter := NewRateLimiter(clock, Window{Count: 1, Interval: time.Hour})
	assert.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, limiter.Wait(ctx), context.Canceled)
}
