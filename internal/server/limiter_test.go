package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestLimiterDropsIdleClients(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewIPRateLimiter(rate.Limit(1), 1)
	limiter.now = func() time.Time { return now }

	limiter.getLimiter("192.0.2.1")
	now = now.Add(2 * time.Minute)
	limiter.getLimiter("192.0.2.2")
	assert.Equal(t, 2, limiter.Cleanup())

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 1, limiter.Cleanup())
	assert.Contains(t, limiter.ips, "192.0.2.2")

	now = now.Add(clientIdleTTL)
	assert.Equal(t, 0, limiter.Cleanup())
}

func TestLimiterKeepsActiveBucket(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(0.001), 1)

	first := limiter.getLimiter("192.0.2.1")
	assert.True(t, first.Allow())
	assert.Same(t, first, limiter.getLimiter("192.0.2.1"))
	assert.Equal(t, 1, limiter.Cleanup())
	assert.False(t, limiter.getLimiter("192.0.2.1").Allow())
}

func TestRunCleanupStops(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(1), 1)
	limiter.ttl = 0
	limiter.getLimiter("192.0.2.1")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		limiter.RunCleanup(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		limiter.mu.Lock()
		defer limiter.mu.Unlock()
		return len(limiter.ips) == 0
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup did not stop")
	}
}

func TestClientIP(t *testing.T) {
	r, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.7:5555"
	assert.Equal(t, "192.0.2.7", clientIP(r))

	r.RemoteAddr = "pipe"
	assert.Equal(t, "pipe", clientIP(r))
}
