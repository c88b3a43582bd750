package middleware

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestLocalLimiter(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	l := NewLocalLimiter(2, time.Minute)
	l.now = func() time.Time { return now }

	ok, remaining, err := l.Allow(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, remaining)

	ok, remaining, _ = l.Allow(ctx, "a")
	assert.True(t, ok)
	assert.Equal(t, 0, remaining)

	ok, remaining, _ = l.Allow(ctx, "a")
	assert.False(t, ok)
	assert.Equal(t, 0, remaining)

	ok, _, _ = l.Allow(ctx, "b")
	assert.True(t, ok, "keys are counted separately")

	now = now.Add(31 * time.Second)
	ok, remaining, _ = l.Allow(ctx, "a")
	assert.True(t, ok, "one token is back after half the window")
	assert.Equal(t, 0, remaining)
	assert.Equal(t, 2, l.Limit())
}

func TestLocalLimiter_NoDoubleBurstAtBoundary(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	now := start.Add(59900 * time.Millisecond)
	l := NewLocalLimiter(5, time.Minute)
	l.now = func() time.Time { return now }

	allowed := 0
	for range 4 {
		if ok, _, _ := l.Allow(ctx, "login:10.0.0.1"); ok {
			allowed++
		}
	}
	now = start.Add(time.Minute)
	for range 5 {
		if ok, _, _ := l.Allow(ctx, "login:10.0.0.1"); ok {
			allowed++
		}
	}
	assert.Equal(t, 5, allowed)
}

func TestLocalLimiter_SweepsIdleKeys(t *testing.T) {
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	l := NewLocalLimiter(5, time.Second)
	l.now = func() time.Time { return now }

	_, _, _ = l.Allow(context.Background(), "old")
	now = now.Add(localEntryTTL)
	_, _, _ = l.Allow(context.Background(), "new")

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.limiters, "old")
	assert.Contains(t, l.limiters, "new")
}

func TestNewLocalLimiter_Fallbacks(t *testing.T) {
	l := NewLocalLimiter(0, 0)
	assert.Equal(t, 1, l.Limit())
	assert.Equal(t, rate.Every(time.Minute), l.every)
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, int, error) {
	return false, 0, errors.New("redis down")
}
func (failingLimiter) Limit() int { return 1 }

func TestRateLimit(t *testing.T) {
	r := newTestEngine(RateLimit(NewLocalLimiter(1, time.Minute), nil, "login"))

	w := perform(r, http.MethodPost, "/trpc/login", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = perform(r, http.MethodPost, "/trpc/login", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decode(t, w).Error.Code)

	for range 3 {
		w = perform(r, http.MethodPost, "/trpc/getCompanies", nil)
		assert.Equal(t, http.StatusOK, w.Code, "unlisted procedures are not limited")
	}

	t.Run("limiter failure fails open", func(t *testing.T) {
		r := newTestEngine(RateLimit(failingLimiter{}, nil, "login"))
		w := perform(r, http.MethodPost, "/trpc/login", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
