package auth

import (
	"context"
	"fmt"
	"time"

	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter limits requests per key across every server instance.
// Each key gets limit requests per window, refilled evenly (GCRA).
type RedisRateLimiter struct {
	limiter   *redis_rate.Limiter
	limit     redis_rate.Limit
	keyPrefix string
}

// NewRedisRateLimiter creates a limiter over an existing Redis client
func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		limiter:   redis_rate.NewLimiter(client),
		limit:     limitFor(limit, window),
		keyPrefix: "ratelimit:ip:",
	}
}

func limitFor(limit int, window time.Duration) redis_rate.Limit {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return redis_rate.Limit{Rate: limit, Burst: limit, Period: window}
}

// Allow counts a request for key and reports whether it is within the limit,
// together with the requests left before the limiter refuses
func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, int, error) {
	res, err := l.limiter.Allow(ctx, l.keyPrefix+key, l.limit)
	if err != nil {
		return false, 0, fmt.Errorf("failed to count request: %w", err)
	}
	return res.Allowed > 0, res.Remaining, nil
}

// Limit returns the number of requests allowed per window
func (l *RedisRateLimiter) Limit() int {
	return l.limit.Rate
}
