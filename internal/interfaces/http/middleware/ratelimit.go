package middleware

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/finstatements/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Limiter allows a number of requests per key and window, refilled evenly
// over the window so a burst at a window boundary is not doubled
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, remaining int, err error)
	Limit() int
}

const localEntryTTL = 10 * time.Minute

// LocalLimiter is the in-process limiter used when Redis is not configured.
// Each key gets a token bucket holding limit tokens, one refilled every
// window/limit.
type LocalLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*localEntry
	limit     int
	every     rate.Limit
	lastSweep time.Time
	now       func() time.Time
}

type localEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewLocalLimiter creates a limiter allowing limit requests per key and window
func NewLocalLimiter(limit int, window time.Duration) *LocalLimiter {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LocalLimiter{
		limiters: make(map[string]*localEntry),
		limit:    limit,
		every:    rate.Every(window / time.Duration(limit)),
		now:      time.Now,
	}
}

// Allow takes a token for key
func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	entry, ok := l.limiters[key]
	if !ok {
		entry = &localEntry{limiter: rate.NewLimiter(l.every, l.limit)}
		l.limiters[key] = entry
	}
	entry.lastAccess = now

	allowed := entry.limiter.AllowN(now, 1)
	remaining := max(int(entry.limiter.TokensAt(now)), 0)
	return allowed, remaining, nil
}

// sweep drops buckets idle for longer than localEntryTTL; callers hold mu
func (l *LocalLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < localEntryTTL {
		return
	}
	for key, entry := range l.limiters {
		if now.Sub(entry.lastAccess) >= localEntryTTL {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}

// Limit returns the number of requests allowed per window
func (l *LocalLimiter) Limit() int {
	return l.limit
}

// DefaultRateLimitedProcedures are the credential entry points
var DefaultRateLimitedProcedures = []string{"register", "login", "validateLicense"}

// RateLimit limits the listed procedures per client IP. A limiter failure
// lets the request through.
func RateLimit(limiter Limiter, log *zap.Logger, procedures ...string) gin.HandlerFunc {
	limited := newProcedureSet(procedures)
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		procedure := ProcedureName(c)
		if !limited.has(procedure) {
			c.Next()
			return
		}

		key := procedure + ":" + c.ClientIP()
		allowed, remaining, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.Warn("Rate limiter unavailable", zap.String("procedure", procedure), zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !allowed {
			AbortWithError(c, dto.ErrCodeTooManyRequests, "Too many requests. Please try again later.")
			return
		}
		c.Next()
	}
}
