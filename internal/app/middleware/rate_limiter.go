package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"device-inventory-service/internal/error/code"
	"device-inventory-service/internal/error/response"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter hands out one token bucket per key
type KeyedLimiter struct {
	rate      rate.Limit
	burst     int
	ttl       time.Duration
	mu        sync.Mutex
	entries   map[string]*limiterEntry
	lastSweep time.Time
}

// NewKeyedLimiter creates a limiter table. Buckets idle for longer than ttl
// are dropped by Sweep, which Allow also runs at most once per ttl.
func NewKeyedLimiter(rps float64, burst int, ttl time.Duration) *KeyedLimiter {
	return &KeyedLimiter{
		rate:      rate.Limit(rps),
		burst:     burst,
		ttl:       ttl,
		entries:   make(map[string]*limiterEntry),
		lastSweep: time.Now(),
	}
}

// Allow consumes one token from key's bucket
func (l *KeyedLimiter) Allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	if now.Sub(l.lastSweep) > l.ttl {
		l.sweepLocked(now)
	}
	entry, ok := l.entries[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.entries[key] = entry
	}
	entry.lastSeen = now
	l.mu.Unlock()

	return entry.limiter.Allow()
}

// Sweep drops buckets that have been idle longer than the ttl
func (l *KeyedLimiter) Sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sweepLocked(now)
}

func (l *KeyedLimiter) sweepLocked(now time.Time) int {
	l.lastSweep = now
	removed := 0
	for key, entry := range l.entries {
		if now.Sub(entry.lastSeen) > l.ttl {
			delete(l.entries, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of live buckets
func (l *KeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// RateLimiter rejects requests beyond the limiter's budget with 429.
// keyFunc picks the bucket; nil means per client IP.
func RateLimiter(l *KeyedLimiter, keyFunc func(*gin.Context) string) gin.HandlerFunc {
	if keyFunc == nil {
		keyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}

	return func(c *gin.Context) {
		if !l.Allow(keyFunc(c)) {
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// IPRateLimiter limits each client IP to rps requests per second with the
// given burst. rps <= 0 disables limiting.
func IPRateLimiter(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst <= 0 {
		burst = 1
	}

	return RateLimiter(NewKeyedLimiter(rps, burst, time.Hour), nil)
}
