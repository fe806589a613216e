package worker

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter implements per-backend rate limiting. Batch evaluations share
// one API budget per provider, regardless of how many workers run.
type Limiter struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a new rate limiter
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 5
	}

	return &Limiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  rate.Limit(requestsPerSecond),
		defaultBurst: burst,
	}
}

// Wait blocks until the named backend's limiter grants a slot
func (l *Limiter) Wait(ctx context.Context, backend string) error {
	return l.getLimiter(backend).Wait(ctx)
}

// Allow checks if a request is allowed without waiting
func (l *Limiter) Allow(backend string) bool {
	return l.getLimiter(backend).Allow()
}

func (l *Limiter) getLimiter(backend string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[backend]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := l.limiters[backend]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[backend] = limiter

	return limiter
}

// SetBackendRate sets a custom rate limit for a specific backend
func (l *Limiter) SetBackendRate(backend string, requestsPerSecond float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if burst <= 0 {
		burst = l.defaultBurst
	}

	l.limiters[backend] = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}
