package transport

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter throttles outgoing requests with a token bucket
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a new rate limiter with the specified requests per second and burst capacity
func NewLimiter(rps float64, burst int) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Wait blocks until the request can proceed
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow returns true if the request can proceed immediately
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}

// RateLimiter hands out one limiter per provider name, so every client
// of the same provider shares a single token bucket
type RateLimiter struct {
	limiters map[string]*Limiter
	mu       sync.RWMutex
}

// NewRateLimiter creates a new rate limiter manager
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*Limiter),
	}
}

// GetLimiter gets or creates a rate limiter for the specified provider.
// The first caller's rate and burst win; later calls share the bucket.
func (rl *RateLimiter) GetLimiter(provider string, rps float64, burst int) *Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, exists := rl.limiters[provider]; exists {
		return limiter
	}

	limiter := NewLimiter(rps, burst)
	rl.limiters[provider] = limiter
	return limiter
}
