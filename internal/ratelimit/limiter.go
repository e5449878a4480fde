// internal/ratelimit/limiter.go
package ratelimit

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiter paces outgoing requests on a per-host basis. It bounds the
// request rate against one upstream independently of the shared fetch
// permit pool, which only bounds how many fetches are in flight at once.
type RateLimiter interface {
	// Wait blocks until a request for the given URL may proceed, or until
	// the context is done.
	Wait(ctx context.Context, urlStr string) error

	// Allow reports whether a request for the given URL may proceed
	// immediately without blocking.
	Allow(urlStr string) bool
}

// DomainLimiter implements RateLimiter with one token bucket per host.
type DomainLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	perHost  rate.Limit
	burst    int
}

// NewDomainLimiter creates a limiter allowing requestsPerSecond per host
// with the given burst capacity.
func NewDomainLimiter(requestsPerSecond float64, burst int) *DomainLimiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 5.0
	}
	if burst <= 0 {
		burst = 10
	}

	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		perHost:  rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// Wait blocks until the request for the given URL can proceed.
func (dl *DomainLimiter) Wait(ctx context.Context, urlStr string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	host := extractHost(urlStr)
	if host == "" {
		// Invalid URL, let it proceed (the fetch itself will fail)
		return nil
	}

	return dl.getLimiter(host).Wait(ctx)
}

// Allow reports whether a request can proceed immediately.
func (dl *DomainLimiter) Allow(urlStr string) bool {
	host := extractHost(urlStr)
	if host == "" {
		return true
	}

	return dl.getLimiter(host).Allow()
}

// getLimiter returns or creates the token bucket for a host.
func (dl *DomainLimiter) getLimiter(host string) *rate.Limiter {
	dl.mu.RLock()
	limiter, exists := dl.limiters[host]
	dl.mu.RUnlock()

	if exists {
		return limiter
	}

	dl.mu.Lock()
	defer dl.mu.Unlock()

	// Double-check after acquiring the write lock
	if limiter, exists := dl.limiters[host]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(dl.perHost, dl.burst)
	dl.limiters[host] = limiter

	return limiter
}

func extractHost(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Host
}
