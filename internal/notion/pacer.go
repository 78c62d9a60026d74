package notion

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Pacer throttles API requests. The client calls Wait before every request;
// implementations block until the next request may proceed or the context
// is cancelled.
//
// Design decision: Pacing is an injected policy rather than a hard-coded
// sleep so callers can choose between the historical fixed-interval
// behavior and a token-bucket limiter without touching the client.
type Pacer interface {
	// Wait blocks until the next request is allowed.
	Wait(ctx context.Context) error
}

// FixedPacer enforces a fixed minimum interval between requests.
// The first call returns immediately; each subsequent call waits until the
// interval since the previous request has elapsed. This is the default
// policy and matches the audit's historical 100ms inter-request pause.
type FixedPacer struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

// NewFixedPacer creates a FixedPacer with the given interval.
// A non-positive interval disables waiting entirely.
func NewFixedPacer(interval time.Duration) *FixedPacer {
	return &FixedPacer{interval: interval}
}

// Wait blocks until the interval since the previous request has elapsed.
func (p *FixedPacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.interval > 0 && !p.last.IsZero() {
		remaining := p.interval - time.Since(p.last)
		if remaining > 0 {
			timer := time.NewTimer(remaining)
			defer timer.Stop()

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
	}

	p.last = time.Now()
	return nil
}

// LimiterPacer paces requests with a token bucket.
// It allows short bursts while keeping the sustained rate bounded, which
// suits APIs that enforce an average rather than a strict interval.
type LimiterPacer struct {
	limiter *rate.Limiter
}

// NewLimiterPacer creates a LimiterPacer allowing requestsPerSecond on
// average with the given burst size.
func NewLimiterPacer(requestsPerSecond float64, burst int) *LimiterPacer {
	if burst < 1 {
		burst = 1
	}
	return &LimiterPacer{limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst)}
}

// Wait blocks until a token is available.
func (p *LimiterPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
