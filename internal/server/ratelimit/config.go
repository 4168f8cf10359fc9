// Defines rate limit tiers and routing rules.

package ratelimit

import (
	"time"

	"github.com/maruel/bookdb/internal/storage"
)

// Tier defines a rate limit tier. Keys are client IPs.
type Tier struct {
	Name    string
	Limiter *Limiter
}

// Limiters holds rate limiters for different tiers.
type Limiters struct {
	Write Tier
	Read  Tier
}

// NewLimiters creates limiters from the configured per-minute rates.
// A zero rate disables limiting for that tier.
// Burst is one sixth of the per-minute rate, with a floor of 1.
func NewLimiters(limits storage.RateLimits) *Limiters {
	l := &Limiters{}
	if limits.WriteRatePerMin > 0 {
		l.Write = Tier{
			Name:    "write",
			Limiter: NewLimiter(limits.WriteRatePerMin, time.Minute, max(limits.WriteRatePerMin/6, 1)),
		}
	}
	if limits.ReadRatePerMin > 0 {
		l.Read = Tier{
			Name:    "read",
			Limiter: NewLimiter(limits.ReadRatePerMin, time.Minute, max(limits.ReadRatePerMin/6, 1)),
		}
	}
	return l
}

// Match returns the tier for the request.
// Returns nil for requests that should not be rate limited.
func (l *Limiters) Match(method, path string) *Tier {
	// Skip health check
	if path == "/health" {
		return nil
	}

	// Read operations
	if method == "GET" || method == "HEAD" {
		if l.Read.Limiter == nil {
			return nil
		}
		return &l.Read
	}

	// Everything else mutates: POST, PUT, DELETE
	if l.Write.Limiter == nil {
		return nil
	}
	return &l.Write
}

// Close stops all limiter cleanup goroutines.
func (l *Limiters) Close() {
	if l.Write.Limiter != nil {
		l.Write.Limiter.Close()
	}
	if l.Read.Limiter != nil {
		l.Read.Limiter.Close()
	}
}
