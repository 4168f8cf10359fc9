package ratelimit

import (
	"testing"

	"github.com/maruel/bookdb/internal/storage"
)

func TestNewLimiters(t *testing.T) {
	limiters := NewLimiters(storage.DefaultRateLimits())
	defer limiters.Close()

	if limiters.Write.Limiter == nil {
		t.Error("Write limiter should not be nil")
	}
	if limiters.Write.Name != "write" {
		t.Errorf("Write tier name = %s, want write", limiters.Write.Name)
	}
	if limiters.Read.Limiter == nil {
		t.Error("Read limiter should not be nil")
	}
	if limiters.Read.Name != "read" {
		t.Errorf("Read tier name = %s, want read", limiters.Read.Name)
	}
}

func TestNewLimiters_ZeroDisables(t *testing.T) {
	limiters := NewLimiters(storage.RateLimits{WriteRatePerMin: 0, ReadRatePerMin: 0})
	defer limiters.Close()

	if limiters.Write.Limiter != nil {
		t.Error("zero write rate should leave the Write limiter nil")
	}
	if limiters.Read.Limiter != nil {
		t.Error("zero read rate should leave the Read limiter nil")
	}
	if tier := limiters.Match("POST", "/books"); tier != nil {
		t.Errorf("expected nil tier with limiting disabled, got %s", tier.Name)
	}
	if tier := limiters.Match("GET", "/books"); tier != nil {
		t.Errorf("expected nil tier with limiting disabled, got %s", tier.Name)
	}
}

func TestLimiters_Match(t *testing.T) {
	limiters := NewLimiters(storage.DefaultRateLimits())
	defer limiters.Close()

	tests := []struct {
		method   string
		path     string
		wantTier string
	}{
		{"GET", "/health", ""}, // No rate limit for health check
		{"GET", "/books", "read"},
		{"GET", "/books/123", "read"},
		{"HEAD", "/books", "read"},
		{"GET", "/schema", "read"},
		{"POST", "/books", "write"},
		{"PUT", "/books/123", "write"},
		{"DELETE", "/books/123", "write"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			tier := limiters.Match(tt.method, tt.path)
			if tt.wantTier == "" {
				if tier != nil {
					t.Errorf("expected nil tier, got %s", tier.Name)
				}
			} else {
				if tier == nil {
					t.Errorf("expected tier %s, got nil", tt.wantTier)
				} else if tier.Name != tt.wantTier {
					t.Errorf("expected tier %s, got %s", tt.wantTier, tier.Name)
				}
			}
		})
	}
}
