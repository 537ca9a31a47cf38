package ratelimit

import (
	"context"
	"time"
)

// Config bounds accepted submissions per client identifier within a window
type Config struct {
	// Max accepted requests per identifier per window
	Max int
	// Window duration after which a counter resets
	Window time.Duration
}

// DefaultConfig matches the published contact-form quota
func DefaultConfig() Config {
	return Config{
		Max:    10,
		Window: time.Hour,
	}
}

// Store is the contract every rate-limit backend serves. CheckAndConsume
// atomically consumes one slot for the identifier and reports whether the
// request is allowed. At or above the quota it must not mutate state.
type Store interface {
	CheckAndConsume(ctx context.Context, identifier string) (bool, error)
}

// Mode identifies which backend served a rate-limit decision
type Mode string

const (
	// ModeDurable means the shared Redis store served the decision
	ModeDurable Mode = "durable"
	// ModeMemory means the in-process store is the configured backend
	ModeMemory Mode = "memory"
	// ModeDegraded means the durable store failed and the in-process
	// store answered instead
	ModeDegraded Mode = "degraded"
)

// Result is a rate-limit decision together with the mode that produced it,
// so operators can tell enforced-by-durable-store from weaker fallbacks.
type Result struct {
	Allowed bool
	Mode    Mode
}
