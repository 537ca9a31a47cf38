package ratelimit

import (
	"context"

	"github.com/anamtn/portfolio-api/internal/logging"
)

// Limiter selects between the durable store and the in-process fallback.
// Callers depend only on CheckAndConsume; which backend answered is reported
// through the Result's Mode. A durable-store error never fails the request:
// the decision transparently falls back to the in-process store, which is
// weaker under multi-process deployment (counters are not shared).
type Limiter struct {
	primary  Store // nil when the durable store is not configured
	fallback Store
	logger   *logging.Logger
}

// NewLimiter creates a limiter. primary may be nil, in which case every
// decision is served by fallback in ModeMemory.
func NewLimiter(primary Store, fallback Store, logger *logging.Logger) *Limiter {
	return &Limiter{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// CheckAndConsume consumes one slot for the identifier
func (l *Limiter) CheckAndConsume(ctx context.Context, identifier string) Result {
	if l.primary != nil {
		allowed, err := l.primary.CheckAndConsume(ctx, identifier)
		if err == nil {
			return Result{Allowed: allowed, Mode: ModeDurable}
		}
		l.logger.Warn("Durable rate-limit store unavailable, serving from in-process store: %v", err)

		allowed, _ = l.fallback.CheckAndConsume(ctx, identifier)
		return Result{Allowed: allowed, Mode: ModeDegraded}
	}

	allowed, _ := l.fallback.CheckAndConsume(ctx, identifier)
	return Result{Allowed: allowed, Mode: ModeMemory}
}

// Mode reports which backend would currently serve decisions. Degraded mode
// is only observable per decision; this reflects configuration.
func (l *Limiter) Mode() Mode {
	if l.primary != nil {
		return ModeDurable
	}
	return ModeMemory
}
