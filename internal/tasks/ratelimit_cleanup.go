package tasks

import (
	"time"

	"github.com/anamtn/portfolio-api/internal/logging"
	"github.com/anamtn/portfolio-api/internal/ratelimit"
)

// RateLimitCleaner periodically evicts expired records from the in-process
// rate-limit store. Without it the store only overwrites expired entries
// lazily on next access, which grows without bound under traffic from many
// distinct identifiers.
type RateLimitCleaner struct {
	store    *ratelimit.MemoryStore
	interval time.Duration
	stop     chan struct{}
}

// NewRateLimitCleaner creates a cleaner for the given store
func NewRateLimitCleaner(store *ratelimit.MemoryStore, interval time.Duration) *RateLimitCleaner {
	return &RateLimitCleaner{
		store:    store,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start begins the eviction task in the background
func (rc *RateLimitCleaner) Start() {
	go rc.runPeriodically()
}

// Stop terminates the background task
func (rc *RateLimitCleaner) Stop() {
	close(rc.stop)
}

func (rc *RateLimitCleaner) runPeriodically() {
	ticker := time.NewTicker(rc.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rc.cleanup()
		case <-rc.stop:
			return
		}
	}
}

func (rc *RateLimitCleaner) cleanup() {
	logger := logging.GetGlobalLogger()

	evicted := rc.store.EvictExpired()
	if evicted > 0 {
		logger.Debug("Evicted %d expired rate-limit records (%d tracked)", evicted, rc.store.Len())
	}
}
