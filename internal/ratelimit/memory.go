package ratelimit

import (
	"context"
	"sync"
	"time"
)

// record tracks accepted requests for one identifier within the current window
type record struct {
	count        int
	windowExpiry time.Time
}

// MemoryStore is the in-process rate-limit backend. It is safe for concurrent
// use and intended for single-process deployments and as the fallback when the
// durable store is unavailable. Expired records are reset lazily on access;
// EvictExpired removes them proactively (see tasks.RateLimitCleaner).
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*record
	cfg     Config

	// overridable in tests
	now func() time.Time
}

// NewMemoryStore creates a new in-process store
func NewMemoryStore(cfg Config) *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*record),
		cfg:     cfg,
		now:     time.Now,
	}
}

// CheckAndConsume implements Store. It never returns an error.
func (s *MemoryStore) CheckAndConsume(_ context.Context, identifier string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	r, ok := s.records[identifier]
	if !ok || now.After(r.windowExpiry) {
		s.records[identifier] = &record{
			count:        1,
			windowExpiry: now.Add(s.cfg.Window),
		}
		return true, nil
	}

	if r.count < s.cfg.Max {
		r.count++
		return true, nil
	}

	return false, nil
}

// EvictExpired removes records whose window has elapsed and returns how many
// were dropped
func (s *MemoryStore) EvictExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	evicted := 0
	for identifier, r := range s.records {
		if now.After(r.windowExpiry) {
			delete(s.records, identifier)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of tracked identifiers
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
