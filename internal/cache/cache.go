// Package cache provides a TTL cache over the market data client with
// stampede protection.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polyboard/board/internal/marketdata"
	"github.com/polyboard/board/internal/metrics"
)

// FetchFunc produces events for a requested limit. The cache treats it
// as a blocking call.
type FetchFunc func(ctx context.Context, limit int) ([]marketdata.Event, error)

// entry holds the cached result for one limit. Its mutex serializes the
// check-TTL-else-fetch sequence, so concurrent callers for the same
// limit converge on a single upstream invocation while other limits
// proceed independently.
type entry struct {
	mu        sync.Mutex
	fetchedAt time.Time
	events    []marketdata.Event
}

// Service is a TTL cache keyed by requested event count. Entries are
// independent per key: requesting 20 does not reuse a cached fetch of 10.
type Service struct {
	mu      sync.Mutex
	entries map[int]*entry

	ttl     time.Duration
	fetch   FetchFunc
	tracker *metrics.Tracker
}

// New creates a Service. tracker may be nil.
func New(ttl time.Duration, fetch FetchFunc, tracker *metrics.Tracker) *Service {
	return &Service{
		entries: make(map[int]*entry),
		ttl:     ttl,
		fetch:   fetch,
		tracker: tracker,
	}
}

// TTL returns the configured cache lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Get returns the events for the given limit, fetching upstream at most
// once per TTL window per key. A failed fetch is cached as an empty
// result for the full window, bounding retries against a failing
// upstream to once per TTL.
func (s *Service) Get(ctx context.Context, limit int) []marketdata.Event {
	e := s.entry(limit)

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.fetchedAt.IsZero() && time.Since(e.fetchedAt) < s.ttl {
		s.tracker.CacheHit()
		return e.events
	}

	s.tracker.CacheMiss()

	// The fetch populates shared state, so it must not die with any one
	// caller: a client disconnecting mid-fetch would otherwise kill the
	// subprocess and cache the empty result for the whole TTL window.
	// The market data client's own timeout still bounds the call.
	events, err := s.fetch(context.WithoutCancel(ctx), limit)
	if err != nil {
		s.tracker.UpstreamError()
		slog.Error("upstream fetch failed", "limit", limit, "error", err)
		events = nil
	} else {
		s.tracker.FetchSucceeded()
	}

	e.events = events
	e.fetchedAt = time.Now()
	return e.events
}

// entry returns the cache entry for a key, creating it if needed. Only
// the map lookup holds the service-wide lock; the blocking fetch runs
// under the per-key lock.
func (s *Service) entry(limit int) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[limit]
	if !ok {
		e = &entry{}
		s.entries[limit] = e
	}
	return e
}
