// Package metrics provides fetch and cache counters for the system.
package metrics

import (
	"sync"
	"time"
)

// Snapshot is a point-in-time view of the tracker.
type Snapshot struct {
	CacheHits      int64     `json:"cacheHits"`
	CacheMisses    int64     `json:"cacheMisses"`
	UpstreamErrors int64     `json:"upstreamErrors"`
	LastFetch      time.Time `json:"lastFetch"`
	UptimeSeconds  float64   `json:"uptimeSeconds"`
}

// Tracker provides thread-safe counters. A nil Tracker is a no-op, so
// callers that do not care about stats can pass nothing.
type Tracker struct {
	mu             sync.Mutex
	cacheHits      int64
	cacheMisses    int64
	upstreamErrors int64
	lastFetch      time.Time
	startTime      time.Time
}

// NewTracker creates a Tracker with uptime starting now.
func NewTracker() *Tracker {
	return &Tracker{startTime: time.Now()}
}

// CacheHit records a request served from a fresh cache entry.
func (t *Tracker) CacheHit() {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cacheHits++
}

// CacheMiss records a request that triggered an upstream fetch.
func (t *Tracker) CacheMiss() {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cacheMisses++
}

// FetchSucceeded records the completion time of a successful upstream
// fetch. Failed attempts do not move the timestamp, so LastFetch always
// points at real data.
func (t *Tracker) FetchSucceeded() {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastFetch = time.Now()
}

// UpstreamError records a failed upstream fetch.
func (t *Tracker) UpstreamError() {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.upstreamErrors++
}

// Snapshot returns a copy of the current counters.
func (t *Tracker) Snapshot() Snapshot {
	if t == nil {
		return Snapshot{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	return Snapshot{
		CacheHits:      t.cacheHits,
		CacheMisses:    t.cacheMisses,
		UpstreamErrors: t.upstreamErrors,
		LastFetch:      t.lastFetch,
		UptimeSeconds:  time.Since(t.startTime).Seconds(),
	}
}
