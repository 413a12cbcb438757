package metrics

import (
	"testing"
	"time"
)

func TestSnapshotCounts(t *testing.T) {
	tr := NewTracker()
	tr.CacheHit()
	tr.CacheHit()
	tr.CacheMiss()
	tr.UpstreamError()

	snap := tr.Snapshot()
	if snap.CacheHits != 2 {
		t.Errorf("expected 2 cache hits, got %d", snap.CacheHits)
	}
	if snap.CacheMisses != 1 {
		t.Errorf("expected 1 cache miss, got %d", snap.CacheMisses)
	}
	if snap.UpstreamErrors != 1 {
		t.Errorf("expected 1 upstream error, got %d", snap.UpstreamErrors)
	}
	if snap.UptimeSeconds < 0 {
		t.Errorf("uptime went backwards: %f", snap.UptimeSeconds)
	}
}

func TestLastFetchOnlyOnSuccess(t *testing.T) {
	tr := NewTracker()

	// A failed attempt leaves the timestamp untouched.
	tr.CacheMiss()
	tr.UpstreamError()
	if got := tr.Snapshot().LastFetch; !got.IsZero() {
		t.Errorf("failed fetch should not set LastFetch, got %v", got)
	}

	before := time.Now()
	tr.CacheMiss()
	tr.FetchSucceeded()
	got := tr.Snapshot().LastFetch
	if got.Before(before) {
		t.Errorf("LastFetch %v predates the successful fetch at %v", got, before)
	}
}

func TestNilTrackerIsNoop(t *testing.T) {
	var tr *Tracker
	tr.CacheHit()
	tr.CacheMiss()
	tr.FetchSucceeded()
	tr.UpstreamError()

	if snap := tr.Snapshot(); snap != (Snapshot{}) {
		t.Errorf("nil tracker snapshot should be zero, got %+v", snap)
	}
}
