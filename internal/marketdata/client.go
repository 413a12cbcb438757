package marketdata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// MinFetchCount is the floor on how many events are requested upstream.
	MinFetchCount = 100
	// FetchMultiplier over-fetches relative to the requested limit. The
	// tool's own "active events" ordering does not reliably match true
	// volume ranking, so the client re-sorts locally before truncating.
	// This is a heuristic, not a guarantee: a sufficiently bad upstream
	// ordering could still exclude part of the true top-N.
	FetchMultiplier = 5
	// DefaultTimeout bounds a single CLI invocation.
	DefaultTimeout = 60 * time.Second
)

// Client invokes the polymarket CLI binary and parses its JSON output.
type Client struct {
	bin     string
	timeout time.Duration
}

// NewClient creates a Client for the given binary path. A zero timeout
// falls back to DefaultTimeout.
func NewClient(bin string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{bin: bin, timeout: timeout}
}

// Fetch returns the top `limit` active events sorted by total volume
// descending. It over-fetches from the CLI tool, re-sorts locally, and
// truncates. A failed invocation or unparseable output returns an error;
// callers treat that as "no data available now".
func (c *Client) Fetch(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 1
	}

	fetchCount := limit * FetchMultiplier
	if fetchCount < MinFetchCount {
		fetchCount = MinFetchCount
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.bin,
		"-o", "json", "events", "list",
		"--active", "true", "--limit", strconv.Itoa(fetchCount),
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("polymarket cli failed: %w (stderr: %s)", err, strings.TrimSpace(stderr.String()))
	}

	var events []Event
	if err := json.Unmarshal(stdout.Bytes(), &events); err != nil {
		return nil, fmt.Errorf("failed to parse cli output: %w", err)
	}

	SortByVolume(events)

	if len(events) > limit {
		events = events[:limit]
	}

	slog.Debug("events_fetched",
		"requested", fetchCount,
		"returned", len(events),
		"elapsed", time.Since(start),
	)

	return events, nil
}

// SortByVolume stable-sorts events by total volume descending. Events
// with missing or non-numeric volume sort as zero.
func SortByVolume(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].TotalVolume() > events[j].TotalVolume()
	})
}
