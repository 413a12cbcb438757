package ui

import (
	"regexp"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/polyboard/board/internal/layout"
	"github.com/polyboard/board/internal/marketdata"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func num(f float64) marketdata.Number {
	return marketdata.Number{Float64: f, Valid: true}
}

func testEvents() []marketdata.Event {
	delta := marketdata.Number{Float64: 0.02, Valid: true}
	return []marketdata.Event{
		{
			Title:      "Presidential Election Winner 2028",
			Volume:     num(12_000_000),
			Volume24hr: num(450_000),
			Markets: []marketdata.Market{
				{GroupItemTitle: "Candidate A", OutcomePrices: `["0.55","0.45"]`, OneDayPriceChange: &delta},
				{GroupItemTitle: "Candidate B", OutcomePrices: `["0.30","0.70"]`},
			},
		},
		{
			Title:      "Fed decision in September",
			Volume:     num(800_000),
			Volume24hr: num(90_000),
			Markets: []marketdata.Market{
				{GroupItemTitle: "Cut", OutcomePrices: `["0.80","0.20"]`},
			},
		},
	}
}

func TestRenderEmpty(t *testing.T) {
	out := stripANSI(Render(nil, 200, time.Now()))
	if !strings.Contains(out, "No data available.") {
		t.Errorf("expected no-data notice, got %q", out)
	}
}

func TestRenderComposition(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)
	out := stripANSI(Render(testEvents(), 200, now))

	for _, want := range []string{
		"POLYMARKET",
		"Top 2 Events by Volume",
		"Aug 28  14:30",
		"Event", "Total", "24h", "Prc¢", "Δ24h",
		"Presidential Election Winner 2028",
		"$12.0M", "$450K",
		"Candidate A", "55¢", "▲+2.0",
		"Cut", "80¢",
		"▲ up", "▼ down",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}

func TestRenderRowsAligned(t *testing.T) {
	width := 160
	out := stripANSI(Render(testEvents(), width, time.Now()))
	lines := strings.Split(out, "\n")

	// Collect the column header row and the event rows; they must all
	// share the same visible width and fit the terminal.
	var table []string
	inTable := false
	for _, line := range lines {
		if strings.Contains(line, "Prc¢") {
			inTable = true
		}
		if !inTable {
			continue
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		if strings.Contains(line, "━") {
			continue
		}
		table = append(table, line)
	}

	if len(table) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(table))
	}

	first := utf8.RuneCountInString(table[0])
	for i, line := range table {
		w := utf8.RuneCountInString(line)
		if w != first {
			t.Errorf("line %d width %d differs from header width %d:\n%q", i, w, first, line)
		}
		if w > width {
			t.Errorf("line %d width %d exceeds terminal width %d", i, w, width)
		}
	}
}

func TestRenderMatchesLayout(t *testing.T) {
	width := 110
	spec := layout.Default()
	l := spec.Compute(width, layout.DefaultMaxContenders)

	out := stripANSI(Render(testEvents(), width, time.Now()))

	// One "#n" contender header per negotiated group.
	for i := 1; i <= l.Contenders; i++ {
		if !strings.Contains(out, "#"+string(rune('0'+i))) {
			t.Errorf("missing contender group header #%d", i)
		}
	}
	if strings.Contains(out, "#"+string(rune('0'+l.Contenders+1))) {
		t.Errorf("rendered more contender groups than layout chose (%d)", l.Contenders)
	}
}
