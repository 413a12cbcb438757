// Package format provides pure display-formatting helpers.
//
// Every function here is stateless: same input, same output. Color is
// deliberately not applied here — the terminal renderer colors padded
// text and the web API serializes the structured values as-is.
package format

import (
	"fmt"
	"math"

	"github.com/polyboard/board/internal/marketdata"
)

// Placeholder marks an absent or unusable value.
const Placeholder = "—"

// deltaNoiseFloor is the magnitude in cents below which a 24h change is
// displayed as flat.
const deltaNoiseFloor = 0.05

// Direction is the three-way movement tag attached to a delta.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// Delta is a formatted 24h price change. Text carries the arrow and the
// signed one-decimal cents value ("▲+1.5", "▼-2.0") or the placeholder.
type Delta struct {
	Text      string    `json:"text"`
	Direction Direction `json:"direction"`
}

// Volume renders a dollar volume with a magnitude suffix:
// $1.5M / $3K / $999. Absent or non-numeric input renders the placeholder.
func Volume(v marketdata.Number) string {
	if !v.Valid {
		return Placeholder
	}

	n := v.Float64
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("$%.1fM", n/1_000_000)
	case n >= 1_000:
		// math.Round so $2,500 becomes $3K, not the half-even $2K.
		return fmt.Sprintf("$%.0fK", math.Round(n/1_000))
	default:
		return fmt.Sprintf("$%.0f", math.Round(n))
	}
}

// PriceCents renders a yes-probability as whole cents: <1¢ / 94¢ / 100¢.
func PriceCents(yes float64) string {
	cents := yes * 100
	if cents < 1 {
		return "<1¢"
	}
	return fmt.Sprintf("%.0f¢", cents)
}

// FormatDelta renders a fractional 24h price change as a directional
// value. Nil input and magnitudes below the noise floor are flat.
func FormatDelta(delta *float64) Delta {
	if delta == nil {
		return Delta{Text: Placeholder, Direction: DirectionFlat}
	}

	cents := *delta * 100
	if math.Abs(cents) < deltaNoiseFloor {
		return Delta{Text: Placeholder, Direction: DirectionFlat}
	}

	if cents > 0 {
		return Delta{Text: fmt.Sprintf("▲+%.1f", cents), Direction: DirectionUp}
	}
	return Delta{Text: fmt.Sprintf("▼%.1f", cents), Direction: DirectionDown}
}

// Truncate bounds s to n runes, replacing the final rune with an
// ellipsis when cut. The result never exceeds n runes.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 0 {
		return ""
	}
	return string(runes[:n-1]) + "…"
}
