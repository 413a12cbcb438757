// Package marketdata fetches Polymarket event data from the external CLI tool.
package marketdata

import (
	"bytes"
	"strconv"
)

// Number decodes a JSON value that may arrive as a number, a quoted
// numeric string, or null. The Gamma API is inconsistent about which one
// it sends for volume fields, so all three must be accepted. Valid is
// false when the value was absent, null, or not numeric; Float64 is 0 in
// that case so sorting can treat missing volume as zero.
type Number struct {
	Float64 float64
	Valid   bool
}

// UnmarshalJSON never fails: a field that cannot be read as a number is
// recorded as invalid rather than aborting the surrounding event.
func (n *Number) UnmarshalJSON(data []byte) error {
	n.Float64 = 0
	n.Valid = false

	s := string(bytes.TrimSpace(data))
	if s == "" || s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}

	n.Float64 = f
	n.Valid = true
	return nil
}

// Market represents one outcome within an event, as emitted by the CLI tool.
type Market struct {
	GroupItemTitle    string  `json:"groupItemTitle"`
	Question          string  `json:"question"`
	OutcomePrices     string  `json:"outcomePrices"` // JSON array as string, e.g. "[\"0.94\",\"0.06\"]"
	OneDayPriceChange *Number `json:"oneDayPriceChange"`
	EndDate           string  `json:"endDate"`
	EndDateISO        string  `json:"endDateIso"`
}

// Event represents a Polymarket event from the CLI tool's JSON output.
type Event struct {
	Title      string   `json:"title"`
	Volume     Number   `json:"volume"`
	Volume24hr Number   `json:"volume24hr"`
	VolumeNum  Number   `json:"volumeNum"`
	EndDate    string   `json:"endDate"`
	EndDateISO string   `json:"endDateIso"`
	Markets    []Market `json:"markets"`
}

// TotalVolume returns the volume used for ranking. Missing or malformed
// volume ranks as zero.
func (e Event) TotalVolume() float64 {
	return e.Volume.Float64
}

// RawVolume returns the best available numeric total volume for the API,
// preferring the pre-parsed volumeNum field.
func (e Event) RawVolume() float64 {
	if e.VolumeNum.Valid {
		return e.VolumeNum.Float64
	}
	return e.Volume.Float64
}

// EndDateValue resolves the event end date, preferring the ISO variant.
func (e Event) EndDateValue() string {
	if e.EndDateISO != "" {
		return e.EndDateISO
	}
	return e.EndDate
}

// EndDateValue resolves the market end date, preferring the ISO variant.
func (m Market) EndDateValue() string {
	if m.EndDateISO != "" {
		return m.EndDateISO
	}
	return m.EndDate
}
