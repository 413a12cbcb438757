package web

import (
	"time"

	"github.com/polyboard/board/internal/contender"
	"github.com/polyboard/board/internal/format"
	"github.com/polyboard/board/internal/marketdata"
)

// Payload is the document served by the snapshot and stream endpoints.
type Payload struct {
	TS     string         `json:"ts"`
	TTL    int            `json:"ttl"`
	Events []EventPayload `json:"events"`
}

// EventPayload is one ranked event with formatted and raw fields. The
// web UI gets raw volumes alongside the formatted strings so it can sort
// and chart without re-parsing display text.
type EventPayload struct {
	Rank           int                `json:"rank"`
	Title          string             `json:"title"`
	Volume         string             `json:"volume"`
	Volume24h      string             `json:"volume24h"`
	VolumeRaw      float64            `json:"volumeRaw"`
	Volume24hRaw   float64            `json:"volume24hRaw"`
	EndDate        string             `json:"endDate"`
	ContenderCount int                `json:"contenderCount"`
	Contenders     []ContenderPayload `json:"contenders"`
}

// ContenderPayload is one outcome with its formatted price and a
// structured delta the browser can color itself.
type ContenderPayload struct {
	Name    string       `json:"name"`
	Price   string       `json:"price"`
	Delta   format.Delta `json:"delta"`
	EndDate string       `json:"endDate"`
}

// BuildPayload shapes ranked events into the API response document.
// Events are assumed already sorted by volume; rank is positional.
func BuildPayload(events []marketdata.Event, ttlSeconds int, now time.Time) Payload {
	out := Payload{
		TS:     now.UTC().Format("2006-01-02T15:04:05Z"),
		TTL:    ttlSeconds,
		Events: make([]EventPayload, 0, len(events)),
	}

	for idx, ev := range events {
		all := contender.Extract(ev)

		contenders := make([]ContenderPayload, 0, len(all))
		for _, c := range all {
			price := ""
			if c.Yes > 0 {
				price = format.PriceCents(c.Yes)
			}
			contenders = append(contenders, ContenderPayload{
				Name:    c.Name,
				Price:   price,
				Delta:   format.FormatDelta(c.Delta),
				EndDate: c.EndDate,
			})
		}

		title := ev.Title
		if title == "" {
			title = "?"
		}

		out.Events = append(out.Events, EventPayload{
			Rank:           idx + 1,
			Title:          title,
			Volume:         format.Volume(ev.Volume),
			Volume24h:      format.Volume(ev.Volume24hr),
			VolumeRaw:      ev.RawVolume(),
			Volume24hRaw:   ev.Volume24hr.Float64,
			EndDate:        ev.EndDateValue(),
			ContenderCount: len(all),
			Contenders:     contenders,
		})
	}

	return out
}
