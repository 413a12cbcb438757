// Package contender ranks the outcome markets within an event.
package contender

import (
	"encoding/json"
	"sort"

	"github.com/polyboard/board/internal/marketdata"
)

// defaultPrices stands in for an absent outcomePrices field: a market
// with no quoted prices is treated as 0% yes.
const defaultPrices = "[0,1]"

// Contender is one outcome market reduced to its display essentials.
type Contender struct {
	// Name is the outcome label, resolved from groupItemTitle, then
	// question, then a "?" placeholder.
	Name string

	// Yes is the current yes-probability in [0,1]; 0 when unparseable.
	Yes float64

	// Delta is the 24h price change as a fraction, nil when the upstream
	// field is null, absent, or non-numeric.
	Delta *float64

	// EndDate is the market end date, when present.
	EndDate string
}

// Extract returns all contenders of an event, stable-sorted by
// yes-probability descending. Ties keep the upstream market order.
func Extract(ev marketdata.Event) []Contender {
	contenders := make([]Contender, 0, len(ev.Markets))

	for _, m := range ev.Markets {
		contenders = append(contenders, Contender{
			Name:    resolveName(m),
			Yes:     yesPrice(m.OutcomePrices),
			Delta:   deltaValue(m.OneDayPriceChange),
			EndDate: m.EndDateValue(),
		})
	}

	sort.SliceStable(contenders, func(i, j int) bool {
		return contenders[i].Yes > contenders[j].Yes
	})

	return contenders
}

// Top returns at most k contenders, sorted by yes-probability descending.
func Top(ev marketdata.Event, k int) []Contender {
	contenders := Extract(ev)
	if k >= 0 && len(contenders) > k {
		contenders = contenders[:k]
	}
	return contenders
}

// resolveName picks the display name from the ordered candidate fields.
func resolveName(m marketdata.Market) string {
	if m.GroupItemTitle != "" {
		return m.GroupItemTitle
	}
	if m.Question != "" {
		return m.Question
	}
	return "?"
}

// yesPrice decodes the string-encoded outcomePrices array and returns its
// first element. Any decode failure degrades to 0.0 rather than dropping
// the market.
func yesPrice(raw string) float64 {
	if raw == "" {
		raw = defaultPrices
	}

	var prices []marketdata.Number
	if err := json.Unmarshal([]byte(raw), &prices); err != nil {
		return 0
	}
	if len(prices) == 0 {
		return 0
	}
	return prices[0].Float64
}

// deltaValue converts the optional 24h change into a plain pointer,
// dropping values the upstream sent as null or garbage.
func deltaValue(n *marketdata.Number) *float64 {
	if n == nil || !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}
