// Package ui renders the event table for the terminal, in single-shot
// and auto-refresh modes.
package ui

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/polyboard/board/internal/contender"
	"github.com/polyboard/board/internal/format"
	"github.com/polyboard/board/internal/layout"
	"github.com/polyboard/board/internal/marketdata"
)

// DefaultWidth is assumed when the output is not a terminal.
const DefaultWidth = 200

// ANSI styles. The renderer colors cells after padding, so escape
// sequences never count toward column widths.
const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiDim       = "\x1b[2m"
	ansiItalic    = "\x1b[3m"
	ansiRed       = "\x1b[31m"
	ansiGreen     = "\x1b[32m"
	ansiCyan      = "\x1b[36m"
	ansiGray      = "\x1b[90m"
	ansiHeaderBar = "\x1b[30;106m" // black on bright cyan
)

// TerminalWidth reports the current width of stdout, or DefaultWidth
// when stdout is not a terminal.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}

// Render composes the header, the adaptive table, and the footer legend
// into one printable string. An empty event list renders a short notice
// instead of an empty table.
func Render(events []marketdata.Event, width int, now time.Time) string {
	if len(events) == 0 {
		return ansiRed + "No data available." + ansiReset + "\n"
	}

	var b strings.Builder
	b.WriteString(renderHeader(len(events), now))
	b.WriteString(renderTable(events, width))
	b.WriteString(renderFooter())
	return b.String()
}

// renderHeader builds the title bar: badge, event count, timestamp.
func renderHeader(n int, now time.Time) string {
	return fmt.Sprintf(" %s POLYMARKET %s  %sTop %d Events by Volume%s  %s%s%s\n\n",
		ansiHeaderBar, ansiReset,
		ansiBold, n, ansiReset,
		ansiDim+ansiCyan, now.Format("Jan 02  15:04"), ansiReset,
	)
}

// renderTable negotiates the column layout for the given width and
// builds the header row, rule, and one row per event.
func renderTable(events []marketdata.Event, width int) string {
	spec := layout.Default()
	l := spec.Compute(width, layout.DefaultMaxContenders)

	var b strings.Builder

	// Header row
	cells := []string{
		style(padLeft("#", spec.RankWidth), ansiBold),
		style(padRight("Event", l.EventWidth), ansiBold),
		style(padLeft("Total", spec.VolumeWidth), ansiBold),
		style(padLeft("24h", spec.DayWidth), ansiBold),
	}
	for i := 1; i <= l.Contenders; i++ {
		cells = append(cells,
			style(padRight(fmt.Sprintf("#%d", i), l.NameWidth), ansiBold),
			style(padLeft("Prc¢", spec.PriceWidth), ansiBold),
			style(padLeft("Δ24h", spec.DeltaWidth), ansiBold),
		)
	}
	b.WriteString(" " + strings.Join(cells, " ") + " \n")

	rule := spec.TotalWidth(l.Contenders, l.NameWidth)
	if rule > width {
		rule = width
	}
	b.WriteString(ansiGray + strings.Repeat("━", rule) + ansiReset + "\n")

	for idx, ev := range events {
		b.WriteString(renderRow(idx+1, ev, spec, l))
	}

	return b.String()
}

// renderRow builds one event row, padding contenders out to the chosen
// count so the columns stay aligned.
func renderRow(rank int, ev marketdata.Event, spec layout.Spec, l layout.Result) string {
	contenders := contender.Top(ev, l.Contenders)
	for len(contenders) < l.Contenders {
		contenders = append(contenders, contender.Contender{})
	}

	title := ev.Title
	if title == "" {
		title = "?"
	}

	cells := []string{
		style(padLeft(fmt.Sprintf("%d", rank), spec.RankWidth), ansiDim),
		style(padRight(format.Truncate(title, l.EventWidth), l.EventWidth), ansiBold),
		padLeft(format.Volume(ev.Volume), spec.VolumeWidth),
		style(padLeft(format.Volume(ev.Volume24hr), spec.DayWidth), ansiDim+ansiCyan),
	}

	for _, c := range contenders {
		price := ""
		if c.Yes > 0 {
			price = format.PriceCents(c.Yes)
		}

		delta := format.FormatDelta(c.Delta)

		cells = append(cells,
			style(padRight(format.Truncate(c.Name, l.NameWidth), l.NameWidth), ansiItalic),
			padLeft(price, spec.PriceWidth),
			style(padLeft(delta.Text, spec.DeltaWidth), deltaStyle(delta.Direction)),
		)
	}

	return " " + strings.Join(cells, " ") + " \n"
}

// renderFooter builds the legend line.
func renderFooter() string {
	return fmt.Sprintf("\n %sDeltas:%s %s▲ up%s %s▼ down%s   %sPrices = probability in cents%s   %s[Ctrl-C] quit%s\n",
		ansiDim, ansiReset,
		ansiGreen, ansiReset,
		ansiRed, ansiReset,
		ansiDim, ansiReset,
		ansiGray, ansiReset,
	)
}

// deltaStyle maps a delta direction to its color.
func deltaStyle(d format.Direction) string {
	switch d {
	case format.DirectionUp:
		return ansiGreen
	case format.DirectionDown:
		return ansiRed
	default:
		return ansiDim
	}
}

// style wraps already-padded text in an ANSI style.
func style(s, code string) string {
	if code == "" {
		return s
	}
	return code + s + ansiReset
}

// padRight left-justifies s in a cell of n terminal columns.
func padRight(s string, n int) string {
	gap := n - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// padLeft right-justifies s in a cell of n terminal columns.
func padLeft(s string, n int) string {
	gap := n - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}
