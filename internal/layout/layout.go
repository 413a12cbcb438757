// Package layout computes the adaptive column layout for the terminal table.
//
// The table has four fixed columns (rank, event title, total volume, 24h
// volume) followed by up to maxContenders groups of three columns each
// (name, price, delta). When the terminal is narrow, whole contender
// groups are dropped before any fixed column shrinks; when it is wide,
// the slack widens the contender name columns.
package layout

// DefaultMaxContenders is how many contender groups the table aims for.
const DefaultMaxContenders = 5

// Spec declares the content widths the layout is derived from. All
// widths are in terminal cells, excluding separators and edge padding.
type Spec struct {
	RankWidth   int // "#" column, e.g. "10"
	EventWidth  int // event title column
	VolumeWidth int // total volume, e.g. "$123.4M"
	DayWidth    int // 24h volume

	PriceWidth int // per contender, e.g. "100¢", "<1¢"
	DeltaWidth int // per contender, e.g. "▼-0.4", "▲+1.5"

	MinNameWidth int // per-contender name column floor
	EdgePadding  int // left+right table edge cells
}

// Default returns the layout constants used by the dashboard.
func Default() Spec {
	return Spec{
		RankWidth:    3,
		EventWidth:   35,
		VolumeWidth:  9,
		DayWidth:     8,
		PriceWidth:   5,
		DeltaWidth:   7,
		MinNameWidth: 8,
		EdgePadding:  2,
	}
}

// Result is a negotiated layout for one terminal width.
type Result struct {
	// Contenders is the number of contender groups that fit, always >= 1.
	Contenders int

	// NameWidth is the width of each contender name column, never below
	// Spec.MinNameWidth.
	NameWidth int

	// EventWidth is the event title column width (currently fixed).
	EventWidth int
}

// TotalWidth reconstructs the full rendered width for n contender groups
// at the given name width: fixed columns + contender groups + one
// separator cell per column boundary + edge padding.
func (s Spec) TotalWidth(n, nameWidth int) int {
	fixed := s.RankWidth + s.EventWidth + s.VolumeWidth + s.DayWidth
	separators := 3 + n*3 // 4+3n columns, one cell between each pair
	return fixed + n*(nameWidth+s.PriceWidth+s.DeltaWidth) + separators + s.EdgePadding
}

// Compute picks the largest contender count from maxContenders down to 1
// that fits in the available width at the minimum name width, then
// distributes any leftover width evenly across the name columns. If even
// one contender group does not fit, it still returns one: the table
// never renders zero contender columns.
func (s Spec) Compute(available, maxContenders int) Result {
	if maxContenders < 1 {
		maxContenders = 1
	}

	n := 0
	for k := maxContenders; k >= 1; k-- {
		if s.TotalWidth(k, s.MinNameWidth) <= available {
			n = k
			break
		}
	}
	if n == 0 {
		n = 1
	}

	leftover := available - s.TotalWidth(n, s.MinNameWidth)
	if leftover < 0 {
		leftover = 0
	}

	return Result{
		Contenders: n,
		NameWidth:  s.MinNameWidth + leftover/n,
		EventWidth: s.EventWidth,
	}
}
