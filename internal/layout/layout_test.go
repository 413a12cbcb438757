package layout

import "testing"

func TestComputeWideTerminal(t *testing.T) {
	spec := Default()

	// 200 columns fits all five contender groups with room to spare.
	l := spec.Compute(200, DefaultMaxContenders)
	if l.Contenders != 5 {
		t.Errorf("expected 5 contenders at width 200, got %d", l.Contenders)
	}
	// total(5, 8) = 175, leftover 25 spread over 5 name columns
	if l.NameWidth != 13 {
		t.Errorf("expected name width 13, got %d", l.NameWidth)
	}
	if spec.TotalWidth(l.Contenders, l.NameWidth) > 200 {
		t.Errorf("layout overflows terminal: %d > 200", spec.TotalWidth(l.Contenders, l.NameWidth))
	}
}

func TestComputeNarrowTerminal(t *testing.T) {
	spec := Default()

	l := spec.Compute(120, DefaultMaxContenders)
	if l.Contenders != 2 {
		t.Errorf("expected 2 contenders at width 120, got %d", l.Contenders)
	}
	if total := spec.TotalWidth(l.Contenders, l.NameWidth); total > 120 {
		t.Errorf("layout overflows terminal: %d > 120", total)
	}
}

func TestComputeNeverReturnsZeroContenders(t *testing.T) {
	spec := Default()

	// Far below the single-contender minimum: still one group, name
	// width stays at the floor.
	l := spec.Compute(40, DefaultMaxContenders)
	if l.Contenders != 1 {
		t.Errorf("expected 1 contender at width 40, got %d", l.Contenders)
	}
	if l.NameWidth != spec.MinNameWidth {
		t.Errorf("expected name width %d at width 40, got %d", spec.MinNameWidth, l.NameWidth)
	}
}

func TestComputeProperties(t *testing.T) {
	spec := Default()

	for width := 10; width <= 300; width++ {
		for max := 1; max <= 8; max++ {
			l := spec.Compute(width, max)

			if l.Contenders < 1 || l.Contenders > max {
				t.Fatalf("width=%d max=%d: contender count %d out of range", width, max, l.Contenders)
			}
			if l.NameWidth < spec.MinNameWidth {
				t.Fatalf("width=%d max=%d: name width %d below minimum", width, max, l.NameWidth)
			}

			// Whenever any count fits at minimum name width, the chosen
			// layout must fit too.
			if spec.TotalWidth(1, spec.MinNameWidth) <= width {
				if total := spec.TotalWidth(l.Contenders, l.NameWidth); total > width {
					t.Fatalf("width=%d max=%d: reconstructed total %d exceeds available", width, max, total)
				}
			}

			// A larger count must not have fit at minimum name width.
			if l.Contenders < max {
				if spec.TotalWidth(l.Contenders+1, spec.MinNameWidth) <= width {
					t.Fatalf("width=%d max=%d: could have fit %d contenders but chose %d",
						width, max, l.Contenders+1, l.Contenders)
				}
			}
		}
	}
}

func TestComputeClampsMaxContenders(t *testing.T) {
	spec := Default()

	l := spec.Compute(500, 0)
	if l.Contenders != 1 {
		t.Errorf("expected max contenders clamped to 1, got %d", l.Contenders)
	}
}
