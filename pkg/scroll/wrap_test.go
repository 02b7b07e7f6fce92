package scroll

import "testing"

func TestNormalizeIndex(t *testing.T) {
	cases := []struct {
		i, n, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{7, 5, 2},
		{-1, 5, 4},
		{-5, 5, 0},
		{-7, 5, 3},
		{3, 0, 0},
	}
	for _, c := range cases {
		if got := NormalizeIndex(c.i, c.n); got != c.want {
			t.Errorf("NormalizeIndex(%d, %d) = %d, want %d", c.i, c.n, got, c.want)
		}
	}
}

// relativeSlots collects slot-current for every ordinal.
func relativeSlots(current, n int, dir Direction) map[int]bool {
	set := make(map[int]bool)
	for ord := 0; ord < n; ord++ {
		set[Slot(ord, current, n, dir, 2, 4)-current] = true
	}
	return set
}

func TestWindowAsymmetry(t *testing.T) {
	n := 5

	// Scrolling right: 2 slides ahead, the rest behind.
	right := relativeSlots(0, n, DirectionRight)
	for _, want := range []int{-2, -1, 0, 1, 2} {
		if !right[want] {
			t.Errorf("right window: missing relative slot %d (got %v)", want, right)
		}
	}

	// Scrolling left: 4 slides behind, none ahead.
	left := relativeSlots(0, n, DirectionLeft)
	for _, want := range []int{-4, -3, -2, -1, 0} {
		if !left[want] {
			t.Errorf("left window: missing relative slot %d (got %v)", want, left)
		}
	}

	// No direction yet behaves like scrolling right (initial layout).
	none := relativeSlots(0, n, DirectionNone)
	for want := range right {
		if !none[want] {
			t.Errorf("none window: missing relative slot %d", want)
		}
	}
}

// The window shifts by one when the index advances by one: each slide
// keeps its slot or jumps by exactly one full revolution, and only the
// slide leaving the window jumps. Holds for any slide count.
func TestSlotRecycling(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for current := -7; current < 12; current++ {
			jumps := 0
			for ord := 0; ord < n; ord++ {
				before := Slot(ord, current, n, DirectionRight, 2, 4)
				after := Slot(ord, current+1, n, DirectionRight, 2, 4)
				switch after - before {
				case 0:
				case n:
					jumps++
				default:
					t.Fatalf("n %d current %d ordinal %d: slot moved %d -> %d",
						n, current, ord, before, after)
				}
			}
			if jumps != 1 {
				t.Errorf("n %d current %d: expected exactly one recycled slide, got %d",
					n, current, jumps)
			}
		}
	}
}

// The slide whose ordinal matches the normalized current index always
// occupies the center slot, for every slide count and both directions.
// Small counts are the treacherous case: a window narrower than the
// 2/4 margins must clamp instead of pushing slot 0 out.
func TestCenterSlideAtCurrent(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for _, dir := range []Direction{DirectionNone, DirectionLeft, DirectionRight} {
			for current := -13; current <= 13; current++ {
				ord := NormalizeIndex(current, n)
				if got := Slot(ord, current, n, dir, 2, 4); got != current {
					t.Errorf("n %d dir %v current %d: center slide at slot %d",
						n, dir, current, got)
				}
			}
		}
	}
}

// The relative-slot window is always n consecutive integers containing
// zero; the 2-ahead / 4-behind margins apply whenever the count leaves
// room for them.
func TestWindowShapeForAllCounts(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for _, dir := range []Direction{DirectionLeft, DirectionRight} {
			for current := -6; current <= 6; current++ {
				set := make(map[int]bool, n)
				lo, hi := 0, 0
				for ord := 0; ord < n; ord++ {
					r := Slot(ord, current, n, dir, 2, 4) - current
					set[r] = true
					if r < lo {
						lo = r
					}
					if r > hi {
						hi = r
					}
				}
				if len(set) != n || hi-lo != n-1 {
					t.Fatalf("n %d dir %v current %d: window not contiguous: %v", n, dir, current, set)
				}
				if !set[0] {
					t.Fatalf("n %d dir %v current %d: window lost slot 0: %v", n, dir, current, set)
				}
				if dir == DirectionRight && n >= 3 && hi != 2 {
					t.Errorf("n %d right: lookahead %d, want 2", n, hi)
				}
				if dir == DirectionLeft && n >= 5 && lo != -4 {
					t.Errorf("n %d left: lookbehind %d, want -4", n, lo)
				}
			}
		}
	}
}

func TestNearestWrappedIndex(t *testing.T) {
	cases := []struct {
		current, target, n, want int
	}{
		{0, 2, 5, 2},   // forward, short way
		{0, 4, 5, -1},  // backward is shorter
		{3, 0, 5, 5},   // forward wrap is shorter
		{7, 2, 5, 7},   // already there (7 ≡ 2 mod 5)
		{-3, 4, 5, -1}, // negative current
	}
	for _, c := range cases {
		got := NearestWrappedIndex(c.current, c.target, c.n)
		if got != c.want {
			t.Errorf("NearestWrappedIndex(%d, %d, %d) = %d, want %d",
				c.current, c.target, c.n, got, c.want)
		}
		if NormalizeIndex(got, c.n) != NormalizeIndex(c.target, c.n) {
			t.Errorf("result %d does not normalize to target %d", got, c.target)
		}
	}
}
