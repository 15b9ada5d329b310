package placement

import "testing"

var display = Size{Width: 1920, Height: 1080}

func TestFindPosition_EmptyReturnsAnchor(t *testing.T) {
	p := DefaultParams()

	pos := p.FindPosition(nil, 300, 200, display)
	if pos.X != 10 || pos.Y != 10 {
		t.Fatalf("expected anchor (10,10), got (%d,%d)", pos.X, pos.Y)
	}
}

func TestFindPosition_PrefersCloserCandidate(t *testing.T) {
	p := DefaultParams()
	existing := []Rect{{X: 10, Y: 10, Width: 100, Height: 50}}

	// Candidates for a second 100x50 dialog include below at (10,65)
	// (dist²=55²=3025) and right at (115,10) (dist²=105²=11025).
	// Below is closer to the anchor and must win.
	pos := p.FindPosition(existing, 100, 50, display)
	if pos.X != 10 || pos.Y != 65 {
		t.Fatalf("expected (10,65), got (%d,%d)", pos.X, pos.Y)
	}
}

func TestFindPosition_EquidistantTieKeepsGenerationOrder(t *testing.T) {
	// With the anchor at the origin and no gap, the right candidate
	// (10,0) and the below candidate (0,10) are equidistant. Right is
	// generated first and must win the tie.
	p := Params{AnchorX: 0, AnchorY: 0, Gap: 0}
	existing := []Rect{{X: 0, Y: 0, Width: 10, Height: 10}}

	pos := p.FindPosition(existing, 10, 10, display)
	if pos.X != 10 || pos.Y != 0 {
		t.Fatalf("expected (10,0), got (%d,%d)", pos.X, pos.Y)
	}
}

func TestFindPosition_LeftAndAboveClampToAnchor(t *testing.T) {
	p := DefaultParams()
	// A dialog wider than the space left of the existing rectangle:
	// the left candidate clamps to anchor x and the above candidate to
	// anchor y, so clamped positions still compete.
	existing := []Rect{{X: 50, Y: 50, Width: 40, Height: 40}}

	pos := p.FindPosition(existing, 100, 100, display)
	// Clamped bottom-left (10,95) and unclamped top-right (95,10) tie
	// at dist²=7225; bottom-left is generated first.
	if pos.X != 10 || pos.Y != 95 {
		t.Fatalf("expected (10,95), got (%d,%d)", pos.X, pos.Y)
	}
}

func TestFindPosition_AnchorWinsWhenFree(t *testing.T) {
	p := DefaultParams()
	existing := []Rect{{X: 500, Y: 500, Width: 200, Height: 200}}

	pos := p.FindPosition(existing, 300, 200, display)
	if pos.X != 10 || pos.Y != 10 {
		t.Fatalf("expected free anchor (10,10), got (%d,%d)", pos.X, pos.Y)
	}
}

func TestFindPosition_Deterministic(t *testing.T) {
	p := DefaultParams()
	existing := []Rect{
		{X: 10, Y: 10, Width: 300, Height: 200},
		{X: 315, Y: 10, Width: 300, Height: 200},
		{X: 10, Y: 215, Width: 400, Height: 100},
	}

	first := p.FindPosition(existing, 250, 150, display)
	for i := 0; i < 10; i++ {
		got := p.FindPosition(existing, 250, 150, display)
		if got != first {
			t.Fatalf("run %d: expected %+v, got %+v", i, first, got)
		}
	}
}

func TestFindPosition_SequentialOpensNeverOverlap(t *testing.T) {
	p := DefaultParams()
	sizes := []Size{
		{320, 200}, {520, 320}, {420, 560}, {320, 200},
		{200, 200}, {640, 120}, {320, 200}, {100, 100},
	}

	var placed []Rect
	for i, s := range sizes {
		pos := p.FindPosition(placed, s.Width, s.Height, display)
		r := Rect{X: pos.X, Y: pos.Y, Width: s.Width, Height: s.Height}
		for j, e := range placed {
			if Overlaps(r, e) {
				t.Fatalf("dialog %d %+v overlaps dialog %d %+v", i, r, j, e)
			}
		}
		placed = append(placed, r)
	}
}

func TestFindPosition_NegativeCandidatesDropped(t *testing.T) {
	// Anchor at the origin with a gap: right/below of a rectangle at
	// the origin stay non-negative, and the clamp keeps left/above at
	// zero rather than letting them go negative.
	p := Params{AnchorX: 0, AnchorY: 0, Gap: 5}
	existing := []Rect{{X: 0, Y: 0, Width: 50, Height: 50}}

	pos := p.FindPosition(existing, 200, 200, display)
	if pos.X < 0 || pos.Y < 0 {
		t.Fatalf("got negative position (%d,%d)", pos.X, pos.Y)
	}
}

func TestScanGrid_FirstFreeCellIsGridAligned(t *testing.T) {
	p := DefaultParams()
	// Cells for a 30x20 dialog start at x=10,45,80 and y=10,35,60,85.
	// A wide bar over the top blocks the y=10 and y=35 rows, so the
	// first free cell is (10,60).
	existing := []Rect{{X: 0, Y: 0, Width: 200, Height: 40}}

	pos, ok := p.ScanGrid(existing, 30, 20, Size{Width: 100, Height: 100})
	if !ok {
		t.Fatalf("expected a free cell")
	}
	if pos.X != 10 || pos.Y != 60 {
		t.Fatalf("expected (10,60), got (%d,%d)", pos.X, pos.Y)
	}
	if (pos.X-10)%35 != 0 || (pos.Y-10)%25 != 0 {
		t.Fatalf("position (%d,%d) is not grid-aligned", pos.X, pos.Y)
	}
}

func TestScanGrid_ExhaustedReturnsFalse(t *testing.T) {
	p := DefaultParams()
	existing := []Rect{{X: 0, Y: 0, Width: 200, Height: 200}}

	if _, ok := p.ScanGrid(existing, 50, 50, Size{Width: 100, Height: 100}); ok {
		t.Fatalf("expected no free cell on a fully covered display")
	}
}

func TestScanGrid_UnknownDisplayReturnsFalse(t *testing.T) {
	p := DefaultParams()

	if _, ok := p.ScanGrid(nil, 50, 50, Size{}); ok {
		t.Fatalf("expected failure for zero display size")
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"identical", Rect{0, 0, 10, 10}, Rect{0, 0, 10, 10}, true},
		{"contained", Rect{0, 0, 100, 100}, Rect{20, 20, 10, 10}, true},
		{"partial", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"disjoint", Rect{0, 0, 10, 10}, Rect{50, 50, 10, 10}, false},
		{"touching right edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"touching bottom edge", Rect{0, 0, 10, 10}, Rect{0, 10, 10, 10}, false},
		{"touching corner", Rect{0, 0, 10, 10}, Rect{10, 10, 10, 10}, false},
		{"one pixel overlap", Rect{0, 0, 10, 10}, Rect{9, 9, 10, 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Fatalf("Overlaps(%+v, %+v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Overlap is symmetric.
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Fatalf("Overlaps(%+v, %+v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}
