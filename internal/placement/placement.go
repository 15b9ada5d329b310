package placement

import "sort"

// Rect describes a dialog rectangle in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Point is a top-left corner position for a dialog.
type Point struct {
	X int
	Y int
}

// Size describes the usable display area. It bounds the fallback grid
// scan; the candidate search itself is not display-bounded.
type Size struct {
	Width  int
	Height int
}

// Params tunes the placement search. Build from DefaultParams or the
// config; a zero Params degenerates to packing against the screen origin.
type Params struct {
	AnchorX int
	AnchorY int
	Gap     int
}

// DefaultParams returns the standard anchor (10,10) with a 5px gap.
func DefaultParams() Params {
	return Params{AnchorX: 10, AnchorY: 10, Gap: 5}
}

// Overlaps reports whether two rectangles share interior area.
// Rectangles that only touch edges do not overlap.
func Overlaps(a, b Rect) bool {
	return !(a.X+a.Width <= b.X || b.X+b.Width <= a.X ||
		a.Y+a.Height <= b.Y || b.Y+b.Height <= a.Y)
}

func overlapsAny(r Rect, existing []Rect) bool {
	for _, e := range existing {
		if Overlaps(r, e) {
			return true
		}
	}
	return false
}

// FindPosition returns the top-left corner for a new width×height dialog
// that avoids every rectangle in existing, biased toward the anchor.
// Pure and deterministic: identical inputs always yield the same point.
// It never fails; when both the candidate search and the display-bounded
// grid scan come up empty, it returns the anchor even though the result
// may overlap.
func (p Params) FindPosition(existing []Rect, width, height int, display Size) Point {
	anchor := Point{X: p.AnchorX, Y: p.AnchorY}
	if len(existing) == 0 {
		return anchor
	}

	candidates := p.candidates(existing, width, height)

	// Closest to the anchor wins. The stable sort keeps generation order
	// for equidistant candidates, so the result is fully deterministic.
	sort.SliceStable(candidates, func(i, j int) bool {
		return distSq(candidates[i], anchor) < distSq(candidates[j], anchor)
	})

	for _, c := range candidates {
		if !overlapsAny(Rect{X: c.X, Y: c.Y, Width: width, Height: height}, existing) {
			return c
		}
	}

	if c, ok := p.ScanGrid(existing, width, height, display); ok {
		return c
	}

	return anchor
}

// candidates generates the anchor plus up to seven positions adjacent to
// each existing rectangle: one per side and three diagonals, each at gap
// distance. Left/above positions are clamped to the anchor coordinate on
// that axis only, matching the historical behavior. Duplicates collapse
// and negative coordinates are dropped.
func (p Params) candidates(existing []Rect, width, height int) []Point {
	seen := make(map[Point]struct{}, len(existing)*7+1)
	out := make([]Point, 0, len(existing)*7+1)
	add := func(pt Point) {
		if pt.X < 0 || pt.Y < 0 {
			return
		}
		if _, dup := seen[pt]; dup {
			return
		}
		seen[pt] = struct{}{}
		out = append(out, pt)
	}

	add(Point{X: p.AnchorX, Y: p.AnchorY})

	for _, e := range existing {
		right := e.X + e.Width + p.Gap
		below := e.Y + e.Height + p.Gap
		left := max(p.AnchorX, e.X-width-p.Gap)
		above := max(p.AnchorY, e.Y-height-p.Gap)

		add(Point{X: right, Y: e.Y})
		add(Point{X: left, Y: e.Y})
		add(Point{X: e.X, Y: below})
		add(Point{X: e.X, Y: above})
		add(Point{X: right, Y: below})
		add(Point{X: left, Y: below})
		add(Point{X: right, Y: above})
	}

	return out
}

// ScanGrid is the exhaustive fallback: it walks cells row-major from the
// anchor, stepping by the dialog size plus gap, and returns the first
// overlap-free cell whose corner lies inside the display bounds. The
// second return is false when the bounded area is exhausted or the
// display size is unknown.
func (p Params) ScanGrid(existing []Rect, width, height int, display Size) (Point, bool) {
	if display.Width <= 0 || display.Height <= 0 {
		return Point{}, false
	}

	stepX := width + p.Gap
	stepY := height + p.Gap
	if stepX <= 0 || stepY <= 0 {
		return Point{}, false
	}

	for y := p.AnchorY; y < display.Height; y += stepY {
		for x := p.AnchorX; x < display.Width; x += stepX {
			r := Rect{X: x, Y: y, Width: width, Height: height}
			if !overlapsAny(r, existing) {
				return Point{X: x, Y: y}, true
			}
		}
	}

	return Point{}, false
}

func distSq(a, b Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
