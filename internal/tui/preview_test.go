package tui

import (
	"strings"
	"testing"

	"github.com/1broseidon/paneldock/internal/placement"
)

func TestRenderMap_Dimensions(t *testing.T) {
	display := placement.Size{Width: 1920, Height: 1080}

	lines := renderMap(nil, display, 40, 12)
	if len(lines) != 12 {
		t.Fatalf("expected 12 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 40 {
			t.Fatalf("line %d has %d runes, want 40", i, n)
		}
	}
}

func TestRenderMap_DrawsBorderAndDialog(t *testing.T) {
	display := placement.Size{Width: 1000, Height: 1000}
	rects := []placement.Rect{{X: 100, Y: 100, Width: 500, Height: 500}}

	lines := renderMap(rects, display, 40, 12)

	if !strings.HasPrefix(lines[0], "╔") || !strings.HasSuffix(lines[0], "╗") {
		t.Fatalf("missing top border: %q", lines[0])
	}
	if !strings.HasPrefix(lines[11], "╚") || !strings.HasSuffix(lines[11], "╝") {
		t.Fatalf("missing bottom border: %q", lines[11])
	}

	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "┌") || !strings.Contains(joined, "┘") {
		t.Fatalf("dialog box not drawn:\n%s", joined)
	}
	if !strings.Contains(joined, "1") {
		t.Fatalf("dialog label missing:\n%s", joined)
	}
}

func TestRenderMap_TinyCanvasDoesNotPanic(t *testing.T) {
	display := placement.Size{Width: 1000, Height: 1000}
	rects := []placement.Rect{{X: 0, Y: 0, Width: 1000, Height: 1000}}

	if lines := renderMap(rects, display, 2, 1); len(lines) != 1 {
		t.Fatalf("expected degenerate canvas to render blank lines")
	}
}

func TestRenderMap_ZeroDisplay(t *testing.T) {
	lines := renderMap(nil, placement.Size{}, 10, 4)
	if len(lines) != 4 {
		t.Fatalf("expected 4 blank lines, got %d", len(lines))
	}
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			t.Fatalf("expected blank canvas, got %q", line)
		}
	}
}
