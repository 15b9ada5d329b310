package tui

import (
	"fmt"

	"github.com/1broseidon/paneldock/internal/placement"
)

// renderMap generates a character map of the open dialog rectangles
// scaled into a width×height canvas representing the display.
func renderMap(rects []placement.Rect, display placement.Size, width, height int) []string {
	if width < 5 || height < 3 || display.Width <= 0 || display.Height <= 0 {
		return emptyCanvas(width, height)
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i, rect := range rects {
		drawDialog(canvas, rect, i+1, display, width, height)
	}

	drawBorder(canvas, width, height)

	lines := make([]string, height)
	for i, row := range canvas {
		lines[i] = string(row)
	}
	return lines
}

func drawDialog(canvas [][]rune, rect placement.Rect, num int, display placement.Size, canvasW, canvasH int) {
	// Map screen coordinates to canvas coordinates.
	x1 := rect.X * canvasW / display.Width
	y1 := rect.Y * canvasH / display.Height
	x2 := (rect.X + rect.Width) * canvasW / display.Width
	y2 := (rect.Y + rect.Height) * canvasH / display.Height

	// Clamp inside the outer border.
	if x1 < 1 {
		x1 = 1
	}
	if y1 < 1 {
		y1 = 1
	}
	if x2 >= canvasW-1 {
		x2 = canvasW - 2
	}
	if y2 >= canvasH-1 {
		y2 = canvasH - 2
	}

	// Need at least 2x2 to draw anything
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x <= x2; x++ {
		canvas[y1][x] = '─'
		canvas[y2][x] = '─'
	}
	for y := y1; y <= y2; y++ {
		canvas[y][x1] = '│'
		canvas[y][x2] = '│'
	}
	canvas[y1][x1] = '┌'
	canvas[y1][x2] = '┐'
	canvas[y2][x1] = '└'
	canvas[y2][x2] = '┘'

	// Number label in the top-left interior corner.
	label := []rune(fmt.Sprintf("%d", num))
	for i, r := range label {
		x := x1 + 1 + i
		if x >= x2 {
			break
		}
		canvas[y1+1][x] = r
	}
}

func drawBorder(canvas [][]rune, width, height int) {
	for x := 0; x < width; x++ {
		canvas[0][x] = '═'
		canvas[height-1][x] = '═'
	}
	for y := 0; y < height; y++ {
		canvas[y][0] = '║'
		canvas[y][width-1] = '║'
	}
	canvas[0][0] = '╔'
	canvas[0][width-1] = '╗'
	canvas[height-1][0] = '╚'
	canvas[height-1][width-1] = '╝'
}

func emptyCanvas(width, height int) []string {
	if width < 1 || height < 1 {
		return nil
	}
	lines := make([]string, height)
	for i := range lines {
		row := make([]rune, width)
		for j := range row {
			row[j] = ' '
		}
		lines[i] = string(row)
	}
	return lines
}
