package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawText draws s starting at (x, y), clipped to width cells. It returns the
// number of cells used.
func DrawText(screen tcell.Screen, x, y, width int, s string, style tcell.Style) int {
	col := 0
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > width {
			break
		}
		screen.SetContent(x+col, y, ch, nil, style)
		col += w
	}
	return col
}

// Fill paints width cells starting at (x, y) with spaces.
func Fill(screen tcell.Screen, x, y, width int, style tcell.Style) {
	for cx := x; cx < x+width; cx++ {
		screen.SetContent(cx, y, ' ', nil, style)
	}
}
