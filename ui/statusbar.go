package ui

import (
	"fmt"

	"pocketedit/config"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

type StatusBar struct {
	Mode       string // "EDIT" or "SELECT"
	Line       int
	Col        int
	TotalLines int
	SelChars   int    // number of selected characters (0 = no selection)
	Message    string // temporary status message
	IsError    bool
	Theme      *config.ColorScheme
}

func NewStatusBar() *StatusBar {
	return &StatusBar{
		Mode: "EDIT",
	}
}

// Right is the right-aligned position summary.
func (s *StatusBar) Right() string {
	if s.SelChars > 0 {
		return fmt.Sprintf("Sel: %d │ Ln %d/%d, Col %d ", s.SelChars, s.Line+1, s.TotalLines, s.Col+1)
	}
	return fmt.Sprintf("Ln %d/%d, Col %d ", s.Line+1, s.TotalLines, s.Col+1)
}

func (s *StatusBar) Render(screen tcell.Screen, x, y, width, height int) {
	theme := s.Theme
	if theme == nil {
		theme = config.Themes["monokai"]
	}

	style := tcell.StyleDefault.Background(theme.StatusBarBg).Foreground(theme.StatusBarFg)
	modeStyle := tcell.StyleDefault.Background(theme.DialogFocus).Foreground(theme.StatusBarBg).Bold(true)

	Fill(screen, x, y, width, style)

	col := x
	col += DrawText(screen, col, y, width, " "+s.Mode+" ", modeStyle)
	col++

	right := s.Right()
	rightW := runewidth.StringWidth(right)

	if s.Message != "" {
		msgStyle := style
		if s.IsError {
			msgStyle = style.Foreground(tcell.ColorRed).Bold(true)
		}
		avail := x + width - col
		if rightW+2 <= avail {
			avail -= rightW + 1
		}
		col += DrawText(screen, col, y, avail, runewidth.Truncate(s.Message, avail, "…"), msgStyle)
	}

	if rightStart := x + width - rightW; rightStart > col {
		DrawText(screen, rightStart, y, rightW, right, style)
	}
}
