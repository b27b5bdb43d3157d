package editor

import (
	"pocketedit/buffer"
	"pocketedit/config"
	"pocketedit/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// displayByte maps one byte of text to the rune drawn for it. Text is shown
// as Latin-1; tabs and other control bytes occupy a single blank cell so
// that screen columns stay equal to buffer columns.
func displayByte(b byte) rune {
	if b < 0x20 || b == 0x7f || (b >= 0x80 && b < 0xa0) {
		return ' '
	}
	return rune(b)
}

func (e *Editor) render() {
	theme := e.cfg.GetTheme()

	defaultStyle := tcell.StyleDefault.Background(theme.Background).Foreground(theme.Foreground)
	e.screen.SetStyle(defaultStyle)
	e.screen.Clear()

	screenW, screenH := e.screen.Size()
	if screenW <= 0 || screenH <= 0 {
		return
	}

	e.renderTitle(theme, screenW)

	rows, cols := e.textArea()
	e.renderText(theme, 0, 1, cols, min(rows, screenH-1))

	if e.cfg.ShowScrollbar && screenW > 1 {
		e.renderScrollbar(theme, screenW-1, 1, rows)
	}

	if screenH >= 2 {
		e.updateStatusBar(theme)
		e.statusBar.Render(e.screen, 0, screenH-1, screenW, 1)
	}

	if e.dialog != nil {
		e.dialog.Theme = theme
		e.dialog.Render(e.screen, 0, 0, screenW, screenH)
		e.screen.HideCursor()
	} else {
		cur := e.session.Cursor()
		view := e.session.Viewport()
		e.screen.ShowCursor(cur.Col-view.OriginCol, 1+cur.Row-view.OriginRow)
	}

	e.screen.Show()
}

func (e *Editor) renderTitle(theme *config.ColorScheme, width int) {
	style := tcell.StyleDefault.Background(theme.TitleBg).Foreground(theme.TitleFg)
	ui.Fill(e.screen, 0, 0, width, style)

	name := " " + e.session.Name()
	if !e.session.Modified() {
		ui.DrawText(e.screen, 0, 0, width, runewidth.Truncate(name, width, "…"), style)
		return
	}
	col := ui.DrawText(e.screen, 0, 0, width-2, runewidth.Truncate(name, width-2, "…"), style)
	ui.DrawText(e.screen, col+1, 0, 1, "*", style.Foreground(theme.Modified).Bold(true))
}

// renderText draws the visible window of the buffer. Each line is split
// into unselected, selected and unselected spans.
func (e *Editor) renderText(theme *config.ColorScheme, x, y, width, height int) {
	buf := e.session.Buffer()
	sel := e.session.Selection()
	view := e.session.Viewport()

	textStyle := tcell.StyleDefault.Background(theme.Background).Foreground(theme.Foreground)
	selStyle := tcell.StyleDefault.Background(theme.Selection).Foreground(theme.Foreground)

	for i := 0; i < height; i++ {
		row := view.OriginRow + i
		if row >= buf.LineCount() {
			break
		}
		line := buf.Line(row)
		var visible string
		if view.OriginCol < len(line) {
			visible = line[view.OriginCol:min(len(line), view.OriginCol+width)]
		}

		part := sel.Partition(row, len(visible), view.OriginCol)
		for col := 0; col < len(visible); col++ {
			style := textStyle
			if col >= part.Before && col < part.Before+part.Selected {
				style = selStyle
			}
			e.screen.SetContent(x+col, y+i, displayByte(visible[col]), nil, style)
		}

		// Mark a selected line break with one highlighted cell past the end.
		if len(visible) < width && sel.Contains(buffer.Position{Row: row, Col: len(line)}) && len(line) >= view.OriginCol {
			e.screen.SetContent(x+len(visible), y+i, ' ', nil, selStyle)
		}
	}
}

func (e *Editor) renderScrollbar(theme *config.ColorScheme, x, y, height int) {
	ind := e.session.ScrollIndicator(height)
	if ind.Size == 0 {
		return
	}
	style := tcell.StyleDefault.Background(theme.Background).Foreground(theme.Scrollbar)
	for i := 0; i < ind.Size; i++ {
		e.screen.SetContent(x, y+ind.Offset+i, '┃', nil, style)
	}
}

func (e *Editor) updateStatusBar(theme *config.ColorScheme) {
	sb := e.statusBar
	sb.Theme = theme
	sb.Mode = "EDIT"
	if e.session.Selection().Holding() {
		sb.Mode = "SELECT"
	}
	cur := e.session.Cursor()
	sb.Line = cur.Row
	sb.Col = cur.Col
	sb.TotalLines = e.session.Buffer().LineCount()
	sb.SelChars = e.session.Selection().Len(e.session.Buffer())
}
