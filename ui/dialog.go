package ui

import (
	"strings"
	"unicode"

	"pocketedit/config"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Dialog is a modal box with a title, an optional message and a vertical
// list of options. It swallows every key while open.
type Dialog struct {
	Title    string
	Message  string
	Options  []string
	Selected int
	Theme    *config.ColorScheme

	// OnChoice receives the chosen option index, or -1 on Escape.
	OnChoice func(choice int)
}

func NewDialog(title, message string, options []string) *Dialog {
	return &Dialog{
		Title:   title,
		Message: message,
		Options: options,
	}
}

func (d *Dialog) messageLines() []string {
	if d.Message == "" {
		return nil
	}
	return strings.Split(d.Message, "\n")
}

// Size returns the box size needed for the content, capped to the screen.
func (d *Dialog) Size(maxW, maxH int) (w, h int) {
	w = runewidth.StringWidth(d.Title)
	for _, line := range d.messageLines() {
		w = max(w, runewidth.StringWidth(line))
	}
	for _, opt := range d.Options {
		w = max(w, runewidth.StringWidth(opt)+2)
	}
	w += 4
	h = 2 + 1 + len(d.messageLines()) + len(d.Options)
	if len(d.messageLines()) > 0 && len(d.Options) > 0 {
		h++
	}
	return min(w, maxW), min(h, maxH)
}

// Render centers the box inside the given area.
func (d *Dialog) Render(screen tcell.Screen, x, y, width, height int) {
	theme := d.Theme
	if theme == nil {
		theme = config.Themes["monokai"]
	}
	style := tcell.StyleDefault.Background(theme.DialogBg).Foreground(theme.DialogFg)
	titleStyle := style.Bold(true)
	focusStyle := tcell.StyleDefault.Background(theme.DialogFocus).Foreground(theme.DialogBg).Bold(true)

	w, h := d.Size(width, height)
	if w < 4 || h < 3 {
		return
	}
	bx := x + (width-w)/2
	by := y + (height-h)/2
	inner := w - 4

	for row := 0; row < h; row++ {
		Fill(screen, bx, by+row, w, style)
	}
	// Border
	for cx := bx + 1; cx < bx+w-1; cx++ {
		screen.SetContent(cx, by, '─', nil, style)
		screen.SetContent(cx, by+h-1, '─', nil, style)
	}
	for cy := by + 1; cy < by+h-1; cy++ {
		screen.SetContent(bx, cy, '│', nil, style)
		screen.SetContent(bx+w-1, cy, '│', nil, style)
	}
	screen.SetContent(bx, by, '┌', nil, style)
	screen.SetContent(bx+w-1, by, '┐', nil, style)
	screen.SetContent(bx, by+h-1, '└', nil, style)
	screen.SetContent(bx+w-1, by+h-1, '┘', nil, style)

	row := by + 1
	last := by + h - 1
	DrawText(screen, bx+2, row, inner, runewidth.Truncate(d.Title, inner, "…"), titleStyle)
	row++
	for _, line := range d.messageLines() {
		if row >= last {
			return
		}
		DrawText(screen, bx+2, row, inner, runewidth.Truncate(line, inner, "…"), style)
		row++
	}
	if len(d.messageLines()) > 0 && len(d.Options) > 0 {
		row++
	}
	for i, opt := range d.Options {
		if row >= last {
			return
		}
		st := style
		marker := "  "
		if i == d.Selected {
			st = focusStyle
			marker = "> "
			Fill(screen, bx+1, row, w-2, st)
		}
		DrawText(screen, bx+2, row, inner, runewidth.Truncate(marker+opt, inner, "…"), st)
		row++
	}
}

func (d *Dialog) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyLeft, tcell.KeyBacktab:
		d.move(-1)
	case tcell.KeyDown, tcell.KeyRight, tcell.KeyTab:
		d.move(1)
	case tcell.KeyEnter:
		d.choose(d.Selected)
	case tcell.KeyEscape:
		d.choose(-1)
	case tcell.KeyRune:
		if i, ok := d.accelerator(ev.Rune()); ok {
			d.choose(i)
		}
	}
	return true
}

func (d *Dialog) move(delta int) {
	if len(d.Options) == 0 {
		return
	}
	d.Selected = (d.Selected + delta + len(d.Options)) % len(d.Options)
}

// accelerator matches the first letter of an option, when that letter is not
// shared with another option.
func (d *Dialog) accelerator(r rune) (int, bool) {
	r = unicode.ToLower(r)
	found := -1
	for i, opt := range d.Options {
		first := []rune(opt)
		if len(first) == 0 || unicode.ToLower(first[0]) != r {
			continue
		}
		if found >= 0 {
			return 0, false
		}
		found = i
	}
	return found, found >= 0
}

func (d *Dialog) choose(i int) {
	if i >= len(d.Options) {
		i = -1
	}
	if d.OnChoice != nil {
		d.OnChoice(i)
	}
}
