package editor

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

func (e *Editor) handleKey(ev *tcell.EventKey) {
	// Dialog is modal
	if e.dialog != nil {
		e.dialog.HandleKey(ev)
		return
	}

	if ev.Key() == tcell.KeyF10 {
		e.openActionMenu()
		return
	}

	switch ctrlLetter(ev) {
	case 's':
		e.save()
		return
	case 'k':
		e.session.Apply(DeleteLine{})
		return
	case 'd':
		e.session.Apply(DuplicateLine{})
		return
	case 'q':
		e.session.Apply(Quit{})
		return
	}

	shift := ev.Modifiers()&tcell.ModShift != 0
	cur := e.session.Cursor()

	switch ev.Key() {
	case tcell.KeyUp:
		e.move(Up, 1, shift)
	case tcell.KeyDown:
		e.move(Down, 1, shift)
	case tcell.KeyLeft:
		e.move(Left, 1, shift)
	case tcell.KeyRight:
		e.move(Right, 1, shift)
	case tcell.KeyPgUp:
		e.move(Up, e.pageStep(), shift)
	case tcell.KeyPgDn:
		e.move(Down, e.pageStep(), shift)
	case tcell.KeyHome:
		if cur.Col > 0 {
			e.move(Left, cur.Col, shift)
		}
	case tcell.KeyEnd:
		if n := e.session.Buffer().LineLen(cur.Row); cur.Col < n {
			e.move(Right, n-cur.Col, shift)
		}
	case tcell.KeyEnter:
		e.session.Apply(InsertNewline{})
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.session.Apply(Backspace{})
	case tcell.KeyTab:
		e.session.Apply(InsertChar{Text: "\t"})
	case tcell.KeyCtrlSpace:
		e.session.Apply(SelectStart{})
	case tcell.KeyEscape:
		e.session.Apply(SelectEnd{})
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return
		}
		e.insertRune(ev.Rune())
	}
}

// ctrlLetter returns the lower-case letter of a Ctrl+letter chord, or 0.
// Terminals report these either as control keys or as runes with ModCtrl.
func ctrlLetter(ev *tcell.EventKey) rune {
	switch ev.Key() {
	case tcell.KeyCtrlS:
		return 's'
	case tcell.KeyCtrlK:
		return 'k'
	case tcell.KeyCtrlD:
		return 'd'
	case tcell.KeyCtrlQ:
		return 'q'
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return unicode.ToLower(ev.Rune())
		}
	}
	return 0
}

// move issues a cursor move. Shift without an existing selection anchors
// one at the cursor first, without entering hold mode, so the next plain
// move drops it again.
func (e *Editor) move(dir Direction, step int, extend bool) {
	sel := e.session.Selection()
	if extend {
		if _, ok := sel.Anchor(); !ok {
			e.session.Apply(SelectStart{})
			e.session.Apply(SelectEnd{})
		}
	}
	e.session.Apply(Move{Dir: dir, Step: step, Extend: extend})
}

// insertRune inserts r as a single byte. Text is single-byte; runes above
// U+00FF cannot be represented.
func (e *Editor) insertRune(r rune) {
	if r > 0xff || r < 0x20 {
		e.setTemporaryError("Only single-byte characters can be typed")
		return
	}
	e.session.Apply(InsertChar{Text: string([]byte{byte(r)})})
}

func (e *Editor) save() {
	before := e.session.LastSave()
	e.session.Apply(Save{})
	if e.session.LastSave().After(before) {
		e.setTemporaryMessage("Saved " + e.session.Name())
	}
}

func (e *Editor) openActionMenu() {
	e.Prompt("Actions:", "", []string{"Save", "Delete line", "Duplicate line", "Quit"}, func(choice int) {
		switch choice {
		case 0:
			e.save()
		case 1:
			e.session.Apply(DeleteLine{})
		case 2:
			e.session.Apply(DuplicateLine{})
		case 3:
			e.session.Apply(Quit{})
		}
	})
}
