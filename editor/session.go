package editor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pocketedit/buffer"
	"pocketedit/logs"
)

// Prompter shows a modal message with a fixed set of choices. onChoice
// receives the index of the chosen option, or -1 if the prompt was dismissed.
// It may be called after Prompt returns.
type Prompter interface {
	Prompt(title, message string, options []string, onChoice func(choice int))
}

type SessionOptions struct {
	Prompter Prompter
	Logger   *logs.Logger
	// RecoveryDir receives a copy of the buffer when a save fails. Empty
	// disables recovery copies.
	RecoveryDir string
	Rows, Cols  int
}

// Session is one editing session on one file: the buffer, the cursor, the
// selection and the camera. Every input event is applied to completion
// before the next one.
type Session struct {
	path     string
	buf      *buffer.Buffer
	cursor   buffer.Cursor
	sel      buffer.Selection
	view     Viewport
	modified bool
	done     bool
	lastSave time.Time

	prompter    Prompter
	log         *logs.Logger
	recoveryDir string
}

// OpenSession loads path. A load failure is reported through the prompter
// and returned, but the session is still usable with an empty buffer.
func OpenSession(path string, opts SessionOptions) (*Session, error) {
	s := &Session{
		path:        path,
		view:        NewViewport(opts.Rows, opts.Cols),
		prompter:    opts.Prompter,
		log:         opts.Logger,
		recoveryDir: opts.RecoveryDir,
	}
	if s.log == nil {
		s.log = logs.Disabled()
	}

	buf, err := buffer.LoadFile(path)
	s.buf = buf
	if err != nil {
		s.log.Event("load_failed", map[string]any{"file": path, "err": err})
		s.prompt("Warning:", "Unable to read file.", []string{"OK"}, nil)
		return s, err
	}
	s.log.Event("open", map[string]any{"file": path, "lines": buf.LineCount()})
	return s, nil
}

// NewSession wraps an in-memory buffer. It is not tied to a file until a
// path is set with SetPath.
func NewSession(buf *buffer.Buffer, opts SessionOptions) *Session {
	s := &Session{
		buf:         buf,
		view:        NewViewport(opts.Rows, opts.Cols),
		prompter:    opts.Prompter,
		log:         opts.Logger,
		recoveryDir: opts.RecoveryDir,
	}
	if s.log == nil {
		s.log = logs.Disabled()
	}
	return s
}

func (s *Session) Path() string                 { return s.path }
func (s *Session) SetPath(path string)          { s.path = path }
func (s *Session) Buffer() *buffer.Buffer       { return s.buf }
func (s *Session) Cursor() buffer.Position      { return s.cursor.Pos }
func (s *Session) Selection() *buffer.Selection { return &s.sel }
func (s *Session) Viewport() Viewport           { return s.view }
func (s *Session) Modified() bool               { return s.modified }
func (s *Session) Done() bool                   { return s.done }
func (s *Session) LastSave() time.Time          { return s.lastSave }

func (s *Session) ScrollIndicator(track int) ScrollIndicator {
	return s.view.ScrollIndicator(s.buf.LineCount(), track)
}

// Resize changes the visible text area and keeps the cursor on screen.
func (s *Session) Resize(rows, cols int) {
	s.view.Resize(rows, cols)
	s.view.Reframe(s.cursor.Pos)
}

// Restore puts the cursor and camera back where a previous session left
// them, clamped to the current contents.
func (s *Session) Restore(cur buffer.Position, originRow, originCol int) {
	s.cursor.Set(cur)
	s.cursor.Clamp(s.buf)
	s.cursor.Set(s.cursor.Pos)
	s.view.OriginRow = max(0, min(originRow, s.buf.LineCount()-1))
	s.view.OriginCol = max(0, originCol)
	s.view.Reframe(s.cursor.Pos)
}

// Apply processes one event and reports whether anything visible changed.
func (s *Session) Apply(ev Event) bool {
	var changed bool
	switch ev := ev.(type) {
	case Move:
		changed = s.move(ev)
	case InsertChar:
		changed = s.insert(ev.Text)
	case InsertNewline:
		changed = s.newline()
	case Backspace:
		changed = s.backspace()
	case SelectStart:
		s.sel.Start(s.cursor.Pos)
		changed = true
	case SelectEnd:
		changed = s.sel.Holding()
		s.sel.Release()
	case Save:
		s.save()
		changed = true
	case DeleteLine:
		changed = s.deleteLine()
	case DuplicateLine:
		changed = s.duplicateLine()
	case Quit:
		s.quit()
		changed = true
	}
	s.view.Reframe(s.cursor.Pos)
	return changed
}

func (s *Session) move(ev Move) bool {
	step := ev.Step
	if step < 1 {
		step = 1
	}
	extend := ev.Extend || s.sel.Holding()
	hadSelection := s.sel.Active()
	if !extend {
		s.sel.Clear()
	}

	var moved bool
	switch ev.Dir {
	case Up:
		moved = s.cursor.MoveUp(s.buf, step, ev.Loop)
	case Down:
		moved = s.cursor.MoveDown(s.buf, step, ev.Loop)
	case Left:
		moved = s.cursor.MoveLeft(s.buf, step, ev.Loop)
	case Right:
		moved = s.cursor.MoveRight(s.buf, step, ev.Loop)
	}

	if extend {
		s.sel.Extend(s.cursor.Pos)
		return true
	}
	return moved || hadSelection
}

func (s *Session) insert(text string) bool {
	if text == "" {
		return false
	}
	s.sel.Clear()
	for i, part := range strings.Split(text, "\n") {
		if i > 0 {
			s.newline()
		}
		if part == "" {
			continue
		}
		pos := s.cursor.Pos
		s.buf.InsertText(pos.Row, pos.Col, part)
		s.cursor.Set(buffer.Position{Row: pos.Row, Col: pos.Col + len(part)})
	}
	s.modified = true
	return true
}

func (s *Session) newline() bool {
	s.sel.Clear()
	row := s.buf.SplitLine(s.cursor.Pos.Row, s.cursor.Pos.Col)
	s.cursor.Set(buffer.Position{Row: row})
	s.modified = true
	return true
}

func (s *Session) backspace() bool {
	hadSelection := s.sel.Active()
	s.sel.Clear()
	pos := s.cursor.Pos
	switch {
	case pos.Col > 0:
		s.buf.DeleteChar(pos.Row, pos.Col)
		s.cursor.Set(buffer.Position{Row: pos.Row, Col: pos.Col - 1})
	case pos.Row > 0:
		col := s.buf.MergeWithPrevious(pos.Row)
		s.cursor.Set(buffer.Position{Row: pos.Row - 1, Col: col})
	default:
		return hadSelection
	}
	s.modified = true
	return true
}

func (s *Session) deleteLine() bool {
	s.sel.Clear()
	s.buf.DeleteLine(s.cursor.Pos.Row)
	s.cursor.Clamp(s.buf)
	s.modified = true
	return true
}

func (s *Session) duplicateLine() bool {
	s.sel.Clear()
	s.buf.DuplicateLine(s.cursor.Pos.Row)
	s.modified = true
	return true
}

// Save writes the buffer to its file. On failure the modification flag is
// kept, a recovery copy is written when configured, and the user is told.
func (s *Session) save() error {
	if s.path == "" {
		err := errors.New("no file name")
		s.prompt("Error", "Unable to write file.", []string{"OK"}, nil)
		return err
	}
	if err := s.buf.SaveFile(s.path); err != nil {
		s.log.Event("save_failed", map[string]any{"file": s.path, "err": err})
		msg := "Unable to write file."
		if copyPath, rerr := writeRecovery(s.recoveryDir, s.path, s.buf.Serialize()); rerr == nil && copyPath != "" {
			s.log.Event("recovery_written", map[string]any{"file": s.path, "copy": copyPath})
			msg += "\nA copy was kept in " + copyPath
		}
		s.prompt("Error", msg, []string{"OK"}, nil)
		return err
	}
	s.modified = false
	s.lastSave = time.Now()
	removeRecovery(s.recoveryDir, s.path)
	s.log.Event("save", map[string]any{"file": s.path, "lines": s.buf.LineCount()})
	return nil
}

func (s *Session) quit() {
	if !s.modified {
		s.finish()
		return
	}
	s.prompt("Warning:", "The file is not saved.", []string{"Save", "Don't save", "Cancel"}, func(choice int) {
		switch choice {
		case 0:
			if s.save() == nil {
				s.finish()
			}
		case 1:
			s.finish()
		}
	})
}

func (s *Session) finish() {
	s.done = true
	s.log.Event("quit", map[string]any{"file": s.path, "modified": s.modified})
}

// Reload replaces the buffer with the file contents on disk. The cursor is
// kept where possible. A file that no longer exists is an error and leaves
// the session untouched.
func (s *Session) Reload() error {
	if _, err := os.Stat(s.path); err != nil {
		err = fmt.Errorf("%w %s: %w", buffer.ErrLoad, s.path, err)
		s.log.Event("load_failed", map[string]any{"file": s.path, "err": err})
		return err
	}
	buf, err := buffer.LoadFile(s.path)
	if err != nil {
		s.log.Event("load_failed", map[string]any{"file": s.path, "err": err})
		return err
	}
	s.buf = buf
	s.sel.Clear()
	s.cursor.Clamp(s.buf)
	s.modified = false
	s.view.Reframe(s.cursor.Pos)
	s.log.Event("reload", map[string]any{"file": s.path, "lines": buf.LineCount()})
	return nil
}

// Name is the file name shown in the title.
func (s *Session) Name() string {
	if s.path == "" {
		return "untitled"
	}
	return filepath.Base(s.path)
}

func (s *Session) prompt(title, message string, options []string, onChoice func(int)) {
	if s.prompter == nil {
		return
	}
	if onChoice == nil {
		onChoice = func(int) {}
	}
	s.prompter.Prompt(title, message, options, onChoice)
}
