package editor

import (
	"time"

	"pocketedit/config"
	"pocketedit/logs"
	"pocketedit/ui"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
)

const statusMessageTTL = 3 * time.Second

// Editor is the terminal front end: it owns the screen, decodes keys into
// session events, renders the session and shows prompts as dialogs.
type Editor struct {
	screen    tcell.Screen
	session   *Session
	cfg       *config.Config
	log       *logs.Logger
	positions *PositionStore

	statusBar *ui.StatusBar
	dialog    *ui.Dialog
	// prompts raised while another dialog is open
	queued []*ui.Dialog

	recoveryDir string

	// File watching
	fileWatcher *fsnotify.Watcher
	watchedPath string

	// Temporary status messages
	statusMessageTime time.Time
}

func New(cfg *config.Config, log *logs.Logger) *Editor {
	if log == nil {
		log = logs.Disabled()
	}
	return &Editor{
		cfg:         cfg,
		log:         log,
		positions:   NewPositionStore(),
		statusBar:   ui.NewStatusBar(),
		recoveryDir: recoveryDir(),
	}
}

// Prompt shows a modal dialog. Prompts raised while one is open are queued
// and shown in order.
func (e *Editor) Prompt(title, message string, options []string, onChoice func(choice int)) {
	d := ui.NewDialog(title, message, options)
	d.OnChoice = func(choice int) {
		e.closeDialog()
		if onChoice != nil {
			onChoice(choice)
		}
	}
	if e.dialog != nil {
		e.queued = append(e.queued, d)
		return
	}
	e.dialog = d
}

func (e *Editor) closeDialog() {
	e.dialog = nil
	if len(e.queued) > 0 {
		e.dialog = e.queued[0]
		e.queued = e.queued[1:]
	}
}

// Open starts a session on path. A load failure has already been shown to
// the user when it is returned.
func (e *Editor) Open(path string) error {
	rows, cols := e.textArea()
	s, err := OpenSession(path, SessionOptions{
		Prompter:    e,
		Logger:      e.log,
		RecoveryDir: e.recoveryDir,
		Rows:        rows,
		Cols:        cols,
	})
	e.session = s
	if err != nil {
		return err
	}
	if e.cfg.RememberPosition {
		e.positions.Restore(s)
	}
	if copyPath, ok := findRecovery(e.recoveryDir, path); ok {
		e.Prompt("Warning:", "A recovery copy from a failed save exists:\n"+copyPath, []string{"OK"}, nil)
	}
	return nil
}

// Run opens path on a new terminal screen and processes events until the
// session ends.
func (e *Editor) Run(path string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()
	e.screen = screen

	// Load failures are reported in a dialog; the session stays usable.
	_ = e.Open(path)

	if e.cfg.WatchFile {
		e.setupFileWatcher(screen)
	}

	for !e.session.Done() {
		e.clearExpiredMessages()
		e.render()

		ev := screen.PollEvent()
		if ev == nil {
			break
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			e.resize()
		case *tcell.EventKey:
			e.handleKey(ev)
		case *FileWatchEvent:
			e.handleFileWatchEvent(ev)
		}
	}

	if e.cfg.RememberPosition {
		if err := e.positions.Remember(e.session); err != nil {
			e.log.Event("positions_failed", map[string]any{"err": err})
		}
	}
	if e.fileWatcher != nil {
		e.fileWatcher.Close()
	}

	screen.Clear()
	screen.Fini()
	return nil
}

// textArea is the size of the text region: the screen minus the title and
// status rows and the scroll bar column.
func (e *Editor) textArea() (rows, cols int) {
	if e.screen == nil {
		return 1, 1
	}
	w, h := e.screen.Size()
	rows = h - 2
	cols = w
	if e.cfg.ShowScrollbar {
		cols--
	}
	return max(rows, 1), max(cols, 1)
}

func (e *Editor) resize() {
	if e.session == nil {
		return
	}
	rows, cols := e.textArea()
	e.session.Resize(rows, cols)
}

func (e *Editor) pageStep() int {
	if e.cfg.PageStep > 0 {
		return e.cfg.PageStep
	}
	return e.session.Viewport().Rows
}

func (e *Editor) setStatusMessage(msg string) {
	e.statusBar.Message = msg
	e.statusBar.IsError = false
	e.statusMessageTime = time.Time{}
}

func (e *Editor) setTemporaryMessage(msg string) {
	e.statusBar.Message = msg
	e.statusBar.IsError = false
	e.statusMessageTime = time.Now()
}

func (e *Editor) setTemporaryError(msg string) {
	e.statusBar.Message = msg
	e.statusBar.IsError = true
	e.statusMessageTime = time.Now()
}

func (e *Editor) clearExpiredMessages() {
	if !e.statusMessageTime.IsZero() && time.Since(e.statusMessageTime) > statusMessageTTL {
		e.statusBar.Message = ""
		e.statusBar.IsError = false
		e.statusMessageTime = time.Time{}
	}
}
