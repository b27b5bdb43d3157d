package editor

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
)

const (
	watchDebounce = 100 * time.Millisecond
	// Writes this close to our own save are assumed to be that save.
	saveGracePeriod = time.Second
)

// FileWatchEvent carries file system change notifications to the main event loop.
type FileWatchEvent struct {
	tcell.EventTime
	Path string
	Op   fsnotify.Op
}

// setupFileWatcher watches the directory of the open file, so that editors
// which save by rename are still seen, and posts changes to that one file.
func (e *Editor) setupFileWatcher(screen tcell.Screen) {
	path := e.session.Path()
	if path == "" {
		return
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		// Graceful degradation - continue without watching
		return
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return
	}
	e.fileWatcher = watcher
	e.watchedPath = abs

	go func() {
		debounceTimer := time.NewTimer(watchDebounce)
		debounceTimer.Stop()
		var pending fsnotify.Op

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				pending |= event.Op
				debounceTimer.Reset(watchDebounce)

			case <-debounceTimer.C:
				if pending == 0 {
					continue
				}
				ev := &FileWatchEvent{Path: abs, Op: pending}
				ev.SetEventNow()
				screen.PostEvent(ev)
				pending = 0

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				e.log.Event("watch_error", map[string]any{"file": abs, "err": err})
			}
		}
	}()
}

func (e *Editor) handleFileWatchEvent(ev *FileWatchEvent) {
	if ev.Path != e.watchedPath {
		return
	}
	name := e.session.Name()

	info, statErr := os.Stat(ev.Path)
	switch {
	case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 && statErr != nil:
		e.setStatusMessage("Warning: " + name + " was deleted externally")

	case ev.Op&(fsnotify.Write|fsnotify.Create) != 0 && statErr == nil:
		if last := e.session.LastSave(); !last.IsZero() && info.ModTime().Sub(last) <= saveGracePeriod {
			return
		}
		if !e.session.Modified() {
			e.reload()
			return
		}
		e.Prompt("Warning:", name+" changed on disk.", []string{"Reload", "Keep mine"}, func(choice int) {
			if choice == 0 {
				e.reload()
			}
		})
	}
}

func (e *Editor) reload() {
	if err := e.session.Reload(); err != nil {
		e.setTemporaryError("Unable to reload " + e.session.Name())
		return
	}
	e.setTemporaryMessage("↻ " + e.session.Name() + " (reloaded)")
}
