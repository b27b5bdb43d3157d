package editor

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"pocketedit/buffer"
)

func TestPositionStoreRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "a.txt")
	lines := make([]string, 40)
	for i := range lines {
		lines[i] = "some text"
	}
	s := NewSession(buffer.FromLines(lines...), SessionOptions{Rows: 5, Cols: 20})
	s.SetPath(path)
	s.Apply(Move{Dir: Down, Step: 30})
	s.Apply(Move{Dir: Right, Step: 4})

	store := NewPositionStore()
	if err := store.Remember(s); err != nil {
		t.Fatalf("remember failed: %v", err)
	}

	again := NewSession(buffer.FromLines(lines...), SessionOptions{Rows: 5, Cols: 20})
	again.SetPath(path)
	if !store.Restore(again) {
		t.Fatalf("expected a remembered position")
	}
	if again.Cursor() != s.Cursor() {
		t.Fatalf("expected cursor %+v, got %+v", s.Cursor(), again.Cursor())
	}
	if again.Viewport() != s.Viewport() {
		t.Fatalf("expected viewport %+v, got %+v", s.Viewport(), again.Viewport())
	}
}

func TestPositionStoreReplacesEntry(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "a.txt")
	s := NewSession(buffer.FromLines("abc", "def"), SessionOptions{Rows: 5, Cols: 20})
	s.SetPath(path)

	store := NewPositionStore()
	if err := store.Remember(s); err != nil {
		t.Fatalf("remember failed: %v", err)
	}
	s.Apply(Move{Dir: Down, Step: 1})
	if err := store.Remember(s); err != nil {
		t.Fatalf("remember failed: %v", err)
	}

	raw, err := os.ReadFile(positionsPath())
	if err != nil {
		t.Fatalf("read positions failed: %v", err)
	}
	var data positionData
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(data.Files) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(data.Files))
	}
	if data.Files[0].Line != 1 {
		t.Fatalf("expected line 1, got %d", data.Files[0].Line)
	}
}

func TestPositionStoreUnknownFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s := NewSession(buffer.FromLines("abc"), SessionOptions{})
	s.SetPath(filepath.Join(t.TempDir(), "never.txt"))
	if NewPositionStore().Restore(s) {
		t.Fatalf("expected no remembered position")
	}
}

func TestPositionStoreIgnoresUnnamedSession(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s := NewSession(buffer.FromLines("abc"), SessionOptions{})
	if err := NewPositionStore().Remember(s); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := os.Stat(positionsPath()); !os.IsNotExist(err) {
		t.Fatalf("expected no positions file, stat err=%v", err)
	}
}
