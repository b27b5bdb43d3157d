package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRecoveryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := filepath.Join(t.TempDir(), "notes.txt")

	copyPath, err := writeRecovery(dir, original, "unsaved text")
	if err != nil {
		t.Fatalf("write recovery failed: %v", err)
	}
	if filepath.Dir(copyPath) != dir {
		t.Fatalf("expected copy inside %s, got %s", dir, copyPath)
	}
	found, ok := findRecovery(dir, original)
	if !ok || found != copyPath {
		t.Fatalf("expected to find %s, got %q ok=%v", copyPath, found, ok)
	}
	data, err := os.ReadFile(found)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "unsaved text" {
		t.Fatalf("expected %q, got %q", "unsaved text", data)
	}

	removeRecovery(dir, original)
	if _, ok := findRecovery(dir, original); ok {
		t.Fatalf("expected recovery to be gone")
	}
}

func TestRecoveryPathsDifferPerFile(t *testing.T) {
	dir := t.TempDir()
	a := recoveryPathForFile(dir, "/tmp/one/notes.txt")
	b := recoveryPathForFile(dir, "/tmp/two/notes.txt")
	if a == b {
		t.Fatalf("expected distinct recovery paths, both %s", a)
	}
}

func TestRecoveryDisabledWithoutDir(t *testing.T) {
	copyPath, err := writeRecovery("", "a.txt", "x")
	if err != nil || copyPath != "" {
		t.Fatalf("expected disabled recovery, got %q err=%v", copyPath, err)
	}
	if _, ok := findRecovery("", "a.txt"); ok {
		t.Fatalf("expected nothing found without a directory")
	}
}

func TestRecoveryDirUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	want := filepath.Join(home, ".local", "share", "pocketedit", "recovery")
	if got := recoveryDir(); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
