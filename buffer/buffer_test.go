package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadSerializeRoundTrip(t *testing.T) {
	for _, text := range []string{
		"",
		"abc",
		"abc\nde",
		"\n\nx",
		"line one\n\tline two\nline three",
		"trailing\n",
	} {
		b, err := Load(strings.NewReader(text))
		if err != nil {
			t.Fatalf("load %q failed: %v", text, err)
		}
		if got := b.Serialize(); got != text {
			t.Fatalf("expected round trip of %q, got %q", text, got)
		}
	}
}

func TestLoadEmptySourceYieldsOneLine(t *testing.T) {
	b, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if b.LineCount() != 1 || b.Line(0) != "" {
		t.Fatalf("expected a single empty line, got %q", b.Lines())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestLoadFailureReturnsUsableBuffer(t *testing.T) {
	b, err := Load(failingReader{})
	if !errors.Is(err, ErrLoad) {
		t.Fatalf("expected ErrLoad, got %v", err)
	}
	if b == nil || b.LineCount() != 1 || b.Line(0) != "" {
		t.Fatalf("expected empty one-line buffer on failure, got %+v", b)
	}
}

func TestLoadFileMissingIsNewDocument(t *testing.T) {
	b, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err != nil {
		t.Fatalf("expected no error for a missing file, got %v", err)
	}
	if b.LineCount() != 1 {
		t.Fatalf("expected one line, got %d", b.LineCount())
	}
}

func TestLoadFileUnreadable(t *testing.T) {
	dir := t.TempDir()
	// Reading a directory fails after open succeeds.
	b, err := LoadFile(dir)
	if !errors.Is(err, ErrLoad) {
		t.Fatalf("expected ErrLoad, got %v", err)
	}
	if b.LineCount() != 1 {
		t.Fatalf("expected one line, got %d", b.LineCount())
	}
}

func TestSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	b := FromLines("abc", "de")
	if err := b.SaveFile(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "abc\nde" {
		t.Fatalf("expected %q on disk, got %q", "abc\nde", data)
	}

	err = b.SaveFile(filepath.Join(t.TempDir(), "missing", "out.txt"))
	if !errors.Is(err, ErrSave) {
		t.Fatalf("expected ErrSave, got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("no space left") }

func TestWriteTo(t *testing.T) {
	var sb strings.Builder
	n, err := FromLines("abc", "de").WriteTo(&sb)
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if sb.String() != "abc\nde" || n != 6 {
		t.Fatalf("expected %q (6 bytes), got %q (%d bytes)", "abc\nde", sb.String(), n)
	}

	if _, err := FromLines("x").WriteTo(failingWriter{}); !errors.Is(err, ErrSave) {
		t.Fatalf("expected ErrSave, got %v", err)
	}
}

func TestSaveFileTruncatesLongerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("a much longer old text"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := FromLines("new").SaveFile(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "new" {
		t.Fatalf("expected %q on disk, got %q", "new", data)
	}
}

func TestInsertText(t *testing.T) {
	b := FromLines("ac")
	b.InsertText(0, 1, "b")
	b.InsertText(0, 3, "d")
	b.InsertText(0, 0, ">")
	if got := b.Line(0); got != ">abcd" {
		t.Fatalf("expected >abcd, got %q", got)
	}
}

func TestSplitLineConservesLength(t *testing.T) {
	for col := 0; col <= 5; col++ {
		b := FromLines("first", "hello", "last")
		old := b.Line(1)
		newRow := b.SplitLine(1, col)
		if newRow != 2 {
			t.Fatalf("expected new row 2, got %d", newRow)
		}
		if b.LineCount() != 4 {
			t.Fatalf("expected 4 lines, got %d", b.LineCount())
		}
		if b.LineLen(1)+b.LineLen(2) != len(old) {
			t.Fatalf("split at %d lost characters: %q + %q", col, b.Line(1), b.Line(2))
		}
		if b.Line(1)+b.Line(2) != old {
			t.Fatalf("split at %d reordered text: %q + %q", col, b.Line(1), b.Line(2))
		}
		if b.Line(3) != "last" {
			t.Fatalf("expected trailing line preserved, got %q", b.Line(3))
		}
	}
}

func TestMergeUndoesSplit(t *testing.T) {
	for col := 0; col <= 5; col++ {
		b := FromLines("hello")
		row := b.SplitLine(0, col)
		junction := b.MergeWithPrevious(row)
		if junction != col {
			t.Fatalf("expected junction %d, got %d", col, junction)
		}
		if b.LineCount() != 1 || b.Line(0) != "hello" {
			t.Fatalf("expected original line back, got %q", b.Lines())
		}
	}
}

func TestMergeFirstLinePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when merging row 0")
		}
	}()
	FromLines("a", "b").MergeWithPrevious(0)
}

func TestDeleteChar(t *testing.T) {
	b := FromLines("abc")
	b.DeleteChar(0, 0)
	if b.Line(0) != "abc" {
		t.Fatalf("expected no-op at column 0, got %q", b.Line(0))
	}
	b.DeleteChar(0, 1)
	if b.Line(0) != "bc" {
		t.Fatalf("expected bc, got %q", b.Line(0))
	}
	b.DeleteChar(0, 2)
	if b.Line(0) != "b" {
		t.Fatalf("expected b, got %q", b.Line(0))
	}
}

func TestDeleteLineKeepsOneLine(t *testing.T) {
	b := FromLines("a", "b")
	b.DeleteLine(0)
	if got := b.Lines(); len(got) != 1 || got[0] != "b" {
		t.Fatalf("expected [b], got %q", got)
	}
	b.DeleteLine(0)
	if got := b.Lines(); len(got) != 1 || got[0] != "" {
		t.Fatalf("expected a single empty line, got %q", got)
	}
}

func TestDuplicateLine(t *testing.T) {
	b := FromLines("a", "b", "c")
	b.DuplicateLine(1)
	want := []string{"a", "b", "b", "c"}
	got := b.Lines()
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLen(t *testing.T) {
	if n := FromLines("abc", "de").Len(); n != 6 {
		t.Fatalf("expected 6, got %d", n)
	}
	if n := New().Len(); n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
}

func TestBoundsViolationsPanic(t *testing.T) {
	cases := map[string]func(b *Buffer){
		"row below":     func(b *Buffer) { b.Line(-1) },
		"row above":     func(b *Buffer) { b.DeleteLine(1) },
		"column beyond": func(b *Buffer) { b.InsertText(0, 4, "x") },
		"negative col":  func(b *Buffer) { b.SplitLine(0, -1) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			fn(FromLines("abc"))
		})
	}
}
