package buffer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	ErrLoad = errors.New("unable to read file")
	ErrSave = errors.New("unable to write file")
)

// Buffer is an ordered sequence of text lines. It always holds at least one
// line. Columns are byte offsets; text is treated as single-byte characters.
type Buffer struct {
	lines []string
}

func New() *Buffer {
	return &Buffer{lines: []string{""}}
}

// FromLines builds a buffer from already split lines. An empty slice yields
// a single empty line.
func FromLines(lines ...string) *Buffer {
	if len(lines) == 0 {
		return New()
	}
	cp := make([]string, len(lines))
	copy(cp, lines)
	return &Buffer{lines: cp}
}

// Load reads r and splits it on line breaks. On a read failure the returned
// buffer is still usable (one empty line) and the error wraps ErrLoad.
func Load(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return New(), fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return &Buffer{lines: strings.Split(string(data), "\n")}, nil
}

// LoadFile loads path. A missing file is a new, empty document and is not an
// error.
func LoadFile(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return New(), fmt.Errorf("%w %s: %w", ErrLoad, path, err)
	}
	defer f.Close()

	b, err := Load(f)
	if err != nil {
		return b, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Serialize joins the lines with '\n'. No trailing separator is added.
func (b *Buffer) Serialize() string {
	return strings.Join(b.lines, "\n")
}

// WriteTo writes the serialized text to w. Write failures wrap ErrSave.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.Serialize())
	if err != nil {
		return int64(n), fmt.Errorf("%w: %w", ErrSave, err)
	}
	return int64(n), nil
}

func (b *Buffer) SaveFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrSave, path, err)
	}
	if _, err := b.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w %s: %w", ErrSave, path, err)
	}
	return nil
}

func (b *Buffer) LineCount() int {
	return len(b.lines)
}

func (b *Buffer) Line(row int) string {
	b.checkRow(row)
	return b.lines[row]
}

func (b *Buffer) LineLen(row int) int {
	b.checkRow(row)
	return len(b.lines[row])
}

// Lines returns a copy of the buffer contents.
func (b *Buffer) Lines() []string {
	cp := make([]string, len(b.lines))
	copy(cp, b.lines)
	return cp
}

// Len is the serialized length in bytes, line breaks included.
func (b *Buffer) Len() int {
	n := len(b.lines) - 1
	for _, l := range b.lines {
		n += len(l)
	}
	return n
}

func (b *Buffer) InsertText(row, col int, text string) {
	b.checkPos(row, col)
	line := b.lines[row]
	b.lines[row] = line[:col] + text + line[col:]
}

// SplitLine cuts line row at col and moves the remainder to a new line
// directly below. It returns the index of the new line.
func (b *Buffer) SplitLine(row, col int) int {
	b.checkPos(row, col)
	line := b.lines[row]
	b.lines = append(b.lines, "")
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row] = line[:col]
	b.lines[row+1] = line[col:]
	return row + 1
}

// MergeWithPrevious appends line row to line row-1 and removes it. The
// returned column is where the two lines were joined.
func (b *Buffer) MergeWithPrevious(row int) int {
	b.checkRow(row)
	if row == 0 {
		panic("buffer: cannot merge first line with previous")
	}
	junction := len(b.lines[row-1])
	b.lines[row-1] += b.lines[row]
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	return junction
}

// DeleteChar removes the character before col. It is a no-op at col 0.
func (b *Buffer) DeleteChar(row, col int) {
	b.checkPos(row, col)
	if col == 0 {
		return
	}
	line := b.lines[row]
	b.lines[row] = line[:col-1] + line[col:]
}

func (b *Buffer) DeleteLine(row int) {
	b.checkRow(row)
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
}

func (b *Buffer) DuplicateLine(row int) {
	b.checkRow(row)
	line := b.lines[row]
	newLines := make([]string, len(b.lines)+1)
	copy(newLines, b.lines[:row+1])
	newLines[row+1] = line
	copy(newLines[row+2:], b.lines[row+1:])
	b.lines = newLines
}

// Out-of-range positions are caller bugs, not runtime conditions.
func (b *Buffer) checkRow(row int) {
	if row < 0 || row >= len(b.lines) {
		panic(fmt.Sprintf("buffer: row %d out of range [0,%d)", row, len(b.lines)))
	}
}

func (b *Buffer) checkPos(row, col int) {
	b.checkRow(row)
	if col < 0 || col > len(b.lines[row]) {
		panic(fmt.Sprintf("buffer: column %d out of range [0,%d] on row %d", col, len(b.lines[row]), row))
	}
}
