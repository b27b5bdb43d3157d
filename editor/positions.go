package editor

import (
	"encoding/json"
	"os"
	"path/filepath"

	"pocketedit/buffer"
)

// maxRememberedFiles bounds the position file; the oldest entries go first.
const maxRememberedFiles = 200

type FileState struct {
	Path      string `json:"path"`
	Line      int    `json:"cursor_line"`
	Col       int    `json:"cursor_col"`
	OriginRow int    `json:"origin_row"`
	OriginCol int    `json:"origin_col"`
}

type positionData struct {
	Files []FileState `json:"files"`
}

// PositionStore remembers where the cursor was when a file was last closed.
type PositionStore struct {
	path string
}

func positionsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "pocketedit", "positions.json")
}

func NewPositionStore() *PositionStore {
	return &PositionStore{path: positionsPath()}
}

func (p *PositionStore) load() positionData {
	var data positionData
	if p.path == "" {
		return data
	}
	raw, err := os.ReadFile(p.path)
	if err != nil {
		return data
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return positionData{}
	}
	return data
}

// Remember records the session's cursor and camera under its absolute path.
func (p *PositionStore) Remember(s *Session) error {
	if p.path == "" || s.Path() == "" {
		return nil
	}
	abs, err := filepath.Abs(s.Path())
	if err != nil {
		return err
	}
	cur := s.Cursor()
	view := s.Viewport()
	fs := FileState{
		Path:      abs,
		Line:      cur.Row,
		Col:       cur.Col,
		OriginRow: view.OriginRow,
		OriginCol: view.OriginCol,
	}

	data := p.load()
	files := data.Files[:0]
	for _, f := range data.Files {
		if f.Path != abs {
			files = append(files, f)
		}
	}
	files = append(files, fs)
	if len(files) > maxRememberedFiles {
		files = files[len(files)-maxRememberedFiles:]
	}
	data.Files = files

	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, raw, 0644)
}

// Restore moves the session back to its remembered position. It reports
// whether an entry was found.
func (p *PositionStore) Restore(s *Session) bool {
	if p.path == "" || s.Path() == "" {
		return false
	}
	abs, err := filepath.Abs(s.Path())
	if err != nil {
		return false
	}
	for _, fs := range p.load().Files {
		if fs.Path != abs {
			continue
		}
		s.Restore(buffer.Position{Row: fs.Line, Col: fs.Col}, fs.OriginRow, fs.OriginCol)
		return true
	}
	return false
}
