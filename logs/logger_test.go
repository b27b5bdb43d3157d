package logs

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEventWritesJSONLine(t *testing.T) {
	var out bytes.Buffer
	l := New(&out)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	l.Event("save_failed", map[string]any{"file": "a.txt", "err": errors.New("disk full")})

	var rec map[string]any
	if err := json.Unmarshal(out.Bytes(), &rec); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", out.String(), err)
	}
	if rec["event"] != "save_failed" || rec["file"] != "a.txt" || rec["err"] != "disk full" {
		t.Fatalf("unexpected record: %v", rec)
	}
	if rec["time"] != "2024-01-02T03:04:05Z" {
		t.Fatalf("unexpected time: %v", rec["time"])
	}
}

func TestDisabledLoggerDropsEvents(t *testing.T) {
	l := Disabled()
	l.Event("open", nil)
	l.Close()
	if l.Enabled() {
		t.Fatalf("expected disabled logger")
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("POCKETEDIT_LOG", "")
	t.Setenv("POCKETEDIT_LOG_FILE", "")
	if NewFromEnv().Enabled() {
		t.Fatalf("expected logging off without env")
	}

	path := filepath.Join(t.TempDir(), "edit.log")
	t.Setenv("POCKETEDIT_LOG_FILE", path)
	l := NewFromEnv()
	if !l.Enabled() {
		t.Fatalf("expected logging on with POCKETEDIT_LOG_FILE")
	}
	l.Event("open", map[string]any{"lines": 3})
	l.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log failed: %v", err)
	}
	if !bytes.Contains(data, []byte(`"event":"open"`)) {
		t.Fatalf("expected open event in log, got %q", data)
	}
}
