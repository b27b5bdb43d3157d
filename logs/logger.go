package logs

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// Logger writes one JSON object per line. A disabled logger drops
// everything, so callers never need a nil check.
type Logger struct {
	mu      sync.Mutex
	w       *bufio.Writer
	c       io.Closer
	enabled bool
	now     func() time.Time
}

// NewFromEnv enables logging when POCKETEDIT_LOG is truthy or
// POCKETEDIT_LOG_FILE names a file. Without a file name it writes to
// ./pocketedit.log. The terminal is owned by the UI, so there is no stderr
// fallback.
func NewFromEnv() *Logger {
	lf := os.Getenv("POCKETEDIT_LOG_FILE")
	enabled := lf != ""
	if v := os.Getenv("POCKETEDIT_LOG"); v != "" && v != "0" && v != "false" {
		enabled = true
	}
	if !enabled {
		return Disabled()
	}
	if lf == "" {
		lf = "pocketedit.log"
	}
	f, err := os.OpenFile(lf, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return Disabled()
	}
	return New(f)
}

// New logs to w. If w is also an io.Closer it is closed by Close.
func New(w io.Writer) *Logger {
	l := &Logger{w: bufio.NewWriter(w), enabled: true, now: time.Now}
	if c, ok := w.(io.Closer); ok {
		l.c = c
	}
	return l
}

func Disabled() *Logger {
	return &Logger{}
}

func (l *Logger) Enabled() bool {
	return l.enabled
}

func (l *Logger) Close() {
	if !l.enabled {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.w.Flush()
	if l.c != nil {
		_ = l.c.Close()
	}
	l.enabled = false
}

// Event writes a record with the event name and fields. Error values are
// stored as their message.
func (l *Logger) Event(event string, fields map[string]any) {
	if !l.enabled {
		return
	}
	rec := map[string]any{
		"time":  l.now().Format(time.RFC3339Nano),
		"event": event,
	}
	for k, v := range fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		rec[k] = v
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = json.NewEncoder(l.w).Encode(rec)
	_ = l.w.Flush()
}
