package testutil

import (
	"fmt"
	"strings"
	"sync"
)

// Entry is one captured log call.
type Entry struct {
	Level string
	Msg   string
	Args  []any
}

// String renders the entry as "msg k=v k=v".
func (e Entry) String() string {
	var b strings.Builder
	b.WriteString(e.Msg)
	for i := 0; i < len(e.Args); i += 2 {
		if i+1 < len(e.Args) {
			fmt.Fprintf(&b, " %v=%v", e.Args[i], e.Args[i+1])
		} else {
			fmt.Fprintf(&b, " %v", e.Args[i])
		}
	}
	return b.String()
}

// RecordingLogger captures every log call for assertions.
type RecordingLogger struct {
	mu      sync.Mutex
	Entries []Entry
}

// NewRecordingLogger creates an empty RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

// Debug, Info, Warn and Error record an entry at the matching level.
func (l *RecordingLogger) Debug(msg string, args ...any) { l.record("debug", msg, args) }
func (l *RecordingLogger) Info(msg string, args ...any)  { l.record("info", msg, args) }
func (l *RecordingLogger) Warn(msg string, args ...any)  { l.record("warn", msg, args) }
func (l *RecordingLogger) Error(msg string, args ...any) { l.record("error", msg, args) }

func (l *RecordingLogger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, Entry{Level: level, Msg: msg, Args: args})
}

// Level returns the entries logged at level, in order.
func (l *RecordingLogger) Level(level string) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []Entry
	for _, e := range l.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Logged reports whether some entry at level renders to a string containing
// every one of parts.
func (l *RecordingLogger) Logged(level string, parts ...string) bool {
	for _, e := range l.Level(level) {
		s := e.String()
		all := true
		for _, p := range parts {
			if !strings.Contains(s, p) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}
