// Package logger provides the leveled diagnostics capability consumed by the
// PATH resolver. Output is rendered by zerolog; the default logger starts
// disabled and can be switched on at any time.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a four-level diagnostics sink. args are alternating key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ConsoleLogger writes human-readable lines to a writer when enabled.
type ConsoleLogger struct {
	enabled atomic.Bool
	zl      zerolog.Logger
}

// New creates a ConsoleLogger writing to stderr.
func New(enabled bool) *ConsoleLogger {
	return NewWithWriter(os.Stderr, enabled)
}

// NewWithWriter creates a ConsoleLogger writing to w.
func NewWithWriter(w io.Writer, enabled bool) *ConsoleLogger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    w != os.Stderr,
	}
	l := &ConsoleLogger{
		zl: zerolog.New(out).Level(zerolog.DebugLevel).With().Timestamp().Str("component", "envpath").Logger(),
	}
	l.enabled.Store(enabled)
	return l
}

// SetEnabled switches output on or off.
func (l *ConsoleLogger) SetEnabled(enabled bool) {
	l.enabled.Store(enabled)
}

// Enabled reports whether output is on.
func (l *ConsoleLogger) Enabled() bool {
	return l.enabled.Load()
}

// Debug logs msg at debug level when enabled.
func (l *ConsoleLogger) Debug(msg string, args ...any) {
	if l.Enabled() {
		send(l.zl.Debug(), msg, args)
	}
}

// Info logs msg at info level when enabled.
func (l *ConsoleLogger) Info(msg string, args ...any) {
	if l.Enabled() {
		send(l.zl.Info(), msg, args)
	}
}

// Warn logs msg at warn level when enabled.
func (l *ConsoleLogger) Warn(msg string, args ...any) {
	if l.Enabled() {
		send(l.zl.Warn(), msg, args)
	}
}

// Error logs msg at error level when enabled.
func (l *ConsoleLogger) Error(msg string, args ...any) {
	if l.Enabled() {
		send(l.zl.Error(), msg, args)
	}
}

func send(ev *zerolog.Event, msg string, args []any) {
	for i := 0; i < len(args); i += 2 {
		if i+1 == len(args) {
			ev = ev.Interface("extra", args[i])
			break
		}
		key := fmt.Sprint(args[i])
		if err, ok := args[i+1].(error); ok {
			ev = ev.AnErr(key, err)
			continue
		}
		ev = ev.Interface(key, args[i+1])
	}
	ev.Msg(msg)
}

type nop struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nop{} }

func (nop) Debug(string, ...any) {}
func (nop) Info(string, ...any)  {}
func (nop) Warn(string, ...any)  {}
func (nop) Error(string, ...any) {}
