// Package envpath restores a complete PATH for processes that were not
// started from an interactive shell, such as GUI applications.
//
// The enhanced PATH merges three sources: the PATH reported by a spawned
// shell, PATH assignments parsed from shell startup files, and the current
// process PATH as a last resort. Entries are de-duplicated in first-seen
// order and, by default, filtered to directories that exist.
package envpath

import (
	"context"
	"time"

	"github.com/hbjs97/envpath/internal/cmdexec"
	"github.com/hbjs97/envpath/internal/logger"
	"github.com/hbjs97/envpath/internal/platform"
	"github.com/hbjs97/envpath/internal/resolver"
	"github.com/hbjs97/envpath/internal/sysenv"
	"github.com/spf13/afero"
)

// Logger receives diagnostics. args are alternating key/value pairs.
type Logger = logger.Logger

// Option configures an Enhancer.
type Option func(*settings)

type settings struct {
	debug    bool
	log      Logger
	timeout  time.Duration
	validate bool

	commander cmdexec.Commander
	env       sysenv.Env
	fs        afero.Fs
	host      platform.OS
}

// WithDebug enables diagnostics on stderr when no custom logger is given.
func WithDebug(debug bool) Option {
	return func(s *settings) { s.debug = debug }
}

// WithLogger routes diagnostics to l.
func WithLogger(l Logger) Option {
	return func(s *settings) { s.log = l }
}

// WithTimeout bounds the shell query. Non-positive values mean 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}

// WithValidatePaths controls whether entries that are not existing
// directories are dropped. Defaults to true.
func WithValidatePaths(validate bool) Option {
	return func(s *settings) { s.validate = validate }
}

// Enhancer resolves the enhanced PATH.
type Enhancer struct {
	r       *resolver.Resolver
	console *logger.ConsoleLogger
}

// New creates an Enhancer.
func New(opts ...Option) *Enhancer {
	s := settings{validate: true}
	for _, opt := range opts {
		opt(&s)
	}

	e := &Enhancer{}
	log := s.log
	if log == nil {
		e.console = logger.New(s.debug)
		log = e.console
	}
	e.r = resolver.New(resolver.Options{
		Logger:        log,
		Timeout:       s.timeout,
		ValidatePaths: &s.validate,
		Commander:     s.commander,
		Env:           s.env,
		Fs:            s.fs,
		Platform:      s.host,
	})
	return e
}

// SetDebug toggles the built-in logger. It has no effect when a custom
// logger was supplied.
func (e *Enhancer) SetDebug(debug bool) {
	if e.console != nil {
		e.console.SetEnabled(debug)
	}
}

// GetSystemPath returns the PATH reported by the platform shell.
func (e *Enhancer) GetSystemPath(ctx context.Context) (string, bool) {
	return e.r.SystemPath(ctx)
}

// GetPathFromShellConfig returns the PATH entries parsed from shell startup files.
func (e *Enhancer) GetPathFromShellConfig() (string, bool) {
	return e.r.ShellConfigPath()
}

// GetEnhancedSystemPath returns the merged PATH. It never fails; when no
// source yields a value the current process PATH is returned unchanged.
func (e *Enhancer) GetEnhancedSystemPath(ctx context.Context) string {
	return e.r.EnhancedPath(ctx)
}

// ApplyEnhancedPath sets the process PATH to the merged PATH and returns it.
func (e *Enhancer) ApplyEnhancedPath(ctx context.Context) string {
	return e.r.ApplyEnhancedPath(ctx)
}

// Report returns the merged PATH together with its per-source breakdown.
func (e *Enhancer) Report(ctx context.Context) resolver.Report {
	return e.r.Report(ctx)
}

// GetEnhancedPath is a shortcut for New(opts...).GetEnhancedSystemPath.
func GetEnhancedPath(ctx context.Context, opts ...Option) string {
	return New(opts...).GetEnhancedSystemPath(ctx)
}

// ApplyEnhancedPath is a shortcut for New(opts...).ApplyEnhancedPath.
func ApplyEnhancedPath(ctx context.Context, opts ...Option) string {
	return New(opts...).ApplyEnhancedPath(ctx)
}

// GetSystemPath is a shortcut for New(opts...).GetSystemPath.
func GetSystemPath(ctx context.Context, opts ...Option) (string, bool) {
	return New(opts...).GetSystemPath(ctx)
}

// GetShellConfigPath is a shortcut for New(opts...).GetPathFromShellConfig.
func GetShellConfigPath(opts ...Option) (string, bool) {
	return New(opts...).GetPathFromShellConfig()
}
