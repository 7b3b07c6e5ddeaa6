// Package testutil provides common test helpers for the envpath project.
package testutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/afero"
)

// MapEnv is an in-memory environment for tests.
type MapEnv struct {
	mu   sync.Mutex
	vars map[string]string
}

// NewMapEnv creates a MapEnv seeded with vars.
func NewMapEnv(vars map[string]string) *MapEnv {
	m := make(map[string]string, len(vars))
	for k, v := range vars {
		m[k] = v
	}
	return &MapEnv{vars: m}
}

// Lookup returns the value of key and whether it is set.
func (e *MapEnv) Lookup(key string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.vars[key]
	return v, ok
}

// Set assigns value to key.
func (e *MapEnv) Set(key, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.vars[key] = value
	return nil
}

// Unset removes key.
func (e *MapEnv) Unset(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.vars, key)
}

// MemFs returns an in-memory filesystem with the given files written and the
// given directories created.
func MemFs(t *testing.T, files map[string]string, dirs ...string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, d := range dirs {
		if err := fs.MkdirAll(d, 0755); err != nil {
			t.Fatalf("MemFs: mkdir %s failed: %v", d, err)
		}
	}
	for path, content := range files {
		if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
			t.Fatalf("MemFs: write %s failed: %v", path, err)
		}
	}
	return fs
}

// TempHome creates a temporary home directory containing the given startup
// files (name relative to home -> content) and returns its path.
func TempHome(t *testing.T, files map[string]string) string {
	t.Helper()

	home := t.TempDir()
	for name, content := range files {
		WriteFile(t, filepath.Join(home, name), content)
	}
	return home
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatalf("WriteFile: mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile: write failed: %v", err)
	}
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}
