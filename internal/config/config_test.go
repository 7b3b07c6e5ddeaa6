package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hbjs97/envpath/internal/config"
	"github.com/hbjs97/envpath/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidTOML(t *testing.T) {
	content := `version = 1
debug = true
timeout_ms = 1500
validate_paths = false
extra_paths = ["/opt/tools/bin"]
config_files = [".zshenv", ".zshrc"]`

	path := testutil.TempConfigFile(t, content)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 1500*time.Millisecond, cfg.Timeout())
	assert.False(t, cfg.IsValidatePaths())
	assert.Equal(t, []string{"/opt/tools/bin"}, cfg.ExtraPaths)
	assert.Equal(t, []string{".zshenv", ".zshrc"}, cfg.ConfigFiles)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load("/nonexistent/path/config.toml")

	require.NoError(t, err)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.True(t, cfg.IsValidatePaths())
}

func TestLoadConfig_DefaultValues(t *testing.T) {
	path := testutil.TempConfigFile(t, `debug = false`)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, config.CurrentVersion, cfg.Version)
	assert.Equal(t, config.DefaultTimeoutMS, cfg.TimeoutMS)
	assert.True(t, cfg.IsValidatePaths())
	assert.Empty(t, cfg.ExtraPaths)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := testutil.TempConfigFile(t, "invalid toml [[[")
	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative timeout", `timeout_ms = -1`},
		{"future version", `version = 2`},
		{"empty config file entry", `config_files = [".zshrc", ""]`},
		{"wrong type", `timeout_ms = "fast"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.TempConfigFile(t, tt.content)
			_, err := config.Load(path)
			assert.ErrorIs(t, err, config.ErrConfig)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	validate := false
	cfg := &config.Config{
		Version:       1,
		Debug:         true,
		TimeoutMS:     2000,
		ValidatePaths: &validate,
		ExtraPaths:    []string{"/opt/a", "/opt/b"},
	}
	require.NoError(t, config.Save(path, cfg))

	// 파일 권한 0600 확인
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, loaded.Debug)
	assert.Equal(t, 2000, loaded.TimeoutMS)
	assert.False(t, loaded.IsValidatePaths())
	assert.Equal(t, []string{"/opt/a", "/opt/b"}, loaded.ExtraPaths)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/u", ".config", "envpath", "config.toml"), config.DefaultPath("/home/u"))
}
