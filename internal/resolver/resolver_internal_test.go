package resolver

import (
	"testing"

	"github.com/hbjs97/envpath/internal/logger"
	"github.com/hbjs97/envpath/internal/platform"
	"github.com/hbjs97/envpath/internal/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	r := New(Options{Env: testutil.NewMapEnv(nil), Fs: afero.NewMemMapFs()})

	assert.True(t, r.validate)
	assert.Equal(t, platform.Current(), r.host)

	l, ok := r.log.(*logger.ConsoleLogger)
	require.True(t, ok)
	assert.False(t, l.Enabled())
}

func TestNew_DebugEnablesDefaultLogger(t *testing.T) {
	r := New(Options{Debug: true, Env: testutil.NewMapEnv(nil), Fs: afero.NewMemMapFs()})

	l, ok := r.log.(*logger.ConsoleLogger)
	require.True(t, ok)
	assert.True(t, l.Enabled())
}

func TestNew_CustomLoggerUntouchedByDebug(t *testing.T) {
	custom := logger.NewWithWriter(nil, false)
	r := New(Options{Debug: true, Logger: custom, Env: testutil.NewMapEnv(nil), Fs: afero.NewMemMapFs()})

	assert.Same(t, custom, r.log)
	assert.False(t, custom.Enabled())
}
