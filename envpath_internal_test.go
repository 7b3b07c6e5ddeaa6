package envpath

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hbjs97/envpath/internal/platform"
	"github.com/hbjs97/envpath/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const probeCmd = "/bin/bash -c echo $PATH"

func withFakes(t *testing.T, fc *testutil.FakeCommander, env *testutil.MapEnv, files map[string]string, dirs ...string) Option {
	t.Helper()
	fs := testutil.MemFs(t, files, dirs...)
	return func(s *settings) {
		s.commander = fc
		s.env = env
		s.fs = fs
		s.host = platform.Unix
	}
}

func TestEnhancer_MergesSources(t *testing.T) {
	t.Parallel()

	fc := testutil.NewFakeCommander()
	fc.Register(probeCmd, "/usr/bin:/bin\n", nil)
	env := testutil.NewMapEnv(map[string]string{"HOME": "/home/u", "PATH": "/usr/bin"})
	files := map[string]string{"/home/u/.bashrc": "export PATH=\"/opt/x/bin:/usr/bin:$PATH\"\n"}

	e := New(withFakes(t, fc, env, files, "/usr/bin", "/bin", "/opt/x/bin"))

	assert.Equal(t, "/usr/bin:/bin:/opt/x/bin", e.GetEnhancedSystemPath(context.Background()))

	shellPath, ok := e.GetPathFromShellConfig()
	require.True(t, ok)
	assert.Equal(t, "/opt/x/bin:/usr/bin", shellPath)
}

func TestEnhancer_ApplySetsProcessPath(t *testing.T) {
	t.Parallel()

	fc := testutil.NewFakeCommander()
	fc.Register(probeCmd, "/usr/bin:/bin\n", nil)
	env := testutil.NewMapEnv(map[string]string{"HOME": "/home/u", "PATH": "/usr/bin"})
	e := New(withFakes(t, fc, env, nil, "/usr/bin", "/bin"))

	got := e.ApplyEnhancedPath(context.Background())

	path, _ := env.Lookup("PATH")
	assert.Equal(t, got, path)
	assert.Equal(t, "/usr/bin:/bin", path)

	again := e.ApplyEnhancedPath(context.Background())
	assert.Equal(t, got, again)
}

func TestEnhancer_FallbackWhenNothingResolves(t *testing.T) {
	t.Parallel()

	fc := testutil.NewFakeCommander()
	fc.Register(probeCmd, "", errors.New("spawn failed"))
	env := testutil.NewMapEnv(map[string]string{"PATH": "/a::/a"})
	rec := testutil.NewRecordingLogger()

	got := GetEnhancedPath(context.Background(), withFakes(t, fc, env, nil), WithLogger(rec))

	assert.Equal(t, "/a::/a", got)
	assert.True(t, rec.Logged("warn", "fallback"))
}

func TestEnhancer_ValidationToggle(t *testing.T) {
	t.Parallel()

	fc := testutil.NewFakeCommander()
	fc.Register(probeCmd, "/missing:/usr/bin\n", nil)
	env := testutil.NewMapEnv(map[string]string{"PATH": "/usr/bin"})

	strict := New(withFakes(t, fc, env, nil, "/usr/bin"))
	loose := New(withFakes(t, fc, env, nil, "/usr/bin"), WithValidatePaths(false))

	assert.Equal(t, "/usr/bin", strict.GetEnhancedSystemPath(context.Background()))
	assert.Equal(t, "/missing:/usr/bin", loose.GetEnhancedSystemPath(context.Background()))
}

func TestEnhancer_TimeoutYieldsNoSystemPath(t *testing.T) {
	t.Parallel()

	fc := testutil.NewFakeCommander()
	fc.RegisterBlocking(probeCmd)
	env := testutil.NewMapEnv(nil)

	start := time.Now()
	_, ok := GetSystemPath(context.Background(), withFakes(t, fc, env, nil), WithTimeout(30*time.Millisecond))

	assert.False(t, ok)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestEnhancer_SetDebugTogglesBuiltinLogger(t *testing.T) {
	t.Parallel()

	e := New(WithDebug(false))
	require.NotNil(t, e.console)
	assert.False(t, e.console.Enabled())

	e.SetDebug(true)
	assert.True(t, e.console.Enabled())

	custom := New(WithLogger(testutil.NewRecordingLogger()))
	assert.Nil(t, custom.console)
	custom.SetDebug(true)
}

func TestGetShellConfigPath_NoHome(t *testing.T) {
	t.Parallel()

	fc := testutil.NewFakeCommander()
	env := testutil.NewMapEnv(map[string]string{"PATH": "/usr/bin"})

	_, ok := GetShellConfigPath(withFakes(t, fc, env, nil))
	assert.False(t, ok)
}
