package doctor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hbjs97/envpath/internal/doctor"
	"github.com/hbjs97/envpath/internal/logger"
	"github.com/hbjs97/envpath/internal/platform"
	"github.com/hbjs97/envpath/internal/resolver"
	"github.com/hbjs97/envpath/internal/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(fc *testutil.FakeCommander, env map[string]string, fs afero.Fs) *resolver.Resolver {
	return resolver.New(resolver.Options{
		Logger:    logger.Nop(),
		Commander: fc,
		Env:       testutil.NewMapEnv(env),
		Fs:        fs,
		Platform:  platform.Unix,
	})
}

func TestCheckSystemProbe_OK(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.Register("/bin/bash", "/usr/bin:/bin\n", nil)

	res := doctor.CheckSystemProbe(context.Background(), newResolver(fc, nil, afero.NewMemMapFs()))
	assert.Equal(t, doctor.StatusOK, res.Status)
	assert.Contains(t, res.Message, "2개")
}

func TestCheckSystemProbe_Fail(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.Register("/bin/bash", "", errors.New("not found"))

	res := doctor.CheckSystemProbe(context.Background(), newResolver(fc, nil, afero.NewMemMapFs()))
	assert.Equal(t, doctor.StatusFail, res.Status)
	assert.NotEmpty(t, res.Fix)
}

func TestCheckShellConfigs(t *testing.T) {
	fs := testutil.MemFs(t, map[string]string{"/home/u/.zshrc": `export PATH="/a:$PATH"`})
	r := newResolver(testutil.NewFakeCommander(), map[string]string{"HOME": "/home/u"}, fs)

	results := doctor.CheckShellConfigs(r)
	require.Len(t, results, 1)
	assert.Equal(t, doctor.StatusOK, results[0].Status)
	assert.Contains(t, results[0].Message, "/home/u/.zshrc")
	assert.Contains(t, results[0].Message, "1개")
}

func TestCheckShellConfigs_NoneFound(t *testing.T) {
	r := newResolver(testutil.NewFakeCommander(), map[string]string{"HOME": "/home/u"}, afero.NewMemMapFs())

	results := doctor.CheckShellConfigs(r)
	require.Len(t, results, 1)
	assert.Equal(t, doctor.StatusWarn, results[0].Status)
}

func TestCheckShellConfigs_NoHome(t *testing.T) {
	r := newResolver(testutil.NewFakeCommander(), nil, afero.NewMemMapFs())

	results := doctor.CheckShellConfigs(r)
	require.Len(t, results, 1)
	assert.Equal(t, doctor.StatusOK, results[0].Status)
}

func TestCheckUnresolved(t *testing.T) {
	fs := testutil.MemFs(t, map[string]string{"/home/u/.bashrc": `export PATH="$NVM_BIN:/ok:$PATH"`})
	r := newResolver(testutil.NewFakeCommander(), map[string]string{"HOME": "/home/u"}, fs)

	results := doctor.CheckUnresolved(r)
	require.Len(t, results, 1)
	assert.Equal(t, doctor.StatusWarn, results[0].Status)
	assert.Contains(t, results[0].Message, "$NVM_BIN")
	assert.Contains(t, results[0].Fix, "NVM_BIN")
}

func TestCheckUnresolved_UnsupportedExpansion(t *testing.T) {
	fs := testutil.MemFs(t, map[string]string{"/home/u/.bashrc": `export PATH="$(brew --prefix)/bin:$PATH"`})
	r := newResolver(testutil.NewFakeCommander(), map[string]string{"HOME": "/home/u"}, fs)

	results := doctor.CheckUnresolved(r)
	require.Len(t, results, 1)
	assert.Equal(t, doctor.StatusWarn, results[0].Status)
	assert.Contains(t, results[0].Message, "$(brew --prefix)/bin")
	assert.Contains(t, results[0].Message, "지원하지 않는 셸 확장")
}

func TestCheckUnresolved_Clean(t *testing.T) {
	fs := testutil.MemFs(t, map[string]string{"/home/u/.bashrc": `export PATH="/ok:$PATH"`})
	r := newResolver(testutil.NewFakeCommander(), map[string]string{"HOME": "/home/u"}, fs)

	results := doctor.CheckUnresolved(r)
	require.Len(t, results, 1)
	assert.Equal(t, doctor.StatusOK, results[0].Status)
}

func TestCheckCurrentPath(t *testing.T) {
	fs := testutil.MemFs(t, nil, "/usr/bin", "/bin")

	results := doctor.CheckCurrentPath(fs, "/usr/bin:/bin:/usr/bin:/gone", ":")
	require.Len(t, results, 2)
	assert.Contains(t, results[0].Message, "중복 항목: /usr/bin")
	assert.Contains(t, results[1].Message, "/gone")
}

func TestCheckCurrentPath_Clean(t *testing.T) {
	fs := testutil.MemFs(t, nil, "/usr/bin")

	results := doctor.CheckCurrentPath(fs, "/usr/bin", ":")
	require.Len(t, results, 1)
	assert.Equal(t, doctor.StatusOK, results[0].Status)
}

func TestRunAll(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.Register("/bin/bash", "/usr/bin\n", nil)
	fs := testutil.MemFs(t, map[string]string{"/home/u/.profile": `export PATH="$HOME/bin:$PATH"`}, "/usr/bin")
	r := newResolver(fc, map[string]string{"HOME": "/home/u"}, fs)

	results := doctor.RunAll(context.Background(), r, fs, "/usr/bin")

	names := make([]string, 0, len(results))
	for _, res := range results {
		names = append(names, res.Name)
		assert.NotEqual(t, doctor.StatusFail, res.Status, res.Message)
	}
	assert.Equal(t, []string{"system_probe", "shell_config", "unresolved", "current_path"}, names)
}
