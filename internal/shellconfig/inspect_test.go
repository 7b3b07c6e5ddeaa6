package shellconfig_test

import (
	"testing"

	"github.com/hbjs97/envpath/internal/platform"
	"github.com/hbjs97/envpath/internal/shellconfig"
	"github.com/hbjs97/envpath/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	t.Parallel()

	p := shellconfig.NewParser(shellconfig.Options{
		Fs: testutil.MemFs(t, map[string]string{
			home + "/.zshrc":   "export PATH=\"/a:$PATH\"\n# export PATH=/c\nexport PATH=/b:$PATH\n",
			home + "/.profile": "umask 022\n",
		}),
		Env:      testutil.NewMapEnv(nil),
		Platform: platform.Unix,
	})

	infos := p.Inspect(home)
	require.Len(t, infos, 4)
	assert.Equal(t, shellconfig.FileInfo{Path: home + "/.zshrc", Exists: true, Shell: "zsh", PathDefinitions: 2}, infos[0])
	assert.Equal(t, shellconfig.FileInfo{Path: home + "/.bashrc", Exists: false, Shell: "bash"}, infos[1])
	assert.Equal(t, shellconfig.FileInfo{Path: home + "/.bash_profile", Exists: false, Shell: "bash"}, infos[2])
	assert.Equal(t, shellconfig.FileInfo{Path: home + "/.profile", Exists: true, Shell: "sh"}, infos[3])
}

func TestInspect_NoHome(t *testing.T) {
	t.Parallel()

	p := shellconfig.NewParser(shellconfig.Options{Fs: testutil.MemFs(t, nil), Env: testutil.NewMapEnv(nil), Platform: platform.Unix})
	assert.Nil(t, p.Inspect(""))
}

func TestShellType(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "zsh", shellconfig.ShellType("/h/.zshrc"))
	assert.Equal(t, "zsh", shellconfig.ShellType("/h/.zprofile"))
	assert.Equal(t, "bash", shellconfig.ShellType("/h/.bash_profile"))
	assert.Equal(t, "bash", shellconfig.ShellType("/h/.bashrc"))
	assert.Equal(t, "sh", shellconfig.ShellType("/h/.profile"))
}
