package platform_test

import (
	"testing"

	"github.com/hbjs97/envpath/internal/platform"
	"github.com/stretchr/testify/assert"
)

func TestFromGOOS(t *testing.T) {
	t.Parallel()
	tests := []struct {
		goos string
		want platform.OS
	}{
		{"windows", platform.Windows},
		{"darwin", platform.Darwin},
		{"linux", platform.Unix},
		{"freebsd", platform.Unix},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, platform.FromGOOS(tt.goos))
		})
	}
}

func TestListSeparator(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ";", platform.Windows.ListSeparator())
	assert.Equal(t, ":", platform.Darwin.ListSeparator())
	assert.Equal(t, ":", platform.Unix.ListSeparator())
}

func TestJoinPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "/home/u/.local/bin", platform.Unix.JoinPath("/home/u", ".local", "bin"))
	assert.Equal(t, "/opt/x", platform.Unix.JoinPath("/", "opt", "x"))
	assert.Equal(t, `C:\Users\u\scoop\shims`, platform.Windows.JoinPath(`C:\Users\u`, "scoop", "shims"))
	assert.Equal(t, "", platform.Unix.JoinPath())
}
