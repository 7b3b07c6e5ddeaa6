package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const hookMarker = "envpath shell integration"

// RCPath는 셸별 RC 파일 경로를 반환한다. 지원하지 않는 셸이면 빈 문자열이다.
func RCPath(shellType, home string) string {
	switch shellType {
	case "zsh":
		return filepath.Join(home, ".zshrc")
	case "bash":
		return filepath.Join(home, ".bashrc")
	case "sh":
		return filepath.Join(home, ".profile")
	case "fish":
		return filepath.Join(home, ".config", "fish", "conf.d", "envpath.fish")
	default:
		return ""
	}
}

// InstallHook은 RC 파일 끝에 envpath hook을 추가한다.
// 이미 설치되어 있으면 false를 반환하고 파일을 건드리지 않는다.
func InstallHook(fs afero.Fs, shellType, rcPath string) (bool, error) {
	snippet := HookSnippet(shellType)
	if snippet == "" {
		return false, fmt.Errorf("shell.InstallHook: 지원하지 않는 셸: %s", shellType)
	}

	existing, err := afero.ReadFile(fs, rcPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("shell.InstallHook: %w", err)
	}
	if strings.Contains(string(existing), hookMarker) {
		return false, nil
	}

	if err := fs.MkdirAll(filepath.Dir(rcPath), 0700); err != nil {
		return false, fmt.Errorf("shell.InstallHook: %w", err)
	}
	f, err := fs.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return false, fmt.Errorf("shell.InstallHook: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s", snippet); err != nil {
		return false, fmt.Errorf("shell.InstallHook: %w", err)
	}
	return true, nil
}
