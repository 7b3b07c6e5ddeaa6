package shell

import (
	"fmt"
	"strings"

	"github.com/hbjs97/envpath/internal/sysenv"
)

// Export는 PATH를 설정하는 셸 명령을 생성한다.
func Export(path, sep, shellType string) string {
	switch shellType {
	case "fish":
		var parts []string
		for _, seg := range strings.Split(path, sep) {
			if seg != "" {
				parts = append(parts, singleQuote(seg))
			}
		}
		return fmt.Sprintf("set -gx PATH %s\n", strings.Join(parts, " "))
	case "powershell", "pwsh":
		return fmt.Sprintf("$env:PATH = '%s'\n", strings.ReplaceAll(path, "'", "''"))
	default: // bash, zsh, sh
		return fmt.Sprintf("export PATH=%s\n", singleQuote(path))
	}
}

// HookSnippet는 셸 RC 파일에 넣을 자동 적용 스니펫을 반환한다.
// PATH 조회용 셸 안에서는 envpath를 다시 실행하지 않는다.
func HookSnippet(shellType string) string {
	switch shellType {
	case "zsh", "bash", "sh":
		return fmt.Sprintf(`# envpath shell integration (%s)
[ -n "$%s" ] || eval "$(envpath export --shell %s 2>/dev/null)"
`, shellType, sysenv.ProbeMarker, shellType)
	case "fish":
		return fmt.Sprintf(`# envpath shell integration (fish)
set -q %s; or envpath export --shell fish 2>/dev/null | source
`, sysenv.ProbeMarker)
	case "powershell", "pwsh":
		return fmt.Sprintf(`# envpath shell integration (powershell)
if (-not $env:%s) { envpath export --shell powershell 2>$null | Invoke-Expression }
`, sysenv.ProbeMarker)
	default:
		return ""
	}
}

// singleQuote는 s를 POSIX 작은따옴표 문자열로 감싼다.
func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
