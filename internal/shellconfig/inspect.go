package shellconfig

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FileInfo는 후보 시작 파일 하나의 상태다.
type FileInfo struct {
	Path            string
	Exists          bool
	Shell           string
	PathDefinitions int
}

// Inspect는 후보 시작 파일마다 존재 여부, 셸 종류, PATH 정의 수를 보고한다.
// 읽을 수 없는 파일은 존재하지만 정의가 0개인 것으로 보고한다.
func (p *Parser) Inspect(home string) []FileInfo {
	if home == "" {
		return nil
	}
	infos := make([]FileInfo, 0, len(p.files))
	for _, name := range p.files {
		path := p.filePath(home, name)
		info := FileInfo{Path: path, Shell: ShellType(path)}
		if p.exists(path) {
			info.Exists = true
			if data, err := afero.ReadFile(p.fs, path); err == nil {
				info.PathDefinitions = len(PathAssignments(stripComments(string(data))))
			}
		}
		infos = append(infos, info)
	}
	return infos
}

// ShellType은 파일명으로 셸 종류(zsh, bash, sh)를 추정한다.
func ShellType(path string) string {
	base := filepath.Base(path)
	switch {
	case strings.HasPrefix(base, ".z"):
		return "zsh"
	case strings.Contains(base, "bash"):
		return "bash"
	default:
		return "sh"
	}
}
