package shellconfig

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hbjs97/envpath/internal/logger"
	"github.com/hbjs97/envpath/internal/pathlist"
	"github.com/hbjs97/envpath/internal/platform"
	"github.com/hbjs97/envpath/internal/sysenv"
	"github.com/spf13/afero"
)

// DefaultFiles는 홈 디렉토리 기준 후보 시작 파일 목록이다. 순서대로 읽는다.
var DefaultFiles = []string{".zshrc", ".bashrc", ".bash_profile", ".profile"}

var (
	// pathExport는 export PATH=<값> 구문이다. 따옴표 값은 따옴표나 줄바꿈에서,
	// 따옴표 없는 값은 공백에서 끝난다.
	pathExport = regexp.MustCompile(`export[ \t]+PATH=(?:"([^"\n]*)"?|'([^'\n]*)'?|([^\s"';]+))`)

	// varRef는 $NAME 또는 ${NAME} 참조다.
	varRef = regexp.MustCompile(`\$(?:\{([A-Za-z_][A-Za-z0-9_]*)\}|([A-Za-z_][A-Za-z0-9_]*))`)
)

// Parser는 셸 시작 파일에서 PATH 항목을 추출한다.
type Parser struct {
	fs    afero.Fs
	env   sysenv.Env
	host  platform.OS
	files []string
	log   logger.Logger
}

// Options는 Parser 생성 인자다.
type Options struct {
	Fs       afero.Fs
	Env      sysenv.Env
	Platform platform.OS
	// Files는 홈 기준 후보 파일 목록이다. 비어 있으면 DefaultFiles를 쓴다.
	Files  []string
	Logger logger.Logger
}

// NewParser는 새 Parser를 생성한다.
func NewParser(opts Options) *Parser {
	p := &Parser{
		fs:    opts.Fs,
		env:   opts.Env,
		host:  opts.Platform,
		files: opts.Files,
		log:   opts.Logger,
	}
	if len(p.files) == 0 {
		p.files = DefaultFiles
	}
	if p.log == nil {
		p.log = logger.Nop()
	}
	return p
}

// Discarded는 변수를 해석하지 못해 버려진 PATH 항목이다.
type Discarded struct {
	File    string
	Segment string
	// Variable은 해석하지 못한 변수명이다. $(...) 같은 지원하지 않는 확장이면 비어 있다.
	Variable string
}

// Result는 Collect의 결과다.
type Result struct {
	// Segments는 해석된 항목을 처음 등장 순서대로 중복 없이 담는다.
	Segments []string
	// Discarded는 해석 실패로 버려진 항목이다.
	Discarded []Discarded
	// Files는 실제로 읽은 시작 파일 경로다.
	Files []string
}

// Parse는 home 아래 시작 파일들의 PATH 항목을 구분자로 이어 반환한다.
// 적용할 파일이 없거나, 항목이 없거나, 읽기에 실패하면 false를 반환한다.
func (p *Parser) Parse(home string) (string, bool) {
	res, err := p.Collect(home)
	if err != nil {
		p.log.Debug("failed to read shell configuration files", "error", err)
		return "", false
	}
	if len(res.Segments) == 0 {
		return "", false
	}
	return pathlist.Join(res.Segments, p.host.ListSeparator()), true
}

// Collect는 후보 파일을 읽어 PATH 항목을 추출한다. 읽기 오류는 전체 실패로 반환한다.
func (p *Parser) Collect(home string) (*Result, error) {
	res := &Result{}
	if p.host == platform.Windows || home == "" {
		return res, nil
	}

	var all []string
	for _, name := range p.files {
		path := p.filePath(home, name)
		if !p.exists(path) {
			continue
		}
		data, err := afero.ReadFile(p.fs, path)
		if err != nil {
			return nil, fmt.Errorf("shellconfig.Collect: %w", err)
		}
		res.Files = append(res.Files, path)

		content := stripComments(string(data))
		s := &scope{env: p.env, home: home, content: content, visiting: map[string]bool{}}
		for _, value := range PathAssignments(content) {
			for _, raw := range splitValue(value, p.host.ListSeparator()) {
				seg := strings.TrimSpace(raw)
				if seg == "" || isSelfReference(seg) {
					continue
				}
				if !pathlist.HasVariableRef(seg) {
					all = append(all, seg)
					continue
				}
				resolved, missing := s.substitute(seg)
				if len(missing) > 0 {
					for _, name := range missing {
						p.log.Debug("unable to resolve variable, discarding path segment",
							"variable", name, "segment", seg, "file", path)
					}
					res.Discarded = append(res.Discarded, Discarded{File: path, Segment: seg, Variable: missing[0]})
					continue
				}
				// $(...), ${VAR:-...} 같은 확장은 해석하지 않는다.
				if pathlist.HasVariableRef(resolved) {
					p.log.Debug("unsupported shell expansion, discarding path segment",
						"segment", seg, "file", path)
					res.Discarded = append(res.Discarded, Discarded{File: path, Segment: seg})
					continue
				}
				all = append(all, resolved)
			}
		}
	}

	res.Segments = pathlist.Dedupe(all)
	return res, nil
}

// PathAssignments는 content 안의 모든 export PATH= 값을 등장 순서대로 반환한다.
func PathAssignments(content string) []string {
	var values []string
	for _, m := range pathExport.FindAllStringSubmatch(content, -1) {
		for _, v := range m[1:] {
			if v != "" {
				values = append(values, v)
				break
			}
		}
	}
	return values
}

func (p *Parser) filePath(home, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(home, name)
}

// exists는 stat 실패를 파일 없음으로 본다.
func (p *Parser) exists(path string) bool {
	ok, err := afero.Exists(p.fs, path)
	return err == nil && ok
}

// splitValue는 value를 sep으로 나누되 ${...}, $(...) 안의 sep은 나누지 않는다.
func splitValue(value, sep string) []string {
	if value == "" {
		return nil
	}
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(value); i++ {
		switch {
		case value[i] == '$' && i+1 < len(value) && (value[i+1] == '{' || value[i+1] == '('):
			depth++
			i++
		case depth > 0 && (value[i] == '}' || value[i] == ')'):
			depth--
		case depth == 0 && strings.HasPrefix(value[i:], sep):
			parts = append(parts, value[start:i])
			start = i + len(sep)
			i += len(sep) - 1
		}
	}
	return append(parts, value[start:])
}

func isSelfReference(seg string) bool {
	return seg == "$PATH" || seg == "${PATH}"
}

// stripComments는 #로 시작하는 줄을 비운다. 줄 수는 유지한다.
func stripComments(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}
