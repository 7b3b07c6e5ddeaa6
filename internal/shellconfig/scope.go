package shellconfig

import (
	"regexp"
	"strings"

	"github.com/hbjs97/envpath/internal/pathlist"
	"github.com/hbjs97/envpath/internal/sysenv"
)

// scope는 한 파일 안에서 변수 참조를 해석한다.
type scope struct {
	env     sysenv.Env
	home    string
	content string

	// visiting은 재귀 해석 중인 변수명이다. 순환 참조는 해석 실패가 된다.
	visiting map[string]bool
}

// substitute는 text의 모든 변수 참조를 치환한다. 해석하지 못한 변수명을 함께 반환한다.
func (s *scope) substitute(text string) (string, []string) {
	var missing []string
	out := varRef.ReplaceAllStringFunc(text, func(ref string) string {
		name := refName(ref)
		if v, ok := s.lookup(name); ok {
			return v
		}
		missing = append(missing, name)
		return ref
	})
	return out, missing
}

// lookup은 프로세스 환경변수, 홈 디렉토리, 파일 내 마지막 대입 순으로 name을 찾는다.
// 빈 값은 정의되지 않은 것으로 본다.
func (s *scope) lookup(name string) (string, bool) {
	if v := sysenv.Get(s.env, name); v != "" {
		return v, true
	}
	if name == "HOME" && s.home != "" {
		return s.home, true
	}
	if s.visiting[name] {
		return "", false
	}

	raw, ok := LastAssignment(s.content, name)
	if !ok {
		return "", false
	}
	if !pathlist.HasVariableRef(raw) {
		return raw, true
	}

	s.visiting[name] = true
	defer delete(s.visiting, name)
	v, missing := s.substitute(raw)
	if len(missing) > 0 || pathlist.HasVariableRef(v) {
		return "", false
	}
	return v, true
}

// LastAssignment는 content에서 name의 마지막 대입 값을 찾는다.
// export 유무, 따옴표 유무를 모두 인식한다. 셸은 위에서 아래로 실행되므로
// 나중 대입이 앞선 대입을 덮어쓴다.
func LastAssignment(content, name string) (string, bool) {
	matches := assignmentPattern(name).FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return "", false
	}
	last := matches[len(matches)-1]
	for _, v := range last[1:] {
		if v = strings.TrimSpace(v); v != "" {
			return v, true
		}
	}
	return "", false
}

func assignmentPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)(?:^[ \t]*|\bexport[ \t]+)` + regexp.QuoteMeta(name) +
		`=(?:"([^"\n]*)"|'([^'\n]*)'|([^\s"';]*))`)
}

func refName(ref string) string {
	m := varRef.FindStringSubmatch(ref)
	if m[1] != "" {
		return m[1]
	}
	return m[2]
}
