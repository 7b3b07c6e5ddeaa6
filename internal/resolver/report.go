package resolver

import (
	"context"

	"github.com/hbjs97/envpath/internal/pathlist"
	"github.com/hbjs97/envpath/internal/sysenv"
	"github.com/spf13/afero"
)

// Report는 한 번의 PATH 보강 결과다.
type Report struct {
	// Original은 호출 시점의 프로세스 PATH다.
	Original string `json:"original"`
	// Enhanced는 최종 PATH다.
	Enhanced string `json:"enhanced"`
	// Sources는 기여한 출처를 획득 순서대로 담는다.
	Sources    []Source `json:"sources"`
	SystemPath string   `json:"system_path,omitempty"`
	ShellPath  string   `json:"shell_path,omitempty"`
	// Segments는 Enhanced를 구성하는 항목이다.
	Segments []string `json:"segments"`
	// Invalid는 존재하지 않는 디렉토리라 검증에서 빠진 항목이다.
	Invalid []string `json:"invalid,omitempty"`
	// Added는 Original에 없던 항목 수다.
	Added int `json:"added"`
}

// Report는 보강 파이프라인을 실행하고 상세 결과를 반환한다.
func (r *Resolver) Report(ctx context.Context) Report {
	sep := r.host.ListSeparator()
	rep := Report{Original: r.currentPath()}

	// Step 1: 셸 조회
	if systemPath, ok := r.probe.SystemPath(ctx); ok {
		rep.SystemPath = systemPath
		rep.Sources = append(rep.Sources, SourceSystem)
		r.log.Info("system PATH obtained", "path", systemPath)
	}

	// Step 2: 셸 시작 파일
	if shellPath, ok := r.ShellConfigPath(); ok {
		rep.ShellPath = shellPath
		rep.Sources = append(rep.Sources, SourceShellConfig)
		r.log.Info("shell configuration PATH obtained", "path", shellPath)
	}

	// Step 3: 두 출처가 모두 비면 현재 PATH를 그대로 쓴다
	if len(rep.Sources) == 0 {
		rep.Enhanced = rep.Original
		rep.Sources = []Source{SourceFallback}
		rep.Segments = pathlist.Split(rep.Original, sep)
		r.log.Warn("using fallback PATH from process environment", "path", rep.Original)
		return rep
	}

	// Step 4: 병합, 중복 제거, 검증
	combined := pathlist.Concat(sep, rep.SystemPath, rep.ShellPath)
	for _, seg := range pathlist.Dedupe(pathlist.Split(combined, sep)) {
		if pathlist.Blank(seg) {
			continue
		}
		if pathlist.HasVariableRef(seg) {
			r.log.Debug("discarding path with unresolved variables", "segment", seg)
			continue
		}
		if r.validate && !r.dirExists(seg) {
			r.log.Debug("discarding missing directory", "segment", seg)
			rep.Invalid = append(rep.Invalid, seg)
			continue
		}
		rep.Segments = append(rep.Segments, seg)
	}

	rep.Enhanced = pathlist.Join(rep.Segments, sep)
	rep.Added = countAdded(rep.Original, rep.Segments, sep)
	r.log.Info("enhanced PATH created", "path", rep.Enhanced)
	return rep
}

// dirExists는 stat 실패를 디렉토리 없음으로 본다.
func (r *Resolver) dirExists(path string) bool {
	ok, err := afero.DirExists(r.fs, path)
	return err == nil && ok
}

func (r *Resolver) currentPath() string {
	return sysenv.Get(r.env, "PATH")
}

func countAdded(original string, segments []string, sep string) int {
	existing := make(map[string]struct{})
	for _, s := range pathlist.Split(original, sep) {
		existing[s] = struct{}{}
	}
	added := 0
	for _, s := range segments {
		if _, ok := existing[s]; !ok {
			added++
		}
	}
	return added
}
