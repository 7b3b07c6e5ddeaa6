package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/hbjs97/envpath/internal/pathlist"
	"github.com/hbjs97/envpath/internal/resolver"
	"github.com/spf13/afero"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckSystemProbe는 셸 조회로 PATH를 얻을 수 있는지 확인한다.
func CheckSystemProbe(ctx context.Context, r *resolver.Resolver) DiagResult {
	systemPath, ok := r.SystemPath(ctx)
	if !ok {
		return DiagResult{
			Name:    "system_probe",
			Status:  StatusFail,
			Message: "셸에서 PATH를 읽지 못함",
			Fix:     "timeout_ms를 늘리거나 셸 시작 파일의 오류를 확인",
		}
	}
	n := len(strings.Split(systemPath, r.ListSeparator()))
	return DiagResult{
		Name:    "system_probe",
		Status:  StatusOK,
		Message: fmt.Sprintf("셸 조회 성공 (%d개 항목)", n),
	}
}

// CheckShellConfigs는 후보 시작 파일의 존재 여부와 PATH 정의 수를 확인한다.
func CheckShellConfigs(r *resolver.Resolver) []DiagResult {
	infos := r.ShellConfigs()
	if len(infos) == 0 {
		return []DiagResult{{
			Name:    "shell_configs",
			Status:  StatusOK,
			Message: "적용할 셸 시작 파일 없음 (Windows 또는 HOME 미설정)",
		}}
	}

	var results []DiagResult
	found := false
	for _, info := range infos {
		if !info.Exists {
			continue
		}
		found = true
		results = append(results, DiagResult{
			Name:    "shell_config",
			Status:  StatusOK,
			Message: fmt.Sprintf("%s (%s): PATH 정의 %d개", info.Path, info.Shell, info.PathDefinitions),
		})
	}
	if !found {
		results = append(results, DiagResult{
			Name:    "shell_config",
			Status:  StatusWarn,
			Message: "셸 시작 파일을 찾지 못함",
			Fix:     "config_files 설정으로 읽을 파일을 지정",
		})
	}
	return results
}

// CheckUnresolved는 변수를 해석하지 못해 버려지는 PATH 항목을 보고한다.
func CheckUnresolved(r *resolver.Resolver) []DiagResult {
	res, err := r.CollectShellConfig()
	if err != nil {
		return []DiagResult{{
			Name:    "unresolved",
			Status:  StatusFail,
			Message: fmt.Sprintf("셸 시작 파일 읽기 실패: %v", err),
			Fix:     "파일 권한 확인",
		}}
	}

	var results []DiagResult
	for _, d := range res.Discarded {
		if d.Variable == "" {
			results = append(results, DiagResult{
				Name:    "unresolved",
				Status:  StatusWarn,
				Message: fmt.Sprintf("%s: %s 항목은 지원하지 않는 셸 확장이라 제외됨", d.File, d.Segment),
				Fix:     "확장 결과를 변수에 담아 export 하거나 절대 경로로 작성",
			})
			continue
		}
		results = append(results, DiagResult{
			Name:    "unresolved",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s: %s 항목의 $%s 해석 불가", d.File, d.Segment, d.Variable),
			Fix:     fmt.Sprintf("%s를 같은 파일에서 export 하거나 환경변수로 설정", d.Variable),
		})
	}
	if len(results) == 0 {
		results = append(results, DiagResult{
			Name:    "unresolved",
			Status:  StatusOK,
			Message: "해석 불가 변수 없음",
		})
	}
	return results
}

// CheckCurrentPath는 현재 PATH의 중복 항목과 존재하지 않는 디렉토리를 확인한다.
func CheckCurrentPath(fs afero.Fs, current, sep string) []DiagResult {
	var results []DiagResult
	seen := make(map[string]bool)
	for _, seg := range pathlist.Split(current, sep) {
		if pathlist.Blank(seg) {
			continue
		}
		if seen[seg] {
			results = append(results, DiagResult{
				Name:    "current_path",
				Status:  StatusWarn,
				Message: fmt.Sprintf("중복 항목: %s", seg),
			})
			continue
		}
		seen[seg] = true
		if ok, err := afero.DirExists(fs, seg); err != nil || !ok {
			results = append(results, DiagResult{
				Name:    "current_path",
				Status:  StatusWarn,
				Message: fmt.Sprintf("존재하지 않는 디렉토리: %s", seg),
			})
		}
	}
	if len(results) == 0 {
		results = append(results, DiagResult{
			Name:    "current_path",
			Status:  StatusOK,
			Message: fmt.Sprintf("현재 PATH 정상 (%d개 항목)", len(seen)),
		})
	}
	return results
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, r *resolver.Resolver, fs afero.Fs, current string) []DiagResult {
	var results []DiagResult
	results = append(results, CheckSystemProbe(ctx, r))
	results = append(results, CheckShellConfigs(r)...)
	results = append(results, CheckUnresolved(r)...)
	results = append(results, CheckCurrentPath(fs, current, r.ListSeparator())...)
	return results
}
