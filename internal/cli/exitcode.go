package cli

import (
	"errors"
)

// ExitCode는 envpath의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitNoResult는 요청한 출처에 결과가 없음이다.
	ExitNoResult ExitCode = 2
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 3
)

// exitCoder는 자식 프로세스 종료 코드를 가진 에러다 (*exec.ExitError).
type exitCoder interface {
	ExitCode() int
}

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
// exec로 실행한 자식 프로세스가 실패하면 그 종료 코드를 그대로 전달한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	var ec exitCoder
	switch {
	case errors.Is(err, ErrNoResult):
		return ExitNoResult
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.As(err, &ec) && ec.ExitCode() > 0:
		return ExitCode(ec.ExitCode())
	default:
		return ExitGeneral
	}
}
