package cli

import (
	"errors"

	"github.com/hbjs97/envpath/internal/config"
)

var (
	// ErrNoResult는 요청한 출처에서 PATH를 얻지 못했을 때의 sentinel error다.
	ErrNoResult = errors.New("결과 없음")
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)
