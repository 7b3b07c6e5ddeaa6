// Package resolver는 시스템 셸 조회, 셸 시작 파일 파싱, 현재 프로세스 환경을
// 합쳐 중복 없는 검증된 PATH를 만든다. 어떤 실패도 호출자에게 에러로 전달하지 않는다.
package resolver

import (
	"context"
	"time"

	"github.com/hbjs97/envpath/internal/cmdexec"
	"github.com/hbjs97/envpath/internal/logger"
	"github.com/hbjs97/envpath/internal/platform"
	"github.com/hbjs97/envpath/internal/probe"
	"github.com/hbjs97/envpath/internal/shellconfig"
	"github.com/hbjs97/envpath/internal/sysenv"
	"github.com/spf13/afero"
)

// Source는 최종 PATH에 기여한 출처다.
type Source string

const (
	// SourceSystem은 셸 조회 결과다.
	SourceSystem Source = "system"
	// SourceShellConfig는 셸 시작 파일 파싱 결과다.
	SourceShellConfig Source = "shell-config"
	// SourceFallback은 두 출처가 모두 비었을 때 쓰는 현재 프로세스 PATH다.
	SourceFallback Source = "fallback"
)

// Options는 Resolver 구성값이다. New에서 기본값이 채워진 뒤에는 바뀌지 않는다.
type Options struct {
	// Debug는 기본 로거를 켠다. Logger를 직접 지정하면 무시된다.
	Debug  bool
	Logger logger.Logger
	// Timeout은 셸 조회 제한 시간이다. 0 이하이면 5초.
	Timeout time.Duration
	// ValidatePaths가 nil이면 true로 본다.
	ValidatePaths *bool
	ExtraPaths    []string
	ConfigFiles   []string

	Commander cmdexec.Commander
	Env       sysenv.Env
	Fs        afero.Fs
	// Platform이 비어 있으면 실행 중인 호스트를 쓴다.
	Platform platform.OS
}

// Resolver는 PATH 보강 파이프라인이다.
type Resolver struct {
	probe    *probe.Probe
	parser   *shellconfig.Parser
	env      sysenv.Env
	fs       afero.Fs
	host     platform.OS
	validate bool
	log      logger.Logger
}

// New는 기본값을 채워 새 Resolver를 생성한다.
func New(opts Options) *Resolver {
	if opts.Logger == nil {
		opts.Logger = logger.New(opts.Debug)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = probe.DefaultTimeout
	}
	if opts.Commander == nil {
		opts.Commander = &cmdexec.RealCommander{}
	}
	if opts.Env == nil {
		opts.Env = sysenv.Process{}
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Platform == "" {
		opts.Platform = platform.Current()
	}
	validate := true
	if opts.ValidatePaths != nil {
		validate = *opts.ValidatePaths
	}

	return &Resolver{
		probe: probe.New(probe.Options{
			Commander:  opts.Commander,
			Env:        opts.Env,
			Platform:   opts.Platform,
			Timeout:    opts.Timeout,
			ExtraPaths: opts.ExtraPaths,
			Logger:     opts.Logger,
		}),
		parser: shellconfig.NewParser(shellconfig.Options{
			Fs:       opts.Fs,
			Env:      opts.Env,
			Platform: opts.Platform,
			Files:    opts.ConfigFiles,
			Logger:   opts.Logger,
		}),
		env:      opts.Env,
		fs:       opts.Fs,
		host:     opts.Platform,
		validate: validate,
		log:      opts.Logger,
	}
}

// SystemPath는 셸을 실행해 얻은 PATH를 반환한다.
func (r *Resolver) SystemPath(ctx context.Context) (string, bool) {
	return r.probe.SystemPath(ctx)
}

// ShellConfigPath는 셸 시작 파일에서 추출한 PATH를 반환한다.
func (r *Resolver) ShellConfigPath() (string, bool) {
	return r.parser.Parse(r.home())
}

// ShellConfigs는 후보 시작 파일 목록의 상태를 반환한다.
func (r *Resolver) ShellConfigs() []shellconfig.FileInfo {
	if r.host == platform.Windows {
		return nil
	}
	return r.parser.Inspect(r.home())
}

// CollectShellConfig는 시작 파일 파싱의 상세 결과를 반환한다.
func (r *Resolver) CollectShellConfig() (*shellconfig.Result, error) {
	return r.parser.Collect(r.home())
}

// EnhancedPath는 보강된 PATH를 반환한다. 항상 문자열을 반환한다.
func (r *Resolver) EnhancedPath(ctx context.Context) string {
	return r.Report(ctx).Enhanced
}

// ApplyEnhancedPath는 보강된 PATH를 현재 프로세스 PATH에 적용하고 그 값을 반환한다.
func (r *Resolver) ApplyEnhancedPath(ctx context.Context) string {
	enhanced := r.EnhancedPath(ctx)
	if err := r.env.Set("PATH", enhanced); err != nil {
		r.log.Error("failed to apply enhanced PATH", "error", err)
		return enhanced
	}
	r.log.Info("enhanced PATH applied to process environment")
	return enhanced
}

func (r *Resolver) home() string {
	return sysenv.Get(r.env, "HOME")
}

// ListSeparator는 대상 플랫폼의 PATH 구분자다.
func (r *Resolver) ListSeparator() string {
	return r.host.ListSeparator()
}
