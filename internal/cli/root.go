package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/hbjs97/envpath/internal/cmdexec"
	"github.com/hbjs97/envpath/internal/config"
	"github.com/hbjs97/envpath/internal/logger"
	"github.com/hbjs97/envpath/internal/platform"
	"github.com/hbjs97/envpath/internal/resolver"
	"github.com/hbjs97/envpath/internal/sysenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// App은 CLI 명령이 공유하는 의존성이다. 테스트는 가짜 구현을 주입한다.
type App struct {
	Commander cmdexec.Commander
	Env       sysenv.Env
	Fs        afero.Fs
	Platform  platform.OS
	CfgPath   string

	debug      bool
	timeoutMS  int
	noValidate bool
}

// NewApp은 실제 OS 의존성으로 App을 생성한다.
func NewApp() *App {
	env := sysenv.Process{}
	return &App{
		Commander: &cmdexec.RealCommander{},
		Env:       env,
		Fs:        afero.NewOsFs(),
		Platform:  platform.Current(),
		CfgPath:   config.DefaultPath(homeDir(env)),
	}
}

// NewRootCmd는 실제 의존성으로 envpath CLI의 루트 명령을 생성한다.
func NewRootCmd() *cobra.Command {
	return NewApp().NewRootCmd()
}

// NewRootCmd는 envpath CLI의 루트 명령을 생성한다. 하위 명령이 없으면 show로 동작한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "envpath",
		Short:         "GUI 앱에서도 완전한 PATH를 복원한다",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShow(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "디버그 로그를 stderr에 출력")
	cmd.PersistentFlags().IntVar(&a.timeoutMS, "timeout", 0, "셸 조회 제한 시간 (ms)")
	cmd.PersistentFlags().BoolVar(&a.noValidate, "no-validate", false, "디렉토리 존재 여부를 확인하지 않음")

	cmd.AddCommand(
		a.newShowCmd(),
		a.newSystemCmd(),
		a.newShellConfigCmd(),
		a.newReportCmd(),
		a.newExportCmd(),
		a.newDoctorCmd(),
		a.newExecCmd(),
		a.newInitCmd(),
	)
	return cmd
}

// newResolver는 설정 파일과 플래그를 합쳐 Resolver를 만든다. 플래그가 우선한다.
func (a *App) newResolver(cmd *cobra.Command) (*resolver.Resolver, error) {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return nil, err
	}

	debug := cfg.Debug || a.debug
	timeout := cfg.Timeout()
	if cmd.Flags().Changed("timeout") {
		timeout = time.Duration(a.timeoutMS) * time.Millisecond
	}
	validate := cfg.IsValidatePaths() && !a.noValidate

	return resolver.New(resolver.Options{
		Debug:         debug,
		Logger:        logger.NewWithWriter(cmd.ErrOrStderr(), debug),
		Timeout:       timeout,
		ValidatePaths: &validate,
		ExtraPaths:    cfg.ExtraPaths,
		ConfigFiles:   cfg.ConfigFiles,
		Commander:     a.Commander,
		Env:           a.Env,
		Fs:            a.Fs,
		Platform:      a.Platform,
	}), nil
}

func homeDir(env sysenv.Env) string {
	if home := sysenv.Home(env); home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Clean(home)
}
