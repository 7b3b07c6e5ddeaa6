package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hbjs97/envpath/internal/platform"
	"github.com/hbjs97/envpath/internal/shell"
	"github.com/hbjs97/envpath/internal/sysenv"
	"github.com/spf13/cobra"
)

func (a *App) newExportCmd() *cobra.Command {
	var shellType string
	var hook, install bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "보강된 PATH를 설정하는 셸 스니펫을 출력한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shellType == "" {
				shellType = a.detectShell()
			}
			if install {
				return a.installHook(cmd, shellType)
			}
			if hook {
				snippet := shell.HookSnippet(shellType)
				if snippet == "" {
					return fmt.Errorf("cli.export: 지원하지 않는 셸 %q", shellType)
				}
				fmt.Fprint(cmd.OutOrStdout(), snippet)
				return nil
			}

			r, err := a.newResolver(cmd)
			if err != nil {
				return err
			}
			path := r.EnhancedPath(cmd.Context())
			fmt.Fprint(cmd.OutOrStdout(), shell.Export(path, r.ListSeparator(), shellType))
			return nil
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "", "대상 셸 (bash, zsh, sh, fish, powershell). 생략하면 $SHELL에서 감지")
	cmd.Flags().BoolVar(&hook, "hook", false, "RC 파일에 넣을 자동 적용 스니펫을 출력")
	cmd.Flags().BoolVar(&install, "install", false, "자동 적용 스니펫을 셸 RC 파일에 추가")
	return cmd
}

func (a *App) installHook(cmd *cobra.Command, shellType string) error {
	rcPath := shell.RCPath(shellType, homeDir(a.Env))
	if rcPath == "" {
		return fmt.Errorf("cli.export: 지원하지 않는 셸 %q", shellType)
	}
	installed, err := shell.InstallHook(a.Fs, shellType, rcPath)
	if err != nil {
		return err
	}
	if installed {
		fmt.Fprintf(cmd.OutOrStdout(), "hook 설치: %s\n", rcPath)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "이미 설치됨: %s\n", rcPath)
	}
	return nil
}

// detectShell은 $SHELL에서 셸 종류를 감지한다. Windows에서는 powershell이다.
func (a *App) detectShell() string {
	if a.Platform == platform.Windows {
		return "powershell"
	}
	sh := sysenv.Get(a.Env, "SHELL")
	if sh == "" {
		return "sh"
	}
	return strings.TrimSuffix(filepath.Base(sh), ".exe")
}
