package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "보강된 PATH를 출력한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShow(cmd)
		},
	}
}

func (a *App) runShow(cmd *cobra.Command) error {
	r, err := a.newResolver(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), r.EnhancedPath(cmd.Context()))
	return nil
}

func (a *App) newSystemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "system",
		Short: "셸에서 조회한 시스템 PATH를 출력한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.newResolver(cmd)
			if err != nil {
				return err
			}
			path, ok := r.SystemPath(cmd.Context())
			if !ok {
				return fmt.Errorf("cli.system: %w", ErrNoResult)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func (a *App) newShellConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell-config",
		Short: "셸 시작 파일에서 추출한 PATH를 출력한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.newResolver(cmd)
			if err != nil {
				return err
			}
			path, ok := r.ShellConfigPath()
			if !ok {
				return fmt.Errorf("cli.shell-config: %w", ErrNoResult)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
