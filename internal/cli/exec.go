package cli

import (
	"fmt"

	"github.com/hbjs97/envpath/internal/cmdexec"
	"github.com/spf13/cobra"
)

func (a *App) newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec -- <command> [args...]",
		Short: "보강된 PATH로 명령을 실행한다",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.newResolver(cmd)
			if err != nil {
				return err
			}
			path := r.ApplyEnhancedPath(cmd.Context())

			stdio := cmdexec.Stdio{
				In:  cmd.InOrStdin(),
				Out: cmd.OutOrStdout(),
				Err: cmd.ErrOrStderr(),
			}
			if err := a.Commander.RunWithEnv(cmd.Context(), map[string]string{"PATH": path}, stdio, args[0], args[1:]...); err != nil {
				return fmt.Errorf("cli.exec: %s: %w", args[0], err)
			}
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
