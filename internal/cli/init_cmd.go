package cli

import (
	"fmt"
	"os"

	"github.com/hbjs97/envpath/internal/config"
	"github.com/spf13/cobra"
)

func (a *App) newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "기본 설정 파일을 생성한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.CfgPath); err == nil && !force {
				return fmt.Errorf("cli.init: %s 이미 존재함 (--force로 덮어쓰기)", a.CfgPath)
			}
			if err := config.Save(a.CfgPath, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "설정 파일 생성: %s\n", a.CfgPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "기존 설정 파일을 덮어쓴다")
	return cmd
}
