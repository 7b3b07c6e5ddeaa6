package cli

import (
	"fmt"
	"io"

	"github.com/hbjs97/envpath/internal/doctor"
	"github.com/hbjs97/envpath/internal/sysenv"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "PATH 출처를 진단한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd)
		},
	}
}

func (a *App) runDoctor(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	r, err := a.newResolver(cmd)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] config: %v\n", err)
		fmt.Fprintln(out, "      Fix: envpath init --force 실행 또는 설정 파일 확인")
		return err
	}

	results := doctor.RunAll(cmd.Context(), r, a.Fs, sysenv.Get(a.Env, "PATH"))
	printDiagResults(out, results)
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(w io.Writer, results []doctor.DiagResult) {
	for _, r := range results {
		icon := statusIcon(r.Status)
		fmt.Fprintf(w, "  [%s] %s: %s\n", icon, r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(w, "      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
