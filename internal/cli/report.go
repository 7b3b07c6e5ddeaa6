package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hbjs97/envpath/internal/resolver"
	"github.com/spf13/cobra"
)

func (a *App) newReportCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "report",
		Short: "PATH 보강 결과를 출처별로 보여준다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.newResolver(cmd)
			if err != nil {
				return err
			}
			rep := r.Report(cmd.Context())
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(rep); err != nil {
					return fmt.Errorf("cli.report: %w", err)
				}
				return nil
			}
			printReport(cmd.OutOrStdout(), rep)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "JSON으로 출력")
	return cmd
}

func printReport(w io.Writer, rep resolver.Report) {
	sources := make([]string, len(rep.Sources))
	for i, s := range rep.Sources {
		sources[i] = string(s)
	}
	fmt.Fprintf(w, "출처: %s\n", strings.Join(sources, ", "))
	fmt.Fprintf(w, "추가된 항목: %d\n", rep.Added)
	fmt.Fprintln(w, "\n보강된 PATH:")
	for _, seg := range rep.Segments {
		fmt.Fprintf(w, "  %s\n", seg)
	}
	if len(rep.Invalid) > 0 {
		fmt.Fprintln(w, "\n존재하지 않아 제외된 디렉토리:")
		for _, seg := range rep.Invalid {
			fmt.Fprintf(w, "  %s\n", seg)
		}
	}
}
