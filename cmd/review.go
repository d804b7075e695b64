package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/guialves/fallow/internal/core"
	"github.com/guialves/fallow/internal/report"
	"github.com/guialves/fallow/internal/review"
	"github.com/guialves/fallow/internal/scan"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Pick stale files to delete interactively",
	Long:  "Scan for stale files, then choose which ones to delete in a full-screen picker. Falls back to a plain listing when stdout is not a terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := effectiveScanConfig(cmd)
		if err != nil {
			return err
		}

		// No terminal: behave like 'fallow scan'.
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			purger := scan.NewPurger(sc, logger, true)
			result, err := purger.Run(cmd.Context())
			if err != nil {
				return err
			}
			review.PrintStatic(os.Stdout, result)
			return nil
		}

		rp := cfg.Report.Path
		if cmd.Flags().Changed("report") {
			rp = reportPath
		}
		rep, err := report.NewWriter(rp)
		if err != nil {
			return err
		}
		defer rep.Close()

		model := review.NewModel(sc, logger, rep)
		program := tea.NewProgram(model, tea.WithAltScreen())
		final, err := program.Run()
		if err != nil {
			return err
		}

		if m, ok := final.(review.Model); ok && m.Deleted() > 0 {
			fmt.Printf("Deleted %d file(s).\n", m.Deleted())
			fmt.Printf("Total Space Freed: %s\n", core.FormatSize(m.Freed()))
			if m.Failed() > 0 {
				fmt.Printf("%d deletion(s) failed, see log for details.\n", m.Failed())
			}
		}
		return nil
	},
}

func init() {
	addScanFlags(reviewCmd)
	reviewCmd.Flags().StringVar(&reportPath, "report", "", "Report file path (default unused_files.txt)")
}
