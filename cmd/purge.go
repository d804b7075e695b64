package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/guialves/fallow/internal/core"
	"github.com/guialves/fallow/internal/report"
	"github.com/guialves/fallow/internal/scan"
)

var (
	reportPath string
	assumeYes  bool
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete stale files and report freed space",
	Long: `Walk the tree and permanently delete every file past the staleness
threshold whose extension is not protected. Deleted paths are written to
the report file as they are removed. There is no trash stage — use
'fallow scan' or --dry-run to preview first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := effectiveScanConfig(cmd)
		if err != nil {
			return err
		}

		rp := cfg.Report.Path
		if cmd.Flags().Changed("report") {
			rp = reportPath
		}

		if !dryRun && !assumeYes {
			ok, err := confirmPurge(sc.Root, sc.MaxAgeDays)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}
		}

		purger := scan.NewPurger(sc, logger, dryRun)

		var rep *report.Writer
		if !dryRun {
			rep, err = report.NewWriter(rp)
			if err != nil {
				return err
			}
			defer rep.Close()
			purger.SetReporter(rep)
		}

		result, runErr := purger.Run(cmd.Context())
		if runErr != nil && result == nil {
			return runErr
		}

		if jsonOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return err
			}
			return runErr
		}

		printPurgeResult(result)
		return runErr
	},
}

func init() {
	addScanFlags(purgeCmd)
	purgeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview without deleting")
	purgeCmd.Flags().StringVar(&reportPath, "report", "", "Report file path (default unused_files.txt)")
	purgeCmd.Flags().BoolVar(&assumeYes, "yes", false, "Skip the confirmation prompt")
	purgeCmd.Flags().BoolVar(&jsonOut, "json", false, "Output the result as JSON")
}

// confirmPurge asks before deleting. Non-interactive callers must pass
// --yes explicitly.
func confirmPurge(root string, maxAgeDays int) (bool, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return false, fmt.Errorf("stdin is not a terminal; pass --yes to delete without confirmation")
	}
	fmt.Printf("Permanently delete files under %s not accessed in %d days? [y/N] ", root, maxAgeDays)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func printPurgeResult(result *scan.Result) {
	if result.DryRun {
		fmt.Println("Stale files (dry run, nothing deleted):")
	} else {
		fmt.Println("Unused Files:")
	}
	for _, rec := range result.Deleted {
		fmt.Println(rec.Path)
	}

	if result.Failed > 0 {
		fmt.Printf("\n%d file(s) could not be deleted, see log for details.\n", result.Failed)
	}

	fmt.Println()
	if result.DryRun {
		fmt.Printf("Would free: %s\n", core.FormatSize(result.FreedBytes))
	} else {
		fmt.Printf("Total Space Freed: %s\n", core.FormatSize(result.FreedBytes))
	}
}
