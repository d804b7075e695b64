package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/guialves/fallow/internal/review"
	"github.com/guialves/fallow/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Preview stale files without deleting",
	Long:  "Walk the tree and list files past the staleness threshold, with the space a purge would free. Nothing is deleted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := effectiveScanConfig(cmd)
		if err != nil {
			return err
		}

		purger := scan.NewPurger(sc, logger, true)
		result, err := purger.Run(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		review.PrintStatic(os.Stdout, result)
		return nil
	},
}

func init() {
	addScanFlags(scanCmd)
	scanCmd.Flags().BoolVar(&jsonOut, "json", false, "Output the scan result as JSON")
}
