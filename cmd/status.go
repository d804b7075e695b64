package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guialves/fallow/internal/status"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show disk usage",
	Long:  "Disk usage per mounted partition, plus the filesystem holding the configured scan root.",
	RunE: func(cmd *cobra.Command, args []string) error {
		root := cfg.Scan.Root
		if cmd.Flags().Changed("root") {
			root = rootFlag
		}

		report, err := status.Collect(root)
		if err != nil {
			return err
		}

		if jsonOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		fmt.Print(status.Render(report, 80))
		return nil
	},
}

func init() {
	statusCmd.Flags().StringVar(&rootFlag, "root", "", "Scan root whose filesystem usage to include")
	statusCmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
}
