package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/guialves/fallow/internal/config"
	"github.com/guialves/fallow/internal/logging"
)

var (
	// Global flags
	debug   bool
	dryRun  bool
	cfgFile string

	// Shared scan flags, bound per subcommand
	rootFlag    string
	maxAgeDays  int
	keepExts    []string
	excludeDirs []string
	jsonOut     bool

	// Runtime state built in PersistentPreRunE
	cfg       *config.Config
	logger    *slog.Logger
	logCloser io.Closer

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "fallow",
	Short: "Find and delete files left fallow on disk",
	Long: `Fallow - find and delete files left fallow on disk.

Scans a directory tree for files whose last access time is older than a
staleness threshold (six months by default), removes them, and reports
the space freed. Bundle extensions (.app, .framework, .dylib) are
protected from deletion.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initRuntime()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Fallow - find and delete files left fallow on disk")
		fmt.Println("Run 'fallow --help' for available commands.")
		fmt.Println()
		fmt.Printf("Version %s (%s) built %s\n", appVersion, appCommit, appDate)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path (YAML)")

	// Register all subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(purgeCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// initRuntime loads configuration and builds the logger. Runs before
// every subcommand.
func initRuntime() error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	level := cfg.Logging.Level
	if debug {
		level = "debug"
	}
	logger, logCloser = logging.New(logging.Config{
		Level:          level,
		Format:         cfg.Logging.Format,
		FilePath:       cfg.Logging.File,
		FileMaxSizeMB:  cfg.Logging.FileMaxSizeMB,
		FileMaxFiles:   cfg.Logging.FileMaxFiles,
		FileMaxAgeDays: cfg.Logging.FileMaxAgeDays,
	})

	return nil
}

// addScanFlags binds the flags every scanning subcommand shares.
func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&rootFlag, "root", "", "Directory tree to scan")
	cmd.Flags().IntVar(&maxAgeDays, "max-age", 0, "Staleness threshold in days (default from config, 180)")
	cmd.Flags().StringSliceVar(&keepExts, "keep-ext", nil, "Protected extensions, never deleted (e.g. .app,.dylib)")
	cmd.Flags().StringSliceVar(&excludeDirs, "exclude", nil, "Directory names to skip during the scan")
}

// effectiveScanConfig merges config-file settings with flag overrides and
// validates the resulting scan target.
func effectiveScanConfig(cmd *cobra.Command) (config.ScanConfig, error) {
	sc := cfg.Scan
	if cmd.Flags().Changed("root") {
		sc.Root = rootFlag
	}
	if cmd.Flags().Changed("max-age") {
		sc.MaxAgeDays = maxAgeDays
	}
	if cmd.Flags().Changed("keep-ext") {
		sc.ProtectedExtensions = keepExts
	}
	if cmd.Flags().Changed("exclude") {
		sc.ExcludeDirs = excludeDirs
	}

	if sc.Root == "" {
		return sc, fmt.Errorf("no scan root: pass --root or set scan.root in the config file")
	}
	abs, err := filepath.Abs(sc.Root)
	if err != nil {
		return sc, fmt.Errorf("resolving root: %w", err)
	}
	sc.Root = abs

	// A filesystem root as scan target is always a mistake.
	if filepath.Dir(sc.Root) == sc.Root {
		return sc, fmt.Errorf("refusing to scan filesystem root %s", sc.Root)
	}
	if info, err := os.Stat(sc.Root); err != nil {
		return sc, fmt.Errorf("scan root: %w", err)
	} else if !info.IsDir() {
		return sc, fmt.Errorf("scan root %s is not a directory", sc.Root)
	}

	if sc.MaxAgeDays <= 0 {
		return sc, fmt.Errorf("max-age must be positive, got %d", sc.MaxAgeDays)
	}

	return sc, nil
}
