package main

import (
	"os"

	"github.com/guialves/fallow/cmd"
)

// Build-time variables, injected via -ldflags by the release workflow.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
