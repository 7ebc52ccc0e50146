// Package main is the entry point for the textdiff command.
package main

import (
	"fmt"
	"os"

	"github.com/RayLabsHQ/formatfuse-sub003/cmd"
)

// Build information injected via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	versionString := fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	cmd.SetVersion(versionString)
	if err := cmd.Execute(); err != nil {
		cmd.ReportError(os.Stderr, err)
		os.Exit(cmd.ExitCode(err))
	}
}
