package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the gucfolio command. Without a subcommand it serves.
func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	cmd := &cobra.Command{
		Use:          "gucfolio",
		Short:        "GUC student portfolio backend",
		Version:      buildVersion,
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	cmd.SetVersionTemplate(versionString() + "\n")

	cmd.AddCommand(serve)
	cmd.AddCommand(newMigrateCmd())

	return cmd
}

func versionString() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", buildVersion, buildDate, buildCommit)
}
