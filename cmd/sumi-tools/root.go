package main

import (
	"github.com/spf13/cobra"

	"github.com/psychoplath9450/SUMI/internal/logging"
)

// Global flags available to all subcommands.
var logFormat string

// NewRootCmd creates the root command for the Sumi build tools.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sumi-tools",
		Short: "Build tools for the Sumi e-reader firmware",
		Long: `sumi-tools bundles the build-time tooling of the Sumi firmware:
the settings schema generator, the embedded portal bundler, and the
screenshot redactor used for documentation.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.SetDefault("sumi-tools", version, logFormat)
		},
	}

	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log output format (text or json)")

	// Add subcommands
	cmd.AddCommand(NewSettingsCmd())
	cmd.AddCommand(NewPortalCmd())
	cmd.AddCommand(NewRedactCmd())

	return cmd
}
