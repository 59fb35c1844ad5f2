// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/psychoplath9450/SUMI/internal/portal"
)

// NewPortalCmd creates the portal subcommand group.
func NewPortalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portal",
		Short: "Build the embedded web portal",
	}
	cmd.AddCommand(NewPortalBuildCmd())
	return cmd
}

// NewPortalBuildCmd creates the portal build subcommand.
func NewPortalBuildCmd() *cobra.Command {
	var (
		configFile string
		watch      bool
	)
	defaults := portal.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Bundle the portal sources into portal_html.h",
		Long: `Concatenates the portal css, js, and template sources into the single
portal_html.h constant embedded in the firmware. With --watch the
sources are rebuilt whenever a file changes, until interrupted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPortalBuild(cmd, configFile, watch)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "portal config file path")
	cmd.Flags().BoolVar(&watch, "watch", false, "rebuild on source changes")
	// Flag defaults mirror the config defaults so an unset flag never
	// overrides a config file value.
	cmd.Flags().Bool("minify", defaults.Minify, "minify css and js")
	cmd.Flags().String("output", defaults.Output, "output header path")

	return cmd
}

func runPortalBuild(cmd *cobra.Command, configFile string, watch bool) error {
	cfg, err := portal.LoadConfig(configFile, cmd.Flags())
	if err != nil {
		return oops.Code("CONFIG_INVALID").Wrap(err)
	}

	builder := portal.NewBuilder(cfg, slog.Default())

	if watch {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		if err := builder.Watch(ctx); err != nil {
			return oops.Code("WATCH_FAILED").Wrap(err)
		}
		return nil
	}

	out, err := builder.Build()
	if err != nil {
		return oops.Code("BUILD_FAILED").Wrap(err)
	}
	cmd.Printf("Built: %s\n", out)
	return nil
}
