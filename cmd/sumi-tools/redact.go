// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

package main

import (
	"fmt"
	"log/slog"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/psychoplath9450/SUMI/internal/redact"
)

// NewRedactCmd creates the redact subcommand.
func NewRedactCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "redact INPUT OUTPUT [PRESET...]",
		Short: "Black out private regions of a portal screenshot",
		Long: fmt.Sprintf(`Blacks out named preset regions (network names, addresses) of a portal
screenshot before it goes into the documentation. With no preset named,
%q is applied. Presets are tied to the screenshot resolution they were
measured on; a mismatched image is an error.`, redact.DefaultPreset),
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return nil
			}
			return cobra.MinimumNArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				return runRedactList(cmd)
			}
			return runRedact(args)
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "list available presets and exit")

	return cmd
}

func runRedactList(cmd *cobra.Command) error {
	cmd.Println("Available presets:")
	for _, p := range redact.Presets() {
		cmd.Printf("  %-16s (%d,%d)-(%d,%d) on %dx%d\n",
			p.Name, p.Rect.Min.X, p.Rect.Min.Y, p.Rect.Max.X, p.Rect.Max.Y, p.Width, p.Height)
	}
	return nil
}

func runRedact(args []string) error {
	input, output := args[0], args[1]
	if err := redact.File(input, output, args[2:], slog.Default()); err != nil {
		return oops.Code("REDACT_FAILED").With("input", input).With("output", output).Wrap(err)
	}
	return nil
}
