// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

package main

import (
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/psychoplath9450/SUMI/internal/settings"
)

// generateConfig holds configuration for the settings generate command.
type generateConfig struct {
	firmware   bool
	schema     bool
	types      bool
	docs       bool
	output     string
	schemaFile string
}

// NewSettingsCmd creates the settings subcommand group.
func NewSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Work with the declarative settings schema",
	}
	cmd.AddCommand(NewSettingsGenerateCmd())
	cmd.AddCommand(NewSettingsValidateCmd())
	return cmd
}

// NewSettingsGenerateCmd creates the settings generate subcommand.
func NewSettingsGenerateCmd() *cobra.Command {
	cfg := &generateConfig{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the settings artifacts from the schema",
		Long: `Projects the settings schema into its four artifacts: the firmware
C header, the portal validation JSON Schema, the portal TypeScript
interfaces, and the markdown reference. With no selection flags, all
four are generated.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSettingsGenerate(cmd, cfg)
		},
	}

	cmd.Flags().BoolVar(&cfg.firmware, "firmware", false, "generate the firmware C header only")
	cmd.Flags().BoolVar(&cfg.schema, "schema", false, "generate the validation JSON Schema only")
	cmd.Flags().BoolVar(&cfg.types, "types", false, "generate the TypeScript interfaces only")
	cmd.Flags().BoolVar(&cfg.docs, "docs", false, "generate the markdown reference only")
	cmd.Flags().StringVarP(&cfg.output, "output", "o", ".", "output directory")
	cmd.Flags().StringVar(&cfg.schemaFile, "schema-file", "", "schema document to use instead of the built-in schema")

	return cmd
}

func runSettingsGenerate(cmd *cobra.Command, cfg *generateConfig) error {
	schema, err := loadSchema(cfg.schemaFile)
	if err != nil {
		return err
	}

	var artifacts []settings.Artifact
	if cfg.firmware {
		artifacts = append(artifacts, settings.ArtifactFirmware)
	}
	if cfg.schema {
		artifacts = append(artifacts, settings.ArtifactJSONSchema)
	}
	if cfg.types {
		artifacts = append(artifacts, settings.ArtifactTypeScript)
	}
	if cfg.docs {
		artifacts = append(artifacts, settings.ArtifactDocs)
	}

	gen := &settings.Generator{Schema: schema, OutputDir: cfg.output}
	paths, err := gen.Generate(artifacts...)
	if err != nil {
		return oops.Code("GENERATE_FAILED").With("output", cfg.output).Wrap(err)
	}
	for _, p := range paths {
		cmd.Printf("Generated: %s\n", p)
	}
	return nil
}

// NewSettingsValidateCmd creates the settings validate subcommand.
func NewSettingsValidateCmd() *cobra.Command {
	var schemaFile string

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a settings JSON document against the schema",
		Long: `Validates a settings document (as exported by the portal) against the
validation JSON Schema. Unknown groups and settings are rejected.
Exits with code 0 on success, non-zero on failure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettingsValidate(cmd, args[0], schemaFile)
		},
	}

	cmd.Flags().StringVar(&schemaFile, "schema-file", "", "schema document to use instead of the built-in schema")

	return cmd
}

func runSettingsValidate(cmd *cobra.Command, path, schemaFile string) error {
	schema, err := loadSchema(schemaFile)
	if err != nil {
		return err
	}

	validator, err := settings.NewValidator(schema)
	if err != nil {
		return oops.Code("SCHEMA_COMPILE_FAILED").Wrap(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return oops.Code("READ_FAILED").With("file", path).Wrap(err)
	}
	if err := validator.Validate(data); err != nil {
		return oops.Code("SETTINGS_INVALID").With("file", path).Wrap(err)
	}

	cmd.Printf("%s: valid (schema version %d)\n", path, schema.Version)
	return nil
}

// loadSchema returns the built-in schema, or the parsed document when a
// schema file is given.
func loadSchema(path string) (*settings.Schema, error) {
	if path == "" {
		return settings.DefaultSchema(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.Code("READ_FAILED").With("file", path).Wrap(err)
	}
	schema, err := settings.ParseSchema(data)
	if err != nil {
		return nil, oops.Code("SCHEMA_INVALID").With("file", path).Wrap(err)
	}
	return schema, nil
}
