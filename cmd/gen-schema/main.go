// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

// Command gen-schema generates the settings validation JSON Schema file.
// It is the minimal CI entry point; sumi-tools settings generate produces
// the same file along with the other artifacts.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/psychoplath9450/SUMI/internal/settings"
)

func main() {
	schema, err := settings.GenerateJSONSchema(settings.DefaultSchema())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating schema: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join("schemas", "settings.schema.json")
	if err := os.MkdirAll(filepath.Dir(outPath), 0o750); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outPath, schema, 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", outPath)
}
