// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Artifact identifies one generated output.
type Artifact string

// Artifacts the generator can emit.
const (
	ArtifactFirmware   Artifact = "firmware"
	ArtifactJSONSchema Artifact = "schema"
	ArtifactTypeScript Artifact = "types"
	ArtifactDocs       Artifact = "docs"
)

// AllArtifacts lists every artifact in emission order.
var AllArtifacts = []Artifact{ArtifactFirmware, ArtifactJSONSchema, ArtifactTypeScript, ArtifactDocs}

// Default output filenames per artifact.
var artifactFiles = map[Artifact]string{
	ArtifactFirmware:   "SettingsSchema.h",
	ArtifactJSONSchema: "settings_schema.json",
	ArtifactTypeScript: "settings.types.ts",
	ArtifactDocs:       "SETTINGS_REFERENCE.md",
}

// Generator writes schema projections to an output directory. The four
// projections are pure functions of the schema; a failed write leaves
// already-written artifacts in place, and re-running is idempotent.
type Generator struct {
	Schema    *Schema
	OutputDir string
	// Now supplies the embedded generation timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Generate emits the requested artifacts (all four if none are named) and
// returns the paths written, in emission order.
func (g *Generator) Generate(artifacts ...Artifact) ([]string, error) {
	if err := g.Schema.Validate(); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	if len(artifacts) == 0 {
		artifacts = AllArtifacts
	}

	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	generatedAt := now()

	if err := os.MkdirAll(g.OutputDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var paths []string
	for _, artifact := range artifacts {
		name, ok := artifactFiles[artifact]
		if !ok {
			return paths, fmt.Errorf("unknown artifact %q", artifact)
		}

		var content []byte
		switch artifact {
		case ArtifactFirmware:
			content = []byte(GenerateFirmwareHeader(g.Schema, generatedAt))
		case ArtifactJSONSchema:
			data, err := GenerateJSONSchema(g.Schema)
			if err != nil {
				return paths, err
			}
			content = data
		case ArtifactTypeScript:
			content = []byte(GenerateTypeScript(g.Schema, generatedAt))
		case ArtifactDocs:
			content = []byte(GenerateMarkdown(g.Schema, generatedAt))
		}

		path := filepath.Join(g.OutputDir, name)
		if err := os.WriteFile(path, content, 0o600); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
