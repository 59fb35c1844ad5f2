// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

package portal_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psychoplath9450/SUMI/internal/portal"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := portal.LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "portal/css", cfg.CSSDir)
	assert.Equal(t, "src/core/portal_html.h", cfg.Output)
	assert.Equal(t, "variables.css", cfg.CSSFiles[0])
	assert.Equal(t, "main.js", cfg.JSFiles[len(cfg.JSFiles)-1])
	assert.Equal(t, 500*time.Millisecond, cfg.Debounce)
	assert.False(t, cfg.Minify)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
css_dir: web/styles
minify: true
css_files:
  - one.css
`), 0o600))

	cfg, err := portal.LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "web/styles", cfg.CSSDir)
	assert.True(t, cfg.Minify)
	assert.Equal(t, []string{"one.css"}, cfg.CSSFiles)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, "portal/js", cfg.JSDir)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: from_file.h\n"), 0o600))

	flags := pflag.NewFlagSet("portal", pflag.ContinueOnError)
	flags.String("output", "", "output file")
	flags.Bool("minify", false, "minify output")
	require.NoError(t, flags.Parse([]string{"--output", "from_flag.h"}))

	cfg, err := portal.LoadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "from_flag.h", cfg.Output)
	assert.False(t, cfg.Minify)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := portal.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}
