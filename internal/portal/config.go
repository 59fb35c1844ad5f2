// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

// Package portal builds the embedded web portal: it bundles the split
// development sources (css, js, templates) into the single portal_html.h
// constant compiled into the firmware.
package portal

import (
	"fmt"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config controls the portal build.
type Config struct {
	CSSDir      string        `koanf:"css_dir"`
	JSDir       string        `koanf:"js_dir"`
	TemplateDir string        `koanf:"template_dir"`
	Output      string        `koanf:"output"`
	CSSFiles    []string      `koanf:"css_files"`
	JSFiles     []string      `koanf:"js_files"`
	Minify      bool          `koanf:"minify"`
	Debounce    time.Duration `koanf:"debounce"`
	// Ignore lists glob patterns the watcher skips (editor swap files etc.).
	Ignore []string `koanf:"ignore"`
}

// DefaultConfig returns the stock portal layout. The file lists fix the
// concatenation order; files present on disk but not listed are appended in
// lexical order after them.
func DefaultConfig() Config {
	return Config{
		CSSDir:      "portal/css",
		JSDir:       "portal/js",
		TemplateDir: "portal/templates",
		Output:      "src/core/portal_html.h",
		CSSFiles: []string{
			"variables.css",
			"base.css",
			"layout.css",
			"components.css",
			"pages.css",
			"responsive.css",
		},
		JSFiles: []string{
			"config.js",
			"api.js",
			"navigation.js",
			"toast.js",
			"status.js",
			"builder.js",
			"plugins.js",
			"wifi.js",
			"files.js",
			"reader.js",
			"bluetooth.js",
			"system.js",
			"settings.js",
			"main.js",
		},
		Debounce: 500 * time.Millisecond,
		Ignore:   []string{"*.swp", "*~", ".#*"},
	}
}

// LoadConfig layers an optional YAML config file and command-line flags over
// the defaults. path may be empty; flags may be nil.
func LoadConfig(path string, flags *pflag.FlagSet) (Config, error) {
	cfg := DefaultConfig()

	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("failed to load portal config %s: %w", path, err)
		}
	}
	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return cfg, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("invalid portal config: %w", err)
	}
	return cfg, nil
}
