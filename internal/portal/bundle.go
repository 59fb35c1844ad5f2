// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

package portal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// fallbackTemplate is used when templates/index.html is absent.
const fallbackTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1.0,maximum-scale=1.0,user-scalable=no">
<meta name="apple-mobile-web-app-capable" content="yes">
<title>Sumi Setup</title>
<style>
{{CSS}}
</style>
</head>
<body>
{{BODY}}
<script>
{{JS}}
</script>
</body>
</html>
`

// Builder bundles the portal sources into the embedded header.
type Builder struct {
	cfg Config
	log *slog.Logger
}

// NewBuilder creates a portal builder. logger may be nil.
func NewBuilder(cfg Config, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{cfg: cfg, log: logger}
}

// Build bundles css, js, and template into the output header and returns the
// output path. A listed source file that is missing is logged and treated as
// empty; any filesystem error on the write is returned.
func (b *Builder) Build() (string, error) {
	start := time.Now()

	css, err := b.collectAssets(b.cfg.CSSDir, b.cfg.CSSFiles, ".css", cssBoundary)
	if err != nil {
		return "", err
	}
	js, err := b.collectAssets(b.cfg.JSDir, b.cfg.JSFiles, ".js", jsBoundary)
	if err != nil {
		return "", err
	}
	if b.cfg.Minify {
		css = MinifyCSS(css)
		js = MinifyJS(js)
	}

	html := b.renderTemplate(css, js)
	out := wrapHeader(html)

	if dir := filepath.Dir(b.cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(b.cfg.Output, []byte(out), 0o600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", b.cfg.Output, err)
	}

	b.log.Info("portal built",
		"output", b.cfg.Output,
		"size_kb", fmt.Sprintf("%.1f", float64(len(out))/1024),
		"minified", b.cfg.Minify,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return b.cfg.Output, nil
}

func cssBoundary(name string) string { return fmt.Sprintf("/* === %s === */", name) }
func jsBoundary(name string) string  { return fmt.Sprintf("// === %s ===", name) }

// collectAssets concatenates the listed files in order, each preceded by its
// boundary comment, then appends unlisted files with the matching extension
// in lexical order.
func (b *Builder) collectAssets(dir string, listed []string, ext string, boundary func(string) string) (string, error) {
	var parts []string
	included := make(map[string]bool, len(listed))

	for _, name := range listed {
		included[name] = true
		content, ok, err := b.readAsset(filepath.Join(dir, name))
		if err != nil {
			return "", err
		}
		if !ok {
			b.log.Warn("asset file not found", "file", name, "dir", dir)
			continue
		}
		parts = append(parts, boundary(name)+"\n"+content)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			b.log.Warn("asset directory not found", "dir", dir)
			return strings.Join(parts, "\n\n"), nil
		}
		return "", fmt.Errorf("failed to read %s: %w", dir, err)
	}
	for _, entry := range entries { // ReadDir returns lexical order
		name := entry.Name()
		if entry.IsDir() || included[name] || !strings.HasSuffix(name, ext) {
			continue
		}
		content, ok, err := b.readAsset(filepath.Join(dir, name))
		if err != nil {
			return "", err
		}
		if ok {
			parts = append(parts, boundary(name)+"\n"+content)
		}
	}

	return strings.Join(parts, "\n\n"), nil
}

// readAsset reads a source file. A missing file is not an error; it reports
// ok=false so the caller can warn and continue.
func (b *Builder) readAsset(path string) (content string, ok bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), true, nil
}

// renderTemplate substitutes the three markers into the page template.
func (b *Builder) renderTemplate(css, js string) string {
	tmpl := fallbackTemplate
	if data, err := os.ReadFile(filepath.Join(b.cfg.TemplateDir, "index.html")); err == nil {
		tmpl = string(data)
	}

	body := ""
	if data, err := os.ReadFile(filepath.Join(b.cfg.TemplateDir, "body.html")); err == nil {
		body = string(data)
	}

	html := strings.ReplaceAll(tmpl, "{{CSS}}", css)
	html = strings.ReplaceAll(html, "{{JS}}", js)
	html = strings.ReplaceAll(html, "{{BODY}}", body)
	return html
}

// wrapHeader embeds the bundled page as an include-guarded C raw string.
func wrapHeader(html string) string {
	return `/**
 * @file portal_html.h
 * @brief Embedded web portal for Sumi - Auto-generated
 *
 * Generated from the portal template, css, and js sources.
 * Do not edit directly - edit the sources and run: sumi-tools portal build
 */

#ifndef PORTAL_HTML_H
#define PORTAL_HTML_H

#include <pgmspace.h>

const char PORTAL_HTML[] PROGMEM = R"rawliteral(` + html + `)rawliteral";

#endif // PORTAL_HTML_H
`
}
