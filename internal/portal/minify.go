// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

package portal

import (
	"regexp"
	"strings"
)

// The minifier is regex-based and lossy. It assumes the narrowed grammar the
// portal sources follow: no comment markers or significant runs of whitespace
// inside string literals, and js comments either on their own line or absent.
var (
	cssCommentRE = regexp.MustCompile(`(?s)/\*.*?\*/`)
	cssTightRE   = regexp.MustCompile(`\s*([{}:;,>+~])\s*`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// MinifyCSS strips comments and collapses whitespace.
func MinifyCSS(css string) string {
	css = cssCommentRE.ReplaceAllString(css, "")
	css = cssTightRE.ReplaceAllString(css, "$1")
	css = whitespaceRE.ReplaceAllString(css, " ")
	return strings.TrimSpace(css)
}

// MinifyJS drops whole-line // comments and trims line whitespace. Lines are
// kept separate so the output stays safe without semicolon insertion logic.
func MinifyJS(js string) string {
	lines := strings.Split(js, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//") {
			continue
		}
		out = append(out, trimmed)
	}
	return strings.Join(out, "\n")
}
