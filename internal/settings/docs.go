// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

package settings

import (
	"fmt"
	"strings"
	"time"
)

// GenerateMarkdown renders the human-readable settings reference.
func GenerateMarkdown(sc *Schema, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Sumi Settings Reference\n\n")
	fmt.Fprintf(&b, "*Auto-generated: %s*\n\n", generatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Settings version: %d\n\n---\n\n", sc.Version)

	for gi := range sc.Groups {
		g := &sc.Groups[gi]
		fmt.Fprintf(&b, "## %s\n\n", capitalize(g.Name))
		fmt.Fprintf(&b, "%s\n\n", g.Description)
		b.WriteString("| Setting | Type | Default | Range | Description |\n")
		b.WriteString("|---------|------|---------|-------|-------------|\n")
		for si := range g.Settings {
			s := &g.Settings[si]
			def := formatDefault(s)
			if s.Type == TypeString {
				def = s.Default.(string)
			}
			fmt.Fprintf(&b, "| `%s` | %s | %s | %s | %s |\n",
				s.Name, s.Type, def, rangeColumn(s), s.Description)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// rangeColumn renders the Range cell: "min-max" for bounded numerics,
// "max N chars" for strings, blank otherwise.
func rangeColumn(s *Setting) string {
	switch {
	case s.Bounded():
		return fmt.Sprintf("%s-%s", formatBound(*s.Min, s.Type), formatBound(*s.Max, s.Type))
	case s.Type == TypeString && s.MaxLength > 0:
		return fmt.Sprintf("max %d chars", s.MaxLength)
	default:
		return ""
	}
}
