// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

package settings

import (
	"fmt"
	"strings"
	"time"
)

// TypeScript types per setting type. Both numeric types collapse to number.
var tsTypes = map[Type]string{
	TypeInt:    "number",
	TypeFloat:  "number",
	TypeBool:   "boolean",
	TypeString: "string",
}

// GenerateTypeScript renders the interfaces used by portal development: one
// interface per group plus the aggregate SumiSettings shape.
func GenerateTypeScript(sc *Schema, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, `/**
 * Auto-generated TypeScript interfaces for Sumi settings
 * Generated: %s
 */

`, generatedAt.Format(time.RFC3339))

	for gi := range sc.Groups {
		g := &sc.Groups[gi]
		fmt.Fprintf(&b, "/** %s */\n", g.Description)
		fmt.Fprintf(&b, "export interface %s {\n", structName(g.Name))
		for si := range g.Settings {
			s := &g.Settings[si]
			fmt.Fprintf(&b, "  /** %s */\n", s.Description)
			fmt.Fprintf(&b, "  %s: %s;\n", s.Name, tsTypes[s.Type])
		}
		b.WriteString("}\n\n")
	}

	b.WriteString("/** Complete settings object */\n")
	b.WriteString("export interface SumiSettings {\n")
	for gi := range sc.Groups {
		g := &sc.Groups[gi]
		fmt.Fprintf(&b, "  %s: %s;\n", g.Name, structName(g.Name))
	}
	b.WriteString("}\n")

	return b.String()
}
