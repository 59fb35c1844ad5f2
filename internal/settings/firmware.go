// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

package settings

import (
	"fmt"
	"strings"
	"time"
)

// C type per setting type. String settings become fixed-size char buffers.
var cTypes = map[Type]string{
	TypeInt:    "int",
	TypeFloat:  "float",
	TypeBool:   "bool",
	TypeString: "char",
}

// GenerateFirmwareHeader renders the C header consumed by the firmware: one
// struct per group, the schema version constant, and min/max constants for
// every bounded setting.
//
// String buffers are sized exactly to MaxLength with no reserved terminator
// slot; the firmware copies into them with explicit length clamps.
func GenerateFirmwareHeader(sc *Schema, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, `/**
 * @file SettingsSchema.h
 * @brief Auto-generated settings schema
 * @generated %s
 *
 * DO NOT EDIT - Generated by sumi-tools settings generate
 * String buffers hold exactly maxLength bytes, no NUL terminator reserved.
 */

#ifndef SUMI_SETTINGS_SCHEMA_H
#define SUMI_SETTINGS_SCHEMA_H

#include <Arduino.h>

#define SETTINGS_VERSION %d

`, generatedAt.Format(time.RFC3339), sc.Version)

	for gi := range sc.Groups {
		g := &sc.Groups[gi]
		fmt.Fprintf(&b, "// %s\n", g.Description)
		fmt.Fprintf(&b, "struct %s {\n", structName(g.Name))
		for si := range g.Settings {
			s := &g.Settings[si]
			if s.Type == TypeString {
				// No inline initializer; the buffer is left default-zeroed.
				fmt.Fprintf(&b, "    char %s[%d];  // %s\n", s.Name, s.MaxLength, s.Description)
				continue
			}
			def := formatDefault(s)
			if s.Type == TypeFloat {
				def += "f"
			}
			fmt.Fprintf(&b, "    %s %s = %s;  // %s\n", cTypes[s.Type], s.Name, def, s.Description)
		}
		b.WriteString("};\n\n")
	}

	b.WriteString("// Validation limits\n")
	for gi := range sc.Groups {
		g := &sc.Groups[gi]
		for si := range g.Settings {
			s := &g.Settings[si]
			if !s.Bounded() {
				continue
			}
			prefix := boundConstPrefix(g.Name, s.Name)
			fmt.Fprintf(&b, "#define %s_MIN %s\n", prefix, formatBound(*s.Min, s.Type))
			fmt.Fprintf(&b, "#define %s_MAX %s\n", prefix, formatBound(*s.Max, s.Type))
		}
	}

	b.WriteString("\n#endif // SUMI_SETTINGS_SCHEMA_H\n")
	return b.String()
}
