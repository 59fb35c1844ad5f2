// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

package settings

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// capitalize upper-cases the first rune of a group key: "display" -> "Display".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// structName derives the per-group record name: "display" -> "DisplaySettings".
func structName(group string) string {
	return capitalize(group) + "Settings"
}

// boundConstPrefix derives the bound constant prefix: ("display",
// "orientation") -> "DISPLAY_ORIENTATION".
func boundConstPrefix(group, setting string) string {
	return strings.ToUpper(group) + "_" + strings.ToUpper(setting)
}

// formatBound renders a min/max bound for the setting's declared type.
// Int bounds render without a decimal point, float bounds always carry one
// so the generated C constant has floating-point type.
func formatBound(v float64, t Type) string {
	if t == TypeInt {
		return strconv.Itoa(int(v))
	}
	return formatFloat(v)
}

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// formatDefault renders a setting default as a C/TS-compatible literal.
// String defaults are not handled here; each projection quotes them itself.
func formatDefault(s *Setting) string {
	switch s.Type {
	case TypeBool:
		if s.Default.(bool) {
			return "true"
		}
		return "false"
	case TypeFloat:
		v, _ := numericDefault(s.Default, s.Type)
		return formatFloat(v)
	case TypeInt:
		v, _ := numericDefault(s.Default, s.Type)
		return strconv.Itoa(int(v))
	default:
		return fmt.Sprintf("%v", s.Default)
	}
}
