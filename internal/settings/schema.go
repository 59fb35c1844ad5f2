// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

// Package settings defines the declarative Sumi settings schema and projects
// it into the artifacts consumed by the firmware, the web portal, and the
// documentation: a C header, a JSON Schema, TypeScript interfaces, and a
// markdown reference.
package settings

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Type identifies the value type of a setting.
type Type string

// Setting types supported by the schema.
const (
	TypeInt    Type = "int"
	TypeFloat  Type = "float"
	TypeBool   Type = "bool"
	TypeString Type = "string"
)

// Schema is the single source of truth for all generated settings artifacts.
// It is authored once per version bump and treated as read-only input; no
// generator mutates it.
type Schema struct {
	// Version is bumped by hand whenever the shape of any group changes.
	// The firmware compares it against persisted settings to detect staleness.
	Version int
	// Groups in declaration order. Order is significant: it determines the
	// emitted order in every projection.
	Groups []Group
}

// Group is a named, ordered collection of related settings.
type Group struct {
	Name        string
	Description string
	Settings    []Setting
}

// Setting is a single named, typed, bounded configuration value.
type Setting struct {
	Name string
	Type Type
	// Default holds an int, float64, bool, or string matching Type.
	Default any
	// Min and Max are inclusive bounds for int and float settings.
	// Either both are set or neither is.
	Min *float64
	Max *float64
	// MaxLength bounds the fixed-capacity firmware buffer for string settings.
	MaxLength   int
	Description string
}

// Bounded reports whether the setting declares min/max bounds.
func (s *Setting) Bounded() bool {
	return s.Min != nil && s.Max != nil
}

// Group returns the named group, or nil if the schema has no such group.
func (sc *Schema) Group(name string) *Group {
	for i := range sc.Groups {
		if sc.Groups[i].Name == name {
			return &sc.Groups[i]
		}
	}
	return nil
}

// Validate checks the schema invariants. A schema that fails validation is an
// authoring defect; generators assume a validated schema.
func (sc *Schema) Validate() error {
	if sc.Version < 1 {
		return fmt.Errorf("schema version must be >= 1, got %d", sc.Version)
	}
	seenGroups := make(map[string]bool, len(sc.Groups))
	for gi := range sc.Groups {
		g := &sc.Groups[gi]
		if g.Name == "" {
			return fmt.Errorf("group %d: name is required", gi)
		}
		if seenGroups[g.Name] {
			return fmt.Errorf("duplicate group %q", g.Name)
		}
		seenGroups[g.Name] = true
		if g.Description == "" {
			return fmt.Errorf("group %q: description is required", g.Name)
		}
		seenSettings := make(map[string]bool, len(g.Settings))
		for si := range g.Settings {
			s := &g.Settings[si]
			if s.Name == "" {
				return fmt.Errorf("group %q: setting %d: name is required", g.Name, si)
			}
			if seenSettings[s.Name] {
				return fmt.Errorf("group %q: duplicate setting %q", g.Name, s.Name)
			}
			seenSettings[s.Name] = true
			if err := s.validate(); err != nil {
				return fmt.Errorf("group %q: setting %q: %w", g.Name, s.Name, err)
			}
		}
	}
	return nil
}

func (s *Setting) validate() error {
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	switch s.Type {
	case TypeInt, TypeFloat:
		v, ok := numericDefault(s.Default, s.Type)
		if !ok {
			return fmt.Errorf("default %v (%T) does not match type %s", s.Default, s.Default, s.Type)
		}
		if (s.Min == nil) != (s.Max == nil) {
			return fmt.Errorf("min and max must be declared together")
		}
		if s.Bounded() {
			if *s.Min > *s.Max {
				return fmt.Errorf("min %v exceeds max %v", *s.Min, *s.Max)
			}
			if v < *s.Min || v > *s.Max {
				return fmt.Errorf("default %v outside [%v, %v]", v, *s.Min, *s.Max)
			}
		}
	case TypeBool:
		if _, ok := s.Default.(bool); !ok {
			return fmt.Errorf("default %v (%T) does not match type bool", s.Default, s.Default)
		}
		if s.Min != nil || s.Max != nil {
			return fmt.Errorf("bool settings cannot declare min/max")
		}
	case TypeString:
		str, ok := s.Default.(string)
		if !ok {
			return fmt.Errorf("default %v (%T) does not match type string", s.Default, s.Default)
		}
		if s.MaxLength < len(str) {
			return fmt.Errorf("maxLength %d shorter than default %q", s.MaxLength, str)
		}
		if s.Min != nil || s.Max != nil {
			return fmt.Errorf("string settings cannot declare min/max")
		}
	default:
		return fmt.Errorf("type must be int, float, bool, or string, got %q", s.Type)
	}
	return nil
}

// numericDefault coerces a default value of an int or float setting to
// float64 for bound checks. Ints authored as whole-number floats (a YAML/JSON
// artifact) are accepted.
func numericDefault(v any, t Type) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		if t == TypeInt && n != float64(int(n)) {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// ParseSchema parses a schema document in YAML or JSON form, preserving the
// declaration order of groups and settings, and validates it. The document
// shape mirrors the generated JSON Schema: a version plus a groups mapping.
func ParseSchema(data []byte) (*Schema, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("schema data is empty")
	}

	var doc struct {
		Version int       `yaml:"version"`
		Groups  yaml.Node `yaml:"groups"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid schema document: %w", err)
	}
	if doc.Groups.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("groups must be a mapping")
	}

	sc := &Schema{Version: doc.Version}
	for i := 0; i < len(doc.Groups.Content); i += 2 {
		key, val := doc.Groups.Content[i], doc.Groups.Content[i+1]
		group, err := parseGroup(key.Value, val)
		if err != nil {
			return nil, err
		}
		sc.Groups = append(sc.Groups, *group)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func parseGroup(name string, node *yaml.Node) (*Group, error) {
	var doc struct {
		Description string    `yaml:"description"`
		Settings    yaml.Node `yaml:"settings"`
	}
	if err := node.Decode(&doc); err != nil {
		return nil, fmt.Errorf("group %q: %w", name, err)
	}
	if doc.Settings.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("group %q: settings must be a mapping", name)
	}

	group := &Group{Name: name, Description: doc.Description}
	for i := 0; i < len(doc.Settings.Content); i += 2 {
		key, val := doc.Settings.Content[i], doc.Settings.Content[i+1]
		setting, err := parseSetting(key.Value, val)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}
		group.Settings = append(group.Settings, *setting)
	}
	return group, nil
}

func parseSetting(name string, node *yaml.Node) (*Setting, error) {
	var doc struct {
		Type        Type     `yaml:"type"`
		Default     any      `yaml:"default"`
		Min         *float64 `yaml:"min"`
		Max         *float64 `yaml:"max"`
		MaxLength   int      `yaml:"maxLength"`
		Description string   `yaml:"description"`
	}
	if err := node.Decode(&doc); err != nil {
		return nil, fmt.Errorf("setting %q: %w", name, err)
	}

	s := &Setting{
		Name:        name,
		Type:        doc.Type,
		Default:     doc.Default,
		Min:         doc.Min,
		Max:         doc.Max,
		MaxLength:   doc.MaxLength,
		Description: doc.Description,
	}
	// YAML decodes whole numbers as int; normalize to the declared type so
	// the projections render them consistently.
	if doc.Type == TypeFloat {
		if n, ok := doc.Default.(int); ok {
			s.Default = float64(n)
		}
	}
	return s, nil
}
