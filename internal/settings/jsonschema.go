// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

package settings

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// JSON Schema types per setting type.
var jsonTypes = map[Type]string{
	TypeInt:    "integer",
	TypeFloat:  "number",
	TypeBool:   "boolean",
	TypeString: "string",
}

// GenerateJSONSchema renders the validation schema consumed by the portal.
// The contract is closed-world: unknown groups and unknown settings are
// rejected, never silently ignored.
func GenerateJSONSchema(sc *Schema) ([]byte, error) {
	root := &jsonschema.Schema{
		Version:              jsonschema.Version,
		ID:                   jsonschema.ID(SchemaID()),
		Title:                "Sumi Settings",
		Description:          "Settings schema for Sumi e-reader firmware",
		Type:                 "object",
		Properties:           jsonschema.NewProperties(),
		AdditionalProperties: jsonschema.FalseSchema,
	}

	for gi := range sc.Groups {
		g := &sc.Groups[gi]
		groupSchema := &jsonschema.Schema{
			Type:                 "object",
			Description:          g.Description,
			Properties:           jsonschema.NewProperties(),
			AdditionalProperties: jsonschema.FalseSchema,
		}
		for si := range g.Settings {
			s := &g.Settings[si]
			groupSchema.Properties.Set(s.Name, settingSchema(s))
		}
		root.Properties.Set(g.Name, groupSchema)
	}

	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

func settingSchema(s *Setting) *jsonschema.Schema {
	prop := &jsonschema.Schema{
		Type:        jsonTypes[s.Type],
		Description: s.Description,
		Default:     s.Default,
	}
	if s.Bounded() {
		prop.Minimum = json.Number(formatBound(*s.Min, s.Type))
		prop.Maximum = json.Number(formatBound(*s.Max, s.Type))
	}
	if s.Type == TypeString {
		maxLen := uint64(s.MaxLength)
		prop.MaxLength = &maxLen
	}
	return prop
}

// SchemaID returns the schema $id referenced by exported settings documents.
func SchemaID() string {
	return "https://sumi-reader.dev/schemas/settings.schema.json"
}

// Validator checks settings documents exported by the portal against the
// generated JSON Schema.
type Validator struct {
	compiled *jschema.Schema
}

// NewValidator compiles the validation schema generated from sc.
func NewValidator(sc *Schema) (*Validator, error) {
	schemaBytes, err := GenerateJSONSchema(sc)
	if err != nil {
		return nil, err
	}

	var schemaDoc any
	if err := json.Unmarshal(schemaBytes, &schemaDoc); err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	c := jschema.NewCompiler()
	if err := c.AddResource("settings.schema.json", schemaDoc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	compiled, err := c.Compile("settings.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &Validator{compiled: compiled}, nil
}

// Validate validates a JSON settings document. Documents containing settings
// the schema does not know are rejected.
func (v *Validator) Validate(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("settings document is empty")
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := v.compiled.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
