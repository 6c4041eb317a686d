package fieldvalidation

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Extension keys written by [RuleSet.Schema].
const (
	ExtRules     = "x-rules"
	ExtFieldType = "x-field-type"
)

var schemaFormats = map[FieldType]string{
	Email: "email",
	Card:  "credit-card",
}

// Describe appends the rule label to the schema description, marking
// optional rules.
func (r Rule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += r.Label
	if !r.Required {
		ref.Value.Description += " (optional)"
	}
	ref.Value.Description += "."
	return nil
}

// Schema documents rs as an OpenAPI string schema. Each rule contributes its
// label to the description and its id to the x-rules extension.
func (rs RuleSet) Schema(name string) (*openapi3.SchemaRef, error) {
	schema := openapi3.NewStringSchema()
	ref := openapi3.NewSchemaRef("", schema)

	ids := make([]string, 0, len(rs.rules))
	for _, r := range rs.rules {
		if err := r.Describe(name, schema, ref); err != nil {
			return nil, err
		}
		ids = append(ids, r.ID)
	}
	schema.Extensions = map[string]any{ExtRules: ids}
	return ref, nil
}

// SchemaFor documents the ruleset the registry holds for t.
func (r *Registry) SchemaFor(t FieldType) (*openapi3.SchemaRef, error) {
	ref, err := r.RulesFor(t).Schema(t.String())
	if err != nil {
		return nil, err
	}
	ref.Value.Format = schemaFormats[t]
	ref.Value.Extensions[ExtFieldType] = t.String()
	return ref, nil
}

// SchemaFor documents the default ruleset for t.
func SchemaFor(t FieldType) (*openapi3.SchemaRef, error) {
	return defaultRegistry.SchemaFor(t)
}
