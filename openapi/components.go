package openapi

import (
	"encoding/json"
	"unicode"
	"unicode/utf8"

	"github.com/getkin/kin-openapi/openapi3"

	fv "github.com/Gobd/fieldvalidation"
)

// SchemaName returns the component name used for field type t.
func SchemaName(t fv.FieldType) string {
	s := t.String()
	if s == "" {
		return "Field"
	}
	r, size := utf8.DecodeRuneInString(s)
	return "Field" + string(unicode.ToUpper(r)) + s[size:]
}

// Components returns one string schema per field type in reg, keyed by
// [SchemaName].
func Components(reg *fv.Registry) (openapi3.Schemas, error) {
	schemas := openapi3.Schemas{}
	for _, t := range reg.Types() {
		ref, err := reg.SchemaFor(t)
		if err != nil {
			return nil, err
		}
		schemas[SchemaName(t)] = ref
	}
	return schemas, nil
}

// MarshalComponents encodes schemas as indented JSON.
func MarshalComponents(schemas openapi3.Schemas) ([]byte, error) {
	return json.MarshalIndent(map[string]any{
		"components": map[string]any{"schemas": schemas},
	}, "", "  ")
}
