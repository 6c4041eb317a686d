package openapi_test

import (
	"encoding/json"
	"testing"
	"unicode/utf8"

	fv "github.com/Gobd/fieldvalidation"
	"github.com/Gobd/fieldvalidation/openapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponents(t *testing.T) {
	reg := fv.NewRegistry()
	schemas, err := openapi.Components(reg)
	require.NoError(t, err)
	assert.Len(t, schemas, len(fv.FieldTypes()))

	email := schemas["FieldEmail"].Value
	assert.Equal(t, "email", email.Format)
	assert.Equal(t, "email", email.Extensions[fv.ExtFieldType])

	text := schemas["FieldText"].Value
	assert.Empty(t, text.Description)
	assert.Equal(t, []string{}, text.Extensions[fv.ExtRules])
}

func TestComponents_CustomRuleSet(t *testing.T) {
	reg := fv.NewRegistry()
	reg.Register("sku", fv.MustRuleSet(
		fv.By("prefix", "Starts with SKU-", func(s string) bool { return len(s) > 4 && s[:4] == "SKU-" }).Require(),
	))

	schemas, err := openapi.Components(reg)
	require.NoError(t, err)
	require.Contains(t, schemas, "FieldSku")
	assert.Equal(t, "Starts with SKU-.", schemas["FieldSku"].Value.Description)
}

func TestSchemaName(t *testing.T) {
	tests := []struct {
		in   fv.FieldType
		want string
	}{
		{fv.Email, "FieldEmail"},
		{"", "Field"},
		{"émail", "FieldÉmail"},
		{"łódź", "FieldŁódź"},
	}
	for _, tt := range tests {
		got := openapi.SchemaName(tt.in)
		assert.Equal(t, tt.want, got)
		assert.True(t, utf8.ValidString(got), got)
	}
}

func TestMarshalComponents(t *testing.T) {
	schemas, err := openapi.Components(fv.NewRegistry())
	require.NoError(t, err)

	b, err := openapi.MarshalComponents(schemas)
	require.NoError(t, err)

	var doc map[string]map[string]map[string]map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	zip := doc["components"]["schemas"]["FieldZipcode"]
	assert.Equal(t, "string", zip["type"])
	assert.Equal(t, []any{"format"}, zip["x-rules"])
}
