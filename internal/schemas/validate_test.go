package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSchemaPath(t *testing.T) {
	path := ResolveSchemaPath(PatchSchemaFile)
	assert.NotEmpty(t, path, "patch schema should be resolvable from the package directory")
}

func TestValidatePatch_Valid(t *testing.T) {
	tests := []struct {
		name  string
		patch any
	}{
		{"Scalar field", map[string]any{"jobTitle": "Head Baker"}},
		{"List as sequence", map[string]any{"tasks": []any{"Bake", "Clean"}}},
		{"List as items record", map[string]any{"tasks": map[string]any{"header": "Tasks", "items": []any{"Bake"}}}},
		{"List as delimited string", map[string]any{"tasks": "Bake▶Clean"}},
		{"Contact details", map[string]any{"contactDetails": map[string]any{"email": "jobs@bakery.example"}}},
		{"Unknown keys tolerated", map[string]any{"brand_color": "#ff0000"}},
		{"Empty patch", map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, ValidatePatch(tt.patch))
		})
	}
}

func TestValidatePatch_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		patch any
	}{
		{"Non-record patch", "just a string"},
		{"Scalar with wrong type", map[string]any{"jobTitle": 42}},
		{"List with wrong type", map[string]any{"tasks": 42}},
		{"Contact details not a record", map[string]any{"contactDetails": "call us"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePatch(tt.patch)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "properties": {"jobTitle": {"type": "string"}}, "required": ["jobTitle"]}`

	assert.NoError(t, ValidateJSONString(schema, `{"jobTitle": "Baker"}`))

	err := ValidateJSONString(schema, `{}`)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 12}`, `{}`)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}
