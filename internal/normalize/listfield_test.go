package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected []string
	}{
		{"String slice passes through", []string{"a", "b"}, []string{"a", "b"}},
		{"Any slice of strings", []any{"a", "b"}, []string{"a", "b"}},
		{"Items are trimmed", []any{"x", " y "}, []string{"x", "y"}},
		{"Empty items dropped", []string{"a", "", "  ", "b"}, []string{"a", "b"}},
		{"Non-string elements skipped", []any{"a", 3, nil, "b"}, []string{"a", "b"}},
		{"Record with items", map[string]any{"header": "Tasks", "items": []any{"x", " y "}}, []string{"x", "y"}},
		{"Record without items", map[string]any{"header": "Tasks"}, []string{}},
		{"Record with string items", map[string]any{"items": "a▶b"}, []string{"a", "b"}},
		{"Delimited string", "a▶b▶ c ", []string{"a", "b", "c"}},
		{"Newline before marker", "Bake bread\n▶Clean oven", []string{"Bake bread", "Clean oven"}},
		{"Escaped newline before marker", `Bake bread\n▶Clean oven`, []string{"Bake bread", "Clean oven"}},
		{"Leading marker yields no empty entry", "▶a▶b", []string{"a", "b"}},
		{"String without marker is one item", "  whole string  ", []string{"whole string"}},
		{"Empty string", "", []string{}},
		{"Nil input", nil, []string{}},
		{"Unexpected type", 12.5, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseList(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseListPreservesOrder(t *testing.T) {
	result := ParseList("third▶first▶second")
	assert.Equal(t, []string{"third", "first", "second"}, result)
}
