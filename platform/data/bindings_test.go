package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatten(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    map[string]any
		expected map[string]any
	}{
		{name: "nil", input: nil, expected: map[string]any{}},
		{name: "flat", input: simpleData, expected: simpleData},
		{
			name:  "nested",
			input: complexData,
			expected: map[string]any{
				"name":        "value",
				"limit":       42,
				"user::age":   30,
				"user::roles": []string{"admin", "dev"},
			},
		},
		{
			name: "deep and empty",
			input: map[string]any{
				"a":     map[string]any{"b": map[string]any{"c": true}},
				"empty": map[string]any{},
			},
			expected: map[string]any{"a::b::c": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Flatten(tt.input))
		})
	}
}

func TestExpand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    map[string]any
		expected map[string]any
	}{
		{name: "nil", input: nil, expected: map[string]any{}},
		{name: "flat", input: simpleData, expected: simpleData},
		{
			name: "paths nest",
			input: map[string]any{
				"user::age":   30,
				"user::roles": []string{"admin", "dev"},
				"a::b::c":     true,
			},
			expected: map[string]any{
				"user": map[string]any{"age": 30, "roles": []string{"admin", "dev"}},
				"a":    map[string]any{"b": map[string]any{"c": true}},
			},
		},
		{
			name: "path merges into map",
			input: map[string]any{
				"user":      map[string]any{"age": 30, "name": "ann"},
				"user::age": 31,
			},
			expected: map[string]any{"user": map[string]any{"age": 31, "name": "ann"}},
		},
		{
			name:     "path replaces plain value",
			input:    map[string]any{"user": 1, "user::age": 31},
			expected: map[string]any{"user": map[string]any{"age": 31}},
		},
		{
			name:     "paths inside nested maps",
			input:    map[string]any{"a": map[string]any{"b::c": 1}},
			expected: map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}},
		},
		{
			name:     "empty segment is kept",
			input:    map[string]any{"a::": 1, "::b": 2, "": 3},
			expected: map[string]any{"a::": 1, "::b": 2, "": 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Expand(tt.input))
		})
	}

	t.Run("inverse of flatten", func(t *testing.T) {
		assert.Equal(t, complexData, Expand(Flatten(complexData)))
	})

	t.Run("input is not shared", func(t *testing.T) {
		input := map[string]any{"user": map[string]any{"age": 30}}
		out := Expand(input)
		out["user"].(map[string]any)["age"] = 99
		assert.Equal(t, map[string]any{"user": map[string]any{"age": 30}}, input)
	})
}
