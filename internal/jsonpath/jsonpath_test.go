package jsonpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/jsonc-cli/internal/jsoncedit"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		want    jsoncedit.Path
	}{
		{
			name:    "empty array is the root",
			literal: `[]`,
			want:    jsoncedit.Path{},
		},
		{
			name:    "single key",
			literal: `["name"]`,
			want:    jsoncedit.Path{"name"},
		},
		{
			name:    "single index",
			literal: `[0]`,
			want:    jsoncedit.Path{0},
		},
		{
			name:    "mixed segments",
			literal: `["scripts", 2, "name"]`,
			want:    jsoncedit.Path{"scripts", 2, "name"},
		},
		{
			name:    "negative index keeps append meaning",
			literal: `[-1]`,
			want:    jsoncedit.Path{-1},
		},
		{
			name:    "non-integer number truncates",
			literal: `[1.9]`,
			want:    jsoncedit.Path{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.literal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		wantMsg string
	}{
		{
			name:    "not json",
			literal: `[`,
			wantMsg: "could not parse JSON",
		},
		{
			name:    "bare word",
			literal: `hello`,
			wantMsg: "could not parse JSON",
		},
		{
			name:    "trailing garbage",
			literal: `[] []`,
			wantMsg: "could not parse JSON",
		},
		{
			name:    "object instead of array",
			literal: `{"a": 1}`,
			wantMsg: "must be a JSON array of strings and numbers",
		},
		{
			name:    "bare string",
			literal: `"a"`,
			wantMsg: "must be a JSON array of strings and numbers",
		},
		{
			name:    "bare number",
			literal: `3`,
			wantMsg: "must be a JSON array of strings and numbers",
		},
		{
			name:    "boolean element",
			literal: `[true]`,
			wantMsg: "must be a JSON array of strings and numbers",
		},
		{
			name:    "nested array element",
			literal: `[["a"]]`,
			wantMsg: "must be a JSON array of strings and numbers",
		},
		{
			name:    "object element",
			literal: `[{"a": 1}]`,
			wantMsg: "must be a JSON array of strings and numbers",
		},
		{
			name:    "null element",
			literal: `[null]`,
			wantMsg: "must be a JSON array of strings and numbers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.literal)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "Invalid JSONPath")
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
