// Package cli — modify_test.go contains end-to-end tests for the modify
// command.
package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/jsonc-cli/internal/model"
)

func TestModifyCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name:  "overwrite array element without newline",
			stdin: `["hello"]`,
			args:  []string{"modify", "-p", "[0]", "-v", "123", "-n"},
			want:  `[123]`,
		},
		{
			name:  "overwrite nested element leaves siblings alone",
			stdin: `{"a":["hello"],"b":["please change me"]}`,
			args:  []string{"modify", "-p", `["b",0]`, "-v", "123", "-n"},
			want:  `{"a":["hello"],"b":[123]}`,
		},
		{
			name:  "array insertion displaces the element",
			stdin: `["hello"]`,
			args:  []string{"modify", "-p", "[0]", "-v", "123", "-i", "-n"},
			want:  `[123,"hello"]`,
		},
		{
			name:  "delete only array element",
			stdin: `["hello"]`,
			args:  []string{"modify", "-p", "[0]", "-d", "-n"},
			want:  `[]`,
		},
		{
			name:  "delete only property",
			stdin: `{"a":1}`,
			args:  []string{"modify", "-p", `["a"]`, "-d", "-n"},
			want:  `{}`,
		},
		{
			name:  "string value",
			stdin: `{"a": 1}`,
			args:  []string{"modify", "-p", `["a"]`, "-v", `"x"`, "-n"},
			want:  `{"a": "x"}`,
		},
		{
			name:  "append with negative index",
			stdin: `[1,2]`,
			args:  []string{"modify", "-p", "[-1]", "-v", "3", "-n"},
			want:  `[1,2,3]`,
		},
		{
			name:  "trailing newlines survive modification",
			stdin: "[\"hello\"]\n\n",
			args:  []string{"modify", "-p", "[0]", "-v", "123", "-n"},
			want:  "[123]\n\n",
		},
		{
			name:  "comments survive modification",
			stdin: "{\n  // answer\n  \"a\": 1\n}",
			args:  []string{"modify", "-p", `["a"]`, "-v", "42", "-n"},
			want:  "{\n  // answer\n  \"a\": 42\n}",
		},
		{
			name:  "number literal is re-emitted exactly",
			stdin: `{"a": 1}`,
			args:  []string{"modify", "-p", `["a"]`, "-v", "1.50", "-n"},
			want:  `{"a": 1.50}`,
		},
		{
			name:  "explicit formatting shapes the injected property",
			stdin: "{\n  \"a\": 1\n}",
			args:  []string{"modify", "-p", `["b"]`, "-v", "2", "-t", "2", "-n"},
			want:  "{\n  \"a\": 1,\n  \"b\": 2\n}",
		},
		{
			name:  "format flag alone does not reformat the document",
			stdin: `{"a":1}`,
			args:  []string{"modify", "-p", `["a"]`, "-v", "2", "-m", "-n"},
			want:  `{"a":2}`,
		},
		{
			name:  "format with explicit options reformats the whole document",
			stdin: `{"a":1,"b":{"c":2}}`,
			args:  []string{"modify", "-p", `["a"]`, "-v", "9", "-m", "-t", "2", "-n"},
			want:  "{\n  \"a\": 9,\n  \"b\": {\n    \"c\": 2\n  }\n}",
		},
		{
			name:  "trailing newline appended by default",
			stdin: `["hello"]`,
			args:  []string{"modify", "-p", "[0]", "-v", "123"},
			want:  "[123]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, strings.NewReader(tt.stdin), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModifyCommandValidation(t *testing.T) {
	t.Run("delete and value together fail before stdin", func(t *testing.T) {
		_, err := execute(t, &guardedReader{t: t}, "modify", "-p", "[0]", "-d", "-v", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one of --delete and --value")
		assert.Equal(t, model.ExitInvalidArguments, exitCodeOf(err))
	})

	t.Run("neither delete nor value fails before stdin", func(t *testing.T) {
		_, err := execute(t, &guardedReader{t: t}, "modify", "-p", "[0]")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one of --delete and --value")
	})

	t.Run("missing JSONPath flag", func(t *testing.T) {
		_, err := execute(t, &guardedReader{t: t}, "modify", "-v", "1")
		assert.Error(t, err)
	})

	t.Run("invalid JSONPath literal fails before stdin", func(t *testing.T) {
		_, err := execute(t, &guardedReader{t: t}, "modify", "-p", `{"a":1}`, "-v", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid JSONPath")
		assert.Equal(t, model.ExitInvalidJSONPath, exitCodeOf(err))
	})

	t.Run("invalid value literal fails before stdin", func(t *testing.T) {
		_, err := execute(t, &guardedReader{t: t}, "modify", "-p", "[0]", "-v", "{oops")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid JSON in --value")
		assert.Equal(t, model.ExitInvalidInput, exitCodeOf(err))
	})

	t.Run("invalid document", func(t *testing.T) {
		_, err := execute(t, strings.NewReader(`{"a"`), "modify", "-p", `["a"]`, "-v", "1")
		require.Error(t, err)
		assert.Equal(t, model.ExitInvalidInput, exitCodeOf(err))
	})
}

func TestModifyCommandFileOutput(t *testing.T) {
	t.Run("writes the result to the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		out, err := execute(t, strings.NewReader(`["hello"]`),
			"modify", "-p", "[0]", "-v", "123", "-f", path)
		require.NoError(t, err)
		assert.Empty(t, out)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[123]\n", string(data))
	})

	t.Run("dash means stdout", func(t *testing.T) {
		out, err := execute(t, strings.NewReader(`["hello"]`),
			"modify", "-p", "[0]", "-v", "123", "-f", "-")
		require.NoError(t, err)
		assert.Equal(t, "[123]\n", out)
	})

	t.Run("unwritable path surfaces the system error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "out.json")
		_, err := execute(t, strings.NewReader(`["hello"]`),
			"modify", "-p", "[0]", "-v", "123", "-f", path)
		require.Error(t, err)
		assert.Equal(t, model.ExitWriteFailed, exitCodeOf(err))
	})
}
