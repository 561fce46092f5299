package jsoncedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseTreeTolerance verifies that comments and trailing commas are
// accepted and that node offsets slice the exact source text.
func TestParseTreeTolerance(t *testing.T) {
	text := `// leading comment
{
  "name": "demo", /* inline */
  "count": 3,
  "tags": ["a", "b",],
}`

	root, err := ParseTree(text)
	require.NoError(t, err)
	require.NotNil(t, root)
	assert.Equal(t, NodeObject, root.Type)
	assert.Len(t, root.Children, 3)

	// The root node spans from the opening to the closing brace.
	assert.Equal(t, "{", text[root.Offset:root.Offset+1])
	assert.Equal(t, "}", text[root.End()-1:root.End()])

	name := FindNodeAtLocation(root, Path{"name"})
	require.NotNil(t, name)
	assert.Equal(t, NodeString, name.Type)
	assert.Equal(t, `"demo"`, text[name.Offset:name.End()])
	assert.Equal(t, "demo", NodeValue(name))

	count := FindNodeAtLocation(root, Path{"count"})
	require.NotNil(t, count)
	assert.Equal(t, float64(3), NodeValue(count))

	tag := FindNodeAtLocation(root, Path{"tags", 1})
	require.NotNil(t, tag)
	assert.Equal(t, "b", NodeValue(tag))
}

func TestParseTreeScalars(t *testing.T) {
	tests := []struct {
		name string
		text string
		typ  NodeType
		want any
	}{
		{name: "string", text: `"hi"`, typ: NodeString, want: "hi"},
		{name: "string with escapes", text: `"a\nb\t\"c\" é"`, typ: NodeString, want: "a\nb\t\"c\" é"},
		{name: "number", text: `-12.5e2`, typ: NodeNumber, want: float64(-1250)},
		{name: "true", text: `true`, typ: NodeBoolean, want: true},
		{name: "false", text: `false`, typ: NodeBoolean, want: false},
		{name: "null", text: `null`, typ: NodeNull, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := ParseTree(tt.text)
			require.NoError(t, err)
			require.NotNil(t, root)
			assert.Equal(t, tt.typ, root.Type)
			assert.Equal(t, tt.want, NodeValue(root))
		})
	}
}

func TestParseTreeErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "bare word", text: `hello`},
		{name: "unterminated string", text: `"hello`},
		{name: "missing colon", text: `{"a" 1}`},
		{name: "missing comma", text: `[1 2]`},
		{name: "unbalanced brace", text: `{"a": 1`},
		{name: "trailing garbage", text: `{} {}`},
		{name: "non-string key", text: `{1: 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTree(tt.text)
			assert.Error(t, err)
		})
	}
}

// Blank input is not an error: modify can still initialize an empty
// document from a nil root.
func TestParseTreeBlankInput(t *testing.T) {
	for _, text := range []string{"", "   \n\t", "// just a comment\n", "/* block */", "\ufeff"} {
		root, err := ParseTree(text)
		assert.NoError(t, err)
		assert.Nil(t, root)
	}
}

// A leading byte-order mark and non-ASCII space characters are trivia,
// not content.
func TestParseTreeInvisibleWhitespace(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "byte order mark", text: "\ufeff{\"a\": 1}"},
		{name: "no-break space", text: "{ \"a\": 1}"},
		{name: "line separator", text: "{ \"a\": 1 }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := ParseTree(tt.text)
			require.NoError(t, err)
			require.NotNil(t, root)
			assert.Equal(t, float64(1), NodeValue(FindNodeAtLocation(root, Path{"a"})))
		})
	}
}

func TestFindNodeAtLocation(t *testing.T) {
	text := `{"a": {"b": [10, 20, {"c": true}]}, "a:b": null}`
	root, err := ParseTree(text)
	require.NoError(t, err)

	tests := []struct {
		name  string
		path  Path
		found bool
		want  any
	}{
		{name: "root", path: Path{}, found: true},
		{name: "nested object", path: Path{"a", "b", 2, "c"}, found: true, want: true},
		{name: "array element", path: Path{"a", "b", 1}, found: true, want: float64(20)},
		{name: "key containing colon", path: Path{"a:b"}, found: true, want: nil},
		{name: "missing key", path: Path{"z"}, found: false},
		{name: "index out of range", path: Path{"a", "b", 3}, found: false},
		{name: "negative index", path: Path{"a", "b", -1}, found: false},
		{name: "index into object", path: Path{"a", 0}, found: false},
		{name: "key into array", path: Path{"a", "b", "c"}, found: false},
		{name: "path below scalar", path: Path{"a", "b", 0, "x"}, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := FindNodeAtLocation(root, tt.path)
			if !tt.found {
				assert.Nil(t, node)
				return
			}
			require.NotNil(t, node)
			if tt.name != "root" {
				assert.Equal(t, tt.want, NodeValue(node))
			}
		})
	}
}

func TestNodeValueComposite(t *testing.T) {
	text := `{"a": [1, "x"], "b": {"c": false}}`
	root, err := ParseTree(text)
	require.NoError(t, err)

	want := map[string]any{
		"a": []any{float64(1), "x"},
		"b": map[string]any{"c": false},
	}
	assert.Equal(t, want, NodeValue(root))
}
