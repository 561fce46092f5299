// Package jsonpath parses the JSONPath argument accepted by the jsonc CLI:
// a JSON array literal whose elements are object keys (strings) and array
// indices (numbers), e.g. `["dependencies","left-pad"]` or `["scripts",0]`.
//
// This is the path notation of jsonc-parser-style editing, not the
// JSONPath query language: no wildcards, no filters, just a fixed segment
// sequence.
package jsonpath

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mmr-tortoise/jsonc-cli/internal/jsoncedit"
)

// Root is the empty path, denoting the document root.
var Root = jsoncedit.Path{}

// Parse validates and decodes a JSONPath literal.
//
// The literal must be valid JSON and must decode to an array containing
// only strings and numbers; the two failure modes are reported distinctly.
// Numeric segments become int indices (an index of -1 keeps its append
// meaning for modify; non-integer numbers truncate toward zero and simply
// never resolve).
func Parse(literal string) (jsoncedit.Path, error) {
	dec := json.NewDecoder(strings.NewReader(literal))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("Invalid JSONPath, could not parse JSON: %v", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("Invalid JSONPath, could not parse JSON: unexpected trailing content")
	}

	elements, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("Invalid JSONPath, must be a JSON array of strings and numbers")
	}

	path := make(jsoncedit.Path, 0, len(elements))
	for _, element := range elements {
		switch v := element.(type) {
		case string:
			path = append(path, v)
		case json.Number:
			path = append(path, numberToIndex(v))
		default:
			return nil, fmt.Errorf("Invalid JSONPath, must be a JSON array of strings and numbers")
		}
	}
	return path, nil
}

func numberToIndex(n json.Number) int {
	if i, err := n.Int64(); err == nil {
		return int(i)
	}
	f, _ := n.Float64()
	return int(f)
}
