package jsoncedit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Edit is a single text replacement: Length bytes at Offset are replaced
// by Content. An insertion has Length 0, a deletion has empty Content.
type Edit struct {
	Offset  int
	Length  int
	Content string
}

// ModifyOptions controls how set/remove edits are computed.
type ModifyOptions struct {
	// Formatting, when non-nil, shapes the edited text: the lines touched
	// by the edit are re-indented according to these options. When nil the
	// raw minimal edit is returned and surrounding text is left exactly as
	// it was.
	Formatting *FormatOptions

	// IsArrayInsertion inserts a new element at the addressed index,
	// displacing the current element, instead of overwriting it.
	IsArrayInsertion bool
}

// ApplyEdits applies edits to text and returns the resulting document.
// Edits are applied back to front so earlier offsets stay valid; the
// engine never produces overlapping edits.
func ApplyEdits(text string, edits []Edit) string {
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Offset != sorted[j].Offset {
			return sorted[i].Offset < sorted[j].Offset
		}
		return sorted[i].Length < sorted[j].Length
	})
	for i := len(sorted) - 1; i >= 0; i-- {
		text = applyEdit(text, sorted[i])
	}
	return text
}

func applyEdit(text string, edit Edit) string {
	return text[:edit.Offset] + edit.Content + text[edit.Offset+edit.Length:]
}

// ComputeSetEdits computes the edits that set the value at path. Missing
// intermediate structure is created: a deep path below the innermost
// existing parent wraps the value in nested objects and arrays. An int
// segment of -1 appends to the addressed array.
func ComputeSetEdits(text string, path Path, value any, options ModifyOptions) ([]Edit, error) {
	return computeEdits(text, path, value, true, options)
}

// ComputeRemoveEdits computes the edits that remove the value at path,
// including the comma separating it from its neighbors. Removing a path
// that does not exist yields no edits.
func ComputeRemoveEdits(text string, path Path, options ModifyOptions) ([]Edit, error) {
	return computeEdits(text, path, nil, false, options)
}

func computeEdits(text string, path Path, value any, hasValue bool, options ModifyOptions) ([]Edit, error) {
	root, err := ParseTree(text)
	if err != nil {
		return nil, err
	}

	rest := append(Path(nil), path...)
	var parent *Node
	var lastSegment any
	for len(rest) > 0 {
		lastSegment = rest[len(rest)-1]
		rest = rest[:len(rest)-1]
		parent = FindNodeAtLocation(root, rest)
		if parent == nil && hasValue {
			// The addressed location does not exist yet: wrap the value in
			// the structure the segment implies and retry one level up.
			if key, ok := lastSegment.(string); ok {
				value = map[string]any{key: value}
			} else {
				value = []any{value}
			}
			continue
		}
		break
	}

	switch {
	case parent == nil:
		// Empty document or root path.
		if !hasValue {
			if root == nil {
				return nil, fmt.Errorf("can not delete in empty document")
			}
			return nil, fmt.Errorf("can not delete the document root")
		}
		content, err := marshalValue(value)
		if err != nil {
			return nil, err
		}
		edit := Edit{Content: content}
		if root != nil {
			edit.Offset = root.Offset
			edit.Length = root.Length
		}
		return withFormatting(text, edit, options)

	case parent.Type == NodeObject:
		key, ok := lastSegment.(string)
		if !ok {
			return nil, fmt.Errorf("can not add index to parent of type object")
		}
		return computeObjectEdits(text, parent, key, value, hasValue, options)

	case parent.Type == NodeArray:
		index, ok := lastSegment.(int)
		if !ok {
			return nil, fmt.Errorf("can not add property to parent of type array")
		}
		return computeArrayEdits(text, parent, index, value, hasValue, options)

	default:
		return nil, fmt.Errorf("can not modify child of parent of type %s", parent.Type)
	}
}

func computeObjectEdits(text string, parent *Node, key string, value any, hasValue bool, options ModifyOptions) ([]Edit, error) {
	existing := FindNodeAtLocation(parent, Path{key})
	if existing != nil {
		if !hasValue {
			// Remove the property together with its separating comma.
			property := existing.Parent
			propertyIndex := indexOfChild(parent, property)
			removeBegin := 0
			removeEnd := property.End()
			if propertyIndex > 0 {
				previous := parent.Children[propertyIndex-1]
				removeBegin = previous.End()
			} else {
				removeBegin = parent.Offset + 1
				if len(parent.Children) > 1 {
					removeEnd = parent.Children[1].Offset
				}
			}
			return withFormatting(text, Edit{Offset: removeBegin, Length: removeEnd - removeBegin}, options)
		}
		// Overwrite the value of the existing property.
		content, err := marshalValue(value)
		if err != nil {
			return nil, err
		}
		return withFormatting(text, Edit{Offset: existing.Offset, Length: existing.Length, Content: content}, options)
	}

	if !hasValue {
		// Property does not exist, nothing to remove.
		return nil, nil
	}
	content, err := marshalValue(value)
	if err != nil {
		return nil, err
	}
	newProperty := fmt.Sprintf("%s: %s", mustMarshalString(key), content)
	var edit Edit
	switch {
	case len(parent.Children) == 0:
		edit = Edit{Offset: parent.Offset + 1, Content: newProperty}
	default:
		previous := parent.Children[len(parent.Children)-1]
		edit = Edit{Offset: previous.End(), Content: "," + newProperty}
	}
	return withFormatting(text, edit, options)
}

func computeArrayEdits(text string, parent *Node, index int, value any, hasValue bool, options ModifyOptions) ([]Edit, error) {
	if !hasValue {
		if index < 0 || index >= len(parent.Children) {
			return nil, fmt.Errorf("can not remove array index %d, array has length %d", index, len(parent.Children))
		}
		var edit Edit
		switch {
		case len(parent.Children) == 1:
			// Only element: empty the brackets.
			edit = Edit{Offset: parent.Offset + 1, Length: parent.Length - 2}
		case index == len(parent.Children)-1:
			// Last element: remove from the end of the previous element up
			// to the closing bracket.
			previous := parent.Children[index-1]
			edit = Edit{Offset: previous.End(), Length: parent.End() - 1 - previous.End()}
		default:
			next := parent.Children[index+1]
			toRemove := parent.Children[index]
			edit = Edit{Offset: toRemove.Offset, Length: next.Offset - toRemove.Offset}
		}
		return withFormatting(text, edit, options)
	}

	content, err := marshalValue(value)
	if err != nil {
		return nil, err
	}
	if index == -1 {
		// Append.
		var edit Edit
		if len(parent.Children) == 0 {
			edit = Edit{Offset: parent.Offset + 1, Content: content}
		} else {
			previous := parent.Children[len(parent.Children)-1]
			edit = Edit{Offset: previous.End(), Content: "," + content}
		}
		return withFormatting(text, edit, options)
	}
	if index < 0 {
		return nil, fmt.Errorf("invalid array index %d", index)
	}

	var edit Edit
	switch {
	case !options.IsArrayInsertion && index < len(parent.Children):
		// Overwrite the element in place.
		toModify := parent.Children[index]
		edit = Edit{Offset: toModify.Offset, Length: toModify.Length, Content: content}
	case len(parent.Children) == 0 || index == 0:
		// Insert at the front, displacing the current first element.
		if len(parent.Children) == 0 {
			edit = Edit{Offset: parent.Offset + 1, Content: content}
		} else {
			edit = Edit{Offset: parent.Offset + 1, Content: content + ","}
		}
	default:
		// Insert after the element preceding the addressed index; indices
		// past the end append.
		i := index
		if i > len(parent.Children) {
			i = len(parent.Children)
		}
		previous := parent.Children[i-1]
		edit = Edit{Offset: previous.End(), Content: "," + content}
	}
	return withFormatting(text, edit, options)
}

// withFormatting finalizes a raw edit. Without formatting options the edit
// is returned as is. With options, the edit is applied, the affected lines
// are formatted, and the result is folded back into a single edit against
// the original text.
func withFormatting(text string, edit Edit, options ModifyOptions) ([]Edit, error) {
	if options.Formatting == nil {
		return []Edit{edit}, nil
	}

	newText := applyEdit(text, edit)
	begin := edit.Offset
	end := edit.Offset + len(edit.Content)
	if edit.Length == 0 || len(edit.Content) == 0 {
		// Pure insertion or deletion: widen to whole lines so indentation
		// around the edit is recomputed.
		for begin > 0 && !isLineBreakByte(newText[begin-1]) {
			begin--
		}
		for end < len(newText) && !isLineBreakByte(newText[end]) {
			end++
		}
	}

	formatEdits := Format(newText, &Range{Offset: begin, Length: end - begin}, *options.Formatting)
	for i := len(formatEdits) - 1; i >= 0; i-- {
		e := formatEdits[i]
		newText = applyEdit(newText, e)
		if e.Offset < begin {
			begin = e.Offset
		}
		if e.Offset+e.Length > end {
			end = e.Offset + e.Length
		}
		end += len(e.Content) - e.Length
	}
	editLength := len(text) - (len(newText) - end) - begin
	return []Edit{{Offset: begin, Length: editLength, Content: newText[begin:end]}}, nil
}

func indexOfChild(parent *Node, child *Node) int {
	for i, c := range parent.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// marshalValue renders a value as compact JSON without HTML escaping.
// The compact shape is what gets injected into the document when no
// formatting options are in effect.
func marshalValue(value any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return "", fmt.Errorf("can not encode value: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func mustMarshalString(s string) string {
	out, err := marshalValue(s)
	if err != nil {
		// Strings always encode.
		panic(err)
	}
	return out
}
