package jsoncedit

import (
	"fmt"
	"strconv"
)

// NodeType identifies the kind of a syntax tree node.
type NodeType int

const (
	NodeObject NodeType = iota
	NodeArray
	NodeProperty
	NodeString
	NodeNumber
	NodeBoolean
	NodeNull
)

// String returns the lowercase name of the node type, used in error
// messages ("can not add property to parent of type array").
func (t NodeType) String() string {
	switch t {
	case NodeObject:
		return "object"
	case NodeArray:
		return "array"
	case NodeProperty:
		return "property"
	case NodeString:
		return "string"
	case NodeNumber:
		return "number"
	case NodeBoolean:
		return "boolean"
	case NodeNull:
		return "null"
	default:
		return "unknown"
	}
}

// Node is a JSONC syntax tree node. Offset and Length locate the node's
// exact source text, including structural punctuation for objects and
// arrays; slicing the document with them yields the node verbatim.
//
// A property node has two children: the key string node and the value
// node. Its ColonOffset records the position of the separating colon.
type Node struct {
	Type        NodeType
	Offset      int
	Length      int
	ColonOffset int
	Parent      *Node
	Children    []*Node

	// Value holds the decoded literal for string, number, boolean and
	// null nodes (string, float64, bool, nil). Composite nodes carry no
	// value; use NodeValue to materialize them.
	Value any
}

// End returns the byte offset just past the node's source text.
func (n *Node) End() int { return n.Offset + n.Length }

// Path is a sequence of segments locating a node in a document: string
// segments select object properties, int segments select array elements.
// The empty path denotes the document root.
type Path []any

// ParseTree parses a JSONC document into a syntax tree.
//
// Comments and trailing commas are tolerated; structural errors are not.
// Blank input (only whitespace and comments) yields a nil root and no
// error, so callers can still initialize an empty document through edits.
func ParseTree(text string) (*Node, error) {
	p := &treeParser{scanner: NewScanner(text)}
	tok := p.next()
	if tok == TokenEOF {
		return nil, nil
	}
	root, err := p.parseValue(tok)
	if err != nil {
		return nil, err
	}
	if tok := p.next(); tok != TokenEOF {
		return nil, fmt.Errorf("unexpected content at offset %d after the root value", p.scanner.TokenOffset())
	}
	return root, nil
}

type treeParser struct {
	scanner *Scanner
}

// next scans past whitespace, line breaks and comments to the next
// meaningful token.
func (p *treeParser) next() TokenKind {
	for {
		tok := p.scanner.Scan()
		if tok.syntax() || tok == TokenEOF {
			return tok
		}
	}
}

func (p *treeParser) parseValue(tok TokenKind) (*Node, error) {
	s := p.scanner
	if err := s.TokenError(); err != nil {
		return nil, err
	}
	switch tok {
	case TokenOpenBrace:
		return p.parseObject()
	case TokenOpenBracket:
		return p.parseArray()
	case TokenString:
		return &Node{Type: NodeString, Offset: s.TokenOffset(), Length: s.TokenLength(), Value: s.StringValue()}, nil
	case TokenNumber:
		v, err := strconv.ParseFloat(s.TokenText(), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q at offset %d", s.TokenText(), s.TokenOffset())
		}
		return &Node{Type: NodeNumber, Offset: s.TokenOffset(), Length: s.TokenLength(), Value: v}, nil
	case TokenTrue:
		return &Node{Type: NodeBoolean, Offset: s.TokenOffset(), Length: s.TokenLength(), Value: true}, nil
	case TokenFalse:
		return &Node{Type: NodeBoolean, Offset: s.TokenOffset(), Length: s.TokenLength(), Value: false}, nil
	case TokenNull:
		return &Node{Type: NodeNull, Offset: s.TokenOffset(), Length: s.TokenLength(), Value: nil}, nil
	default:
		return nil, fmt.Errorf("unexpected token %q at offset %d", s.TokenText(), s.TokenOffset())
	}
}

func (p *treeParser) parseObject() (*Node, error) {
	s := p.scanner
	node := &Node{Type: NodeObject, Offset: s.TokenOffset()}
	for {
		tok := p.next()
		if tok == TokenCloseBrace {
			node.Length = s.TokenOffset() + s.TokenLength() - node.Offset
			return node, nil
		}
		if tok != TokenString {
			return nil, fmt.Errorf("expected property name at offset %d", s.TokenOffset())
		}
		if err := s.TokenError(); err != nil {
			return nil, err
		}
		prop := &Node{Type: NodeProperty, Offset: s.TokenOffset(), Parent: node}
		key := &Node{Type: NodeString, Offset: s.TokenOffset(), Length: s.TokenLength(), Value: s.StringValue(), Parent: prop}
		prop.Children = append(prop.Children, key)

		if tok := p.next(); tok != TokenColon {
			return nil, fmt.Errorf("expected ':' at offset %d", s.TokenOffset())
		}
		prop.ColonOffset = s.TokenOffset()

		value, err := p.parseValue(p.next())
		if err != nil {
			return nil, err
		}
		value.Parent = prop
		prop.Children = append(prop.Children, value)
		prop.Length = value.End() - prop.Offset
		node.Children = append(node.Children, prop)

		switch p.next() {
		case TokenComma:
			// Trailing comma: the next token may close the object.
			continue
		case TokenCloseBrace:
			node.Length = s.TokenOffset() + s.TokenLength() - node.Offset
			return node, nil
		default:
			return nil, fmt.Errorf("expected ',' or '}' at offset %d", s.TokenOffset())
		}
	}
}

func (p *treeParser) parseArray() (*Node, error) {
	s := p.scanner
	node := &Node{Type: NodeArray, Offset: s.TokenOffset()}
	for {
		tok := p.next()
		if tok == TokenCloseBracket {
			node.Length = s.TokenOffset() + s.TokenLength() - node.Offset
			return node, nil
		}
		value, err := p.parseValue(tok)
		if err != nil {
			return nil, err
		}
		value.Parent = node
		node.Children = append(node.Children, value)

		switch p.next() {
		case TokenComma:
			continue
		case TokenCloseBracket:
			node.Length = s.TokenOffset() + s.TokenLength() - node.Offset
			return node, nil
		default:
			return nil, fmt.Errorf("expected ',' or ']' at offset %d", s.TokenOffset())
		}
	}
}

// FindNodeAtLocation returns the node at the given path below root, or nil
// if no node exists there. String segments select object properties, int
// segments select array indices.
func FindNodeAtLocation(root *Node, path Path) *Node {
	node := root
	for _, segment := range path {
		if node == nil {
			return nil
		}
		switch seg := segment.(type) {
		case string:
			if node.Type != NodeObject {
				return nil
			}
			node = propertyValue(node, seg)
		case int:
			if node.Type != NodeArray || seg < 0 || seg >= len(node.Children) {
				return nil
			}
			node = node.Children[seg]
		default:
			return nil
		}
	}
	return node
}

// propertyValue returns the value node of the property named key, or nil.
// Later duplicates win, matching plain JSON decoding behavior.
func propertyValue(object *Node, key string) *Node {
	var found *Node
	for _, prop := range object.Children {
		if len(prop.Children) == 2 && prop.Children[0].Value == key {
			found = prop.Children[1]
		}
	}
	return found
}

// NodeValue materializes the value of a node: string, float64, bool, nil,
// map[string]any for objects, []any for arrays. A property node yields its
// value node's value.
func NodeValue(node *Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case NodeObject:
		m := make(map[string]any, len(node.Children))
		for _, prop := range node.Children {
			if len(prop.Children) == 2 {
				m[prop.Children[0].Value.(string)] = NodeValue(prop.Children[1])
			}
		}
		return m
	case NodeArray:
		a := make([]any, 0, len(node.Children))
		for _, child := range node.Children {
			a = append(a, NodeValue(child))
		}
		return a
	case NodeProperty:
		if len(node.Children) == 2 {
			return NodeValue(node.Children[1])
		}
		return nil
	default:
		return node.Value
	}
}
