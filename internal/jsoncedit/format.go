package jsoncedit

import "strings"

// FormatOptions controls formatting output.
type FormatOptions struct {
	// TabSize is the indentation width when indenting with spaces.
	// Non-positive values fall back to the default of 2.
	TabSize int

	// InsertSpaces selects space indentation when true, tab indentation
	// when false.
	InsertSpaces bool

	// EOL is the line ending to emit ("\n" or "\r\n"). When empty, the
	// line ending is detected from the document and defaults to "\n".
	EOL string
}

// DefaultTabSize is the indentation width used when none is configured.
const DefaultTabSize = 2

// Range is a byte range within a document.
type Range struct {
	Offset int
	Length int
}

// Format computes the edits that reformat a JSONC document: one element or
// property per line, indentation per nesting level, a single space after
// colons, comments preserved in place. Only whitespace between tokens is
// ever touched, so formatting an already formatted document yields no
// edits.
//
// When r is non-nil only whitespace runs intersecting the range are
// rewritten, with the surrounding lines extended so indentation stays
// consistent. A nil r formats the whole document.
func Format(documentText string, r *Range, options FormatOptions) []Edit {
	var initialIndentLevel int
	var formatText string
	var formatTextStart int
	var rangeStart, rangeEnd int

	if r != nil {
		rangeStart = r.Offset
		rangeEnd = rangeStart + r.Length

		// Extend to whole lines so the indentation of the affected lines
		// can be recomputed.
		formatTextStart = rangeStart
		for formatTextStart > 0 && !isLineBreakByte(documentText[formatTextStart-1]) {
			formatTextStart--
		}
		endOffset := rangeEnd
		for endOffset < len(documentText) && !isLineBreakByte(documentText[endOffset]) {
			endOffset++
		}
		formatText = documentText[formatTextStart:endOffset]
		initialIndentLevel = computeIndentLevel(formatText, options)
	} else {
		formatText = documentText
		rangeEnd = len(documentText)
	}

	eol := resolveEOL(options, documentText)
	indentValue := "\t"
	if options.InsertSpaces {
		indentValue = strings.Repeat(" ", tabSizeOrDefault(options))
	}

	scanner := NewScanner(formatText)
	indentLevel := 0
	lineBreak := false
	hasError := false

	newLinesAndIndent := func() string {
		return eol + strings.Repeat(indentValue, initialIndentLevel+indentLevel)
	}

	scanNext := func() TokenKind {
		token := scanner.Scan()
		lineBreak = false
		for token == TokenTrivia || token == TokenLineBreak {
			lineBreak = lineBreak || token == TokenLineBreak
			token = scanner.Scan()
		}
		hasError = hasError || token == TokenUnknown || scanner.TokenError() != nil
		return token
	}

	var edits []Edit
	addEdit := func(text string, startOffset, endOffset int) {
		if hasError {
			return
		}
		if r != nil && !(startOffset < rangeEnd && endOffset > rangeStart) {
			return
		}
		if documentText[startOffset:endOffset] != text {
			edits = append(edits, Edit{Offset: startOffset, Length: endOffset - startOffset, Content: text})
		}
	}

	firstToken := scanNext()
	if firstToken != TokenEOF {
		firstTokenStart := scanner.TokenOffset() + formatTextStart
		initialIndent := strings.Repeat(indentValue, initialIndentLevel)
		addEdit(initialIndent, formatTextStart, firstTokenStart)
	}

	for firstToken != TokenEOF {
		firstTokenEnd := scanner.TokenOffset() + scanner.TokenLength() + formatTextStart
		secondToken := scanNext()

		replaceContent := ""
		needsLineBreak := false

		// Comments that start on the same line as the previous token stay
		// there, separated by a single space. A line comment then forces
		// the following token onto a new line.
		for !lineBreak && (secondToken == TokenLineComment || secondToken == TokenBlockComment) {
			commentTokenStart := scanner.TokenOffset() + formatTextStart
			addEdit(" ", firstTokenEnd, commentTokenStart)
			firstTokenEnd = scanner.TokenOffset() + scanner.TokenLength() + formatTextStart
			needsLineBreak = secondToken == TokenLineComment
			if needsLineBreak {
				replaceContent = newLinesAndIndent()
			} else {
				replaceContent = ""
			}
			secondToken = scanNext()
		}

		if secondToken == TokenCloseBrace {
			if firstToken != TokenOpenBrace {
				indentLevel--
				replaceContent = newLinesAndIndent()
			}
		} else if secondToken == TokenCloseBracket {
			if firstToken != TokenOpenBracket {
				indentLevel--
				replaceContent = newLinesAndIndent()
			}
		} else {
			switch firstToken {
			case TokenOpenBrace, TokenOpenBracket:
				indentLevel++
				replaceContent = newLinesAndIndent()
			case TokenComma:
				replaceContent = newLinesAndIndent()
			case TokenLineComment:
				replaceContent = newLinesAndIndent()
			case TokenBlockComment:
				if lineBreak {
					replaceContent = newLinesAndIndent()
				} else if !needsLineBreak {
					replaceContent = " "
				}
			case TokenColon:
				if !needsLineBreak {
					replaceContent = " "
				}
			case TokenString:
				if secondToken == TokenColon {
					if !needsLineBreak {
						replaceContent = ""
					}
					break
				}
				fallthrough
			case TokenNumber, TokenTrue, TokenFalse, TokenNull, TokenCloseBrace, TokenCloseBracket:
				if secondToken == TokenLineComment || secondToken == TokenBlockComment {
					if !needsLineBreak {
						replaceContent = " "
					}
				} else if secondToken != TokenComma && secondToken != TokenEOF {
					hasError = true
				}
			case TokenUnknown:
				hasError = true
			}
			if lineBreak && (secondToken == TokenLineComment || secondToken == TokenBlockComment) {
				replaceContent = newLinesAndIndent()
			}
		}

		if secondToken == TokenEOF {
			replaceContent = ""
		}
		secondTokenStart := scanner.TokenOffset() + formatTextStart
		addEdit(replaceContent, firstTokenEnd, secondTokenStart)
		firstToken = secondToken
	}
	return edits
}

// computeIndentLevel measures the leading whitespace of content in units
// of the configured tab size.
func computeIndentLevel(content string, options FormatOptions) int {
	tabSize := tabSizeOrDefault(options)
	chars := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case ' ':
			chars++
		case '\t':
			chars += tabSize
		default:
			return chars / tabSize
		}
	}
	return chars / tabSize
}

func tabSizeOrDefault(options FormatOptions) int {
	if options.TabSize > 0 {
		return options.TabSize
	}
	return DefaultTabSize
}

// resolveEOL picks the line ending: configured value first, then the first
// line ending found in the document, then "\n".
func resolveEOL(options FormatOptions, text string) string {
	switch options.EOL {
	case "\n", "\r\n", "\r":
		return options.EOL
	}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				return "\r\n"
			}
			return "\r"
		case '\n':
			return "\n"
		}
	}
	return "\n"
}

func isLineBreakByte(c byte) bool {
	return c == '\n' || c == '\r'
}
