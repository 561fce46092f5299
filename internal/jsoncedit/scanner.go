package jsoncedit

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// TokenKind enumerates the token classes produced by the scanner.
// Comments and whitespace are tokens too: the formatter needs to see them
// to rewrite the space between syntax tokens while leaving comments alone.
type TokenKind int

const (
	// TokenUnknown is an unrecognized character.
	TokenUnknown TokenKind = iota

	TokenOpenBrace    // {
	TokenCloseBrace   // }
	TokenOpenBracket  // [
	TokenCloseBracket // ]
	TokenComma        // ,
	TokenColon        // :

	TokenString // "..."
	TokenNumber // 12, -3.5, 1e9
	TokenTrue
	TokenFalse
	TokenNull

	TokenLineComment  // // ...
	TokenBlockComment // /* ... */

	// TokenTrivia is horizontal whitespace between tokens.
	TokenTrivia

	// TokenLineBreak is a single line terminator (\n, \r or \r\n).
	TokenLineBreak

	// TokenEOF marks the end of the input.
	TokenEOF
)

// syntax reports whether the kind is a structural or value token, as
// opposed to trivia, comments, or EOF.
func (k TokenKind) syntax() bool {
	switch k {
	case TokenTrivia, TokenLineBreak, TokenLineComment, TokenBlockComment, TokenEOF:
		return false
	default:
		return true
	}
}

// Scanner tokenizes JSONC text. It never fails hard: malformed input
// produces TokenUnknown tokens or tokens with a non-nil Err, and scanning
// continues, so callers decide how tolerant to be.
type Scanner struct {
	text string
	pos  int

	tokenOffset int
	kind        TokenKind
	stringValue string
	tokenErr    error
}

// NewScanner returns a scanner positioned at the start of text.
func NewScanner(text string) *Scanner {
	return &Scanner{text: text}
}

// TokenOffset returns the byte offset of the current token.
func (s *Scanner) TokenOffset() int { return s.tokenOffset }

// TokenLength returns the byte length of the current token.
func (s *Scanner) TokenLength() int { return s.pos - s.tokenOffset }

// TokenText returns the raw text of the current token.
func (s *Scanner) TokenText() string { return s.text[s.tokenOffset:s.pos] }

// StringValue returns the decoded value of the current TokenString.
func (s *Scanner) StringValue() string { return s.stringValue }

// TokenError returns the scan error of the current token, if any
// (unterminated string or block comment, invalid escape).
func (s *Scanner) TokenError() error { return s.tokenErr }

// Scan advances to the next token, including trivia and comments.
func (s *Scanner) Scan() TokenKind {
	s.tokenOffset = s.pos
	s.stringValue = ""
	s.tokenErr = nil

	if s.pos >= len(s.text) {
		s.kind = TokenEOF
		return s.kind
	}

	c := s.text[s.pos]
	switch {
	case c == ' ' || c == '\t' || c == '\v' || c == '\f':
		for s.pos < len(s.text) {
			c := s.text[s.pos]
			if c != ' ' && c != '\t' && c != '\v' && c != '\f' {
				break
			}
			s.pos++
		}
		s.kind = TokenTrivia

	case c == '\n':
		s.pos++
		s.kind = TokenLineBreak

	case c == '\r':
		s.pos++
		if s.pos < len(s.text) && s.text[s.pos] == '\n' {
			s.pos++
		}
		s.kind = TokenLineBreak

	case c == '{':
		s.pos++
		s.kind = TokenOpenBrace
	case c == '}':
		s.pos++
		s.kind = TokenCloseBrace
	case c == '[':
		s.pos++
		s.kind = TokenOpenBracket
	case c == ']':
		s.pos++
		s.kind = TokenCloseBracket
	case c == ',':
		s.pos++
		s.kind = TokenComma
	case c == ':':
		s.pos++
		s.kind = TokenColon

	case c == '"':
		s.scanString()

	case c == '/' && s.peek(1) == '/':
		s.pos += 2
		for s.pos < len(s.text) && s.text[s.pos] != '\n' && s.text[s.pos] != '\r' {
			s.pos++
		}
		s.kind = TokenLineComment

	case c == '/' && s.peek(1) == '*':
		s.pos += 2
		closed := false
		for s.pos < len(s.text) {
			if s.text[s.pos] == '*' && s.peek(1) == '/' {
				s.pos += 2
				closed = true
				break
			}
			s.pos++
		}
		if !closed {
			s.tokenErr = fmt.Errorf("unterminated block comment at offset %d", s.tokenOffset)
		}
		s.kind = TokenBlockComment

	case c == '-' || (c >= '0' && c <= '9'):
		s.scanNumber()

	case isIdentChar(c):
		start := s.pos
		for s.pos < len(s.text) && isIdentChar(s.text[s.pos]) {
			s.pos++
		}
		switch s.text[start:s.pos] {
		case "true":
			s.kind = TokenTrue
		case "false":
			s.kind = TokenFalse
		case "null":
			s.kind = TokenNull
		default:
			s.kind = TokenUnknown
		}

	default:
		// Skip a whole rune so malformed multibyte input cannot wedge
		// the scanner on a single byte.
		_, size := utf8.DecodeRuneInString(s.text[s.pos:])
		s.pos += size
		// Unicode BOM and exotic spaces count as trivia.
		r, _ := utf8.DecodeRuneInString(s.text[s.tokenOffset:])
		if r == '\uFEFF' || r == '\u00A0' || r == '\u2028' || r == '\u2029' {
			s.kind = TokenTrivia
		} else {
			s.kind = TokenUnknown
		}
	}
	return s.kind
}

func (s *Scanner) peek(ahead int) byte {
	if s.pos+ahead < len(s.text) {
		return s.text[s.pos+ahead]
	}
	return 0
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func (s *Scanner) scanNumber() {
	s.kind = TokenNumber
	if s.text[s.pos] == '-' {
		s.pos++
	}
	digits := 0
	for s.pos < len(s.text) && s.text[s.pos] >= '0' && s.text[s.pos] <= '9' {
		s.pos++
		digits++
	}
	if digits == 0 {
		s.tokenErr = fmt.Errorf("invalid number at offset %d", s.tokenOffset)
		return
	}
	if s.pos < len(s.text) && s.text[s.pos] == '.' {
		s.pos++
		digits = 0
		for s.pos < len(s.text) && s.text[s.pos] >= '0' && s.text[s.pos] <= '9' {
			s.pos++
			digits++
		}
		if digits == 0 {
			s.tokenErr = fmt.Errorf("invalid number at offset %d", s.tokenOffset)
			return
		}
	}
	if s.pos < len(s.text) && (s.text[s.pos] == 'e' || s.text[s.pos] == 'E') {
		s.pos++
		if s.pos < len(s.text) && (s.text[s.pos] == '+' || s.text[s.pos] == '-') {
			s.pos++
		}
		digits = 0
		for s.pos < len(s.text) && s.text[s.pos] >= '0' && s.text[s.pos] <= '9' {
			s.pos++
			digits++
		}
		if digits == 0 {
			s.tokenErr = fmt.Errorf("invalid number at offset %d", s.tokenOffset)
		}
	}
}

func (s *Scanner) scanString() {
	s.kind = TokenString
	s.pos++ // opening quote

	var sb strings.Builder
	for {
		if s.pos >= len(s.text) {
			s.tokenErr = fmt.Errorf("unterminated string at offset %d", s.tokenOffset)
			break
		}
		c := s.text[s.pos]
		if c == '"' {
			s.pos++
			break
		}
		if c == '\n' || c == '\r' {
			s.tokenErr = fmt.Errorf("unterminated string at offset %d", s.tokenOffset)
			break
		}
		if c != '\\' {
			sb.WriteByte(c)
			s.pos++
			continue
		}

		// Escape sequence.
		s.pos++
		if s.pos >= len(s.text) {
			s.tokenErr = fmt.Errorf("unterminated string at offset %d", s.tokenOffset)
			break
		}
		e := s.text[s.pos]
		s.pos++
		switch e {
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		case '/':
			sb.WriteByte('/')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'u':
			r, ok := s.scanUnicodeEscape()
			if !ok {
				s.tokenErr = fmt.Errorf("invalid unicode escape at offset %d", s.pos)
				continue
			}
			if utf16.IsSurrogate(r) && s.pos+1 < len(s.text) && s.text[s.pos] == '\\' && s.text[s.pos+1] == 'u' {
				s.pos += 2
				if r2, ok := s.scanUnicodeEscape(); ok {
					r = utf16.DecodeRune(r, r2)
				}
			}
			sb.WriteRune(r)
		default:
			s.tokenErr = fmt.Errorf("invalid escape character %q at offset %d", e, s.pos-1)
			sb.WriteByte(e)
		}
	}
	s.stringValue = sb.String()
}

func (s *Scanner) scanUnicodeEscape() (rune, bool) {
	if s.pos+4 > len(s.text) {
		s.pos = len(s.text)
		return utf8.RuneError, false
	}
	v, err := strconv.ParseUint(s.text[s.pos:s.pos+4], 16, 32)
	if err != nil {
		return utf8.RuneError, false
	}
	s.pos += 4
	return rune(v), true
}
