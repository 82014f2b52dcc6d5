package sexpr

import (
	"fmt"
	"strconv"
	"strings"
)

// Position represents a source location.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SyntaxError is returned when the input text is not a well-formed tree.
type SyntaxError struct {
	Message string
	Pos     Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("sexpr: %s at %s", e.Message, e.Pos)
}

// tokenType represents the type of a lexer token.
type tokenType uint8

const (
	tokenEOF tokenType = iota
	tokenLParen
	tokenRParen
	tokenString // quoted
	tokenAtom   // bare symbol or number
)

func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "EOF"
	case tokenLParen:
		return "("
	case tokenRParen:
		return ")"
	case tokenString:
		return "STRING"
	case tokenAtom:
		return "ATOM"
	default:
		return "UNKNOWN"
	}
}

// token is one lexer token.
type token struct {
	typ   tokenType
	value string
	pos   Position
}

// lexer tokenizes parenthesized-tree text.
type lexer struct {
	input string
	pos   int
	line  int
	col   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input, line: 1, col: 1}
}

// next returns the next token.
func (l *lexer) next() (token, error) {
	l.skipWhitespace()

	startPos := l.currentPos()
	if l.pos >= len(l.input) {
		return token{typ: tokenEOF, pos: startPos}, nil
	}

	switch ch := l.peek(); ch {
	case '(':
		l.advance()
		return token{typ: tokenLParen, value: "(", pos: startPos}, nil
	case ')':
		l.advance()
		return token{typ: tokenRParen, value: ")", pos: startPos}, nil
	case '"':
		return l.scanString()
	default:
		return l.scanAtom()
	}
}

// scanString scans a quoted string with backslash escapes.
func (l *lexer) scanString() (token, error) {
	startPos := l.currentPos()
	l.advance() // consume opening "

	var sb strings.Builder
	for {
		if l.pos >= len(l.input) {
			return token{}, &SyntaxError{Message: "unterminated string", Pos: startPos}
		}

		ch := l.peek()
		if ch == '"' {
			l.advance() // consume closing "
			break
		}

		if ch == '\\' {
			l.advance()
			if l.pos >= len(l.input) {
				return token{}, &SyntaxError{Message: "unterminated escape", Pos: l.currentPos()}
			}
			escaped := l.peek()
			l.advance()
			switch escaped {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			default:
				sb.WriteByte(escaped)
			}
			continue
		}

		sb.WriteByte(ch)
		l.advance()
	}

	return token{typ: tokenString, value: sb.String(), pos: startPos}, nil
}

// scanAtom scans a bare token up to whitespace or a delimiter.
func (l *lexer) scanAtom() (token, error) {
	startPos := l.currentPos()
	start := l.pos

	for l.pos < len(l.input) && !isDelimiter(l.peek()) {
		l.advance()
	}

	if l.pos == start {
		ch := l.peek()
		l.advance()
		return token{}, &SyntaxError{
			Message: fmt.Sprintf("unexpected character %q", ch),
			Pos:     startPos,
		}
	}

	return token{typ: tokenAtom, value: l.input[start:l.pos], pos: startPos}, nil
}

func (l *lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

func (l *lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *lexer) advance() {
	if l.pos < len(l.input) {
		if l.input[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.pos++
	}
}

func (l *lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func isDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '(', ')', '"':
		return true
	default:
		return false
	}
}

// classifyAtom decides whether a bare token is a number or a symbol.
func classifyAtom(value string) Node {
	if isNumeric(value) {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return Number(f)
		}
	}
	return Symbol(value)
}

// isNumeric reports whether a bare token looks like a numeric literal.
// Symbols such as "hide" or "R_0_1" must never be mistaken for numbers, so
// the shape is checked before handing the token to strconv.
func isNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}
	i := 0
	if s[i] == '-' || s[i] == '+' {
		i++
	}
	sawDigit := false
	sawDot := false
	sawExp := false
	for ; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= '0' && ch <= '9':
			sawDigit = true
		case ch == '.' && !sawDot && !sawExp:
			sawDot = true
		case (ch == 'e' || ch == 'E') && sawDigit && !sawExp:
			sawExp = true
			if i+1 < len(s) && (s[i+1] == '+' || s[i+1] == '-') {
				i++
			}
		default:
			return false
		}
	}
	return sawDigit
}
