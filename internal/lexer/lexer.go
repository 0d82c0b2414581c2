package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"monkey/internal/token"
)

type ErrorKind int

const (
	IllegalCharacter ErrorKind = iota
	IntegerOverflow
)

type ScanError struct {
	Kind     ErrorKind
	Message  string
	Position token.Position // line, column, offset
	Length   int            // how many bytes it covers
}

// Lexer turns source text into tokens one NextToken call at a time.
type Lexer struct {
	source      string
	start       int
	current     int
	line        int
	column      int
	startLine   int
	startColumn int
	errors      []ScanError
}

func New(source string) *Lexer {
	return &Lexer{
		source: source,
		line:   1,
		column: 1,
	}
}

// NextToken consumes exactly one token. Once the input is exhausted it keeps
// returning EOF.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	l.start = l.current
	l.startLine = l.line
	l.startColumn = l.column

	if l.isAtEnd() {
		return l.makeToken(token.EOF)
	}

	c := l.advance()
	switch c {
	case '=':
		if l.matchNext('=') {
			return l.makeToken(token.EQ)
		}
		return l.makeToken(token.ASSIGN)
	case '!':
		if l.matchNext('=') {
			return l.makeToken(token.NOT_EQ)
		}
		return l.makeToken(token.BANG)
	case '+':
		return l.makeToken(token.PLUS)
	case '-':
		return l.makeToken(token.MINUS)
	case '*':
		return l.makeToken(token.ASTERISK)
	case '/':
		return l.makeToken(token.SLASH)
	case '<':
		return l.makeToken(token.LT)
	case '>':
		return l.makeToken(token.GT)
	case ',':
		return l.makeToken(token.COMMA)
	case ';':
		return l.makeToken(token.SEMICOLON)
	case '(':
		return l.makeToken(token.LPAREN)
	case ')':
		return l.makeToken(token.RPAREN)
	case '{':
		return l.makeToken(token.LBRACE)
	case '}':
		return l.makeToken(token.RBRACE)
	}

	switch {
	case isLetter(c):
		return l.scanIdentifier()
	case isDigit(c):
		return l.scanNumber()
	}

	r := rune(c)
	if c >= utf8.RuneSelf {
		r = l.consumeRune()
	}

	l.reportError(IllegalCharacter, fmt.Sprintf("unexpected character: %q", r))
	return l.makeToken(token.ILLEGAL)
}

// consumeRune takes the rest of a multi-byte UTF-8 sequence whose first byte
// was already advanced over. The character counts as one column.
func (l *Lexer) consumeRune() rune {
	r, size := utf8.DecodeRuneInString(l.source[l.start:])
	l.current = l.start + size
	return r
}

// Errors returns the lexical errors reported so far.
func (l *Lexer) Errors() []ScanError {
	return l.errors
}

// Tokenize drains source through the EOF token.
func Tokenize(source string) ([]token.Token, []ScanError) {
	l := New(source)

	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Is(token.EOF) {
			break
		}
	}

	return tokens, l.errors
}

func (l *Lexer) scanIdentifier() token.Token {
	for isLetter(l.peek()) {
		l.advance()
	}

	tok := l.makeToken(token.LookupIdent(l.source[l.start:l.current]))
	if tok.Is(token.BOOL) {
		tok.Bool = tok.Literal == "true"
	}
	return tok
}

func (l *Lexer) scanNumber() token.Token {
	for isDigit(l.peek()) {
		l.advance()
	}

	text := l.source[l.start:l.current]
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		l.reportError(IntegerOverflow, fmt.Sprintf("integer literal out of range: %s", text))
		return l.makeToken(token.ILLEGAL)
	}

	tok := l.makeToken(token.INT)
	tok.Int = value
	return tok
}

func (l *Lexer) skipWhitespace() {
	for {
		switch l.peek() {
		case ' ', '\t', '\n':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	if c == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return c
}

func (l *Lexer) matchNext(expected byte) bool {
	if l.isAtEnd() || l.source[l.current] != expected {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) makeToken(tt token.TokenType) token.Token {
	return token.Token{
		Type:     tt,
		Literal:  l.source[l.start:l.current],
		Position: l.startPosition(),
	}
}

func (l *Lexer) reportError(kind ErrorKind, message string) {
	l.errors = append(l.errors, ScanError{
		Kind:     kind,
		Message:  message,
		Position: l.startPosition(),
		Length:   l.current - l.start,
	})
}

func (l *Lexer) startPosition() token.Position {
	return token.Position{Line: l.startLine, Column: l.startColumn, Offset: l.start}
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}
