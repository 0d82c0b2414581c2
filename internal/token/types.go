package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENT
	INT
	BOOL

	// Operators
	ASSIGN
	PLUS
	MINUS
	BANG
	ASTERISK
	SLASH
	LT
	GT
	EQ
	NOT_EQ

	// Delimiters
	COMMA
	SEMICOLON
	LPAREN
	RPAREN
	LBRACE
	RBRACE

	// Keywords
	FUNCTION
	LET
	IF
	ELSE
	RETURN
)

var tokenTypeNames = [...]string{
	ILLEGAL:   "ILLEGAL",
	EOF:       "EOF",
	IDENT:     "IDENT",
	INT:       "INT",
	BOOL:      "BOOL",
	ASSIGN:    "ASSIGN",
	PLUS:      "PLUS",
	MINUS:     "MINUS",
	BANG:      "BANG",
	ASTERISK:  "ASTERISK",
	SLASH:     "SLASH",
	LT:        "LT",
	GT:        "GT",
	EQ:        "EQ",
	NOT_EQ:    "NOT_EQ",
	COMMA:     "COMMA",
	SEMICOLON: "SEMICOLON",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	LBRACE:    "LBRACE",
	RBRACE:    "RBRACE",
	FUNCTION:  "FUNCTION",
	LET:       "LET",
	IF:        "IF",
	ELSE:      "ELSE",
	RETURN:    "RETURN",
}

func (tt TokenType) String() string {
	if tt >= 0 && int(tt) < len(tokenTypeNames) {
		return tokenTypeNames[tt]
	}
	return "TokenType(" + strconv.Itoa(int(tt)) + ")"
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexeme. Literal holds the source text; Int and Bool
// carry the decoded payload for INT and BOOL tokens.
type Token struct {
	Type     TokenType
	Literal  string
	Int      int64
	Bool     bool
	Position Position
}

// String renders payload-carrying kinds as KIND(payload), e.g. INT(5).
func (t Token) String() string {
	switch t.Type {
	case IDENT, ILLEGAL:
		if t.Literal == "" {
			return t.Type.String()
		}
		return fmt.Sprintf("%s(%s)", t.Type, t.Literal)
	case INT:
		return fmt.Sprintf("INT(%d)", t.Int)
	case BOOL:
		return fmt.Sprintf("BOOL(%t)", t.Bool)
	default:
		return t.Type.String()
	}
}

// Is reports whether the token has the given type.
func (t Token) Is(tt TokenType) bool {
	return t.Type == tt
}
