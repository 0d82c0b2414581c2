package lsp

import (
	"monkey/internal/lexer"
	"monkey/internal/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// collectSemanticTokens classifies the lexemes of text. Delimiters and
// illegal bytes carry no highlighting.
func collectSemanticTokens(text string) []SemanticToken {
	var tokens []SemanticToken

	toks, _ := lexer.Tokenize(text)

	afterLet := false
	for _, tok := range toks {
		tokenType, ok := classify(tok.Type)
		if !ok {
			afterLet = false
			continue
		}

		modifiers := 0
		if tok.Is(token.IDENT) && afterLet {
			modifiers = 1 << indexOf("declaration", SemanticTokenModifiers)
		}
		afterLet = tok.Is(token.LET)

		tokens = append(tokens, makeToken(tok, tokenType, modifiers))
	}

	return tokens
}

func classify(tt token.TokenType) (string, bool) {
	switch tt {
	case token.FUNCTION, token.LET, token.IF, token.ELSE, token.RETURN, token.BOOL:
		return "keyword", true
	case token.IDENT:
		return "variable", true
	case token.INT:
		return "number", true
	case token.ASSIGN, token.PLUS, token.MINUS, token.BANG, token.ASTERISK,
		token.SLASH, token.LT, token.GT, token.EQ, token.NOT_EQ:
		return "operator", true
	default:
		return "", false
	}
}

// makeToken creates a semantic token for a lexed token
func makeToken(tok token.Token, tokenType string, modifiers int) SemanticToken {
	return SemanticToken{
		Line:           uint32(tok.Position.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(tok.Position.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(len(tok.Literal)),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: modifiers,
	}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
