package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monkey/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `let five = 5;
let ten = 10;

let add = fn(x, y) {
    x + y;
};

let result = add(five, ten);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

1 == 1;
1 != 2;
`

	expected := []struct {
		typ     token.TokenType
		literal string
	}{
		{token.LET, "let"}, {token.IDENT, "five"}, {token.ASSIGN, "="}, {token.INT, "5"}, {token.SEMICOLON, ";"},
		{token.LET, "let"}, {token.IDENT, "ten"}, {token.ASSIGN, "="}, {token.INT, "10"}, {token.SEMICOLON, ";"},
		{token.LET, "let"}, {token.IDENT, "add"}, {token.ASSIGN, "="}, {token.FUNCTION, "fn"},
		{token.LPAREN, "("}, {token.IDENT, "x"}, {token.COMMA, ","}, {token.IDENT, "y"}, {token.RPAREN, ")"},
		{token.LBRACE, "{"}, {token.IDENT, "x"}, {token.PLUS, "+"}, {token.IDENT, "y"}, {token.SEMICOLON, ";"},
		{token.RBRACE, "}"}, {token.SEMICOLON, ";"},
		{token.LET, "let"}, {token.IDENT, "result"}, {token.ASSIGN, "="}, {token.IDENT, "add"},
		{token.LPAREN, "("}, {token.IDENT, "five"}, {token.COMMA, ","}, {token.IDENT, "ten"}, {token.RPAREN, ")"},
		{token.SEMICOLON, ";"},
		{token.BANG, "!"}, {token.MINUS, "-"}, {token.SLASH, "/"}, {token.ASTERISK, "*"}, {token.INT, "5"},
		{token.SEMICOLON, ";"},
		{token.INT, "5"}, {token.LT, "<"}, {token.INT, "10"}, {token.GT, ">"}, {token.INT, "5"}, {token.SEMICOLON, ";"},
		{token.IF, "if"}, {token.LPAREN, "("}, {token.INT, "5"}, {token.LT, "<"}, {token.INT, "10"}, {token.RPAREN, ")"},
		{token.LBRACE, "{"}, {token.RETURN, "return"}, {token.BOOL, "true"}, {token.SEMICOLON, ";"}, {token.RBRACE, "}"},
		{token.ELSE, "else"}, {token.LBRACE, "{"}, {token.RETURN, "return"}, {token.BOOL, "false"}, {token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.INT, "1"}, {token.EQ, "=="}, {token.INT, "1"}, {token.SEMICOLON, ";"},
		{token.INT, "1"}, {token.NOT_EQ, "!="}, {token.INT, "2"}, {token.SEMICOLON, ";"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, exp := range expected {
		tok := l.NextToken()
		assert.Equal(t, exp.typ, tok.Type, "token %d: wrong type", i)
		assert.Equal(t, exp.literal, tok.Literal, "token %d: wrong literal", i)
	}
	assert.Empty(t, l.Errors())
}

func TestLetStatementTokens(t *testing.T) {
	l := New("let five = 5;")

	want := []string{"LET", "IDENT(five)", "ASSIGN", "INT(5)", "SEMICOLON", "EOF"}
	for _, w := range want {
		assert.Equal(t, w, l.NextToken().String())
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, token.EOF, l.NextToken().Type, "EOF must repeat")
	}
}

func TestTwoCharacterOperators(t *testing.T) {
	tokens, errs := Tokenize("==")
	require.Empty(t, errs)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.EQ, tokens[0].Type)
	assert.Equal(t, token.EOF, tokens[1].Type)

	tokens, _ = Tokenize("= = ! != !")
	types := make([]token.TokenType, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []token.TokenType{token.ASSIGN, token.ASSIGN, token.BANG, token.NOT_EQ, token.BANG, token.EOF}, types)
}

func TestBooleanPayload(t *testing.T) {
	tokens, _ := Tokenize("true false")
	require.Len(t, tokens, 3)
	assert.True(t, tokens[0].Bool)
	assert.False(t, tokens[1].Bool)
	assert.Equal(t, "BOOL(true)", tokens[0].String())
}

func TestIdentifiersStopAtDigits(t *testing.T) {
	tokens, _ := Tokenize("foo_bar x1")
	require.Len(t, tokens, 4)
	assert.Equal(t, "IDENT(foo_bar)", tokens[0].String())
	assert.Equal(t, "IDENT(x)", tokens[1].String())
	assert.Equal(t, "INT(1)", tokens[2].String())
}

func TestIntegerPayload(t *testing.T) {
	tokens, errs := Tokenize("9223372036854775807")
	require.Empty(t, errs)
	assert.Equal(t, token.INT, tokens[0].Type)
	assert.Equal(t, int64(9223372036854775807), tokens[0].Int)
}

func TestIntegerOverflow(t *testing.T) {
	tokens, errs := Tokenize("9223372036854775808;")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "out of range")
	assert.Equal(t, 19, errs[0].Length)
	assert.Equal(t, IntegerOverflow, errs[0].Kind)

	assert.Equal(t, token.ILLEGAL, tokens[0].Type)
	assert.Equal(t, "9223372036854775808", tokens[0].Literal)
	assert.Equal(t, token.SEMICOLON, tokens[1].Type)
}

func TestIllegalCharacters(t *testing.T) {
	tokens, errs := Tokenize("a @ b # $")
	require.Len(t, errs, 3)
	assert.Equal(t, "unexpected character: '@'", errs[0].Message)
	assert.Equal(t, IllegalCharacter, errs[0].Kind)

	var types []token.TokenType
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []token.TokenType{
		token.IDENT, token.ILLEGAL, token.IDENT, token.ILLEGAL, token.ILLEGAL, token.EOF,
	}, types)
}

func TestNonASCIICharacterIsOneIllegalToken(t *testing.T) {
	tokens, errs := Tokenize("é;x")
	require.Len(t, errs, 1)
	assert.Equal(t, "unexpected character: 'é'", errs[0].Message)
	assert.Equal(t, 2, errs[0].Length)

	require.Len(t, tokens, 4)
	assert.Equal(t, token.ILLEGAL, tokens[0].Type)
	assert.Equal(t, "é", tokens[0].Literal)
	assert.Equal(t, "ILLEGAL(é)", tokens[0].String())
	assert.Equal(t, token.Position{Line: 1, Column: 2, Offset: 2}, tokens[1].Position)
	assert.Equal(t, token.Position{Line: 1, Column: 3, Offset: 3}, tokens[2].Position)
}

func TestInvalidUTF8ByteIsIllegal(t *testing.T) {
	tokens, errs := Tokenize("\xff;")
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Length)
	assert.Equal(t, token.ILLEGAL, tokens[0].Type)
	assert.Equal(t, token.SEMICOLON, tokens[1].Type)
}

func TestCarriageReturnIsIllegal(t *testing.T) {
	tokens, errs := Tokenize("a\r\n")
	require.Len(t, errs, 1)
	assert.Equal(t, token.ILLEGAL, tokens[1].Type)
}

func TestPositions(t *testing.T) {
	tokens, _ := Tokenize("let x = 1;\n  y")
	require.Len(t, tokens, 7)

	assert.Equal(t, token.Position{Line: 1, Column: 1, Offset: 0}, tokens[0].Position)
	assert.Equal(t, token.Position{Line: 1, Column: 5, Offset: 4}, tokens[1].Position)
	assert.Equal(t, token.Position{Line: 1, Column: 10, Offset: 9}, tokens[4].Position)
	assert.Equal(t, token.Position{Line: 2, Column: 3, Offset: 13}, tokens[5].Position)
	assert.Equal(t, token.Position{Line: 2, Column: 4, Offset: 14}, tokens[6].Position)
}

func TestEmptyInput(t *testing.T) {
	tokens, errs := Tokenize("")
	assert.Empty(t, errs)
	require.Len(t, tokens, 1)
	assert.Equal(t, token.EOF, tokens[0].Type)

	tokens, _ = Tokenize(" \t\n ")
	require.Len(t, tokens, 1)
	assert.Equal(t, token.EOF, tokens[0].Type)
}
