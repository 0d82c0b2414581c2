package parser

import (
	"fmt"

	"monkey/internal/token"
)

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lexer.NextToken()
}

func (p *Parser) curTokenIs(tt token.TokenType) bool {
	return p.curToken.Type == tt
}

func (p *Parser) peekTokenIs(tt token.TokenType) bool {
	return p.peekToken.Type == tt
}

// expectPeek advances only when the peek token has the wanted type. On a
// mismatch it records an error and leaves the parser where it was.
func (p *Parser) expectPeek(tt token.TokenType) bool {
	if p.peekTokenIs(tt) {
		p.nextToken()
		return true
	}
	p.peekError(tt)
	return false
}

func (p *Parser) peekError(tt token.TokenType) {
	p.errorAt(UnexpectedToken, p.peekToken.Position, fmt.Sprintf("next token: want=%s, got=%s", tt, p.peekToken))
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	p.errorAt(MissingPrefix, tok.Position, fmt.Sprintf("no prefix parser function for %s found", tok))
}

func (p *Parser) errorAt(kind ErrorKind, pos token.Position, message string) {
	p.errors = append(p.errors, ParseError{
		Kind:     kind,
		Message:  message,
		Position: pos,
	})
}

// synchronize skips the rest of a statement that failed to parse. It stops on
// the terminating semicolon, at EOF, just before a token that begins a new
// statement, or before the first token on a later line, so the caller's
// nextToken lands on the next statement.
func (p *Parser) synchronize() {
	line := p.curToken.Position.Line

	for !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.EOF) {
		switch p.peekToken.Type {
		case token.LET, token.RETURN:
			return
		}
		if p.peekToken.Position.Line > line {
			return
		}
		p.nextToken()
	}
}
