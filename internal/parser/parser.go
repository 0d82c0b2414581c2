package parser

import (
	"github.com/tliron/commonlog"

	"monkey/internal/ast"
	"monkey/internal/lexer"
	"monkey/internal/token"
)

type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	MissingPrefix
)

type ParseError struct {
	Kind     ErrorKind
	Message  string
	Position token.Position
}

func (e ParseError) String() string {
	return e.Message
}

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

type Parser struct {
	lexer *lexer.Lexer
	log   commonlog.Logger

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn

	errors []ParseError
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		lexer: l,
		log:   commonlog.GetLogger("monkey.parser"),
	}
	p.registerParseFns()

	// Fill both current and peek.
	p.nextToken()
	p.nextToken()

	return p
}

// ParseProgram parses statements until EOF. Statements that fail to parse
// are dropped; their errors are returned alongside the partial program.
func (p *Parser) ParseProgram() (*ast.Program, []ParseError) {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			p.log.Debugf("statement parsed: %s", stmt)
			program.Statements = append(program.Statements, stmt)
		} else {
			p.log.Debugf("statement not parsed at %s", p.curToken.Position)
			p.synchronize()
		}
		p.nextToken()
	}

	errs := p.errors
	p.errors = nil
	return program, errs
}

func (p *Parser) parseStatement() ast.Stmt {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseLetStmt() ast.Stmt {
	start := p.curToken

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := ast.Identifier{Pos: p.curToken.Position, Name: p.curToken.Literal}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()

	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return &ast.LetStmt{Pos: start.Position, Name: name, Value: value}
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.curToken
	p.nextToken()

	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return &ast.ReturnStmt{Pos: start.Position, Value: value}
}

func (p *Parser) parseExprStmt() ast.Stmt {
	start := p.curToken

	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}

	// The trailing semicolon is optional.
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return &ast.ExprStmt{Pos: start.Position, Expr: expr}
}
