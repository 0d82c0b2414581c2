package parser

import (
	"monkey/internal/ast"
	"monkey/internal/token"
)

type Precedence int

const (
	_ Precedence = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x !x +x
	CALL        // f(x)
)

var precedenceNames = map[Precedence]string{
	LOWEST:      "Lowest",
	EQUALS:      "Equals",
	LESSGREATER: "LessGreater",
	SUM:         "Sum",
	PRODUCT:     "Product",
	PREFIX:      "Prefix",
	CALL:        "Call",
}

func (pr Precedence) String() string {
	if name, ok := precedenceNames[pr]; ok {
		return name
	}
	return "Unknown"
}

var precedences = map[token.TokenType]Precedence{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
}

// precedenceOf is the only place binding strength is looked up. Tokens that
// are not in the table bind at LOWEST, which ends the infix loop.
func precedenceOf(tt token.TokenType) Precedence {
	if pr, ok := precedences[tt]; ok {
		return pr
	}
	return LOWEST
}

var prefixOps = map[token.TokenType]ast.PrefixOp{
	token.BANG:  ast.Not,
	token.PLUS:  ast.UnaryPlus,
	token.MINUS: ast.UnaryMinus,
}

var infixOps = map[token.TokenType]ast.InfixOp{
	token.PLUS:     ast.Plus,
	token.MINUS:    ast.Minus,
	token.ASTERISK: ast.Multiply,
	token.SLASH:    ast.Divide,
	token.EQ:       ast.Eq,
	token.NOT_EQ:   ast.NotEq,
	token.LT:       ast.LT,
	token.GT:       ast.GT,
}

func (p *Parser) registerParseFns() {
	p.prefixParseFns = map[token.TokenType]prefixParseFn{
		token.IDENT:  p.parseIdentifier,
		token.INT:    p.parseIntegerLiteral,
		token.LPAREN: p.parseGroupedExpr,
	}
	for tt := range prefixOps {
		p.prefixParseFns[tt] = p.parsePrefixExpr
	}

	p.infixParseFns = make(map[token.TokenType]infixParseFn, len(infixOps))
	for tt := range infixOps {
		p.infixParseFns[tt] = p.parseInfixExpr
	}
}

func (p *Parser) parseExpression(minPrec Precedence) ast.Expr {
	prefix, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}

	left := prefix()
	if left == nil {
		return nil
	}

	for !p.peekTokenIs(token.SEMICOLON) && minPrec < precedenceOf(p.peekToken.Type) {
		infix, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			// No infix rule, e.g. '(' which binds at CALL: stop here.
			return left
		}

		p.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expr {
	return &ast.Identifier{Pos: p.curToken.Position, Name: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expr {
	return &ast.IntegerLiteral{Pos: p.curToken.Position, Value: p.curToken.Int}
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	op := p.curToken
	p.nextToken()

	operand := p.parseExpression(PREFIX)
	if operand == nil {
		return nil
	}

	return &ast.PrefixExpr{
		Pos:     op.Position,
		Op:      prefixOps[op.Type],
		Operand: operand,
	}
}

func (p *Parser) parseInfixExpr(left ast.Expr) ast.Expr {
	op := p.curToken
	prec := precedenceOf(op.Type)
	p.nextToken()

	// Recursing at the operator's own precedence keeps same-level chains
	// left-associative.
	right := p.parseExpression(prec)
	if right == nil {
		return nil
	}

	return &ast.InfixExpr{
		Pos:   left.NodePos(),
		Op:    infixOps[op.Type],
		Left:  left,
		Right: right,
	}
}

func (p *Parser) parseGroupedExpr() ast.Expr {
	p.nextToken()

	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return expr
}
