package grammar

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"

	"monkey/internal/ast"
)

var infixOps = map[string]ast.InfixOp{
	"+":  ast.Plus,
	"-":  ast.Minus,
	"*":  ast.Multiply,
	"/":  ast.Divide,
	"==": ast.Eq,
	"!=": ast.NotEq,
	"<":  ast.LT,
	">":  ast.GT,
}

var prefixOps = map[string]ast.PrefixOp{
	"!": ast.Not,
	"+": ast.UnaryPlus,
	"-": ast.UnaryMinus,
}

// ToAST lowers a grammar parse tree into the same AST the Pratt parser builds.
func ToAST(p *Program) (*ast.Program, error) {
	program := &ast.Program{}
	for _, stmt := range p.Statements {
		s, err := convertStatement(stmt)
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, s)
	}
	return program, nil
}

func convertStatement(s *Statement) (ast.Stmt, error) {
	switch {
	case s.Let != nil:
		value, err := convertExpression(s.Let.Value)
		if err != nil {
			return nil, err
		}
		// The grammar does not track the name token separately.
		return &ast.LetStmt{
			Pos:   toPos(s.Let.Pos),
			Name:  ast.Identifier{Name: s.Let.Name},
			Value: value,
		}, nil
	case s.Return != nil:
		value, err := convertExpression(s.Return.Value)
		if err != nil {
			return nil, err
		}
		return &ast.ReturnStmt{Pos: toPos(s.Return.Pos), Value: value}, nil
	case s.Expr != nil:
		expr, err := convertExpression(s.Expr.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{Pos: toPos(s.Expr.Pos), Expr: expr}, nil
	}
	return nil, fmt.Errorf("%s: empty statement", s.Pos)
}

func convertExpression(e *Expression) (ast.Expr, error) {
	eq := e.Equality
	return foldInfix(eq.Left, eq.Rest, convertComparison,
		func(op *EqualityOp) (string, *Comparison) { return op.Op, op.Right })
}

func convertComparison(c *Comparison) (ast.Expr, error) {
	return foldInfix(c.Left, c.Rest, convertSum,
		func(op *ComparisonOp) (string, *Sum) { return op.Op, op.Right })
}

func convertSum(s *Sum) (ast.Expr, error) {
	return foldInfix(s.Left, s.Rest, convertProduct,
		func(op *SumOp) (string, *Product) { return op.Op, op.Right })
}

func convertProduct(p *Product) (ast.Expr, error) {
	return foldInfix(p.Left, p.Rest, convertUnary,
		func(op *ProductOp) (string, *Unary) { return op.Op, op.Right })
}

// foldInfix builds a left-associative chain: a op b op c => ((a op b) op c).
func foldInfix[Operand any, Tail any](
	first Operand,
	rest []Tail,
	convert func(Operand) (ast.Expr, error),
	split func(Tail) (string, Operand),
) (ast.Expr, error) {
	left, err := convert(first)
	if err != nil {
		return nil, err
	}

	for _, tail := range rest {
		symbol, operand := split(tail)
		right, err := convert(operand)
		if err != nil {
			return nil, err
		}

		op, ok := infixOps[symbol]
		if !ok {
			return nil, fmt.Errorf("unknown infix operator %q", symbol)
		}

		left = &ast.InfixExpr{Pos: left.NodePos(), Op: op, Left: left, Right: right}
	}

	return left, nil
}

func convertUnary(u *Unary) (ast.Expr, error) {
	if u.Primary != nil {
		return convertPrimary(u.Primary)
	}

	op, ok := prefixOps[u.Op]
	if !ok {
		return nil, fmt.Errorf("%s: unknown prefix operator %q", u.Pos, u.Op)
	}

	operand, err := convertUnary(u.Operand)
	if err != nil {
		return nil, err
	}

	return &ast.PrefixExpr{Pos: toPos(u.Pos), Op: op, Operand: operand}, nil
}

func convertPrimary(p *Primary) (ast.Expr, error) {
	switch {
	case p.Ident != nil:
		return &ast.Identifier{Pos: toPos(p.Pos), Name: *p.Ident}, nil
	case p.Int != nil:
		value, err := strconv.ParseInt(*p.Int, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: integer literal out of range: %s", p.Pos, *p.Int)
		}
		return &ast.IntegerLiteral{Pos: toPos(p.Pos), Value: value}, nil
	case p.Group != nil:
		return convertExpression(p.Group)
	}
	return nil, fmt.Errorf("%s: empty expression", p.Pos)
}

func toPos(pos lexer.Position) ast.Position {
	return ast.Position{Line: pos.Line, Column: pos.Column, Offset: pos.Offset}
}
