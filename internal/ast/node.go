package ast

import "monkey/internal/token"

type Position = token.Position

type Node interface {
	NodePos() Position
	NodeType() NodeType
	String() string
}

type NodeType int

const (
	PROGRAM NodeType = iota
	IDENTIFIER
	INTEGER_LITERAL
	PREFIX_EXPR
	INFIX_EXPR
	LET_STMT
	RETURN_STMT
	EXPR_STMT
)

var nodeTypeNames = [...]string{
	PROGRAM:         "Program",
	IDENTIFIER:      "Identifier",
	INTEGER_LITERAL: "IntegerLiteral",
	PREFIX_EXPR:     "PrefixExpr",
	INFIX_EXPR:      "InfixExpr",
	LET_STMT:        "LetStmt",
	RETURN_STMT:     "ReturnStmt",
	EXPR_STMT:       "ExprStmt",
}

func (nt NodeType) String() string {
	if nt >= 0 && int(nt) < len(nodeTypeNames) {
		return nodeTypeNames[nt]
	}
	return "Unknown"
}

// Program is the root node: statements in source order.
type Program struct {
	Statements []Stmt
}

func (p *Program) NodePos() Position {
	if len(p.Statements) == 0 {
		return Position{Line: 1, Column: 1}
	}
	return p.Statements[0].NodePos()
}
func (*Program) NodeType() NodeType { return PROGRAM }

func (i *Identifier) NodePos() Position { return i.Pos }
func (*Identifier) NodeType() NodeType  { return IDENTIFIER }

func (il *IntegerLiteral) NodePos() Position { return il.Pos }
func (*IntegerLiteral) NodeType() NodeType   { return INTEGER_LITERAL }

func (pe *PrefixExpr) NodePos() Position { return pe.Pos }
func (*PrefixExpr) NodeType() NodeType   { return PREFIX_EXPR }

func (ie *InfixExpr) NodePos() Position { return ie.Pos }
func (*InfixExpr) NodeType() NodeType   { return INFIX_EXPR }

func (l *LetStmt) NodePos() Position { return l.Pos }
func (*LetStmt) NodeType() NodeType  { return LET_STMT }

func (r *ReturnStmt) NodePos() Position { return r.Pos }
func (*ReturnStmt) NodeType() NodeType  { return RETURN_STMT }

func (e *ExprStmt) NodePos() Position { return e.Pos }
func (*ExprStmt) NodeType() NodeType  { return EXPR_STMT }
