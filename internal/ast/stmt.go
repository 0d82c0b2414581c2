package ast

// Stmt is the closed set of statement nodes.
type Stmt interface {
	Node
	isStmt()
}

func (*LetStmt) isStmt() {}

func (*ReturnStmt) isStmt() {}

func (*ExprStmt) isStmt() {}

type LetStmt struct {
	Pos   Position
	Name  Identifier
	Value Expr
}

type ReturnStmt struct {
	Pos   Position
	Value Expr
}

type ExprStmt struct {
	Pos  Position
	Expr Expr
}
