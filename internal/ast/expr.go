package ast

// Expr is the closed set of expression nodes. Only types in this package
// implement it.
type Expr interface {
	Node
	isExpr()
}

func (*Identifier) isExpr() {}

func (*IntegerLiteral) isExpr() {}

func (*PrefixExpr) isExpr() {}

func (*InfixExpr) isExpr() {}

type Identifier struct {
	Pos  Position
	Name string
}

type IntegerLiteral struct {
	Pos   Position
	Value int64
}

type PrefixExpr struct {
	Pos     Position
	Op      PrefixOp
	Operand Expr
}

type InfixExpr struct {
	Pos   Position
	Op    InfixOp
	Left  Expr
	Right Expr
}

type PrefixOp int

const (
	Not PrefixOp = iota
	UnaryPlus
	UnaryMinus
)

func (op PrefixOp) String() string {
	switch op {
	case Not:
		return "!"
	case UnaryPlus:
		return "+"
	case UnaryMinus:
		return "-"
	}
	return "?"
}

// Name is the operator's identifier form, used by structured dumps.
func (op PrefixOp) Name() string {
	switch op {
	case Not:
		return "Not"
	case UnaryPlus:
		return "Plus"
	case UnaryMinus:
		return "Minus"
	}
	return "Unknown"
}

type InfixOp int

const (
	Plus InfixOp = iota
	Minus
	Multiply
	Divide
	Eq
	NotEq
	LT
	GT
)

var infixSymbols = [...]string{
	Plus:     "+",
	Minus:    "-",
	Multiply: "*",
	Divide:   "/",
	Eq:       "==",
	NotEq:    "!=",
	LT:       "<",
	GT:       ">",
}

var infixNames = [...]string{
	Plus:     "Plus",
	Minus:    "Minus",
	Multiply: "Multiply",
	Divide:   "Divide",
	Eq:       "Eq",
	NotEq:    "NotEq",
	LT:       "LT",
	GT:       "GT",
}

func (op InfixOp) String() string {
	if op >= 0 && int(op) < len(infixSymbols) {
		return infixSymbols[op]
	}
	return "?"
}

func (op InfixOp) Name() string {
	if op >= 0 && int(op) < len(infixNames) {
		return infixNames[op]
	}
	return "Unknown"
}
