package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// String prints one statement per line in canonical, fully parenthesized form.
func (p *Program) String() string {
	var b strings.Builder
	for i, stmt := range p.Statements {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(stmt.String())
	}
	return b.String()
}

func (i *Identifier) String() string {
	return i.Name
}

func (il *IntegerLiteral) String() string {
	return strconv.FormatInt(il.Value, 10)
}

func (pe *PrefixExpr) String() string {
	return fmt.Sprintf("(%s%s)", pe.Op, exprString(pe.Operand))
}

func (ie *InfixExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", exprString(ie.Left), ie.Op, exprString(ie.Right))
}

func (l *LetStmt) String() string {
	return fmt.Sprintf("let %s = %s;", l.Name.Name, exprString(l.Value))
}

func (r *ReturnStmt) String() string {
	return fmt.Sprintf("return %s;", exprString(r.Value))
}

func (e *ExprStmt) String() string {
	return exprString(e.Expr) + ";"
}

func exprString(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}
