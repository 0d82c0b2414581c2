package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

type Program struct {
	Statements []*Statement `@@*`
}

type Statement struct {
	Pos lexer.Position

	Let    *LetStmt    `  @@`
	Return *ReturnStmt `| @@`
	Expr   *ExprStmt   `| @@`
}

type LetStmt struct {
	Pos lexer.Position

	Name  string      `"let" @Ident "="`
	Value *Expression `@@ ";"?`
}

type ReturnStmt struct {
	Pos lexer.Position

	Value *Expression `"return" @@ ";"?`
}

type ExprStmt struct {
	Pos lexer.Position

	Expr *Expression `@@ ";"?`
}

// Expression levels run from loosest to tightest binding.
type Expression struct {
	Equality *Equality `@@`
}

type Equality struct {
	Left *Comparison   `@@`
	Rest []*EqualityOp `@@*`
}

type EqualityOp struct {
	Op    string      `@("==" | "!=")`
	Right *Comparison `@@`
}

type Comparison struct {
	Left *Sum            `@@`
	Rest []*ComparisonOp `@@*`
}

type ComparisonOp struct {
	Op    string `@("<" | ">")`
	Right *Sum   `@@`
}

type Sum struct {
	Left *Product `@@`
	Rest []*SumOp `@@*`
}

type SumOp struct {
	Op    string   `@("+" | "-")`
	Right *Product `@@`
}

type Product struct {
	Left *Unary       `@@`
	Rest []*ProductOp `@@*`
}

type ProductOp struct {
	Op    string `@("*" | "/")`
	Right *Unary `@@`
}

type Unary struct {
	Pos lexer.Position

	Op      string   `( @("!" | "-" | "+")`
	Operand *Unary   `  @@ )`
	Primary *Primary `| @@`
}

type Primary struct {
	Pos lexer.Position

	Ident *string     `  @Ident`
	Int   *string     `| @Int`
	Group *Expression `| "(" @@ ")"`
}
