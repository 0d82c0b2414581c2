package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var MonkeyLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Keywords must win over identifiers
		{"Keyword", `\b(fn|let|true|false|if|else|return)\b`, nil},

		// Identifiers are letters and underscores only
		{"Ident", `[a-zA-Z_]+`, nil},

		// Integer literals
		{"Int", `[0-9]+`, nil},

		// Operators (two-character forms first)
		{"Operator", `==|!=|[-+*/<>!=]`, nil},

		// Punctuation
		{"Punctuation", `[;,(){}]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\n]+`, nil},
	},
})
