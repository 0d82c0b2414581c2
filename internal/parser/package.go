package parser

import (
	"monkey/internal/ast"
	"monkey/internal/lexer"
)

func ParseSource(path string, source string) (*ast.Program, []ParseError, []lexer.ScanError) {
	l := lexer.New(source)

	parser := New(l)
	program, parseErrors := parser.ParseProgram()
	if len(parseErrors) > 0 {
		parser.log.Debugf("%s: %d parse errors", path, len(parseErrors))
	}

	return program, parseErrors, l.Errors()
}

// Messages flattens parse errors into their human-readable messages.
func Messages(errs []ParseError) []string {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Message)
	}
	return messages
}
