package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"monkey/internal/errors"
	"monkey/internal/lexer"
	"monkey/internal/parser"
)

const (
	scannerSource = "monkey-scanner"
	parserSource  = "monkey-parser"
)

// ConvertParseErrors transforms parser errors into LSP diagnostics.
// Parse errors point at a single token, so the range covers one character.
func ConvertParseErrors(parseErrors []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, parseErr := range parseErrors {
		display := errors.FromParseError(parseErr)
		diagnostics = append(diagnostics, toDiagnostic(display, parserSource))
	}

	return diagnostics
}

// ConvertScanErrors transforms scanner errors into LSP diagnostics spanning
// the offending lexeme.
func ConvertScanErrors(scanErrors []lexer.ScanError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, scanErr := range scanErrors {
		display := errors.FromScanError(scanErr)
		diagnostics = append(diagnostics, toDiagnostic(display, scannerSource))
	}

	return diagnostics
}

func toDiagnostic(err errors.CompilerError, source string) protocol.Diagnostic {
	length := err.Length
	if length <= 0 {
		length = 1
	}

	// LSP positions are 0-based
	line := uint32(err.Position.Line - 1)
	start := uint32(err.Position.Column - 1)

	diagnostic := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: start},
			End:   protocol.Position{Line: line, Character: start + uint32(length)},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString(source),
		Message:  err.Message,
	}
	if err.Code != "" {
		diagnostic.Code = &protocol.IntegerOrString{Value: err.Code}
	}

	return diagnostic
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
