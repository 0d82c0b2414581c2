package errors

import (
	"monkey/internal/lexer"
	"monkey/internal/parser"
)

// FromScanError converts a lexical error into a displayable CompilerError.
func FromScanError(se lexer.ScanError) CompilerError {
	err := CompilerError{
		Level:    Error,
		Message:  se.Message,
		Position: se.Position,
		Length:   se.Length,
	}

	switch se.Kind {
	case lexer.IllegalCharacter:
		err.Code = ErrorIllegalCharacter
		err.HelpText = "only ASCII letters, digits, '_' and the operators = + - ! * / < > == != , ; ( ) { } are recognized"
	case lexer.IntegerOverflow:
		err.Code = ErrorIntegerOverflow
		err.HelpText = "integer literals must be at most 9223372036854775807"
	}

	return err
}

// FromParseError converts a syntax error into a displayable CompilerError.
func FromParseError(pe parser.ParseError) CompilerError {
	err := CompilerError{
		Level:    Error,
		Message:  pe.Message,
		Position: pe.Position,
		Length:   1,
	}

	switch pe.Kind {
	case parser.UnexpectedToken:
		err.Code = ErrorUnexpectedToken
		err.HelpText = GetErrorDescription(err.Code)
	case parser.MissingPrefix:
		err.Code = ErrorMissingPrefix
		err.HelpText = "an expression starts with an identifier, an integer, '(' or one of ! + -"
	}

	return err
}

// Collect converts both error channels, lexical errors first.
func Collect(scanErrors []lexer.ScanError, parseErrors []parser.ParseError) []CompilerError {
	errs := make([]CompilerError, 0, len(scanErrors)+len(parseErrors))
	for _, se := range scanErrors {
		errs = append(errs, FromScanError(se))
	}
	for _, pe := range parseErrors {
		errs = append(errs, FromParseError(pe))
	}
	return errs
}
