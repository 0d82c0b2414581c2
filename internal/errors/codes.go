package errors

// Error codes for the monkey front end.
//
// Error code ranges:
// E0001-E0099: Lexical errors
// E0100-E0199: Parser errors

const (
	// E0001: Byte that starts no token
	ErrorIllegalCharacter = "E0001"

	// E0002: Integer literal that does not fit in 64 bits
	ErrorIntegerOverflow = "E0002"

	// E0100: The next token is not the one the statement requires
	ErrorUnexpectedToken = "E0100"

	// E0101: A token that cannot start an expression
	ErrorMissingPrefix = "E0101"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorIllegalCharacter:
		return "Character is not part of the language"
	case ErrorIntegerOverflow:
		return "Integer literal is larger than a signed 64-bit integer"
	case ErrorUnexpectedToken:
		return "Statement continues with an unexpected token"
	case ErrorMissingPrefix:
		return "Token cannot begin an expression"
	default:
		return "Unknown error code"
	}
}
