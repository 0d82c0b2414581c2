package grammar

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

var parser = buildParser()

func buildParser() *participle.Parser[Program] {
	p, err := participle.Build[Program](
		participle.Lexer(MonkeyLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build parser: %w", err))
	}

	return p
}

func ParseString(name string, source string) (*Program, error) {
	return parser.ParseString(name, source)
}

// ReportParseError writes a caret-style message for a grammar error.
func ReportParseError(w io.Writer, src string, err error) {
	red := color.New(color.FgRed).SprintFunc()
	hiRed := color.New(color.FgHiRed).SprintFunc()

	var pe participle.Error
	if !errors.As(err, &pe) {
		fmt.Fprintln(w, red(fmt.Sprintf("Unexpected error: %s", err)))
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		fmt.Fprintln(w, red(fmt.Sprintf("Syntax error at unknown location: %s", err)))
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(0, pos.Column-1)) + "^"

	fmt.Fprintln(w, red(fmt.Sprintf("Syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column)))
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, hiRed(caret))
	fmt.Fprintf(w, "→ %s\n", pe.Message())
}
