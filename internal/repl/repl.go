package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"monkey/internal/config"
	"monkey/internal/lexer"
	"monkey/internal/parser"
	"monkey/internal/token"
)

const PROMPT = ">> "

// Options selects what the loop prints for each line
type Options struct {
	Prompt string
	Mode   string // config.ModeTokens or config.ModeAST
}

// Start reads lines from in until an empty line or end of input.
func Start(in io.Reader, out io.Writer, opts Options) error {
	if opts.Prompt == "" {
		opts.Prompt = PROMPT
	}
	if opts.Mode == "" {
		opts.Mode = config.ModeTokens
	}

	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, opts.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			return nil
		}

		switch opts.Mode {
		case config.ModeAST:
			printProgram(out, line)
		default:
			printTokens(out, line)
		}
	}
}

func printTokens(out io.Writer, line string) {
	illegal := color.New(color.FgRed).SprintFunc()

	l := lexer.New(line)
	for tok := l.NextToken(); !tok.Is(token.EOF); tok = l.NextToken() {
		if tok.Is(token.ILLEGAL) {
			fmt.Fprintln(out, illegal(tok.String()))
			continue
		}
		fmt.Fprintln(out, tok.String())
	}
}

func printProgram(out io.Writer, line string) {
	red := color.New(color.FgRed).SprintFunc()

	program, parseErrors, scanErrors := parser.ParseSource("<repl>", line)
	if len(scanErrors) > 0 || len(parseErrors) > 0 {
		for _, err := range scanErrors {
			fmt.Fprintf(out, "%s %s\n", red(err.Position.String()), err.Message)
		}
		for _, err := range parseErrors {
			fmt.Fprintf(out, "%s %s\n", red(err.Position.String()), err.Message)
		}
		return
	}

	fmt.Fprintln(out, program.String())
}
