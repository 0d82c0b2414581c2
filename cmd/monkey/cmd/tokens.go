package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	diag "monkey/internal/errors"
	"monkey/internal/lexer"
	"monkey/internal/token"
)

func newTokensCommand(opts *rootOptions) *cobra.Command {
	var positions bool

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print one token per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, source, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			illegal := color.New(color.FgRed).SprintFunc()

			l := lexer.New(source)
			for tok := l.NextToken(); !tok.Is(token.EOF); tok = l.NextToken() {
				text := tok.String()
				if tok.Is(token.ILLEGAL) {
					text = illegal(text)
				}
				if positions {
					fmt.Fprintf(out, "%s\t%s\n", tok.Position, text)
				} else {
					fmt.Fprintln(out, text)
				}
			}

			if len(l.Errors()) == 0 {
				return nil
			}

			reporter := diag.NewErrorReporter(name, source)
			for _, se := range l.Errors() {
				fmt.Fprint(cmd.ErrOrStderr(), reporter.FormatError(diag.FromScanError(se)))
			}
			return errDiagnostics
		},
	}

	cmd.Flags().BoolVarP(&positions, "positions", "p", false, "prefix each token with line:column")

	return cmd
}
