package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	diag "monkey/internal/errors"
	"monkey/internal/grammar"
	"monkey/internal/parser"
)

func newCheckCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Parse with both the Pratt parser and the reference grammar",
		Long: `Parse a program with the hand-written Pratt parser and with the
declarative reference grammar, then compare the canonical form of every
statement. Only sources without errors can be compared.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, source, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			program, parseErrors, scanErrors := parser.ParseSource(name, source)
			if reportDiagnostics(cmd.ErrOrStderr(), name, source, diag.Collect(scanErrors, parseErrors)) {
				return errDiagnostics
			}

			mismatch, err := grammar.CrossCheck(name, source, program)
			if err != nil {
				grammar.ReportParseError(cmd.ErrOrStderr(), source, err)
				return errDiagnostics
			}
			if mismatch != nil {
				color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "mismatch: %s\n", mismatch)
				return errDiagnostics
			}

			green := color.New(color.FgGreen).SprintFunc()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d statements agree\n", green("ok"), name, len(program.Statements))
			return nil
		},
	}
}
