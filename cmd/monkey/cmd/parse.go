package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"monkey/internal/ast"
	"monkey/internal/config"
	diag "monkey/internal/errors"
	"monkey/internal/parser"
)

func newParseCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a program and print its syntax tree",
		Long: `Parse a program and print its syntax tree.

Formats:
  text  - canonical fully parenthesized form
  yaml  - structured node dump
  json  - structured node dump`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = opts.cfg.Output.Format
			}
			if !config.ValidFormat(format) {
				return fmt.Errorf("unknown format %q (want text, yaml or json)", format)
			}

			name, source, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			startTime := time.Now()
			program, parseErrors, scanErrors := parser.ParseSource(name, source)

			if reportDiagnostics(cmd.ErrOrStderr(), name, source, diag.Collect(scanErrors, parseErrors)) {
				color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "Parsing failed after %s\n", formatDuration(time.Since(startTime)))
				return errDiagnostics
			}

			return writeProgram(cmd.OutOrStdout(), program, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, yaml or json (default from config)")

	return cmd
}

func writeProgram(w io.Writer, program *ast.Program, format string) error {
	if format == config.FormatText {
		_, err := fmt.Fprintln(w, program.String())
		return err
	}

	dump, err := ast.Dump(program)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case config.FormatYAML:
		data, err = yaml.Marshal(dump)
	case config.FormatJSON:
		data, err = json.MarshalIndent(dump, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}

	_, err = w.Write(data)
	return err
}

// reportDiagnostics prints every error and reports whether there were any.
func reportDiagnostics(w io.Writer, name, source string, errs []diag.CompilerError) bool {
	if len(errs) == 0 {
		return false
	}

	reporter := diag.NewErrorReporter(name, source)
	for _, err := range errs {
		fmt.Fprint(w, reporter.FormatError(err))
	}
	return true
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
