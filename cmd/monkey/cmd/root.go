package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"monkey/internal/config"
)

// errDiagnostics signals that diagnostics were already printed.
var errDiagnostics = errors.New("source has errors")

type rootOptions struct {
	cfgFile string
	noColor bool
	verbose int

	cfg *config.Config
}

func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil && !errors.Is(err, errDiagnostics) {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

// NewRootCommand builds the monkey command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "monkey",
		Short: "Monkey language tokenizer and parser",
		Long: `monkey tokenizes and parses Monkey source code.

Commands:
  tokens  - print the token stream
  parse   - print the syntax tree as text, YAML or JSON
  check   - compare the parser with the reference grammar
  repl    - interactive tokenizer or parser`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (TOML)")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity")

	root.AddCommand(
		newTokensCommand(opts),
		newParseCommand(opts),
		newCheckCommand(opts),
		newReplCommand(opts),
		newVersionCommand(),
	)

	return root
}

func (o *rootOptions) setup() error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}
	o.cfg = cfg

	if o.noColor || !cfg.Output.Color {
		color.NoColor = true
	}

	var logPath *string
	if cfg.Log.File != "" {
		logPath = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity+o.verbose, logPath)

	return nil
}

// readSource reads the named file, or standard input when no file or "-" is given.
func readSource(cmd *cobra.Command, args []string) (name string, source string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return "<stdin>", string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}
	return args[0], string(data), nil
}

func printError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(w, "%s: %v\n", red("error"), err)
}
