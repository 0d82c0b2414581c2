package cmd

import (
	"fmt"
	"os/user"

	"github.com/spf13/cobra"

	"monkey/internal/config"
	"monkey/internal/repl"
)

func newReplCommand(opts *rootOptions) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read lines and print their tokens or syntax tree",
		Long: `Start an interactive session. Each line is tokenized (mode tokens)
or parsed (mode ast). An empty line ends the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if mode == "" {
				mode = opts.cfg.REPL.Mode
			}
			if !config.ValidMode(mode) {
				return fmt.Errorf("unknown mode %q (want tokens or ast)", mode)
			}

			if currentUser, err := user.Current(); err == nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Welcome to the Monkey REPL, %s!\n", currentUser.Username)
			}

			return repl.Start(cmd.InOrStdin(), cmd.OutOrStdout(), repl.Options{
				Prompt: opts.cfg.REPL.Prompt,
				Mode:   mode,
			})
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "tokens or ast (default from config)")

	return cmd
}
