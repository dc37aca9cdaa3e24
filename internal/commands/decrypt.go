package commands

import (
	"github.com/spf13/cobra"

	"github.com/docseal/docseal/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] [paths...]",
		Aliases: []string{"dec", "unseal"},
		Short:   "Unseal files",
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := prepare(cmd, args, true)
			if err != nil {
				return err
			}

			return logic.Run(cfg)
		},
	}
}
