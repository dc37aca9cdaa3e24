package commands

import (
	"github.com/spf13/cobra"

	"github.com/docseal/docseal/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] files...",
		Aliases: []string{"enc", "seal"},
		Short:   "Seal files",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := prepare(cmd, args, false)
			if err != nil {
				return err
			}

			return logic.Run(cfg)
		},
	}
}
