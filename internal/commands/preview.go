package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/docseal/docseal/internal/logic"
)

// NewPreviewCommand creates a new cobra command for the preview subcommand.
func NewPreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [flags] file",
		Short: "Unseal a container into a time-boxed temporary file",
		Long: `Decrypts a sealed container into a temporary file that is removed again
after the retention window passes. The plaintext never replaces the container
on disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := prepare(cmd, args, true)
			if err != nil {
				return err
			}

			return logic.RunPreview(cfg)
		},
	}

	cmd.Flags().Duration("keep", 30*time.Second, "How long the preview file stays on disk")

	return cmd
}
