package commands

import (
	"github.com/spf13/cobra"

	"github.com/docseal/docseal/internal/logic"
)

// NewInspectCommand creates a new cobra command for the inspect subcommand.
// Inspection needs no key material.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect files...",
		Short: "Print the metadata record for sealed containers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return logic.RunInspect(args)
		},
	}
}
