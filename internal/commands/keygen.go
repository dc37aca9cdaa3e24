package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docseal/docseal/internal/encryption"
)

// NewKeygenCommand creates a new cobra command for the keygen subcommand.
// With no argument it prints a fresh block cipher key; "keygen salt" prints a
// key-derivation salt for passphrase mode instead.
func NewKeygenCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "keygen [key|salt]",
		Aliases:   []string{"gen"},
		Short:     "Generate a new encryption key or salt",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"key", "salt"},
		RunE: func(_ *cobra.Command, args []string) error {
			kind := "key"
			if len(args) > 0 {
				kind = args[0]
			}

			switch kind {
			case "key":
				material := make([]byte, encryption.KeySize)
				if _, err := rand.Read(material); err != nil {
					return fmt.Errorf("generating key: %w", err)
				}

				fmt.Println(hex.EncodeToString(material)) //nolint:forbidigo

			case "salt":
				salt, err := encryption.GenerateSalt()
				if err != nil {
					return err
				}

				fmt.Println(hex.EncodeToString(salt)) //nolint:forbidigo

			default:
				return fmt.Errorf("unknown material kind %q", kind)
			}

			return nil
		},
	}
}
