package commands

import (
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "docseal [flags] command [flags]",
		Short: "Document sealing utility",
		Long: `A document protection utility that seals files with a two-stage cipher:
an affine byte substitution followed by AES-128 in CBC mode. Sealed files are
standalone containers with a sidecar metadata record for integrity checking.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			viper.SetEnvPrefix("docseal")
			viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			viper.AutomaticEnv()

			return nil
		},
	}

	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().Bool("delete", false, "Delete the original file after successful processing")
	root.PersistentFlags().Bool("stats", false, "Print summary statistics")
	root.PersistentFlags().Bool("dry", false, "Show what would be processed without writing anything")
	root.PersistentFlags().Bool("strict", false, "Reject keys that are not exactly 16 bytes instead of normalizing them")
	root.PersistentFlags().Bool("preserve-timestamps", false, "Carry the input file's timestamps over to the output")

	root.PersistentFlags().StringP("key", "k", "", "Block cipher key (16 bytes, hex-encoded)")
	root.PersistentFlags().StringP("key-file", "f", "", "Path to a file holding the hex-encoded key")
	root.PersistentFlags().StringP("passphrase", "p", "", "Passphrase to derive the key from (requires --salt)")
	root.PersistentFlags().String("salt", "", "Salt for passphrase key derivation (hex-encoded)")

	root.PersistentFlags().IntP("multiplier", "a", 5, "Affine multiplier, must be odd")
	root.PersistentFlags().IntP("addend", "b", 8, "Affine addend")
	root.PersistentFlags().String("params-file", "", "JSONC file with affine parameters")

	root.PersistentFlags().String("encrypt-ext", ".sealed", "Suffix to append to sealed files")
	root.PersistentFlags().String("decrypt-ext", "", "Suffix to append to unsealed files, after stripping the sealed suffix")

	root.PersistentFlags().StringSlice("include", nil, "Glob patterns selecting files when walking directories")
	root.PersistentFlags().StringSlice("exclude", nil, "Glob patterns excluding files when walking directories")
	root.PersistentFlags().String("include-from", "", "JSONC file with include patterns")
	root.PersistentFlags().String("exclude-from", "", "JSONC file with exclude patterns")

	root.AddCommand(
		NewEncryptCommand(),
		NewDecryptCommand(),
		NewKeygenCommand(),
		NewInspectCommand(),
		NewPreviewCommand(),
	)

	return root
}
