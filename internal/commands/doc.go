// Package commands provides the command-line interface for the docseal tool.
//
// It implements commands for:
//   - sealing (encrypt) and unsealing (decrypt) document files
//   - key and salt generation
//   - inspecting sealed container metadata
//   - time-boxed plaintext previews
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/docseal/docseal/internal/config"
)

// Execute builds the command tree and runs it.
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}

// unmarshal binds the command's own and inherited flags into viper and
// decodes the result (flags and environment variables) into a fresh Config.
func unmarshal(cmd *cobra.Command) (*config.Config, error) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	if err := viper.BindPFlags(cmd.InheritedFlags()); err != nil {
		return nil, fmt.Errorf("binding inherited flags: %w", err)
	}

	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// prepare decodes, finalizes and validates the configuration for a
// file-processing command.
func prepare(cmd *cobra.Command, args []string, decrypt bool) (*config.Config, error) {
	cfg, err := unmarshal(cmd)
	if err != nil {
		return nil, err
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	cfg.Files = args
	cfg.Decrypt = decrypt

	if err := cfg.LoadParams(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
