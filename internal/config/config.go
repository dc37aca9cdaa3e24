// Package config defines and validates the runtime configuration.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds all runtime configuration, populated from flags and
// environment variables.
type Config struct {
	// Key sources, mutually exclusive.
	Key        string `mapstructure:"key"`
	KeyFile    string `mapstructure:"key-file"`
	Passphrase string `mapstructure:"passphrase"`

	// Salt is required in passphrase mode, hex encoded.
	Salt string `mapstructure:"salt"`

	// Affine substitution parameters.
	Multiplier int `mapstructure:"multiplier"`
	Addend     int `mapstructure:"addend"`

	// ParamsFile optionally overrides the affine parameters from a JSONC file.
	ParamsFile string `mapstructure:"params-file"`

	// Output naming.
	EncryptSuffix string `mapstructure:"encrypt-ext"`
	DecryptSuffix string `mapstructure:"decrypt-ext"`

	// Processing options.
	Parallel           int  `validate:"min=1"`
	Quiet              bool
	Delete             bool
	Stats              bool
	Dry                bool
	Strict             bool
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	// Include/exclude filtering.
	Include     []string `mapstructure:"include"`
	Exclude     []string `mapstructure:"exclude"`
	IncludeFrom string   `mapstructure:"include-from"`
	ExcludeFrom string   `mapstructure:"exclude-from"`

	// Keep is how long preview output stays on disk before eviction.
	Keep time.Duration `mapstructure:"keep"`

	// Command-specific state.
	Decrypt bool

	// Positional arguments.
	Files []string `validate:"min=1"`
}

// Validate validates the configuration against the struct tags plus the
// cross-field rules the tags cannot express.
func (c Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	if c.Multiplier%2 == 0 {
		return fmt.Errorf("affine multiplier %d must be odd (coprime with 256)", c.Multiplier)
	}

	if err := c.validateKeySource(); err != nil {
		return err
	}

	return nil
}

// validateKeySource ensures exactly one key source is configured and that hex
// encoded values parse.
func (c Config) validateKeySource() error {
	sources := 0
	for _, s := range []string{c.Key, c.KeyFile, c.Passphrase} {
		if s != "" {
			sources++
		}
	}

	switch {
	case sources == 0:
		return errors.New("a key is required: provide --key, --key-file or --passphrase")
	case sources > 1:
		return errors.New("--key, --key-file and --passphrase are mutually exclusive")
	}

	if c.Key != "" {
		if _, err := hex.DecodeString(c.Key); err != nil {
			return fmt.Errorf("invalid key format: %w", err)
		}
	}

	if c.Passphrase != "" {
		if c.Salt == "" {
			return errors.New("passphrase mode requires --salt (see docseal keygen salt)")
		}

		if _, err := hex.DecodeString(c.Salt); err != nil {
			return fmt.Errorf("invalid salt format: %w", err)
		}
	}

	return nil
}
