package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// params mirrors the JSONC parameters file layout.
type params struct {
	Multiplier int `json:"multiplier"`
	Addend     int `json:"addend"`
}

// LoadParams overrides the affine parameters from the configured JSONC file,
// if any. Comments and trailing commas are permitted.
func (c *Config) LoadParams() error {
	if c.ParamsFile == "" {
		return nil
	}

	data, err := os.ReadFile(c.ParamsFile) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return fmt.Errorf("reading parameters file %q: %w", c.ParamsFile, err)
	}

	clean := jsonc.ToJSONInPlace(data)

	var p params
	if err := json.Unmarshal(clean, &p); err != nil {
		return fmt.Errorf("parsing parameters file %q: %w", c.ParamsFile, err)
	}

	c.Multiplier = p.Multiplier
	c.Addend = p.Addend

	return nil
}
