package logic

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/docseal/docseal/internal/config"
	"github.com/docseal/docseal/internal/encryption"
	"github.com/docseal/docseal/internal/ephemeral"
)

const (
	minSweepInterval = 100 * time.Millisecond
	maxSweepInterval = 5 * time.Second
)

// RunPreview decrypts a single container into a temporary file registered in
// an ephemeral store, waits out the configured retention window, and lets the
// store's janitor remove the plaintext again.
func RunPreview(cfg *config.Config) error {
	proc, err := encryption.NewProcessor(cfg)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	file := cfg.Files[0]

	input, err := os.ReadFile(filepath.Clean(file))
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	meta, err := encryption.LoadSidecar(encryption.MetadataPath(file))
	if err != nil {
		return err
	}

	plaintext, err := proc.Pipeline().DecryptContainer(input, meta)
	if err != nil {
		return fmt.Errorf("decrypting file: %w", err)
	}

	path, err := writePreview(file, plaintext)
	if err != nil {
		return err
	}

	store := ephemeral.New(cfg.Keep)

	id, err := store.Put(path)
	if err != nil {
		os.Remove(path) //nolint:errcheck // best-effort cleanup

		return err
	}

	if !cfg.Quiet {
		fmt.Printf("Preview %s available at %q for %s\n", id, path, cfg.Keep) //nolint:forbidigo
	}

	// Keep sweeping slightly past the retention window so the final janitor
	// pass sees the entry as expired.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Keep+time.Second)
	defer cancel()

	store.Run(ctx, sweepInterval(cfg.Keep))

	return nil
}

// writePreview writes plaintext to a temporary file named after the input.
func writePreview(input string, plaintext []byte) (string, error) {
	base := filepath.Base(input)

	tmp, err := os.CreateTemp("", "docseal-preview-*-"+base)
	if err != nil {
		return "", fmt.Errorf("creating preview file: %w", err)
	}

	name := tmp.Name()

	if _, err := tmp.Write(plaintext); err != nil {
		tmp.Close()
		os.Remove(name) //nolint:errcheck // best-effort cleanup

		return "", fmt.Errorf("writing preview file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(name) //nolint:errcheck // best-effort cleanup

		return "", fmt.Errorf("closing preview file: %w", err)
	}

	return name, nil
}

// sweepInterval scales the janitor interval with the retention window.
func sweepInterval(keep time.Duration) time.Duration {
	interval := keep / 10

	if interval < minSweepInterval {
		return minSweepInterval
	}

	if interval > maxSweepInterval {
		return maxSweepInterval
	}

	return interval
}
