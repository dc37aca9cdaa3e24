package logic

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docseal/docseal/internal/encryption"
)

// RunInspect prints the metadata record for each sealed container.
// When no sidecar exists, the facts derivable from the container itself are
// printed instead. Inspection needs no key material.
func RunInspect(files []string) error {
	for _, file := range files {
		if err := inspect(file); err != nil {
			return err
		}
	}

	return nil
}

func inspect(file string) error {
	meta, err := encryption.LoadSidecar(encryption.MetadataPath(file))
	if err != nil {
		return err
	}

	if meta != nil {
		encoded, err := meta.Encode()
		if err != nil {
			return err
		}

		fmt.Printf("%s:\n%s", file, encoded) //nolint:forbidigo

		return nil
	}

	container, err := os.ReadFile(filepath.Clean(file))
	if err != nil {
		return fmt.Errorf("reading container: %w", err)
	}

	iv, ciphertext, err := encryption.OpenContainer(container)
	if err != nil {
		return err
	}

	fmt.Printf("%s: no metadata sidecar; iv=%s encryptedSize=%d\n", //nolint:forbidigo
		file, hex.EncodeToString(iv), len(ciphertext))

	return nil
}
