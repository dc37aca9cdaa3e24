package encryption

import (
	"encoding/json"
	"fmt"
)

// AlgorithmTag identifies the two-stage scheme and its fixed composition
// order: affine substitution first, AES-128-CBC second. Decryption must undo
// the stages in reverse, so any future variant with a different order or
// cipher needs a new tag rather than a changed pipeline.
const AlgorithmTag = "affine+aes128-cbc/v1"

// Metadata is the sidecar record stored next to a sealed container.
// The checksum is a sha-256 digest of the original plaintext; it is the only
// defense against wrong-key decryptions that happen to unpad cleanly.
type Metadata struct {
	OriginalSize  uint64 `json:"originalSize"`
	EncryptedSize uint64 `json:"encryptedSize"`
	IV            string `json:"iv"`
	Checksum      string `json:"checksum"`
	Algorithm     string `json:"algorithm"`
	Timestamp     string `json:"timestamp"`
}

// Encode renders the metadata as indented JSON for the sidecar file.
func (m Metadata) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding metadata: %w", err)
	}

	return append(data, '\n'), nil
}

// DecodeMetadata parses a sidecar metadata record.
func DecodeMetadata(data []byte) (*Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding metadata: %w", err)
	}

	return &m, nil
}
