package encryption

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Parameters configures the two-stage pipeline.
type Parameters struct {
	// Multiplier and Addend select the affine substitution. The multiplier
	// must be odd (coprime with 256).
	Multiplier int
	Addend     int

	// Key is the block stage key material, normalized to 16 bytes unless
	// Strict is set.
	Key []byte

	// Strict rejects key material that is not exactly 16 bytes instead of
	// normalizing it.
	Strict bool
}

// Pipeline composes the affine substitution with the AES-128-CBC block stage.
// Encryption applies affine first and the block cipher second; decryption
// undoes them in reverse. Construction does all precomputation, after which
// the pipeline holds no mutable state and may be shared across goroutines.
type Pipeline struct {
	affine *Affine
	block  *Block
}

// NewPipeline validates the parameters and builds both stages.
func NewPipeline(params Parameters) (*Pipeline, error) {
	affine, err := NewAffine(params.Multiplier, params.Addend)
	if err != nil {
		return nil, err
	}

	var block *Block
	if params.Strict {
		block, err = NewBlockStrict(params.Key)
	} else {
		block, err = NewBlock(params.Key)
	}

	if err != nil {
		return nil, err
	}

	return &Pipeline{affine: affine, block: block}, nil
}

// Artifact is the immutable result of a single Encrypt call.
type Artifact struct {
	IV         []byte
	Ciphertext []byte
	Metadata   Metadata
}

// Seal serializes the artifact to the standalone container layout: the
// 16-byte IV followed by the ciphertext. A container alone is decryptable
// without the sidecar metadata, at the cost of the integrity check.
func (a *Artifact) Seal() []byte {
	out := make([]byte, 0, len(a.IV)+len(a.Ciphertext))
	out = append(out, a.IV...)

	return append(out, a.Ciphertext...)
}

// Encrypt runs the two stages in their fixed order and attaches metadata.
// The checksum is computed over the original plaintext before any transform.
// A nil plaintext is rejected; an empty one is sealed normally.
func (p *Pipeline) Encrypt(plaintext []byte) (*Artifact, error) {
	if plaintext == nil {
		return nil, fmt.Errorf("%w: plaintext buffer is nil", ErrInvalidInput)
	}

	digest := sha256.Sum256(plaintext)

	substituted := p.affine.Encrypt(plaintext)

	ciphertext, iv, err := p.block.Encrypt(substituted, nil)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		IV:         iv,
		Ciphertext: ciphertext,
		Metadata: Metadata{
			OriginalSize:  uint64(len(plaintext)),
			EncryptedSize: uint64(len(ciphertext)),
			IV:            hex.EncodeToString(iv),
			Checksum:      hex.EncodeToString(digest[:]),
			Algorithm:     AlgorithmTag,
			Timestamp:     time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

// Decrypt undoes the two stages in reverse order. When meta carries a
// checksum, the recovered plaintext is verified against it and ErrIntegrity
// is returned on mismatch; the garbage bytes are never handed back. Without
// metadata the integrity check is skipped.
func (p *Pipeline) Decrypt(ciphertext, iv []byte, meta *Metadata) ([]byte, error) {
	if len(iv) == 0 {
		return nil, fmt.Errorf("%w: missing IV", ErrInvalidInput)
	}

	substituted, err := p.block.Decrypt(ciphertext, iv)
	if err != nil {
		return nil, err
	}

	plaintext := p.affine.Decrypt(substituted)

	if meta != nil && meta.Checksum != "" {
		digest := sha256.Sum256(plaintext)
		if meta.Checksum != hex.EncodeToString(digest[:]) {
			return nil, fmt.Errorf("%w: checksum mismatch", ErrIntegrity)
		}
	}

	return plaintext, nil
}

// DecryptContainer decrypts a standalone [IV][ciphertext] container, slicing
// the IV off the front so no sidecar lookup is required.
func (p *Pipeline) DecryptContainer(container []byte, meta *Metadata) ([]byte, error) {
	iv, ciphertext, err := OpenContainer(container)
	if err != nil {
		return nil, err
	}

	return p.Decrypt(ciphertext, iv, meta)
}

// VerifyIntegrity reports whether two buffers are byte-identical, including
// length.
func VerifyIntegrity(a, b []byte) bool {
	return bytes.Equal(a, b)
}
