package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// KeySize is the block stage key size in bytes. AES-128 serves as the 128-bit
// block cipher; the tag recorded in artifact metadata names it explicitly so
// old containers stay decodable.
const KeySize = 16

// Block encrypts and decrypts byte buffers with AES-128 in CBC mode using
// PKCS#7 padding. The zero value is not usable; construct with NewBlock or
// NewBlockStrict.
type Block struct {
	cipher cipher.Block
}

// NewBlock creates the block stage from key material of any length.
// The key is normalized to exactly 16 bytes: longer keys are truncated and
// shorter keys are zero-padded. Normalization weakens short keys, so callers
// with exact key material should prefer NewBlockStrict, and passphrases
// belong in KeyFromPassphrase.
func NewBlock(key []byte) (*Block, error) {
	return newBlock(normalize(key, KeySize))
}

// NewBlockStrict creates the block stage from a key that must already be
// exactly 16 bytes.
func NewBlockStrict(key []byte) (*Block, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d",
			ErrInvalidParameters, KeySize, len(key))
	}

	return newBlock(key)
}

func newBlock(key []byte) (*Block, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: creating cipher: %w", ErrInvalidParameters, err)
	}

	return &Block{cipher: block}, nil
}

// GenerateIV produces a fresh random 16-byte initialization vector.
func GenerateIV() ([]byte, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("generating IV: %w", err)
	}

	return iv, nil
}

// Encrypt runs CBC encryption with PKCS#7 padding. A nil iv generates a fresh
// random one; a supplied iv is normalized to 16 bytes. The IV actually used
// is returned alongside the ciphertext.
func (b *Block) Encrypt(data, iv []byte) (ciphertext, usedIV []byte, err error) {
	if iv == nil {
		iv, err = GenerateIV()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrEncryption, err)
		}
	} else {
		iv = normalize(iv, aes.BlockSize)
	}

	padded := pkcs7Pad(data, aes.BlockSize)
	ciphertext = make([]byte, len(padded))
	cipher.NewCBCEncrypter(b.cipher, iv).CryptBlocks(ciphertext, padded)

	return ciphertext, iv, nil
}

// Decrypt runs CBC decryption and removes PKCS#7 padding. The iv is
// normalized to 16 bytes. Length misalignment and invalid padding both wrap
// ErrDecryption; with a wrong key or IV this is the expected failure mode.
func (b *Block) Decrypt(ciphertext, iv []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %w (%d bytes)", ErrDecryption, ErrInvalidBlockSize, len(ciphertext))
	}

	iv = normalize(iv, aes.BlockSize)

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(b.cipher, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: removing padding: %w", ErrDecryption, err)
	}

	return unpadded, nil
}

// normalize reshapes material to exactly size bytes by zero-padding or
// truncation.
func normalize(material []byte, size int) []byte {
	out := make([]byte, size)
	copy(out, material)

	return out
}
