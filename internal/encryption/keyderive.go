package encryption

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

// SaltSize is the salt length for passphrase-derived keys.
const SaltSize = 16

const (
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// KeyFromPassphrase derives a 16-byte block stage key from a passphrase using
// scrypt. This is the explicit alternative to handing a passphrase straight
// to NewBlock, which would silently truncate or zero-pad it.
func KeyFromPassphrase(passphrase string, salt []byte) ([]byte, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("%w: empty passphrase", ErrInvalidInput)
	}

	if len(salt) == 0 {
		return nil, fmt.Errorf("%w: missing salt", ErrInvalidInput)
	}

	key, err := scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, KeySize)
	if err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}

	return key, nil
}

// GenerateSalt produces a fresh random salt for KeyFromPassphrase.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}

	return salt, nil
}
