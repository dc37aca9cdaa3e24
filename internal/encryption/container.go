package encryption

import (
	"crypto/aes"
	"fmt"
)

// ContainerHeaderSize is the number of leading container bytes reserved for
// the IV.
const ContainerHeaderSize = aes.BlockSize

// OpenContainer splits a standalone [IV][ciphertext] container into its
// parts. Anything shorter than the 16-byte IV is rejected. The returned
// slices alias the input.
func OpenContainer(container []byte) (iv, ciphertext []byte, err error) {
	if len(container) < ContainerHeaderSize {
		return nil, nil, fmt.Errorf("%w: %d bytes is too short to contain an IV",
			ErrMalformedContainer, len(container))
	}

	return container[:ContainerHeaderSize], container[ContainerHeaderSize:], nil
}
