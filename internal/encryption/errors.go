package encryption

import "errors"

var (
	// ErrInvalidParameters is returned at construction time when the affine
	// multiplier has no modular inverse, or when strict mode rejects key
	// material of the wrong length.
	ErrInvalidParameters = errors.New("invalid cipher parameters")
	// ErrInvalidInput is returned when a caller hands the pipeline input it
	// cannot operate on, such as a nil plaintext buffer or a missing IV.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEncryption wraps failures in the block cipher encryption stage.
	ErrEncryption = errors.New("encryption failed")
	// ErrDecryption wraps failures in the block cipher decryption stage.
	// Tampered or mismatched-key ciphertext typically surfaces here as a
	// padding or block alignment error.
	ErrDecryption = errors.New("decryption failed")
	// ErrIntegrity is returned when the recovered plaintext does not match the
	// checksum recorded at encryption time.
	ErrIntegrity = errors.New("integrity check failed")
	// ErrMalformedContainer is returned for containers too short to carry an IV.
	ErrMalformedContainer = errors.New("malformed container")

	// ErrEmptyData is returned when attempting to unpad empty data.
	ErrEmptyData = errors.New("empty data")
	// ErrInvalidPadding is returned when PKCS#7 padding is malformed.
	ErrInvalidPadding = errors.New("invalid padding")
	// ErrInvalidBlockSize is returned when ciphertext length is not aligned
	// with the AES block size.
	ErrInvalidBlockSize = errors.New("ciphertext is not a multiple of block size")
)
