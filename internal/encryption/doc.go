// Package encryption implements the two-stage document sealing cipher:
// an affine byte substitution composed with AES-128 in CBC mode.
// Sealed output is a standalone container of the form [16-byte IV][ciphertext],
// accompanied by a sidecar metadata record carrying a sha-256 checksum of the
// original plaintext for post-decryption integrity verification.
// All cipher types are stateless after construction and safe for concurrent use.
package encryption
