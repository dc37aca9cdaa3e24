package encryption_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/docseal/docseal/internal/encryption"
)

var testKey = []byte("0123456789abcdef")

func TestBlockRoundTrip(t *testing.T) {
	t.Parallel()

	block, err := encryption.NewBlockStrict(testKey)
	if err != nil {
		t.Fatalf("NewBlockStrict error: %v", err)
	}

	for _, size := range []int{0, 1, 15, 16, 17, 4096} {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i)
		}

		ciphertext, iv, err := block.Encrypt(data, nil)
		if err != nil {
			t.Fatalf("Encrypt(%d bytes) error: %v", size, err)
		}

		if len(iv) != 16 {
			t.Fatalf("generated IV is %d bytes, want 16", len(iv))
		}

		if len(ciphertext)%16 != 0 || len(ciphertext) <= size-16 {
			t.Fatalf("ciphertext of %d bytes for %d byte input", len(ciphertext), size)
		}

		plaintext, err := block.Decrypt(ciphertext, iv)
		if err != nil {
			t.Fatalf("Decrypt(%d bytes) error: %v", size, err)
		}

		if !bytes.Equal(plaintext, data) {
			t.Fatalf("round trip failed for %d bytes", size)
		}
	}
}

func TestBlockSuppliedIVNormalized(t *testing.T) {
	t.Parallel()

	block, err := encryption.NewBlockStrict(testKey)
	if err != nil {
		t.Fatalf("NewBlockStrict error: %v", err)
	}

	data := []byte("normalization keeps round trips intact")
	shortIV := []byte{1, 2, 3, 4}
	paddedIV := append(append([]byte{}, shortIV...), make([]byte, 12)...)

	fromShort, usedIV, err := block.Encrypt(data, shortIV)
	if err != nil {
		t.Fatalf("Encrypt with short IV error: %v", err)
	}

	if !bytes.Equal(usedIV, paddedIV) {
		t.Errorf("short IV normalized to %x, want %x", usedIV, paddedIV)
	}

	fromPadded, _, err := block.Encrypt(data, paddedIV)
	if err != nil {
		t.Fatalf("Encrypt with padded IV error: %v", err)
	}

	if !bytes.Equal(fromShort, fromPadded) {
		t.Error("short IV and its zero-padded form must produce identical ciphertext")
	}

	plaintext, err := block.Decrypt(fromShort, shortIV)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}

	if !bytes.Equal(plaintext, data) {
		t.Error("round trip with normalized IV failed")
	}
}

func TestBlockKeyNormalized(t *testing.T) {
	t.Parallel()

	shortKey := []byte("abc")
	paddedKey := append(append([]byte{}, shortKey...), make([]byte, 13)...)
	longKey := append(append([]byte{}, testKey...), []byte("ignored-tail")...)

	fromShort, err := encryption.NewBlock(shortKey)
	if err != nil {
		t.Fatalf("NewBlock(short) error: %v", err)
	}

	fromPadded, err := encryption.NewBlock(paddedKey)
	if err != nil {
		t.Fatalf("NewBlock(padded) error: %v", err)
	}

	data := []byte("same key after normalization")
	iv := bytes.Repeat([]byte{7}, 16)

	a, _, err := fromShort.Encrypt(data, iv)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	b, _, err := fromPadded.Encrypt(data, iv)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if !bytes.Equal(a, b) {
		t.Error("zero-padded key must behave like its short form")
	}

	fromLong, err := encryption.NewBlock(longKey)
	if err != nil {
		t.Fatalf("NewBlock(long) error: %v", err)
	}

	fromExact, err := encryption.NewBlock(testKey)
	if err != nil {
		t.Fatalf("NewBlock(exact) error: %v", err)
	}

	c, _, err := fromLong.Encrypt(data, iv)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	d, _, err := fromExact.Encrypt(data, iv)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if !bytes.Equal(c, d) {
		t.Error("overlong key must be truncated to its first 16 bytes")
	}
}

func TestBlockStrictRejectsWrongLengths(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, 1, 15, 17, 32} {
		if _, err := encryption.NewBlockStrict(make([]byte, size)); !errors.Is(err, encryption.ErrInvalidParameters) {
			t.Errorf("NewBlockStrict(%d bytes) error = %v, want ErrInvalidParameters", size, err)
		}
	}

	if _, err := encryption.NewBlockStrict(testKey); err != nil {
		t.Errorf("NewBlockStrict(16 bytes) error = %v", err)
	}
}

func TestBlockDecryptRejectsMisalignment(t *testing.T) {
	t.Parallel()

	block, err := encryption.NewBlockStrict(testKey)
	if err != nil {
		t.Fatalf("NewBlockStrict error: %v", err)
	}

	iv := make([]byte, 16)

	for _, size := range []int{0, 1, 15, 17, 33} {
		_, err := block.Decrypt(make([]byte, size), iv)

		if !errors.Is(err, encryption.ErrDecryption) || !errors.Is(err, encryption.ErrInvalidBlockSize) {
			t.Errorf("Decrypt(%d bytes) error = %v, want ErrDecryption wrapping ErrInvalidBlockSize", size, err)
		}
	}
}

func TestGenerateIV(t *testing.T) {
	t.Parallel()

	first, err := encryption.GenerateIV()
	if err != nil {
		t.Fatalf("GenerateIV error: %v", err)
	}

	second, err := encryption.GenerateIV()
	if err != nil {
		t.Fatalf("GenerateIV error: %v", err)
	}

	if len(first) != 16 || len(second) != 16 {
		t.Fatalf("IV lengths %d and %d, want 16", len(first), len(second))
	}

	if bytes.Equal(first, second) {
		t.Error("two generated IVs are identical")
	}
}
