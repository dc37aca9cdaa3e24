package encryption_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/docseal/docseal/internal/encryption"
)

func TestOpenContainerSplitsIV(t *testing.T) {
	t.Parallel()

	pipeline := newTestPipeline(t)

	artifact, err := pipeline.Encrypt([]byte("framing round trip"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	container := artifact.Seal()

	if len(container) != len(artifact.IV)+len(artifact.Ciphertext) {
		t.Fatalf("container is %d bytes, want %d", len(container), len(artifact.IV)+len(artifact.Ciphertext))
	}

	iv, ciphertext, err := encryption.OpenContainer(container)
	if err != nil {
		t.Fatalf("OpenContainer error: %v", err)
	}

	if !bytes.Equal(iv, artifact.IV) {
		t.Errorf("IV %x, want %x", iv, artifact.IV)
	}

	if !bytes.Equal(ciphertext, artifact.Ciphertext) {
		t.Error("ciphertext does not match artifact")
	}
}

func TestOpenContainerRejectsTruncated(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, 1, 8, 15} {
		_, _, err := encryption.OpenContainer(make([]byte, size))

		if !errors.Is(err, encryption.ErrMalformedContainer) {
			t.Errorf("OpenContainer(%d bytes) error = %v, want ErrMalformedContainer", size, err)
		}
	}
}

func TestDecryptContainerTruncated(t *testing.T) {
	t.Parallel()

	pipeline := newTestPipeline(t)

	artifact, err := pipeline.Encrypt([]byte("will be truncated"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	container := artifact.Seal()

	if _, err := pipeline.DecryptContainer(container[:15], nil); !errors.Is(err, encryption.ErrMalformedContainer) {
		t.Errorf("truncated container error = %v, want ErrMalformedContainer", err)
	}

	// Exactly 16 bytes is a well-formed frame with nothing inside; the block
	// stage rejects the empty ciphertext.
	if _, err := pipeline.DecryptContainer(container[:16], nil); !errors.Is(err, encryption.ErrDecryption) {
		t.Errorf("empty ciphertext error = %v, want ErrDecryption", err)
	}
}
