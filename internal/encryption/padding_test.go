package encryption

import (
	"bytes"
	"crypto/aes"
	"errors"
	"testing"
)

func TestPKCS7RoundTrip(t *testing.T) {
	t.Parallel()

	for size := 0; size <= 2*aes.BlockSize+1; size++ {
		data := bytes.Repeat([]byte{0xAB}, size)

		padded := pkcs7Pad(data, aes.BlockSize)

		if len(padded)%aes.BlockSize != 0 {
			t.Fatalf("padded length %d is not block aligned", len(padded))
		}

		if len(padded) == len(data) {
			t.Fatalf("aligned input of %d bytes must still gain a padding block", size)
		}

		unpadded, err := pkcs7Unpad(padded)
		if err != nil {
			t.Fatalf("unpad of %d bytes: %v", size, err)
		}

		if !bytes.Equal(unpadded, data) {
			t.Fatalf("round trip failed for %d bytes", size)
		}
	}
}

func TestPKCS7UnpadRejectsMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrEmptyData},
		{"zero padding byte", append(bytes.Repeat([]byte{1}, 15), 0), ErrInvalidPadding},
		{"padding larger than block", append(bytes.Repeat([]byte{1}, 15), 17), ErrInvalidPadding},
		{"padding larger than data", []byte{9}, ErrInvalidPadding},
		{"inconsistent fill", append(bytes.Repeat([]byte{3}, 14), 2, 3), ErrInvalidPadding},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if _, err := pkcs7Unpad(tc.data); !errors.Is(err, tc.want) {
				t.Errorf("pkcs7Unpad(%v) error = %v, want %v", tc.data, err, tc.want)
			}
		})
	}
}
