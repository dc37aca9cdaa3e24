package encryption

import "fmt"

// AffineModulus is the fixed modulus of the byte substitution stage.
const AffineModulus = 256

// Affine is a reversible per-byte substitution E(x) = (a*x + b) mod 256.
// Each byte is mapped independently, so the transform is length-preserving
// and stateless between bytes.
type Affine struct {
	multiplier int
	addend     int
	inverse    int

	enc [AffineModulus]byte
	dec [AffineModulus]byte
}

// NewAffine constructs the substitution for the given multiplier and addend.
// The multiplier must be coprime with 256 (that is, odd); otherwise no modular
// inverse exists, the mapping is not a bijection, and construction fails.
// Both lookup tables are precomputed here so the per-byte operations are
// simple array reads.
func NewAffine(multiplier, addend int) (*Affine, error) {
	a := mod(multiplier, AffineModulus)
	b := mod(addend, AffineModulus)

	inverse, ok := modInverse(a, AffineModulus)
	if !ok {
		return nil, fmt.Errorf("%w: multiplier %d is not coprime with %d",
			ErrInvalidParameters, multiplier, AffineModulus)
	}

	affine := &Affine{multiplier: a, addend: b, inverse: inverse}

	for x := 0; x < AffineModulus; x++ {
		affine.enc[x] = byte((a*x + b) % AffineModulus)
	}

	for y := 0; y < AffineModulus; y++ {
		// Offset by the modulus before reducing so the subtraction stays in
		// non-negative space.
		affine.dec[y] = byte(inverse * (y - b + AffineModulus) % AffineModulus)
	}

	return affine, nil
}

// EncryptByte maps a single byte through the forward substitution.
func (a *Affine) EncryptByte(x byte) byte { return a.enc[x] }

// DecryptByte maps a single byte through the inverse substitution.
func (a *Affine) DecryptByte(y byte) byte { return a.dec[y] }

// Encrypt substitutes every byte of data independently.
// Output length equals input length.
func (a *Affine) Encrypt(data []byte) []byte {
	out := make([]byte, len(data))
	for i, x := range data {
		out[i] = a.enc[x]
	}

	return out
}

// Decrypt reverses Encrypt byte for byte.
func (a *Affine) Decrypt(data []byte) []byte {
	out := make([]byte, len(data))
	for i, y := range data {
		out[i] = a.dec[y]
	}

	return out
}

// mod reduces x into [0, m); Go's remainder operator can return negative
// values for negative operands.
func mod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}

	return r
}

// modInverse computes the modular multiplicative inverse of a mod m via the
// extended Euclidean algorithm. ok is false when gcd(a, m) != 1.
func modInverse(a, m int) (inverse int, ok bool) {
	g, x, _ := extendedGCD(a, m)
	if g != 1 {
		return 0, false
	}

	return mod(x, m), true
}

// extendedGCD returns gcd(a, b) together with coefficients x, y satisfying
// a*x + b*y == gcd(a, b).
func extendedGCD(a, b int) (g, x, y int) {
	if b == 0 {
		return a, 1, 0
	}

	g, x1, y1 := extendedGCD(b, a%b)

	return g, y1, x1 - (a/b)*y1
}
