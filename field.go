package zki

import "math/big"

// leToBig interprets buf as a canonical little-endian field element and
// returns the corresponding non-negative integer. An empty buf yields zero.
func leToBig(buf []byte) *big.Int {
	rev := make([]byte, len(buf))
	for i, b := range buf {
		rev[len(buf)-1-i] = b
	}
	return new(big.Int).SetBytes(rev)
}

// bigToLE encodes a non-negative integer as canonical little-endian bytes,
// trimmed to size bytes. When size is 0 the natural minimal-length
// encoding is used. Trailing zero bytes beyond the integer's significant
// bytes are appended to reach size.
func bigToLE(v *big.Int, size int) []byte {
	be := v.Bytes() // big-endian, no leading zeros
	n := len(be)
	if size == 0 {
		size = n
	}
	out := make([]byte, size)
	for i := 0; i < n && i < size; i++ {
		out[i] = be[n-1-i]
	}
	return out
}

// FieldElementToBig converts a canonical little-endian field element to a
// big.Int. Trailing zero bytes are insignificant, so a shorter-than-stride
// value decodes as if zero-padded; this function never looks at stride.
func FieldElementToBig(buf []byte) *big.Int {
	return leToBig(buf)
}

// BigToFieldElement renders v as a little-endian field element, occupying
// exactly size bytes (0 meaning "as few as needed").
func BigToFieldElement(v *big.Int, size int) []byte {
	return bigToLE(v, size)
}

// Modulus returns the prime p implied by a header's field_maximum: p =
// field_maximum + 1.
func Modulus(fieldMaximum []byte) *big.Int {
	max := leToBig(fieldMaximum)
	return new(big.Int).Add(max, big.NewInt(1))
}
