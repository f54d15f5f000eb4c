package zki

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldElementToBig(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want int64
	}{
		{"empty", nil, 0},
		{"single byte", []byte{25}, 25},
		{"little endian", []byte{0x01, 0x01}, 257},
		{"trailing zero padding is insignificant", []byte{25, 0, 0}, 25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FieldElementToBig(c.in)
			require.Equal(t, big.NewInt(c.want), got)
		})
	}
}

func TestBigToFieldElement_RoundTrip(t *testing.T) {
	v := big.NewInt(1025)
	encoded := BigToFieldElement(v, 0)
	require.Equal(t, v, FieldElementToBig(encoded))

	padded := BigToFieldElement(v, 4)
	require.Len(t, padded, 4)
	require.Equal(t, v, FieldElementToBig(padded))
}

func TestModulus(t *testing.T) {
	// field_maximum 100 implies modulus 101.
	require.Equal(t, big.NewInt(101), Modulus([]byte{100}))
}
