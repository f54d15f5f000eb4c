package fieldpreset

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zkinterface-go/zki"
)

func TestResolve_Known(t *testing.T) {
	for _, name := range Names() {
		max, ok := Resolve(name)
		require.True(t, ok)
		require.NotEmpty(t, max)
	}
}

func TestResolve_Unknown(t *testing.T) {
	_, ok := Resolve("bn254")
	require.False(t, ok)
}

func TestResolve_Secp256k1_ModulusMatchesCurveOrder(t *testing.T) {
	max, ok := Resolve("secp256k1")
	require.True(t, ok)
	modulus := zki.Modulus(max)
	require.Equal(t, secp256k1Order, modulus)
}

func TestResolve_Ed25519_ModulusMatchesSubgroupOrder(t *testing.T) {
	max, ok := Resolve("ed25519")
	require.True(t, ok)
	modulus := zki.Modulus(max)
	require.Equal(t, 0, ed25519Order.Cmp(modulus))
}

func TestMustResolve_PanicsOnUnknown(t *testing.T) {
	require.Panics(t, func() { MustResolve("nope") })
}

func TestLeBytes_RoundTrip(t *testing.T) {
	v := big.NewInt(1025)
	require.Equal(t, v, zki.FieldElementToBig(leBytes(v)))
}
