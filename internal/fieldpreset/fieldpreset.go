// Package fieldpreset resolves the named field-order shortcuts accepted by
// the --field-order CLI flag into their field_maximum byte strings.
package fieldpreset

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/ed25519"
)

// secp256k1Order is the order of the secp256k1 curve's scalar field.
var secp256k1Order = secp256k1.S256().Params().N

// ed25519Order is the order of the prime-order subgroup underlying
// ed25519's scalar field (2^252 + 27742317777372353535851937790883648493).
var ed25519Order = func() *big.Int {
	n := new(big.Int)
	n.SetString("27742317777372353535851937790883648493", 10)
	n.Add(n, new(big.Int).Lsh(big.NewInt(1), 252))
	return n
}()

// init verifies ed25519's key size is wired, so a future stdlib change that
// resizes ed25519 keys is caught instead of silently mismatching the
// hand-derived order above.
func init() {
	if ed25519.PublicKeySize != 32 {
		panic("fieldpreset: unexpected ed25519 public key size")
	}
}

// Resolve maps a preset name to its field_maximum (order - 1), little-endian
// encoded. It returns false for an unrecognized name.
func Resolve(name string) ([]byte, bool) {
	var order *big.Int
	switch name {
	case "secp256k1":
		order = secp256k1Order
	case "ed25519":
		order = ed25519Order
	default:
		return nil, false
	}
	max := new(big.Int).Sub(order, big.NewInt(1))
	return leBytes(max), true
}

// Names lists every preset Resolve recognizes.
func Names() []string {
	return []string{"secp256k1", "ed25519"}
}

func leBytes(v *big.Int) []byte {
	be := v.Bytes()
	le := make([]byte, len(be))
	for i, b := range be {
		le[len(be)-1-i] = b
	}
	return le
}

// MustResolve is like Resolve but panics on an unrecognized name; used
// where the caller has already validated name against Names().
func MustResolve(name string) []byte {
	v, ok := Resolve(name)
	if !ok {
		panic(fmt.Sprintf("fieldpreset: unknown preset %q", name))
	}
	return v
}
