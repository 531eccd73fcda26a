package curves

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-weierstrass/pkg/residue"
)

// Secp256k1 returns the parameters of secp256k1 (y^2 = x^3 + 7), taken from
// the dcrd implementation.
func Secp256k1() *Params {
	params := secp256k1.S256().Params()
	return &Params{
		Name:    "secp256k1",
		Modulus: mustFromBig(params.P),
		A:       residue.U256{},
		B:       mustFromBig(params.B),
		Gx:      mustFromBig(params.Gx),
		Gy:      mustFromBig(params.Gy),
	}
}
