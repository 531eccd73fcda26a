package curves

import (
	"crypto/elliptic"
	"math/big"
)

// P256 returns the parameters of NIST P-256, whose x coefficient is -3.
func P256() *Params {
	params := elliptic.P256().Params()
	a := new(big.Int).Sub(params.P, big.NewInt(3))
	return &Params{
		Name:    "p256",
		Modulus: mustFromBig(params.P),
		A:       mustFromBig(a),
		B:       mustFromBig(params.B),
		Gx:      mustFromBig(params.Gx),
		Gy:      mustFromBig(params.Gy),
	}
}
