package curves

import (
	"filippo.io/edwards25519/field"
	"github.com/holiman/uint256"

	"github.com/smallyu/go-weierstrass/pkg/modarith"
	"github.com/smallyu/go-weierstrass/pkg/residue"
)

// Curve25519 in Montgomery form is v^2 = u^3 + 486662*u^2 + u over 2^255 - 19.
const montgomeryA = 486662

var p25519 = residue.MustU256("0x7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed")

// Wei25519 returns Curve25519 in short Weierstrass form. Substituting
// u = x - A/3 gives
//
//	y^2 = x^3 + (3 - A^2)/3 * x + (2A^3 - 9A)/27
//
// The base point maps from u = 9; its y coordinate is the square root of
// 9^3 + A*9^2 + 9 returned by the field package.
func Wei25519() *Params {
	p := p25519
	var zero residue.U256
	A := zero.FromUint64(montgomeryA)
	inv3 := modarith.Inverse(zero.FromUint64(3), p)
	inv27 := modarith.Inverse(zero.FromUint64(27), p)

	a2 := modarith.MulMod(A, A, p)
	a3 := modarith.MulMod(a2, A, p)
	a := modarith.MulMod(zero.FromUint64(3).SubMod(a2, p), inv3, p)
	b := modarith.MulMod(
		modarith.MulMod(zero.FromUint64(2), a3, p).SubMod(modarith.MulMod(zero.FromUint64(9), A, p), p),
		inv27,
		p,
	)

	u := zero.FromUint64(9)
	return &Params{
		Name:    "wei25519",
		Modulus: p,
		A:       a,
		B:       b,
		Gx:      FromMontgomeryU(u),
		Gy:      montgomeryV(u),
	}
}

// FromMontgomeryU maps a Curve25519 u-coordinate to its Wei25519 x-coordinate.
func FromMontgomeryU(u residue.U256) residue.U256 {
	return u.AddMod(shiftA(), p25519)
}

// ToMontgomeryU maps a Wei25519 x-coordinate to the Curve25519 u-coordinate.
func ToMontgomeryU(x residue.U256) residue.U256 {
	return x.SubMod(shiftA(), p25519)
}

// shiftA returns A/3 mod p.
func shiftA() residue.U256 {
	var zero residue.U256
	return modarith.MulMod(zero.FromUint64(montgomeryA), modarith.Inverse(zero.FromUint64(3), p25519), p25519)
}

// montgomeryV returns a square root of u^3 + A*u^2 + u. u must be the
// u-coordinate of a point on the curve, not its twist.
func montgomeryV(u residue.U256) residue.U256 {
	fu := toElement(u)
	u2 := new(field.Element).Square(fu)
	rhs := new(field.Element).Multiply(u2, fu)
	rhs.Add(rhs, new(field.Element).Mult32(u2, montgomeryA))
	rhs.Add(rhs, fu)

	v, wasSquare := new(field.Element).SqrtRatio(rhs, new(field.Element).One())
	if wasSquare != 1 {
		panic("curves: u is not on curve25519")
	}
	return fromElement(v)
}

func toElement(x residue.U256) *field.Element {
	u := uint256.Int(x)
	be := u.Bytes32()
	le := make([]byte, 32)
	for i := range be {
		le[31-i] = be[i]
	}
	e, err := new(field.Element).SetBytes(le)
	if err != nil {
		panic(err)
	}
	return e
}

func fromElement(e *field.Element) residue.U256 {
	le := e.Bytes()
	be := make([]byte, len(le))
	for i := range le {
		be[len(le)-1-i] = le[i]
	}
	return residue.U256(*new(uint256.Int).SetBytes(be))
}
