package modarith

import "github.com/smallyu/go-weierstrass/pkg/residue"

// PowMod returns a^e mod m by square-and-multiply over the bits of e, using
// MulMod for every product:
//
//	a^e = (a*a)^(e>>1) * a^(e&1)
//
// PowMod(a, 0, m) is 1 mod m.
func PowMod[T residue.Uint[T]](a, e, m T) T {
	var zero T
	acc := zero.AddMod(zero.FromUint64(1), m)
	for !e.IsZero() {
		if e.TrailingZeros() == 0 {
			acc = MulMod(acc, a, m)
		}
		a = MulMod(a, a, m)
		e = e.Shr(1)
	}
	return acc
}

// Inverse returns a^-1 mod m through the residue type's inverse primitive.
// The result is meaningless when a is not invertible; callers that cannot
// rule that out should use InvOddMod directly.
func Inverse[T residue.Uint[T]](a, m T) T {
	inv, _ := a.InvOddMod(m)
	return inv
}
