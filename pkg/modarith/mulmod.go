// Package modarith builds modular multiplication and exponentiation out of
// the modular addition primitive of a residue type, so no double-width
// intermediate is ever needed.
//
// All moduli must be odd and non-zero, and all operands reduced.
package modarith

import (
	"math/bits"

	"github.com/smallyu/go-weierstrass/pkg/residue"
)

// MulMod returns a*b mod m.
//
// It walks the bits of b from the least significant end: at each step a is
// doubled, and the current a is accumulated when the bit is set. This is
// the unrolled form of
//
//	a*b = (2a)*(b>>1) + (b&1)*a
//
// and takes exactly b.BitLen() steps.
func MulMod[T residue.Uint[T]](a, b, m T) T {
	var acc T
	for !b.IsZero() {
		if b.TrailingZeros() == 0 {
			acc = acc.AddMod(a, m)
		}
		a = a.AddMod(a, m)
		b = b.Shr(1)
	}
	return acc
}

// Small returns v mod m using only modular addition. It is how the curve code
// obtains its literals (2, 3, 4, 27, 1728) for moduli that may be smaller
// than them.
func Small[T residue.Uint[T]](v uint64, m T) T {
	var zero, acc T
	one := zero.AddMod(zero.FromUint64(1), m) // 1 mod m
	for i := bits.Len64(v) - 1; i >= 0; i-- {
		acc = acc.AddMod(acc, m)
		if v>>uint(i)&1 == 1 {
			acc = acc.AddMod(one, m)
		}
	}
	return acc
}
