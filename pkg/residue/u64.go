package residue

import (
	"math/bits"
	"strconv"
)

// U64 is a 64-bit residue.
type U64 uint64

func (x U64) AddMod(y, m U64) U64 {
	s, carry := bits.Add64(uint64(x), uint64(y), 0)
	if carry != 0 || s >= uint64(m) {
		s -= uint64(m)
	}
	return U64(s)
}

func (x U64) SubMod(y, m U64) U64 {
	d, borrow := bits.Sub64(uint64(x), uint64(y), 0)
	if borrow != 0 {
		d += uint64(m)
	}
	return U64(d)
}

// InvOddMod uses the binary extended Euclidean algorithm, which only needs
// halving and subtraction modulo an odd m.
func (x U64) InvOddMod(m U64) (U64, bool) {
	u, v := uint64(x), uint64(m)
	x1, x2 := U64(1), U64(0)
	for u != 0 {
		for u&1 == 0 {
			u >>= 1
			x1 = x1.halve(m)
		}
		for v&1 == 0 {
			v >>= 1
			x2 = x2.halve(m)
		}
		if u >= v {
			u -= v
			x1 = x1.SubMod(x2, m)
		} else {
			v -= u
			x2 = x2.SubMod(x1, m)
		}
	}
	if v != 1 {
		return 0, false
	}
	return x2, true
}

// halve returns x/2 mod m for odd m.
func (x U64) halve(m U64) U64 {
	if x&1 == 0 {
		return x >> 1
	}
	return x>>1 + m>>1 + 1
}

func (x U64) Shr(n uint) U64 {
	return x >> n
}

func (x U64) TrailingZeros() uint {
	return uint(bits.TrailingZeros64(uint64(x)))
}

func (x U64) BitLen() int {
	return bits.Len64(uint64(x))
}

func (x U64) IsZero() bool {
	return x == 0
}

func (U64) FromUint64(v uint64) U64 {
	return U64(v)
}

func (x U64) String() string {
	return strconv.FormatUint(uint64(x), 10)
}
