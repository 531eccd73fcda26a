package residue

import (
	"fmt"
	"math/big"
	"math/bits"
	"strings"

	"github.com/holiman/uint256"
)

// U256 is a 256-bit residue backed by uint256.Int (four little-endian 64-bit
// limbs).
type U256 uint256.Int

func (x U256) AddMod(y, m U256) U256 {
	var z uint256.Int
	z.AddMod(x.ptr(), y.ptr(), m.ptr())
	return U256(z)
}

func (x U256) SubMod(y, m U256) U256 {
	var z uint256.Int
	z.Sub(x.ptr(), y.ptr())
	if x.ptr().Lt(y.ptr()) {
		z.Add(&z, m.ptr())
	}
	return U256(z)
}

// InvOddMod uses the binary extended Euclidean algorithm. The invariants are
// u = x*x1 and v = x*x2 (mod m); once u reaches 0, v holds gcd(x, m).
func (x U256) InvOddMod(m U256) (U256, bool) {
	u, v := *x.ptr(), *m.ptr()
	x1, x2 := U256{1}, U256{}
	for !u.IsZero() {
		for u[0]&1 == 0 {
			u.Rsh(&u, 1)
			x1 = x1.halve(m)
		}
		for v[0]&1 == 0 {
			v.Rsh(&v, 1)
			x2 = x2.halve(m)
		}
		if !u.Lt(&v) {
			u.Sub(&u, &v)
			x1 = x1.SubMod(x2, m)
		} else {
			v.Sub(&v, &u)
			x2 = x2.SubMod(x1, m)
		}
	}
	if !v.Eq(uint256.NewInt(1)) {
		return U256{}, false
	}
	return x2, true
}

// halve returns x/2 mod m for odd m and x < m; (x+m)/2 is formed without
// overflowing 256 bits.
func (x U256) halve(m U256) U256 {
	var z uint256.Int
	z.Rsh(x.ptr(), 1)
	if x[0]&1 == 1 {
		var h uint256.Int
		h.Rsh(m.ptr(), 1)
		z.Add(&z, &h)
		z.AddUint64(&z, 1)
	}
	return U256(z)
}

func (x U256) Shr(n uint) U256 {
	var z uint256.Int
	z.Rsh(x.ptr(), n)
	return U256(z)
}

func (x U256) TrailingZeros() uint {
	for i, limb := range x {
		if limb != 0 {
			return uint(i*64 + bits.TrailingZeros64(limb))
		}
	}
	return 256
}

func (x U256) BitLen() int {
	return x.ptr().BitLen()
}

func (x U256) IsZero() bool {
	return x.ptr().IsZero()
}

func (U256) FromUint64(v uint64) U256 {
	return U256{v}
}

// Big returns x as a new big.Int.
func (x U256) Big() *big.Int {
	return x.ptr().ToBig()
}

// Hex returns x as a 0x-prefixed hexadecimal string without leading zeros.
func (x U256) Hex() string {
	return x.ptr().Hex()
}

func (x U256) String() string {
	return x.Hex()
}

func (x *U256) ptr() *uint256.Int {
	return (*uint256.Int)(x)
}

// U256FromBig converts a non-negative big.Int of at most 256 bits.
func U256FromBig(b *big.Int) (U256, error) {
	if b.Sign() < 0 {
		return U256{}, fmt.Errorf("residue: negative value %s", b)
	}
	z, overflow := uint256.FromBig(b)
	if overflow {
		return U256{}, fmt.Errorf("residue: value %s exceeds 256 bits", b)
	}
	return U256(*z), nil
}

// ParseU256 parses a decimal or 0x-prefixed hexadecimal number. Leading
// zeros are accepted.
func ParseU256(s string) (U256, error) {
	s = strings.TrimSpace(s)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return U256{}, fmt.Errorf("residue: cannot parse %q", s)
	}
	return U256FromBig(b)
}

// MustU256 is like ParseU256 but panics on malformed input. It is intended for
// constants.
func MustU256(s string) U256 {
	x, err := ParseU256(s)
	if err != nil {
		panic(err)
	}
	return x
}
