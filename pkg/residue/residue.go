// Package residue supplies the fixed-width unsigned integers that the
// arithmetic kernel works on, together with their primitive modular
// operations.
package residue

// Uint is implemented by fixed-width unsigned integer types that are used as
// residues modulo some odd modulus m.
//
// The zero value of T must represent 0. Methods taking a modulus expect their
// operands to already be reduced into [0, m).
type Uint[T any] interface {
	comparable

	// AddMod returns (x + y) mod m.
	AddMod(y, m T) T

	// SubMod returns (x - y) mod m.
	SubMod(y, m T) T

	// InvOddMod returns x^-1 mod m for odd m. The boolean is false when x
	// shares a factor with m (in particular when x is 0).
	InvOddMod(m T) (T, bool)

	// Shr returns x >> n.
	Shr(n uint) T

	// TrailingZeros returns the number of trailing zero bits of x. The result
	// for 0 is the bit width.
	TrailingZeros() uint

	// BitLen returns the minimum number of bits needed to represent x.
	BitLen() int

	IsZero() bool

	// FromUint64 returns v as a T. The receiver is ignored.
	FromUint64(v uint64) T
}
