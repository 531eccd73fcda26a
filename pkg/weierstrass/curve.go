// Package weierstrass implements short Weierstrass elliptic curves
//
//	y^2 = x^3 + a*x + b (mod m)
//
// over residues of any type satisfying residue.Uint, with the affine group
// law. Every product, power and literal is computed with package modarith;
// the residue type only has to provide addition, subtraction, inversion and
// bit inspection.
//
// The modulus is expected to be an odd prime greater than 3; that is not
// checked. A Curve is immutable and may be shared between goroutines.
package weierstrass

import (
	"fmt"

	"github.com/smallyu/go-weierstrass/internal/crypto/polynomial"
	"github.com/smallyu/go-weierstrass/pkg/modarith"
	"github.com/smallyu/go-weierstrass/pkg/residue"
)

// Curve is a non-singular curve y^2 = x^3 + a*x + b (mod m) together with its
// j-invariant.
type Curve[T residue.Uint[T]] struct {
	modulus T
	a, b    T
	j       T

	// small literals reduced mod modulus
	two, three T

	// x^3 + a*x + b
	rhs *polynomial.Polynomial[T]
}

// FromCoeffs returns the curve y^2 = x^3 + a*x + b over m. It fails with
// ErrUndefinedCurve when the discriminant 4a^3 + 27b^2 vanishes mod m.
func FromCoeffs[T residue.Uint[T]](m, a, b T) (*Curve[T], error) {
	d := discriminant(m, a, b)
	if d.IsZero() {
		return nil, undefinedCurve("discriminant 4a^3 + 27b^2 is zero")
	}
	return newCurve(m, a, b, jInvariant(m, a, d)), nil
}

// FromInvariant returns a curve over m whose j-invariant is j. It fails with
// ErrUndefinedCurve for j = 0 and j = 1728, which the construction used here
// cannot reach.
//
// With k = j/(1728 - j) the result is y^2 = x^3 + 3k*x + 2k. This is one
// representative of the j-invariant's isomorphism class, not a canonical
// choice; twists with the same j are equally valid.
func FromInvariant[T residue.Uint[T]](m, j T) (*Curve[T], error) {
	c1728 := modarith.Small(1728, m)
	if j.IsZero() || j == c1728 {
		return nil, undefinedCurve(fmt.Sprintf("j-invariant %v has no general representative", j))
	}

	k := modarith.MulMod(j, modarith.Inverse(c1728.SubMod(j, m), m), m)
	a := modarith.MulMod(modarith.Small(3, m), k, m)
	b := modarith.MulMod(modarith.Small(2, m), k, m)
	return newCurve(m, a, b, j), nil
}

func newCurve[T residue.Uint[T]](m, a, b, j T) *Curve[T] {
	var zero T
	return &Curve[T]{
		modulus: m,
		a:       a,
		b:       b,
		j:       j,
		two:     modarith.Small(2, m),
		three:   modarith.Small(3, m),
		rhs:     polynomial.New(m, b, a, zero, modarith.Small(1, m)),
	}
}

// discriminant returns 4a^3 + 27b^2 mod m.
func discriminant[T residue.Uint[T]](m, a, b T) T {
	var zero T
	a3 := modarith.PowMod(a, zero.FromUint64(3), m)
	b2 := modarith.PowMod(b, zero.FromUint64(2), m)
	return modarith.MulMod(modarith.Small(4, m), a3, m).
		AddMod(modarith.MulMod(modarith.Small(27, m), b2, m), m)
}

// jInvariant returns 1728 * 4a^3 / d mod m for a non-zero discriminant d.
func jInvariant[T residue.Uint[T]](m, a, d T) T {
	var zero T
	fourA3 := modarith.MulMod(modarith.Small(4, m), modarith.PowMod(a, zero.FromUint64(3), m), m)
	return modarith.MulMod(
		modarith.MulMod(modarith.Small(1728, m), fourA3, m),
		modarith.Inverse(d, m),
		m,
	)
}

// Modulus returns the field modulus.
func (c *Curve[T]) Modulus() T { return c.modulus }

// A returns the coefficient of x.
func (c *Curve[T]) A() T { return c.a }

// B returns the constant coefficient.
func (c *Curve[T]) B() T { return c.b }

// JInvariant returns the j-invariant fixed at construction.
func (c *Curve[T]) JInvariant() T { return c.j }

// Discriminant returns 4a^3 + 27b^2 mod m, which is never zero.
func (c *Curve[T]) Discriminant() T {
	return discriminant(c.modulus, c.a, c.b)
}

// ContainsPoint reports whether p satisfies the curve equation. The identity
// lies on every curve.
func (c *Curve[T]) ContainsPoint(p Point[T]) bool {
	x, y, ok := p.Coords()
	if !ok {
		return true
	}
	return modarith.MulMod(y, y, c.modulus) == c.rhs.Evaluate(x)
}

// AddPoints returns lhs + rhs under the curve's group law. Both points are
// assumed to lie on c; this is not checked.
func (c *Curve[T]) AddPoints(lhs, rhs Point[T]) Point[T] {
	switch {
	case lhs.identity:
		return rhs
	case rhs.identity:
		return lhs
	default:
		return c.addAffine(lhs, rhs)
	}
}

// Negate returns -p.
func (c *Curve[T]) Negate(p Point[T]) Point[T] {
	if p.identity {
		return p
	}
	var zero T
	return Affine(p.x, zero.SubMod(p.y, c.modulus))
}

func (c *Curve[T]) addAffine(lhs, rhs Point[T]) Point[T] {
	m := c.modulus
	var zero, lambda T

	if lhs.x == rhs.x {
		// Inverse points, including the doubling of a point with y = 0.
		if lhs.y == zero.SubMod(rhs.y, m) {
			return Identity[T]()
		}
		// Tangent: (3x^2 + a) / 2y
		num := modarith.MulMod(c.three, modarith.MulMod(lhs.x, lhs.x, m), m).AddMod(c.a, m)
		den := modarith.MulMod(c.two, lhs.y, m)
		lambda = modarith.MulMod(num, modarith.Inverse(den, m), m)
	} else {
		// Chord: (y2 - y1) / (x2 - x1)
		num := rhs.y.SubMod(lhs.y, m)
		den := rhs.x.SubMod(lhs.x, m)
		lambda = modarith.MulMod(num, modarith.Inverse(den, m), m)
	}

	x3 := modarith.MulMod(lambda, lambda, m).SubMod(lhs.x, m).SubMod(rhs.x, m)
	y3 := modarith.MulMod(lambda, lhs.x.SubMod(x3, m), m).SubMod(lhs.y, m)
	return Affine(x3, y3)
}

func (c *Curve[T]) String() string {
	return fmt.Sprintf("y^2 = x^3 + %v*x + %v (mod %v)", c.a, c.b, c.modulus)
}
