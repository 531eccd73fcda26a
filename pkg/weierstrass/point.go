package weierstrass

import (
	"fmt"

	"github.com/smallyu/go-weierstrass/pkg/residue"
)

// Point is an element of a curve's group: either an affine pair (x, y) or the
// identity (the point at infinity). The identity carries no coordinates.
//
// A Point does not know which curve it belongs to; checking membership is
// up to the caller through Curve.ContainsPoint.
type Point[T residue.Uint[T]] struct {
	x, y     T
	identity bool
}

// Affine returns the affine point (x, y).
func Affine[T residue.Uint[T]](x, y T) Point[T] {
	return Point[T]{x: x, y: y}
}

// Identity returns the neutral element.
func Identity[T residue.Uint[T]]() Point[T] {
	return Point[T]{identity: true}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point[T]) IsIdentity() bool {
	return p.identity
}

// Coords returns the affine coordinates of p. ok is false for the identity.
func (p Point[T]) Coords() (x, y T, ok bool) {
	return p.x, p.y, !p.identity
}

func (p Point[T]) String() string {
	if p.identity {
		return "(identity)"
	}
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}
