package polynomial

import (
	"github.com/smallyu/go-weierstrass/pkg/modarith"
	"github.com/smallyu/go-weierstrass/pkg/residue"
)

// Polynomial represents a polynomial f(x) = a_0 + a_1*x + ... + a_t*x^t
// with residue coefficients modulo Modulus.
type Polynomial[T residue.Uint[T]] struct {
	Coefficients []T
	Modulus      T
}

// New returns the polynomial with the given coefficients, constant term
// first. The coefficients must already be reduced modulo m.
func New[T residue.Uint[T]](m T, coeffs ...T) *Polynomial[T] {
	c := make([]T, len(coeffs))
	copy(c, coeffs)
	return &Polynomial[T]{
		Coefficients: c,
		Modulus:      m,
	}
}

// Degree returns the index of the highest stored coefficient, or -1 for the
// empty polynomial.
func (p *Polynomial[T]) Degree() int {
	return len(p.Coefficients) - 1
}

// Evaluate calculates f(x) mod m
func (p *Polynomial[T]) Evaluate(x T) T {
	// Horner's method
	// result = a_t
	// for i = t-1 down to 0:
	//   result = result * x + a_i
	var result T
	degree := p.Degree()
	if degree < 0 {
		return result
	}

	result = p.Coefficients[degree]
	for i := degree - 1; i >= 0; i-- {
		result = modarith.MulMod(result, x, p.Modulus)
		result = result.AddMod(p.Coefficients[i], p.Modulus)
	}

	return result
}

// EvaluateMulti calculates f(x) for multiple x values
func (p *Polynomial[T]) EvaluateMulti(xs []T) []T {
	results := make([]T, len(xs))
	for i, x := range xs {
		results[i] = p.Evaluate(x)
	}
	return results
}
