package weierstrass

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-weierstrass/pkg/modarith"
	"github.com/smallyu/go-weierstrass/pkg/residue"
)

type u64 = residue.U64

// The textbook curve y^2 = x^3 + 2x + 3 over F_97, where (3, 6) generates a
// subgroup of order 5.
func testCurve97(t *testing.T) *Curve[u64] {
	t.Helper()
	c, err := FromCoeffs[u64](97, 2, 3)
	require.NoError(t, err)
	return c
}

// allPoints enumerates the affine points of c by brute force.
func allPoints(c *Curve[u64]) []Point[u64] {
	var pts []Point[u64]
	for x := u64(0); x < c.Modulus(); x++ {
		for y := u64(0); y < c.Modulus(); y++ {
			if p := Affine(x, y); c.ContainsPoint(p) {
				pts = append(pts, p)
			}
		}
	}
	return pts
}

func TestFromCoeffs(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c := testCurve97(t)
		assert.Equal(t, u64(97), c.Modulus())
		assert.Equal(t, u64(2), c.A())
		assert.Equal(t, u64(3), c.B())
		// 4*8 + 27*9 = 275 = 81 mod 97
		assert.Equal(t, u64(81), c.Discriminant())
		// 1728 * 32 / 81 mod 97
		want := (1728 * 32 % 97) * uint64(modarith.Inverse[u64](81, 97)) % 97
		assert.Equal(t, u64(want), c.JInvariant())
		assert.Equal(t, "y^2 = x^3 + 2*x + 3 (mod 97)", c.String())
	})

	t.Run("a = 0 has j = 0", func(t *testing.T) {
		c, err := FromCoeffs[u64](97, 0, 7)
		require.NoError(t, err)
		assert.Equal(t, u64(0), c.JInvariant())
	})

	t.Run("singular", func(t *testing.T) {
		// x^3 - 3x + 2 = (x - 1)^2 (x + 2)
		c, err := FromCoeffs[u64](97, 94, 2)
		assert.Nil(t, c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUndefinedCurve))

		var ce *CurveError
		require.True(t, errors.As(err, &ce))
		assert.Contains(t, ce.Reason, "discriminant")

		_, err = FromCoeffs[u64](97, 0, 0)
		assert.ErrorIs(t, err, ErrUndefinedCurve)
	})

	t.Run("fails iff discriminant vanishes", func(t *testing.T) {
		const p = 13
		for a := uint64(0); a < p; a++ {
			for b := uint64(0); b < p; b++ {
				d := (4*a*a*a + 27*b*b) % p
				_, err := FromCoeffs[u64](p, u64(a), u64(b))
				if d == 0 {
					assert.ErrorIs(t, err, ErrUndefinedCurve, "a=%d b=%d", a, b)
				} else {
					assert.NoError(t, err, "a=%d b=%d", a, b)
				}
			}
		}
	})
}

func TestFromInvariant(t *testing.T) {
	t.Run("rejects 0 and 1728", func(t *testing.T) {
		_, err := FromInvariant[u64](1009, 0)
		assert.ErrorIs(t, err, ErrUndefinedCurve)

		// 1728 = 719 mod 1009
		_, err = FromInvariant[u64](1009, 719)
		assert.ErrorIs(t, err, ErrUndefinedCurve)

		p := residue.MustU256("0x8000000000000000000000000000000000000000000000000000000000000431")
		_, err = FromInvariant(p, residue.U256{}.FromUint64(1728))
		assert.ErrorIs(t, err, ErrUndefinedCurve)
	})

	t.Run("round trip through coefficients", func(t *testing.T) {
		const p = 1009
		for j := u64(1); j < p; j++ {
			if j == 719 {
				continue
			}
			c, err := FromInvariant[u64](p, j)
			require.NoError(t, err, "j=%d", j)
			assert.Equal(t, j, c.JInvariant())

			// The coefficients must describe a curve with the same invariant.
			again, err := FromCoeffs[u64](p, c.A(), c.B())
			require.NoError(t, err, "j=%d", j)
			if again.JInvariant() != j {
				t.Fatalf("j=%d: coefficients (%d, %d) give j=%d", j, c.A(), c.B(), again.JInvariant())
			}
		}
	})

	t.Run("256-bit", func(t *testing.T) {
		p := residue.MustU256("0x8000000000000000000000000000000000000000000000000000000000000431")
		j := residue.MustU256("0x1234567890abcdef")
		c, err := FromInvariant(p, j)
		require.NoError(t, err)

		again, err := FromCoeffs(p, c.A(), c.B())
		require.NoError(t, err)
		assert.Equal(t, j, again.JInvariant())
	})
}

func TestContainsPoint(t *testing.T) {
	c := testCurve97(t)
	assert.True(t, c.ContainsPoint(Affine[u64](3, 6)))
	assert.True(t, c.ContainsPoint(Affine[u64](3, 91)))
	assert.True(t, c.ContainsPoint(Affine[u64](80, 10)))
	assert.False(t, c.ContainsPoint(Affine[u64](3, 7)))
	assert.False(t, c.ContainsPoint(Affine[u64](0, 0)))
	assert.True(t, c.ContainsPoint(Identity[u64]()))
}

func TestAddPoints(t *testing.T) {
	c := testCurve97(t)
	o := Identity[u64]()
	p := Affine[u64](3, 6)

	t.Run("subgroup of order 5", func(t *testing.T) {
		multiples := []Point[u64]{o, p}
		for i := 2; i <= 5; i++ {
			multiples = append(multiples, c.AddPoints(multiples[i-1], p))
		}
		assert.Equal(t, Affine[u64](80, 10), multiples[2])
		assert.Equal(t, Affine[u64](80, 87), multiples[3])
		assert.Equal(t, Affine[u64](3, 91), multiples[4])
		assert.Equal(t, o, multiples[5])

		assert.Equal(t, Affine[u64](80, 10), c.AddPoints(p, p), "doubling")
	})

	t.Run("identity laws", func(t *testing.T) {
		assert.Equal(t, p, c.AddPoints(o, p))
		assert.Equal(t, p, c.AddPoints(p, o))
		assert.Equal(t, o, c.AddPoints(o, o))
	})

	t.Run("inverse points", func(t *testing.T) {
		assert.Equal(t, o, c.AddPoints(p, Affine[u64](3, 91)))
		assert.Equal(t, Affine[u64](3, 91), c.Negate(p))
		assert.Equal(t, o, c.Negate(o))
	})
}

func TestGroupLawExhaustive(t *testing.T) {
	c := testCurve97(t)
	pts := append(allPoints(c), Identity[u64]())
	// Hasse: |#E - 98| <= 2*sqrt(97)
	require.InDelta(t, 98, len(pts), 20)

	for _, p := range pts {
		assert.Equal(t, Identity[u64](), c.AddPoints(p, c.Negate(p)), "P + (-P) for %v", p)
		for _, q := range pts {
			r := c.AddPoints(p, q)
			if !c.ContainsPoint(r) {
				t.Fatalf("%v + %v = %v is not on the curve", p, q, r)
			}
			if r != c.AddPoints(q, p) {
				t.Fatalf("%v + %v is not commutative", p, q)
			}
		}
	}

	// Associativity on a sample.
	for i := 0; i < len(pts); i += 7 {
		for j := 0; j < len(pts); j += 5 {
			for k := 0; k < len(pts); k += 11 {
				p, q, r := pts[i], pts[j], pts[k]
				lhs := c.AddPoints(c.AddPoints(p, q), r)
				rhs := c.AddPoints(p, c.AddPoints(q, r))
				if lhs != rhs {
					t.Fatalf("(%v + %v) + %v != %v + (%v + %v)", p, q, r, p, q, r)
				}
			}
		}
	}
}

func TestTwoTorsion(t *testing.T) {
	// y^2 = x^3 + x = x(x^2 + 1) has the 2-torsion point (0, 0).
	c, err := FromCoeffs[u64](103, 1, 0)
	require.NoError(t, err)
	p := Affine[u64](0, 0)
	require.True(t, c.ContainsPoint(p))
	assert.Equal(t, Identity[u64](), c.AddPoints(p, p))
}

// bigAdd is an independent affine addition over math/big.
func bigAdd(p, a, x1, y1, x2, y2 *big.Int) (x3, y3 *big.Int) {
	var lambda *big.Int
	if x1.Cmp(x2) == 0 {
		num := new(big.Int).Mul(x1, x1)
		num.Mul(num, big.NewInt(3))
		num.Add(num, a)
		den := new(big.Int).Lsh(y1, 1)
		lambda = num.Mul(num, den.ModInverse(den, p))
	} else {
		num := new(big.Int).Sub(y2, y1)
		den := new(big.Int).Sub(x2, x1)
		den.Mod(den, p)
		lambda = num.Mul(num, den.ModInverse(den, p))
	}
	lambda.Mod(lambda, p)

	x3 = new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, x1)
	x3.Sub(x3, x2)
	x3.Mod(x3, p)

	y3 = new(big.Int).Sub(x1, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, y1)
	y3.Mod(y3, p)
	return x3, y3
}

func TestAddPoints256(t *testing.T) {
	p := residue.MustU256("0x8000000000000000000000000000000000000000000000000000000000000431")
	a := residue.MustU256("0x2")
	x := residue.MustU256("0x1234567890abcdef1234567890abcdef")
	y := residue.MustU256("0xfedcba0987654321fedcba0987654321")

	// Pick b so that (x, y) lies on the curve: b = y^2 - x^3 - a*x.
	var zero residue.U256
	b := modarith.MulMod(y, y, p).
		SubMod(modarith.PowMod(x, zero.FromUint64(3), p), p).
		SubMod(modarith.MulMod(a, x, p), p)

	c, err := FromCoeffs(p, a, b)
	require.NoError(t, err)

	g := Affine(x, y)
	require.True(t, c.ContainsPoint(g))

	pb, ab := p.Big(), a.Big()
	acc := g
	for i := 0; i < 8; i++ {
		next := c.AddPoints(acc, g)
		require.True(t, c.ContainsPoint(next), "step %d", i)

		var wantX, wantY *big.Int
		ax, ay, _ := acc.Coords()
		if i == 0 {
			wantX, wantY = bigAdd(pb, ab, ax.Big(), ay.Big(), ax.Big(), ay.Big())
		} else {
			wantX, wantY = bigAdd(pb, ab, ax.Big(), ay.Big(), x.Big(), y.Big())
		}
		nx, ny, ok := next.Coords()
		require.True(t, ok)
		assert.Equal(t, 0, wantX.Cmp(nx.Big()), "x at step %d", i)
		assert.Equal(t, 0, wantY.Cmp(ny.Big()), "y at step %d", i)
		acc = next
	}

	assert.Equal(t, Identity[residue.U256](), c.AddPoints(g, c.Negate(g)))
}

func FuzzAddPoints(f *testing.F) {
	f.Add(uint64(2), uint64(3), uint64(6), uint64(80), uint64(10))
	f.Add(uint64(0), uint64(1), uint64(1), uint64(1), uint64(1))

	const p = 1009
	f.Fuzz(func(t *testing.T, a, x1, y1, x2, y2 uint64) {
		a, x1, y1, x2, y2 = a%p, x1%p, y1%p, x2%p, y2%p
		c := u64(p)

		// Put (x1, y1) on the curve through b, then search an x2 for which
		// the right-hand side is a square.
		var zero u64
		b := modarith.MulMod(u64(y1), u64(y1), c).
			SubMod(modarith.PowMod(u64(x1), zero.FromUint64(3), c), c).
			SubMod(modarith.MulMod(u64(a), u64(x1), c), c)
		curve, err := FromCoeffs(c, u64(a), b)
		if err != nil {
			return
		}

		var q Point[u64]
		found := false
		for i := uint64(0); i < p && !found; i++ {
			x := u64((x2 + i) % p)
			for y := u64(y2); ; y = (y + 1) % p {
				if curve.ContainsPoint(Affine(x, y)) {
					q, found = Affine(x, y), true
					break
				}
				if y == u64((y2+p-1)%p) {
					break
				}
			}
		}
		if !found {
			return
		}

		r := curve.AddPoints(Affine(u64(x1), u64(y1)), q)
		if !curve.ContainsPoint(r) {
			t.Fatalf("(%d, %d) + %v = %v is not on %v", x1, y1, q, r, curve)
		}
	})
}
