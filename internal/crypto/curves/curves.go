package curves

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/smallyu/go-weierstrass/pkg/residue"
	"github.com/smallyu/go-weierstrass/pkg/weierstrass"
)

// Params holds the parameters of a named short Weierstrass curve
// y^2 = x^3 + A*x + B over F_Modulus with base point (Gx, Gy).
type Params struct {
	Name    string
	Modulus residue.U256
	A, B    residue.U256
	Gx, Gy  residue.U256
}

// Curve builds the curve described by p.
func (p *Params) Curve() (*weierstrass.Curve[residue.U256], error) {
	c, err := weierstrass.FromCoeffs(p.Modulus, p.A, p.B)
	if err != nil {
		return nil, fmt.Errorf("curves: %s: %w", p.Name, err)
	}
	return c, nil
}

// Generator returns the base point.
func (p *Params) Generator() weierstrass.Point[residue.U256] {
	return weierstrass.Affine(p.Gx, p.Gy)
}

var registry = map[string]func() *Params{
	"secp256k1": Secp256k1,
	"p256":      P256,
	"wei25519":  Wei25519,
}

var aliases = map[string]string{
	"p-256":      "p256",
	"secp256r1":  "p256",
	"prime256v1": "p256",
	"curve25519": "wei25519",
}

// Lookup returns the parameters registered under name. Names are matched
// case-insensitively and common aliases are accepted.
func Lookup(name string) (*Params, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	ctor, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("curves: unknown curve %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return ctor(), nil
}

// Names returns the canonical names of all registered curves, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mustFromBig(b *big.Int) residue.U256 {
	x, err := residue.U256FromBig(b)
	if err != nil {
		panic(err)
	}
	return x
}
