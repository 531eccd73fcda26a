//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/pkg/modarith"
	"github.com/smallyu/go-weierstrass/pkg/residue"
	"github.com/smallyu/go-weierstrass/pkg/weierstrass"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go Weierstrass WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoWeierstrass", map[string]interface{}{
		"MulMod":        js.FuncOf(MulMod),
		"PowMod":        js.FuncOf(PowMod),
		"CurveInfo":     js.FuncOf(CurveInfo),
		"ContainsPoint": js.FuncOf(ContainsPoint),
		"AddPoints":     js.FuncOf(AddPoints),
	})

	<-c
}

// CurveDTO selects a curve, either by name or by explicit parameters.
// Numbers are decimal or 0x-hex strings so JS never sees them as floats.
type CurveDTO struct {
	Name    string `json:"name"`
	Modulus string `json:"modulus"`
	A       string `json:"a"`
	B       string `json:"b"`
}

// PointDTO is an affine point, or the identity when Infinity is set.
type PointDTO struct {
	X        string `json:"x,omitempty"`
	Y        string `json:"y,omitempty"`
	Infinity bool   `json:"infinity,omitempty"`
}

// MulMod computes a*b mod m.
// Arguments:
// 0: a, 1: b, 2: m (decimal or 0x-hex strings)
// Returns:
// Hex string or "error: ..."
func MulMod(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (a, b, modulus)"
	}
	v, err := parseAll(args[0].String(), args[1].String(), args[2].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return modarith.MulMod(v[0], v[1], v[2]).Hex()
}

// PowMod computes a^e mod m.
// Arguments:
// 0: a, 1: e, 2: m
// Returns:
// Hex string or "error: ..."
func PowMod(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (a, e, modulus)"
	}
	v, err := parseAll(args[0].String(), args[1].String(), args[2].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return modarith.PowMod(v[0], v[1], v[2]).Hex()
}

// CurveInfo describes a curve.
// Arguments:
// 0: JSON CurveDTO
// Returns:
// JSON object {equation, discriminant, jInvariant} or "error: ..."
func CurveInfo(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonCurve)"
	}
	c, err := decodeCurve(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	resp := map[string]interface{}{
		"equation":     c.String(),
		"discriminant": c.Discriminant().Hex(),
		"jInvariant":   c.JInvariant().Hex(),
	}
	respBytes, _ := json.Marshal(resp)
	return string(respBytes)
}

// ContainsPoint tests curve membership.
// Arguments:
// 0: JSON CurveDTO
// 1: JSON PointDTO
// Returns:
// bool or "error: ..."
func ContainsPoint(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (jsonCurve, jsonPoint)"
	}
	c, err := decodeCurve(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	p, err := decodePoint(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return c.ContainsPoint(p)
}

// AddPoints adds two points.
// Arguments:
// 0: JSON CurveDTO
// 1, 2: JSON PointDTO
// Returns:
// JSON PointDTO or "error: ..."
func AddPoints(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (jsonCurve, jsonLhs, jsonRhs)"
	}
	c, err := decodeCurve(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	lhs, err := decodePoint(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	rhs, err := decodePoint(args[2].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	sum := c.AddPoints(lhs, rhs)
	var dto PointDTO
	if x, y, ok := sum.Coords(); ok {
		dto.X, dto.Y = x.Hex(), y.Hex()
	} else {
		dto.Infinity = true
	}
	respBytes, _ := json.Marshal(dto)
	return string(respBytes)
}

func parseAll(values ...string) ([]residue.U256, error) {
	out := make([]residue.U256, len(values))
	for i, s := range values {
		v, err := residue.ParseU256(s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func decodeCurve(s string) (*weierstrass.Curve[residue.U256], error) {
	var dto CurveDTO
	if err := json.Unmarshal([]byte(s), &dto); err != nil {
		return nil, fmt.Errorf("invalid curve json: %w", err)
	}
	if dto.Name != "" {
		params, err := curves.Lookup(dto.Name)
		if err != nil {
			return nil, err
		}
		return params.Curve()
	}
	v, err := parseAll(dto.Modulus, dto.A, dto.B)
	if err != nil {
		return nil, err
	}
	return weierstrass.FromCoeffs(v[0], v[1], v[2])
}

func decodePoint(s string) (weierstrass.Point[residue.U256], error) {
	var dto PointDTO
	if err := json.Unmarshal([]byte(s), &dto); err != nil {
		return weierstrass.Point[residue.U256]{}, fmt.Errorf("invalid point json: %w", err)
	}
	if dto.Infinity {
		return weierstrass.Identity[residue.U256](), nil
	}
	v, err := parseAll(dto.X, dto.Y)
	if err != nil {
		return weierstrass.Point[residue.U256]{}, err
	}
	return weierstrass.Affine(v[0], v[1]), nil
}
