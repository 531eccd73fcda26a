package weierstrass

import (
	"errors"
	"fmt"
)

// ErrUndefinedCurve is returned when the given parameters do not define an
// elliptic curve.
var ErrUndefinedCurve = errors.New("bad raw data, curve is undefined")

// CurveError describes why curve construction failed.
type CurveError struct {
	Reason string
	Err    error
}

func (e *CurveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("weierstrass: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("weierstrass: %s", e.Reason)
}

func (e *CurveError) Unwrap() error {
	return e.Err
}

func undefinedCurve(reason string) *CurveError {
	return &CurveError{
		Reason: reason,
		Err:    ErrUndefinedCurve,
	}
}
