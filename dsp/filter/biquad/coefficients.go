package biquad

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-biquad/dsp/core"
)

// ErrInvalidCoefficient is returned when a coefficient set cannot describe a
// transfer function, e.g. a zero leading denominator term.
var ErrInvalidCoefficient = errors.New("biquad: invalid coefficient")

// Coefficients holds the transfer function coefficients of a single
// second-order section. It is an immutable value; copy it freely.
type Coefficients[F core.Float] struct {
	A0, A1, A2 F // numerator (zeros)
	B0, B1, B2 F // denominator (poles)
}

// New returns a normalized section with the implicit leading denominator
// term B0 = 1.
func New[F core.Float](a0, a1, a2, b1, b2 F) Coefficients[F] {
	return Coefficients[F]{
		A0: a0, A1: a1, A2: a2,
		B0: 1, B1: b1, B2: b2,
	}
}

// NewNormalized builds a section from all six coefficients and divides
// every term by b0 so the result has B0 == 1.
//
// A zero b0 is rejected with [ErrInvalidCoefficient].
func NewNormalized[F core.Float](a0, a1, a2, b0, b1, b2 F) (Coefficients[F], error) {
	if b0 == 0 {
		return Coefficients[F]{}, fmt.Errorf("%w: leading denominator term b0 must be non-zero", ErrInvalidCoefficient)
	}

	if b0 == 1 {
		return New(a0, a1, a2, b1, b2), nil
	}

	return New(a0/b0, a1/b0, a2/b0, b1/b0, b2/b0), nil
}

// Zeros returns the numerator coefficients [A0, A1, A2].
func (c Coefficients[F]) Zeros() []F {
	return []F{c.A0, c.A1, c.A2}
}

// Poles returns the denominator coefficients [B0, B1, B2].
func (c Coefficients[F]) Poles() []F {
	return []F{c.B0, c.B1, c.B2}
}

// IsNormalized reports whether B0 is exactly 1.
func (c Coefficients[F]) IsNormalized() bool {
	return c.B0 == 1
}

// IsFinite reports whether all six coefficients are finite.
func (c Coefficients[F]) IsFinite() bool {
	return core.IsFinite(c.A0) && core.IsFinite(c.A1) && core.IsFinite(c.A2) &&
		core.IsFinite(c.B0) && core.IsFinite(c.B1) && core.IsFinite(c.B2)
}

// IsFirstOrder reports whether both second-order terms are zero.
func (c Coefficients[F]) IsFirstOrder() bool {
	return c.A2 == 0 && c.B2 == 0
}

// Float64 widens the record to float64.
func (c Coefficients[F]) Float64() Coefficients[float64] {
	return Coefficients[float64]{
		A0: float64(c.A0), A1: float64(c.A1), A2: float64(c.A2),
		B0: float64(c.B0), B1: float64(c.B1), B2: float64(c.B2),
	}
}

// String formats the record as "a=[a0 a1 a2] b=[b0 b1 b2]".
func (c Coefficients[F]) String() string {
	return fmt.Sprintf("a=[%g %g %g] b=[%g %g %g]", c.A0, c.A1, c.A2, c.B0, c.B1, c.B2)
}
