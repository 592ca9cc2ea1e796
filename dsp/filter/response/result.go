package response

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-biquad/dsp/core"
)

// Result is a response in polar form. Phase is the principal value in
// (-π, π].
type Result[F core.Float] struct {
	Magnitude F
	Phase     F
}

// DB returns the magnitude in decibels.
func (r Result[F]) DB() F {
	return core.GainTodB(r.Magnitude)
}

// IsSingular reports whether r marks a pole on the unit circle.
func (r Result[F]) IsSingular() bool {
	return math.IsInf(float64(r.Magnitude), 1)
}

// Complex converts r to rectangular form. A singular result maps to
// complex(+Inf, +Inf).
func (r Result[F]) Complex() complex128 {
	if r.IsSingular() {
		return singularComplex()
	}
	return cmplx.Rect(float64(r.Magnitude), float64(r.Phase))
}

// FromComplex converts a complex response to polar form. Any infinite
// component maps to Result{+Inf, 0}.
func FromComplex[F core.Float](h complex128) Result[F] {
	if cmplx.IsInf(h) {
		return singularResult[F]()
	}
	return Result[F]{
		Magnitude: F(cmplx.Abs(h)),
		Phase:     F(principal(cmplx.Phase(h))),
	}
}

// IsSingular reports whether h marks a pole on the unit circle.
func IsSingular(h complex128) bool {
	return cmplx.IsInf(h)
}

func singularComplex() complex128 {
	return complex(math.Inf(1), math.Inf(1))
}

func singularResult[F core.Float]() Result[F] {
	return Result[F]{Magnitude: core.Inf[F]()}
}
