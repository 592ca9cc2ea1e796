package biquad

import (
	"math/cmplx"

	"github.com/cwbudde/algo-biquad/dsp/core"
)

// PoleZeroPair stores the two poles and two zeros of one biquad section.
// For first-order sections, the second pole/zero is 0.
type PoleZeroPair struct {
	Poles [2]complex128
	Zeros [2]complex128
}

// PoleRoots returns the z-plane poles of the section denominator:
//
//	B0 + B1*z^-1 + B2*z^-2 = 0
func (c Coefficients[F]) PoleRoots() [2]complex128 {
	return quadraticRoots(float64(c.B0), float64(c.B1), float64(c.B2))
}

// ZeroRoots returns the z-plane zeros of the section numerator:
//
//	A0 + A1*z^-1 + A2*z^-2 = 0
func (c Coefficients[F]) ZeroRoots() [2]complex128 {
	return quadraticRoots(float64(c.A0), float64(c.A1), float64(c.A2))
}

// PoleZeroPair returns both poles and zeros for a single section.
func (c Coefficients[F]) PoleZeroPair() PoleZeroPair {
	return PoleZeroPair{
		Poles: c.PoleRoots(),
		Zeros: c.ZeroRoots(),
	}
}

// IsStable reports whether both poles lie strictly inside the unit circle.
func (c Coefficients[F]) IsStable() bool {
	for _, p := range c.PoleRoots() {
		if !(cmplx.Abs(p) < 1) {
			return false
		}
	}
	return true
}

// PoleZeroPairs returns one pole/zero pair entry per section of a cascade.
func PoleZeroPairs[F core.Float](sections []Coefficients[F]) []PoleZeroPair {
	out := make([]PoleZeroPair, len(sections))
	for i := range sections {
		out[i] = sections[i].PoleZeroPair()
	}
	return out
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}
		return [2]complex128{complex(-c/b, 0), 0}
	}

	if c == 0 {
		return [2]complex128{complex(-b/a, 0), 0}
	}

	discriminant := complex(b*b-4*a*c, 0)
	sqrtDiscriminant := cmplx.Sqrt(discriminant)
	den := complex(2*a, 0)
	return [2]complex128{
		(-complex(b, 0) + sqrtDiscriminant) / den,
		(-complex(b, 0) - sqrtDiscriminant) / den,
	}
}
