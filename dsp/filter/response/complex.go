package response

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

// BiquadComplex evaluates a normalized section (b0 = 1) at w.
func BiquadComplex[F core.Float](a0, a1, a2, b1, b2, w F) complex128 {
	return BiquadComplex6(a0, a1, a2, 1, b1, b2, w)
}

// BiquadComplex6 evaluates a section with an explicit leading denominator
// term at w.
func BiquadComplex6[F core.Float](a0, a1, a2, b0, b1, b2, w F) complex128 {
	sin, cos := math.Sincos(float64(w))
	z1 := complex(cos, -sin)
	z2 := z1 * z1

	den := complex(float64(b0), 0) + complex(float64(b1), 0)*z1 + complex(float64(b2), 0)*z2
	if cmplx.Abs(den) < float64(core.Epsilon[F]()) {
		return singularComplex()
	}

	num := complex(float64(a0), 0) + complex(float64(a1), 0)*z1 + complex(float64(a2), 0)*z2
	return num / den
}

// Complex evaluates the section c at w.
func Complex[F core.Float](c biquad.Coefficients[F], w F) complex128 {
	return BiquadComplex6(c.A0, c.A1, c.A2, c.B0, c.B1, c.B2, w)
}

// ComplexAt evaluates the section c at f Hz for sample rate fs.
func ComplexAt[F core.Float](c biquad.Coefficients[F], f, fs F) complex128 {
	return Complex(c, core.NormalizedOmega(f, fs))
}

// TransferComplex evaluates H(z) = Σ num[i]·z^-i / Σ den[i]·z^-i at w.
// Both sequences are truncated to the shorter length. den[0] is not
// normalized away.
func TransferComplex[F core.Float](num, den []F, w F) complex128 {
	n := min(len(num), len(den))
	sin, cos := math.Sincos(float64(w))
	z1 := complex(cos, -sin)

	var nSum, dSum complex128
	zPow := complex(1, 0)
	for i := range n {
		nSum += complex(float64(num[i]), 0) * zPow
		dSum += complex(float64(den[i]), 0) * zPow
		zPow *= z1
	}

	if cmplx.Abs(dSum) < float64(core.Epsilon[F]()) {
		return singularComplex()
	}
	return nSum / dSum
}

// TransferComplexAt evaluates the order-N transfer function at f Hz.
func TransferComplexAt[F core.Float](num, den []F, f, fs F) complex128 {
	return TransferComplex(num, den, core.NormalizedOmega(f, fs))
}
