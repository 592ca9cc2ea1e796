package response

import (
	"math"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/internal/simdops"
)

// BiquadTrig evaluates a normalized section (b0 = 1) at w in polar form.
func BiquadTrig[F core.Float](a0, a1, a2, b1, b2, w F) Result[F] {
	return BiquadTrig6(a0, a1, a2, 1, b1, b2, w)
}

// BiquadTrig6 evaluates a section with an explicit leading denominator term
// at w in polar form.
func BiquadTrig6[F core.Float](a0, a1, a2, b0, b1, b2, w F) Result[F] {
	s1, c1 := math.Sincos(float64(w))
	s2, c2 := math.Sincos(2 * float64(w))
	cos1, sin1, cos2, sin2 := F(c1), F(s1), F(c2), F(s2)

	nr := a0 + a1*cos1 + a2*cos2
	ni := -(a1*sin1 + a2*sin2)
	dr := b0 + b1*cos1 + b2*cos2
	di := -(b1*sin1 + b2*sin2)

	return divide(nr, ni, dr, di)
}

// Trig evaluates the section c at w in polar form.
func Trig[F core.Float](c biquad.Coefficients[F], w F) Result[F] {
	return BiquadTrig6(c.A0, c.A1, c.A2, c.B0, c.B1, c.B2, w)
}

// TrigAt evaluates the section c at f Hz for sample rate fs.
func TrigAt[F core.Float](c biquad.Coefficients[F], f, fs F) Result[F] {
	return Trig(c, core.NormalizedOmega(f, fs))
}

// TransferTrig evaluates H(z) = Σ num[i]·z^-i / Σ den[i]·z^-i at w in
// polar form. Both sequences are truncated to the shorter length.
func TransferTrig[F core.Float](num, den []F, w F) Result[F] {
	n := min(len(num), len(den))
	if n == 0 {
		return singularResult[F]()
	}

	tab := make([]F, 2*n)
	return transferTrig(num[:n], den[:n], w, tab[:n], tab[n:], simdops.For[F]())
}

// TransferTrigAt evaluates the order-N transfer function at f Hz.
func TransferTrigAt[F core.Float](num, den []F, f, fs F) Result[F] {
	return TransferTrig(num, den, core.NormalizedOmega(f, fs))
}

// transferTrig fills the cos/sin tables for w and reduces both polynomials
// with SIMD dot products. num, den and both tables share one length > 0.
func transferTrig[F core.Float](num, den []F, w F, cosTab, sinTab []F, ops *simdops.Ops[F]) Result[F] {
	wf := float64(w)
	for i := range cosTab {
		s, c := math.Sincos(float64(i) * wf)
		cosTab[i], sinTab[i] = F(c), F(s)
	}

	nr := ops.DotProductUnsafe(num, cosTab)
	ni := -ops.DotProductUnsafe(num, sinTab)
	dr := ops.DotProductUnsafe(den, cosTab)
	di := -ops.DotProductUnsafe(den, sinTab)

	return divide(nr, ni, dr, di)
}

// divide computes (nr + j·ni) / (dr + j·di) in polar form.
func divide[F core.Float](nr, ni, dr, di F) Result[F] {
	if math.Hypot(float64(dr), float64(di)) < float64(core.Epsilon[F]()) {
		return singularResult[F]()
	}

	d2 := dr*dr + di*di
	re := (nr*dr + ni*di) / d2
	im := (ni*dr - nr*di) / d2

	return Result[F]{
		Magnitude: F(math.Hypot(float64(re), float64(im))),
		Phase:     F(principal(math.Atan2(float64(im), float64(re)))),
	}
}

// principal maps the -π returned by Atan2 for a negative real axis with
// negative zero imaginary part onto π.
func principal(phase float64) float64 {
	if phase <= -math.Pi {
		return phase + 2*math.Pi
	}
	return phase
}
