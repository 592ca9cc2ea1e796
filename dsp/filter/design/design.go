package design

import (
	"math"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

// AllPass1stOrder designs a first-order allpass with its 90° phase point
// at fc.
func AllPass1stOrder[F core.Float](fc, fs F) biquad.Coefficients[F] {
	w := core.PrewarpFrequency(fc, fs)
	a0 := (1 - w) / (1 + w)

	return biquad.New(a0, -1, 0, -a0, 0)
}

// AllPassQ designs a second-order allpass centered at fc. The numerator is
// the mirrored denominator.
func AllPassQ[F core.Float](fc, q, fs F) biquad.Coefficients[F] {
	w := core.PrewarpFrequency(fc, fs)
	w2 := w * w
	norm := 1 / (1 + w/q + w2)
	a0 := (1 - w/q + w2) * norm
	a1 := 2 * (w2 - 1) * norm

	return biquad.New(a0, a1, 1, a1, a0)
}

// LowPass designs a second-order lowpass at fc with quality factor q.
func LowPass[F core.Float](fc, q, fs F) biquad.Coefficients[F] {
	w := core.PrewarpFrequency(fc, fs)
	w2 := w * w
	norm := 1 / (1 + w/q + w2)
	a0 := w2 * norm

	return biquad.New(a0, 2*a0, a0, 2*(w2-1)*norm, (1-w/q+w2)*norm)
}

// HighPass designs a second-order highpass at fc with quality factor q.
func HighPass[F core.Float](fc, q, fs F) biquad.Coefficients[F] {
	w := core.PrewarpFrequency(fc, fs)
	w2 := w * w
	norm := 1 / (1 + w/q + w2)

	return biquad.New(norm, -2*norm, norm, 2*(w2-1)*norm, (1-w/q+w2)*norm)
}

// LowPass12dbOct is a two-pole Butterworth lowpass (Q = 1/√2).
func LowPass12dbOct[F core.Float](fc, fs F) biquad.Coefficients[F] {
	return LowPass(fc, core.InvSqrt2[F](), fs)
}

// HighPass12dbOct is a two-pole Butterworth highpass (Q = 1/√2).
func HighPass12dbOct[F core.Float](fc, fs F) biquad.Coefficients[F] {
	return HighPass(fc, core.InvSqrt2[F](), fs)
}

// LowPass1stOrder designs a first-order lowpass with a zero at Nyquist.
func LowPass1stOrder[F core.Float](fc, fs F) biquad.Coefficients[F] {
	iw := 1 / core.PrewarpFrequency(fc, fs)
	norm := 1 / (iw + 1)

	return biquad.New(norm, norm, 0, (1-iw)*norm, 0)
}

// HighPass1stOrder designs a first-order highpass with a zero at DC.
func HighPass1stOrder[F core.Float](fc, fs F) biquad.Coefficients[F] {
	w := core.PrewarpFrequency(fc, fs)
	norm := 1 / (w + 1)

	return biquad.New(norm, -norm, 0, (w-1)*norm, 0)
}

// BandPass designs a constant 0 dB peak gain bandpass.
func BandPass[F core.Float](fc, q, fs F) biquad.Coefficients[F] {
	w := core.PrewarpFrequency(fc, fs)
	w2 := w * w
	norm := 1 / (1 + w/q + w2)
	a0 := w / q * norm

	return biquad.New(a0, 0, -a0, 2*(w2-1)*norm, (1-w/q+w2)*norm)
}

// Notch designs a band-reject filter with a zero pair on the unit circle
// at fc.
func Notch[F core.Float](fc, q, fs F) biquad.Coefficients[F] {
	w := core.PrewarpFrequency(fc, fs)
	w2 := w * w
	norm := 1 / (1 + w/q + w2)
	a0 := (1 + w2) * norm
	a1 := 2 * (w2 - 1) * norm

	return biquad.New(a0, a1, a0, a1, (1-w/q+w2)*norm)
}

// OnePoleLowPass designs a single real pole lowpass without a zero:
// b1 = -exp(-2π·fc/fs), a0 = 1 + b1.
func OnePoleLowPass[F core.Float](fc, fs F) biquad.Coefficients[F] {
	b := F(math.Exp(float64(-core.TwoPi[F]() * fc / fs)))

	return biquad.New(1-b, 0, 0, -b, 0)
}

// OnePoleHighPass designs the Nyquist-mirrored counterpart of
// [OnePoleLowPass], placing the pole at -exp(-2π·(0.5 - fc/fs)).
//
// The pole lands on the negative real axis and b1 comes out positive, so
// the response is a highpass shelf rather than a true highpass with a zero
// at DC. The formula is kept as is and pinned by tests.
func OnePoleHighPass[F core.Float](fc, fs F) biquad.Coefficients[F] {
	b := -F(math.Exp(float64(-core.TwoPi[F]() * (0.5 - fc/fs))))

	return biquad.New(1+b, 0, 0, -b, 0)
}

func sqrt[F core.Float](x F) F {
	return F(math.Sqrt(float64(x)))
}
