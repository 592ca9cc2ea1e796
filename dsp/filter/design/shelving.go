package design

import (
	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

// PeakEq designs a peaking equalizer with gainDB at fc. The gain only
// enters the Q-scaled cross term, so the bandwidth is preserved between
// boost and cut.
func PeakEq[F core.Float](gainDB, fc, q, fs F) biquad.Coefficients[F] {
	w := core.PrewarpFrequency(fc, fs)
	w2 := w * w
	g := core.DecibelToLinearGain(gainDB)
	plain := w / q
	scaled := g / q * w

	num, den := plain, scaled
	if gainDB >= 0 {
		num, den = scaled, plain
	}

	norm := 1 / (1 + den + w2)
	a1 := 2 * (w2 - 1) * norm

	return biquad.New((1+num+w2)*norm, a1, (1-num+w2)*norm, a1, (1-den+w2)*norm)
}

// HighShelf designs a second-order high shelf with Q = 1/√2.
func HighShelf[F core.Float](gainDB, fc, fs F) biquad.Coefficients[F] {
	g := core.DecibelToLinearGain(gainDB)
	return highShelf(gainDB, fc, fs, core.Sqrt2[F](), sqrt(2*g))
}

// HighShelfQ designs a second-order high shelf with a variable quality
// factor. With q = 1/√2 it matches [HighShelf].
func HighShelfQ[F core.Float](gainDB, fc, q, fs F) biquad.Coefficients[F] {
	g := core.DecibelToLinearGain(gainDB)
	return highShelf(gainDB, fc, fs, 1/q, sqrt(g)/q)
}

// LowShelf designs a second-order low shelf with Q = 1/√2.
func LowShelf[F core.Float](gainDB, fc, fs F) biquad.Coefficients[F] {
	g := core.DecibelToLinearGain(gainDB)
	return lowShelf(gainDB, fc, fs, core.Sqrt2[F](), sqrt(2*g))
}

// LowShelfQ designs a second-order low shelf with a variable quality
// factor. With q = 1/√2 it matches [LowShelf].
func LowShelfQ[F core.Float](gainDB, fc, q, fs F) biquad.Coefficients[F] {
	g := core.DecibelToLinearGain(gainDB)
	return lowShelf(gainDB, fc, fs, 1/q, sqrt(g)/q)
}

// highShelf builds a high shelf from the unity cross term k and the gain
// cross term kg.
func highShelf[F core.Float](gainDB, fc, fs, k, kg F) biquad.Coefficients[F] {
	w := core.PrewarpFrequency(fc, fs)
	w2 := w * w
	g := core.DecibelToLinearGain(gainDB)

	if gainDB >= 0 {
		norm := 1 / (1 + k*w + w2)
		return biquad.New(
			(g+kg*w+w2)*norm,
			2*(w2-g)*norm,
			(g-kg*w+w2)*norm,
			2*(w2-1)*norm,
			(1-k*w+w2)*norm,
		)
	}

	norm := 1 / (g + kg*w + w2)
	return biquad.New(
		(1+k*w+w2)*norm,
		2*(w2-1)*norm,
		(1-k*w+w2)*norm,
		2*(w2-g)*norm,
		(g-kg*w+w2)*norm,
	)
}

// lowShelf builds a low shelf from the unity cross term k and the gain
// cross term kg.
func lowShelf[F core.Float](gainDB, fc, fs, k, kg F) biquad.Coefficients[F] {
	w := core.PrewarpFrequency(fc, fs)
	w2 := w * w
	g := core.DecibelToLinearGain(gainDB)

	if gainDB >= 0 {
		norm := 1 / (1 + k*w + w2)
		return biquad.New(
			(1+kg*w+g*w2)*norm,
			2*(g*w2-1)*norm,
			(1-kg*w+g*w2)*norm,
			2*(w2-1)*norm,
			(1-k*w+w2)*norm,
		)
	}

	norm := 1 / (1 + kg*w + g*w2)
	return biquad.New(
		(1+k*w+w2)*norm,
		2*(w2-1)*norm,
		(1-k*w+w2)*norm,
		2*(g*w2-1)*norm,
		(1-kg*w+g*w2)*norm,
	)
}

// HighShelf1stOrder designs a first-order high shelf.
func HighShelf1stOrder[F core.Float](gainDB, fc, fs F) biquad.Coefficients[F] {
	w := core.PrewarpFrequency(fc, fs)
	g := core.DecibelToLinearGain(gainDB)

	if gainDB >= 0 {
		norm := 1 / (w + 1)
		return biquad.New((w+g)*norm, (w-g)*norm, 0, (w-1)*norm, 0)
	}

	norm := 1 / (w + g)
	return biquad.New((w+1)*norm, (w-1)*norm, 0, (w-g)*norm, 0)
}

// LowShelf1stOrder designs a first-order low shelf.
func LowShelf1stOrder[F core.Float](gainDB, fc, fs F) biquad.Coefficients[F] {
	w := core.PrewarpFrequency(fc, fs)
	g := core.DecibelToLinearGain(gainDB)

	if gainDB >= 0 {
		norm := 1 / (w + 1)
		return biquad.New((w*g+1)*norm, (w*g-1)*norm, 0, (w-1)*norm, 0)
	}

	norm := 1 / (w*g + 1)
	return biquad.New((w+1)*norm, (w-1)*norm, 0, (w*g-1)*norm, 0)
}
