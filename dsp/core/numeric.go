package core

import "math"

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// HzToOmega converts a frequency in Hz to angular frequency 2π·f.
//
// Divide the result by the sample rate to obtain radians per sample, or use
// [NormalizedOmega].
func HzToOmega[F Float](freqHz F) F {
	return TwoPi[F]() * freqHz
}

// OmegaToHz converts angular frequency back to Hz.
func OmegaToHz[F Float](omega F) F {
	return omega / TwoPi[F]()
}

// NormalizedOmega returns the digital frequency in radians per sample for
// freqHz at sampleRate.
func NormalizedOmega[F Float](freqHz, sampleRate F) F {
	return HzToOmega(freqHz) / sampleRate
}

// GainTodB converts a linear magnitude to decibels (20*log10 convention).
// Zero maps to -Inf; negative magnitudes yield NaN.
func GainTodB[F Float](magnitude F) F {
	return F(20 * math.Log10(float64(magnitude)))
}

// DecibelToLinearGain returns 10^(|dB|/20). The sign of dB is ignored;
// designers branch on boost versus cut separately.
func DecibelToLinearGain[F Float](dB F) F {
	return F(math.Pow(10, math.Abs(float64(dB))/20))
}

// PrewarpFrequency returns tan(π·fc/fs), the analog frequency that the
// bilinear transform maps onto fc.
func PrewarpFrequency[F Float](cutoffHz, sampleRate F) F {
	return F(math.Tan(float64(Pi[F]() * cutoffHz / sampleRate)))
}

// WrapPhase maps phase into the principal interval (-π, π].
func WrapPhase[F Float](phase F) F {
	p := math.Remainder(float64(phase), 2*math.Pi)
	if p <= -math.Pi {
		p += 2 * math.Pi
	}

	return F(p)
}
