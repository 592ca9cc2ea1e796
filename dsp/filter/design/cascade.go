package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

// ButterworthQFactors returns the ⌈order/2⌉ section quality factors of an
// order-N Butterworth response, Q_k = 1/(2·cos θ_k).
//
// Even orders use θ_k = (k+0.5)·π/order. Odd orders start with a fixed
// Q = 0.5 followed by θ_k = (k+1)·π/order for the order/2 pole pairs.
func ButterworthQFactors[F core.Float](order int) ([]F, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: butterworth order must be >= 1: %d", ErrInvalidArgument, order)
	}

	pairs := order / 2
	qs := make([]F, 0, (order+1)/2)
	offset := 0.5
	if order%2 != 0 {
		qs = append(qs, 0.5)
		offset = 1
	}

	for k := range pairs {
		theta := (float64(k) + offset) * math.Pi / float64(order)
		qs = append(qs, F(1/(2*math.Cos(theta))))
	}
	return qs, nil
}

// LowPassCascadeAsButterworth designs an order-N Butterworth lowpass as a
// series of [LowPass] sections, one per factor of [ButterworthQFactors].
func LowPassCascadeAsButterworth[F core.Float](order int, fc, fs F) ([]biquad.Coefficients[F], error) {
	return butterworthCascade(order, fc, fs, LowPass[F])
}

// HighPassCascadeAsButterworth designs an order-N Butterworth highpass as a
// series of [HighPass] sections, one per factor of [ButterworthQFactors].
func HighPassCascadeAsButterworth[F core.Float](order int, fc, fs F) ([]biquad.Coefficients[F], error) {
	return butterworthCascade(order, fc, fs, HighPass[F])
}

// DesignButterworthCascade validates fc and fs and builds a lowpass or
// highpass Butterworth cascade. Any other kind is rejected.
func DesignButterworthCascade[F core.Float](kind Kind, order int, fc, fs F) ([]biquad.Coefficients[F], error) {
	if err := validateRate(fc, fs); err != nil {
		return nil, err
	}

	switch kind {
	case KindLowPass:
		return LowPassCascadeAsButterworth(order, fc, fs)
	case KindHighPass:
		return HighPassCascadeAsButterworth(order, fc, fs)
	default:
		return nil, fmt.Errorf("%w: butterworth cascade needs lowpass or highpass, got %v", ErrInvalidArgument, kind)
	}
}

func butterworthCascade[F core.Float](order int, fc, fs F, section func(fc, q, fs F) biquad.Coefficients[F]) ([]biquad.Coefficients[F], error) {
	qs, err := ButterworthQFactors[F](order)
	if err != nil {
		return nil, err
	}

	sections := make([]biquad.Coefficients[F], len(qs))
	for i, q := range qs {
		sections[i] = section(fc, q, fs)
	}
	return sections, nil
}
