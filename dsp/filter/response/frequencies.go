package response

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-biquad/dsp/core"
)

// LinearFrequencies returns n evenly spaced frequencies from lo to hi
// inclusive.
func LinearFrequencies[F core.Float](n int, lo, hi F) ([]F, error) {
	if err := validateSpan(n, lo, hi); err != nil {
		return nil, err
	}
	return fromFloat64[F](floats.Span(make([]float64, n), float64(lo), float64(hi))), nil
}

// LogFrequencies returns n logarithmically spaced frequencies from lo to hi
// inclusive. lo must be positive.
func LogFrequencies[F core.Float](n int, lo, hi F) ([]F, error) {
	if err := validateSpan(n, lo, hi); err != nil {
		return nil, err
	}
	if lo <= 0 {
		return nil, fmt.Errorf("%w: log spacing needs lo > 0: %v", ErrInvalidArgument, lo)
	}
	return fromFloat64[F](floats.LogSpan(make([]float64, n), float64(lo), float64(hi))), nil
}

func validateSpan[F core.Float](n int, lo, hi F) error {
	if n < 2 {
		return fmt.Errorf("%w: frequency count must be >= 2: %d", ErrInvalidArgument, n)
	}
	if !core.IsFinite(lo) || !core.IsFinite(hi) || !(lo < hi) {
		return fmt.Errorf("%w: frequency range must satisfy lo < hi: [%v, %v]", ErrInvalidArgument, lo, hi)
	}
	return nil
}

func fromFloat64[F core.Float](in []float64) []F {
	out := make([]F, len(in))
	for i, v := range in {
		out[i] = F(v)
	}
	return out
}
