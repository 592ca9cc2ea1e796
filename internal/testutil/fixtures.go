package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-biquad/dsp/core"
)

// RandomFrequencies returns n frequencies drawn uniformly from [lo, hi)
// with a fixed seed, so every test builds its own reproducible fixture.
func RandomFrequencies[F core.Float](seed int64, n int, lo, hi F) []F {
	rng := rand.New(rand.NewSource(seed))
	out := make([]F, n)
	span := float64(hi - lo)
	for i := range out {
		out[i] = lo + F(rng.Float64()*span)
	}
	return out
}

// RandomCoefficients returns n coefficients drawn uniformly from
// [-scale, scale) with a fixed seed.
func RandomCoefficients[F core.Float](seed int64, n int, scale F) []F {
	rng := rand.New(rand.NewSource(seed))
	out := make([]F, n)
	for i := range out {
		out[i] = F((rng.Float64()*2 - 1) * float64(scale))
	}
	return out
}
