package response

import (
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/internal/simdops"
)

// Grid evaluates an order-N transfer function on the uniform grid
// ω_k = π·k/n, k = 0..n-1, covering DC up to (but excluding) Nyquist.
//
// Numerator and denominator are truncated to the shorter length, folded
// modulo 2n and transformed with a 2n-point FFT, so sequences longer than
// the FFT are still sampled exactly. Singular bins hold complex(+Inf, +Inf).
// n must be a power of two.
func Grid[F core.Float](num, den []F, n int) ([]complex128, error) {
	if n < 1 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: grid size must be a power of two: %d", ErrInvalidArgument, n)
	}

	size := 2 * n
	m := min(len(num), len(den))

	numIn := make([]complex128, size)
	denIn := make([]complex128, size)
	for i := range m {
		numIn[i%size] += complex(float64(num[i]), 0)
		denIn[i%size] += complex(float64(den[i]), 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan for %d points: %w", size, err)
	}

	numOut := make([]complex128, size)
	denOut := make([]complex128, size)
	if err := plan.Forward(numOut, numIn); err != nil {
		return nil, fmt.Errorf("response: numerator fft: %w", err)
	}
	if err := plan.Forward(denOut, denIn); err != nil {
		return nil, fmt.Errorf("response: denominator fft: %w", err)
	}

	eps := float64(core.Epsilon[F]())
	out := make([]complex128, n)
	for k := range out {
		if cmplx.Abs(denOut[k]) < eps {
			out[k] = singularComplex()
			continue
		}
		out[k] = numOut[k] / denOut[k]
	}
	return out, nil
}

// GridFrequencies returns the frequency in Hz of every [Grid] bin,
// k·fs/(2n). It returns nil for n < 1.
func GridFrequencies[F core.Float](n int, fs F) []F {
	if n < 1 {
		return nil
	}

	idx := make([]F, n)
	for k := range idx {
		idx[k] = F(k)
	}

	out := make([]F, n)
	simdops.For[F]().Scale(out, idx, fs/F(2*n))
	return out
}
