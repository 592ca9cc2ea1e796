package response

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-biquad/dsp/core"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	buf.data = core.EnsureLen(buf.data, 2*n)
	return buf.data[:n], buf.data[n:], buf
}

// Magnitudes returns |H| for every complex response. Singular entries stay
// +Inf.
//
// The magnitude kernel is SIMD-accelerated where available; scratch buffers
// are pooled, so in steady state this allocates only the output slice.
func Magnitudes(h []complex128) []float64 {
	if len(h) == 0 {
		return nil
	}

	out := make([]float64, len(h))
	re, im, buf := getScratch(len(h))

	for i, c := range h {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)
	return out
}

// MagnitudesDB returns 20·log10|H| for every complex response.
func MagnitudesDB(h []complex128) []float64 {
	out := Magnitudes(h)
	for i, m := range out {
		out[i] = 20 * math.Log10(m)
	}
	return out
}

// Phases returns the principal argument of every complex response.
// Singular entries have phase 0.
func Phases(h []complex128) []float64 {
	if len(h) == 0 {
		return nil
	}

	out := make([]float64, len(h))
	for i, c := range h {
		if IsSingular(c) {
			continue
		}
		out[i] = principal(cmplx.Phase(c))
	}
	return out
}
