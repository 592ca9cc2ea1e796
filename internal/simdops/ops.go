// Package simdops provides generic SIMD operations for float32 and float64
// plus complex128 helpers, so the evaluators keep a single generic code path.
package simdops

import (
	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"

	"github.com/cwbudde/algo-biquad/dsp/core"
)

// Ops provides SIMD-accelerated operations for type F.
type Ops[F core.Float] struct {
	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []F) F

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)
}

var (
	ops32 = Ops[float32]{
		DotProductUnsafe: f32.DotProductUnsafe,
		Scale:            f32.Scale,
	}
	ops64 = Ops[float64]{
		DotProductUnsafe: f64.DotProductUnsafe,
		Scale:            f64.Scale,
	}
)

// For returns the Ops instance for type F.
// The type switch happens once per caller, not in hot loops.
func For[F core.Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// MulComplex computes dst[i] = a[i] * b[i] over the shortest of the three
// slices.
func MulComplex(dst, a, b []complex128) {
	n := min(len(dst), len(a), len(b))
	if n == 0 {
		return
	}
	c128.Mul(dst[:n], a[:n], b[:n])
}
