package response

import (
	"sync"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/internal/simdops"
)

// Evaluator maps the scalar evaluators over batches of frequencies in Hz.
//
// Work is split into contiguous chunks that a fixed set of workers claims
// round-robin; every worker writes only the output slots of its own chunks.
// An Evaluator holds immutable configuration only and is safe for
// concurrent use. Batch results are identical to the matching scalar *At
// function for every index. The zero value evaluates with
// [core.DefaultEvalConfig].
type Evaluator[F core.Float] struct {
	cfg core.EvalConfig
	ops *simdops.Ops[F]
}

// NewEvaluator creates an evaluator with optional configuration overrides.
func NewEvaluator[F core.Float](opts ...core.EvalOption) *Evaluator[F] {
	return &Evaluator[F]{
		cfg: core.ApplyEvalOptions(opts...),
		ops: simdops.For[F](),
	}
}

// Config returns the evaluator configuration.
func (e *Evaluator[F]) Config() core.EvalConfig {
	if e.cfg == (core.EvalConfig{}) {
		return core.DefaultEvalConfig()
	}
	return e.cfg
}

// SampleRate returns the sample rate used to normalize batch frequencies.
func (e *Evaluator[F]) SampleRate() F {
	return F(e.Config().SampleRate)
}

func (e *Evaluator[F]) simd() *simdops.Ops[F] {
	if e.ops == nil {
		return simdops.For[F]()
	}
	return e.ops
}

// Complex evaluates an order-N transfer function at every frequency.
func (e *Evaluator[F]) Complex(num, den, freqs []F) []complex128 {
	out := make([]complex128, len(freqs))
	fs := e.SampleRate()

	e.run(len(freqs), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = TransferComplexAt(num, den, freqs[i], fs)
		}
	})
	return out
}

// Trig evaluates an order-N transfer function at every frequency in polar
// form.
func (e *Evaluator[F]) Trig(num, den, freqs []F) []Result[F] {
	out := make([]Result[F], len(freqs))
	n := min(len(num), len(den))
	if n == 0 {
		for i := range out {
			out[i] = singularResult[F]()
		}
		return out
	}

	num, den = num[:n], den[:n]
	fs := e.SampleRate()
	ops := e.simd()

	e.run(len(freqs), func(lo, hi int) {
		tab := make([]F, 2*n)
		for i := lo; i < hi; i++ {
			w := core.NormalizedOmega(freqs[i], fs)
			out[i] = transferTrig(num, den, w, tab[:n], tab[n:], ops)
		}
	})
	return out
}

// BiquadComplex evaluates the section c at every frequency.
func (e *Evaluator[F]) BiquadComplex(c biquad.Coefficients[F], freqs []F) []complex128 {
	out := make([]complex128, len(freqs))
	fs := e.SampleRate()

	e.run(len(freqs), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = ComplexAt(c, freqs[i], fs)
		}
	})
	return out
}

// BiquadTrig evaluates the section c at every frequency in polar form.
func (e *Evaluator[F]) BiquadTrig(c biquad.Coefficients[F], freqs []F) []Result[F] {
	out := make([]Result[F], len(freqs))
	fs := e.SampleRate()

	e.run(len(freqs), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = TrigAt(c, freqs[i], fs)
		}
	})
	return out
}

// Cascade evaluates sections in series at every frequency. Each section is
// evaluated as a batch and the partial products are combined with a SIMD
// complex multiply. Slots where any section is singular hold
// complex(+Inf, +Inf).
func (e *Evaluator[F]) Cascade(sections []biquad.Coefficients[F], freqs []F) []complex128 {
	out := make([]complex128, len(freqs))
	for i := range out {
		out[i] = 1
	}

	var singular []bool
	for _, s := range sections {
		h := e.BiquadComplex(s, freqs)
		for i := range h {
			if IsSingular(h[i]) {
				if singular == nil {
					singular = make([]bool, len(freqs))
				}
				singular[i] = true
				h[i] = 1
			}
		}
		simdops.MulComplex(out, out, h)
	}

	for i, s := range singular {
		if s {
			out[i] = singularComplex()
		}
	}
	return out
}

// CascadeTrig evaluates sections in series at every frequency in polar
// form.
func (e *Evaluator[F]) CascadeTrig(sections []biquad.Coefficients[F], freqs []F) []Result[F] {
	out := make([]Result[F], len(freqs))
	fs := e.SampleRate()

	e.run(len(freqs), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = CascadeTrigAt(sections, freqs[i], fs)
		}
	})
	return out
}

// run calls fn over [0, n) in chunks, in parallel when more than one
// worker and more than one chunk are available.
func (e *Evaluator[F]) run(n int, fn func(lo, hi int)) {
	if n == 0 {
		return
	}

	cfg := e.Config()
	chunk := cfg.ChunkSize
	if chunk <= 0 {
		chunk = n
	}
	chunks := (n + chunk - 1) / chunk
	workers := min(cfg.Workers, chunks)

	if workers <= 1 {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for c := worker; c < chunks; c += workers {
				lo := c * chunk
				fn(lo, min(lo+chunk, n))
			}
		}(w)
	}
	wg.Wait()
}

// EvaluateBatchComplex evaluates an order-N transfer function at every
// frequency in Hz using the default worker configuration. fs is used as
// given, so every slot equals [TransferComplexAt] with the same arguments,
// including the NaN results of a zero sample rate.
func EvaluateBatchComplex[F core.Float](num, den, freqs []F, fs F) []complex128 {
	return batchEvaluator(fs).Complex(num, den, freqs)
}

// EvaluateBatchTrig is the polar-form counterpart of
// [EvaluateBatchComplex].
func EvaluateBatchTrig[F core.Float](num, den, freqs []F, fs F) []Result[F] {
	return batchEvaluator(fs).Trig(num, den, freqs)
}

// batchEvaluator bypasses [core.WithSampleRate], which ignores
// non-positive rates.
func batchEvaluator[F core.Float](fs F) *Evaluator[F] {
	cfg := core.DefaultEvalConfig()
	cfg.SampleRate = float64(fs)
	return &Evaluator[F]{cfg: cfg, ops: simdops.For[F]()}
}
