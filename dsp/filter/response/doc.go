// Package response evaluates the steady-state frequency response H(e^{jω})
// of biquad sections, cascades and order-N transfer functions.
//
// Two strategies are provided and agree to floating-point precision:
//
//   - Complex: sums coefficient·e^{-jiω} terms in complex128 and returns
//     N/D as a complex number.
//   - Trig: expands every exponential into cos/sin pairs, accumulates real
//     and imaginary parts separately and returns magnitude and phase as a
//     [Result].
//
// In float64 the two differ by a few ε·(Σ|num| + |H|·Σ|den|)/|D(ω)|. Where
// |H| and |D| stay away from zero this is a relative agreement near 1e-14;
// near zeros (notches, the stopband of a pass filter) cancellation makes it
// an absolute floor instead, and the relative difference can reach 1e-9.
//
// Frequencies are normalized angular frequencies in radians per sample.
// The *At variants take Hz and a sample rate and use
// ω = core.NormalizedOmega(f, fs).
//
// A denominator response below machine epsilon for F is a pole on the unit
// circle, not an error: complex strategies return complex(+Inf, +Inf) and
// trig strategies return Result{Magnitude: +Inf}. Order-N inputs of unequal
// length are truncated to the shorter one.
//
// [Evaluator] maps either strategy over a batch of frequencies using a
// worker pool; output slot i always holds the response at input slot i.
package response
