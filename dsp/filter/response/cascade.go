package response

import (
	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

// CascadeComplex evaluates sections in series at w as the product of the
// section responses. An empty cascade is the identity.
func CascadeComplex[F core.Float](sections []biquad.Coefficients[F], w F) complex128 {
	h := complex(1, 0)
	for i := range sections {
		s := Complex(sections[i], w)
		if IsSingular(s) {
			return singularComplex()
		}
		h *= s
	}
	return h
}

// CascadeComplexAt evaluates sections in series at f Hz.
func CascadeComplexAt[F core.Float](sections []biquad.Coefficients[F], f, fs F) complex128 {
	return CascadeComplex(sections, core.NormalizedOmega(f, fs))
}

// CascadeTrig evaluates sections in series at w: magnitudes multiply and
// phases add, wrapped into (-π, π].
func CascadeTrig[F core.Float](sections []biquad.Coefficients[F], w F) Result[F] {
	out := Result[F]{Magnitude: 1}
	for i := range sections {
		r := Trig(sections[i], w)
		if r.IsSingular() {
			return r
		}
		out.Magnitude *= r.Magnitude
		out.Phase += r.Phase
	}
	out.Phase = core.WrapPhase(out.Phase)
	return out
}

// CascadeTrigAt evaluates sections in series at f Hz.
func CascadeTrigAt[F core.Float](sections []biquad.Coefficients[F], f, fs F) Result[F] {
	return CascadeTrig(sections, core.NormalizedOmega(f, fs))
}
