// Package biquad defines the coefficient record of a second-order recursive
// ("biquad") digital filter section.
//
// A [Coefficients] value describes
//
//	       A0 + A1*z^-1 + A2*z^-2
//	H(z) = ----------------------
//	       B0 + B1*z^-1 + B2*z^-2
//
// where the A terms are the numerator ("zeros") and the B terms the
// denominator ("poles"). Records produced by [New] and by the designers in
// dsp/filter/design always carry B0 == 1.
//
// This package holds the record and its analysis helpers only. Coefficient
// design lives in dsp/filter/design; frequency-response evaluation lives in
// dsp/filter/response.
package biquad
