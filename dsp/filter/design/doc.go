// Package design provides digital IIR filter coefficient designers.
//
// Every designer maps an analog prototype onto the z-plane with the bilinear
// transform. The shared preprocessing is
//
//	omega = tan(π·fc/fs)        (pre-warped analog frequency)
//	gain  = 10^(|gainDB|/20)    (linear gain magnitude)
//
// Archetypes with a gain parameter branch on boost (gainDB >= 0) versus cut
// and use the reciprocal topology for cuts, so a +G dB and a -G dB design
// are exact inverses at the design frequency.
//
// All designers return a [biquad.Coefficients] with B0 == 1. [Design]
// dispatches on a [Kind] with argument validation; the bare functions
// assume valid input. Butterworth cascades are built from
// [ButterworthQFactors].
package design
