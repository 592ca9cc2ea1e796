// Package core holds the numeric foundation shared by the biquad designers
// and the frequency-response evaluators: width-generic math constants, unit
// and frequency conversions, and the batch evaluation configuration.
//
// Everything numeric is generic over [Float] so the same formulas serve
// float32 and float64 callers.
package core
