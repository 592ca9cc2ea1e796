package core

import "math"

// Float is the set of floating-point widths the designers and evaluators
// are instantiated for.
type Float interface {
	float32 | float64
}

// High-precision source values. They are untyped constants, so each width
// receives its own correctly rounded value on conversion.
const (
	pi            = 3.141592653589793238462643383279502884
	e             = 2.718281828459045235360287471352662498
	sqrt2         = 1.414213562373095048801688724209698079
	ln2           = 0.693147180559945309417232121458176568
	ln10          = 2.302585092994045684017991454684364208
	log2e         = 1.442695040888963407359924681001892137
	log10e        = 0.434294481903251827651128918916605082
	twoOverSqrtPi = 1.128379167095512573896158903121545172
)

// Pi returns π at the precision of F.
func Pi[F Float]() F { return F(pi) }

// TwoPi returns 2π.
func TwoPi[F Float]() F { return F(2 * pi) }

// HalfPi returns π/2.
func HalfPi[F Float]() F { return F(pi / 2) }

// QuarterPi returns π/4.
func QuarterPi[F Float]() F { return F(pi / 4) }

// InvPi returns 1/π.
func InvPi[F Float]() F { return F(1 / pi) }

// E returns Euler's number.
func E[F Float]() F { return F(e) }

// Sqrt2 returns √2.
func Sqrt2[F Float]() F { return F(sqrt2) }

// InvSqrt2 returns 1/√2, the Q of a second-order Butterworth section.
func InvSqrt2[F Float]() F { return F(1 / sqrt2) }

// Ln2 returns ln(2).
func Ln2[F Float]() F { return F(ln2) }

// Ln10 returns ln(10).
func Ln10[F Float]() F { return F(ln10) }

// Log2E returns log2(e).
func Log2E[F Float]() F { return F(log2e) }

// Log10E returns log10(e).
func Log10E[F Float]() F { return F(log10e) }

// TwoOverSqrtPi returns 2/√π.
func TwoOverSqrtPi[F Float]() F { return F(twoOverSqrtPi) }

// Epsilon returns the machine epsilon of F: the distance from 1 to the next
// representable value.
func Epsilon[F Float]() F {
	var zero F
	switch any(zero).(type) {
	case float32:
		return F(0x1p-23)
	default:
		return F(0x1p-52)
	}
}

// Inf returns positive infinity of width F.
func Inf[F Float]() F {
	return F(math.Inf(1))
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite[F Float](x F) bool {
	v := float64(x)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
