package core

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestConstantsFloat64(t *testing.T) {
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"Pi", Pi[float64](), math.Pi},
		{"TwoPi", TwoPi[float64](), 2 * math.Pi},
		{"HalfPi", HalfPi[float64](), math.Pi / 2},
		{"QuarterPi", QuarterPi[float64](), math.Pi / 4},
		{"InvPi", InvPi[float64](), 1 / math.Pi},
		{"E", E[float64](), math.E},
		{"Sqrt2", Sqrt2[float64](), math.Sqrt2},
		{"InvSqrt2", InvSqrt2[float64](), 1 / math.Sqrt2},
		{"Ln2", Ln2[float64](), math.Ln2},
		{"Ln10", Ln10[float64](), math.Ln10},
		{"Log2E", Log2E[float64](), math.Log2E},
		{"Log10E", Log10E[float64](), math.Log10E},
		{"TwoOverSqrtPi", TwoOverSqrtPi[float64](), 2 / math.Sqrt(math.Pi)},
	}
	for _, c := range checks {
		if !scalar.EqualWithinAbsOrRel(c.got, c.want, 1e-15, 1e-15) {
			t.Errorf("%s = %.17g, want %.17g", c.name, c.got, c.want)
		}
	}
}

func TestConstantsFloat32RoundedPerWidth(t *testing.T) {
	if Pi[float32]() != float32(math.Pi) {
		t.Fatalf("Pi[float32] = %v, want %v", Pi[float32](), float32(math.Pi))
	}
	if Sqrt2[float32]() != float32(math.Sqrt2) {
		t.Fatalf("Sqrt2[float32] = %v", Sqrt2[float32]())
	}
}

func TestEpsilon(t *testing.T) {
	if got := Epsilon[float64](); got != math.Nextafter(1, 2)-1 {
		t.Fatalf("Epsilon[float64] = %v", got)
	}
	if got := Epsilon[float32](); got != math.Nextafter32(1, 2)-1 {
		t.Fatalf("Epsilon[float32] = %v", got)
	}
}

func TestInfAndIsFinite(t *testing.T) {
	if !math.IsInf(Inf[float64](), 1) {
		t.Fatal("Inf[float64] is not +Inf")
	}
	if !math.IsInf(float64(Inf[float32]()), 1) {
		t.Fatal("Inf[float32] is not +Inf")
	}
	if IsFinite(Inf[float64]()) || IsFinite(math.NaN()) {
		t.Fatal("IsFinite accepted a non-finite value")
	}
	if !IsFinite(float32(1.5)) {
		t.Fatal("IsFinite rejected 1.5")
	}
}
