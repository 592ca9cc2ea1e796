package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than abs and by more than rel relative
// to the larger magnitude. Matching infinities compare equal.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, abs, rel float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] == want[i] {
			continue
		}
		if !scalar.EqualWithinAbsOrRel(got[i], want[i], abs, rel) {
			t.Fatalf("index %d: got %v, want %v (abs %v, rel %v)", i, got[i], want[i], abs, rel)
		}
	}
}

// RequireComplexNear fails t if |got - want| exceeds tol·max(1, |want|).
// Two infinite values compare equal.
func RequireComplexNear(t *testing.T, got, want complex128, tol float64) {
	t.Helper()
	if cmplx.IsInf(got) && cmplx.IsInf(want) {
		return
	}
	if d := cmplx.Abs(got - want); !(d <= tol*math.Max(1, cmplx.Abs(want))) {
		t.Fatalf("got %v, want %v (diff %v > tol %v)", got, want, d, tol)
	}
}

// PhaseDiff returns the distance between two phases on the circle, in
// [0, π].
func PhaseDiff(a, b float64) float64 {
	return math.Abs(math.Remainder(a-b, 2*math.Pi))
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
