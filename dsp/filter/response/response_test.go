package response

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/dsp/filter/design"
	"github.com/cwbudde/algo-biquad/internal/testutil"
)

// Reference points of PeakEq(5 dB, 100 Hz, Q 10) at fs = 1000 Hz.
func TestPeakEq_ReferenceResponse(t *testing.T) {
	c := design.PeakEq(5.0, 100, 10, 1000)

	tests := []struct {
		f     float64
		db    float64
		phase float64
	}{
		{f: 90, db: 1.3312607813937896, phase: 0.2509964622124102},
		{f: 100, db: 5, phase: 0},
		{f: 110, db: 1.5041110035372895, phase: -0.2604320565152820},
	}

	for _, tt := range tests {
		r := TrigAt(c, tt.f, 1000)
		assert.InDelta(t, tt.db, r.DB(), 1e-10, "trig dB at %v Hz", tt.f)
		assert.InDelta(t, tt.phase, r.Phase, 1e-10, "trig phase at %v Hz", tt.f)

		h := FromComplex[float64](ComplexAt(c, tt.f, 1000))
		assert.InDelta(t, tt.db, h.DB(), 1e-10, "complex dB at %v Hz", tt.f)
		assert.InDelta(t, tt.phase, h.Phase, 1e-10, "complex phase at %v Hz", tt.f)
	}
}

// The two strategies round differently, and both errors are amplified by
// 1/|D(w)| near poles and dominate the relative error near zeros. The
// agreement bound is therefore a small multiple of machine epsilon scaled by
// the condition of the evaluation, not a flat relative tolerance.
func TestBiquadStrategiesAgree(t *testing.T) {
	for _, tt := range []struct{ fc, fs float64 }{
		{100, 1000},
		{1000, 44100},
		{1000, 48000},
		{20, 48000},
		{15000, 48000},
	} {
		t.Run(fmt.Sprintf("fc=%v/fs=%v", tt.fc, tt.fs), func(t *testing.T) {
			freqs := testutil.RandomFrequencies(11, 500, 0, tt.fs/2)
			for _, kind := range design.Kinds() {
				for _, gain := range []float64{-12, -6, 6, 12} {
					for _, q := range []float64{0.3, 0.9, 5} {
						c, err := design.Design(kind, design.Params[float64]{GainDB: gain, Fc: tt.fc, Q: q}, tt.fs)
						require.NoError(t, err)

						for _, f := range freqs {
							w := core.NormalizedOmega(f, tt.fs)
							requireAgree(t, c.Zeros(), c.Poles(), w, Complex(c, w), Trig(c, w).Complex(),
								fmt.Sprintf("%v gain=%v q=%v f=%v", kind, gain, q, f))
						}
					}
				}
			}
		})
	}
}

// Away from zeros and poles the agreement is a relative one.
func TestBiquadStrategiesAgree_WellConditioned(t *testing.T) {
	c := design.PeakEq(5.0, 100, 10, 1000)
	for _, f := range testutil.RandomFrequencies(4, 200, 0, 500.0) {
		w := core.NormalizedOmega(f, 1000)
		h := Complex(c, w)
		r := Trig(c, w)

		rel := math.Abs(cmplx.Abs(h)-r.Magnitude) / cmplx.Abs(h)
		assert.Less(t, rel, 1e-14, "f=%v", f)
		assert.Less(t, testutil.PhaseDiff(cmplx.Phase(h), r.Phase), 1e-14, "f=%v", f)
	}
}

func TestBiquadShapes_FiveAndSixCoefficients(t *testing.T) {
	c := design.Notch(1000.0, 2, 48000)
	w := core.NormalizedOmega(1234.0, 48000)

	assert.Equal(t, BiquadComplex(c.A0, c.A1, c.A2, c.B1, c.B2, w), BiquadComplex6(c.A0, c.A1, c.A2, 1, c.B1, c.B2, w))
	assert.Equal(t, BiquadTrig(c.A0, c.A1, c.A2, c.B1, c.B2, w), BiquadTrig6(c.A0, c.A1, c.A2, 1, c.B1, c.B2, w))

	// Scaling all six coefficients leaves the response unchanged.
	h := BiquadComplex6(2*c.A0, 2*c.A1, 2*c.A2, 2, 2*c.B1, 2*c.B2, w)
	testutil.RequireComplexNear(t, h, Complex(c, w), 1e-15)
}

func TestTransferStrategiesAgree(t *testing.T) {
	const order = 8
	for seed := int64(1); seed <= 20; seed++ {
		num := testutil.RandomCoefficients(seed, order, 1.0)
		den := testutil.RandomCoefficients(seed+100, order, 0.1)
		den[0] = 1

		for _, w := range testutil.RandomFrequencies(seed, 64, 0, math.Pi) {
			requireAgree(t, num, den, w, TransferComplex(num, den, w), TransferTrig(num, den, w).Complex(),
				fmt.Sprintf("seed %d w=%v", seed, w))
		}
	}
}

func TestTransferMatchesBiquad(t *testing.T) {
	c := design.LowShelf(-4.5, 300.0, 44100)
	num, den := c.Zeros(), c.Poles()
	for _, w := range testutil.RandomFrequencies(3, 100, 0, math.Pi) {
		requireAgree(t, num, den, w, TransferComplex(num, den, w), Complex(c, w), fmt.Sprintf("complex w=%v", w))
		requireAgree(t, num, den, w, TransferTrig(num, den, w).Complex(), Trig(c, w).Complex(), fmt.Sprintf("trig w=%v", w))
	}
}

func TestTransfer_TruncatesToShorterSequence(t *testing.T) {
	num := []float64{0.2, 0.4, 0.2, 0.9, -0.7}
	den := []float64{1, -0.3, 0.1}
	w := 0.77

	assert.Equal(t, TransferComplex(num[:3], den, w), TransferComplex(num, den, w))
	assert.Equal(t, TransferTrig(num[:3], den, w), TransferTrig(num, den, w))

	// Longer denominator is cut to the numerator length.
	assert.Equal(t, TransferComplex(num[:2], den[:2], w), TransferComplex(num[:2], den, w))
}

func TestTransfer_UnnormalizedLeadingTermScales(t *testing.T) {
	num := []float64{1, 0.5}
	w := 0.3

	h1 := TransferComplex(num, []float64{1, -0.25}, w)
	h2 := TransferComplex(num, []float64{2, -0.5}, w)
	testutil.RequireComplexNear(t, 2*h2, h1, 1e-15)
}

func TestTransfer_EmptyIsSingular(t *testing.T) {
	assert.True(t, IsSingular(TransferComplex[float64](nil, nil, 0.1)))
	assert.True(t, TransferTrig([]float64{1}, nil, 0.1).IsSingular())
}

func TestSingularity_PoleOnUnitCircle(t *testing.T) {
	// 1 + z^-2 vanishes at w = π/2.
	c := biquad.New[float64](1, 0, 0, 0, 1)
	w := math.Pi / 2

	h := Complex(c, w)
	assert.True(t, math.IsInf(real(h), 1))
	assert.True(t, math.IsInf(imag(h), 1))

	r := Trig(c, w)
	assert.Equal(t, Result[float64]{Magnitude: math.Inf(1)}, r)
	assert.True(t, math.IsInf(r.DB(), 1))
	assert.False(t, math.IsNaN(r.Phase))

	assert.True(t, IsSingular(TransferComplex([]float64{1, 0, 0}, []float64{1, 0, 1}, w)))
	assert.True(t, TransferTrig([]float64{1, 0}, []float64{1, -1}, 0).IsSingular())

	c32 := biquad.New[float32](1, 0, 0, 0, 1)
	assert.True(t, Trig(c32, float32(math.Pi/2)).IsSingular())
	assert.True(t, IsSingular(Complex(c32, float32(math.Pi/2))))
}

func TestHzVariantsNormalizeBySampleRate(t *testing.T) {
	c := design.BandPass(500.0, 3, 8000)
	num, den := c.Zeros(), c.Poles()
	w := core.NormalizedOmega(700.0, 8000)

	assert.Equal(t, Complex(c, w), ComplexAt(c, 700, 8000))
	assert.Equal(t, Trig(c, w), TrigAt(c, 700, 8000))
	assert.Equal(t, TransferComplex(num, den, w), TransferComplexAt(num, den, 700, 8000))
	assert.Equal(t, TransferTrig(num, den, w), TransferTrigAt(num, den, 700, 8000))
}

func TestDCAndNyquist(t *testing.T) {
	lp := design.LowPass(2000.0, 0.7, 48000)
	hp := design.HighPass(2000.0, 0.7, 48000)

	assert.InDelta(t, 1, cmplx.Abs(Complex(lp, 0)), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(Complex(hp, 0)), 1e-12)
	assert.InDelta(t, 0, Trig(lp, math.Pi).Magnitude, 1e-12)
	assert.InDelta(t, 1, Trig(hp, math.Pi).Magnitude, 1e-12)

	// DC response of an order-N transfer function is Σnum / Σden.
	num := []float64{0.3, 0.2, 0.1}
	den := []float64{1, -0.5, 0.25}
	assert.InDelta(t, 0.6/0.75, real(TransferComplex(num, den, 0)), 1e-15)
	assert.InDelta(t, 0, imag(TransferComplex(num, den, 0)), 1e-15)
}

func TestFloat32Evaluation(t *testing.T) {
	c64 := design.PeakEq(6.0, 1000, 2, 48000)
	c32 := design.PeakEq[float32](6, 1000, 2, 48000)

	for _, f := range []float32{100, 1000, 5000} {
		r32 := TrigAt(c32, f, 48000)
		r64 := TrigAt(c64, float64(f), 48000)
		assert.InDelta(t, r64.DB(), float64(r32.DB()), 1e-3, "f=%v", f)
		assert.InDelta(t, r64.Phase, float64(r32.Phase), 1e-4, "f=%v", f)

		h := ComplexAt(c32, f, 48000)
		assert.InDelta(t, r64.Magnitude, cmplx.Abs(h), 1e-5, "f=%v", f)
	}
}

func TestResultConversions(t *testing.T) {
	r := Result[float64]{Magnitude: 2, Phase: math.Pi / 3}
	assert.InDelta(t, 20*math.Log10(2), r.DB(), 1e-15)

	back := FromComplex[float64](r.Complex())
	assert.InDelta(t, r.Magnitude, back.Magnitude, 1e-15)
	assert.InDelta(t, r.Phase, back.Phase, 1e-15)

	// The negative real axis maps to +π, never -π.
	neg := FromComplex[float64](complex(-1, math.Copysign(0, -1)))
	assert.Equal(t, math.Pi, neg.Phase)

	inf := FromComplex[float32](complex(math.Inf(1), 0))
	assert.True(t, inf.IsSingular())
	assert.Equal(t, float32(0), inf.Phase)
	assert.True(t, IsSingular(inf.Complex()))
}

// agreementUlps is the slack, in units of machine epsilon, allowed between
// two evaluations of the same response.
const agreementUlps = 16

// agreementTol returns agreementUlps·ε·(Σ|num| + |H|·Σ|den|) / |D(w)|, the
// rounding bound for evaluating num/den at w in float64.
func agreementTol(num, den []float64, w, mag float64) float64 {
	var sn, sd float64
	var d complex128
	for i := range min(len(num), len(den)) {
		sn += math.Abs(num[i])
		sd += math.Abs(den[i])
		d += complex(den[i], 0) * cmplx.Rect(1, -float64(i)*w)
	}
	return agreementUlps * core.Epsilon[float64]() * (sn + mag*sd) / cmplx.Abs(d)
}

func requireAgree(t *testing.T, num, den []float64, w float64, got, want complex128, label string) {
	t.Helper()
	tol := agreementTol(num, den, w, cmplx.Abs(want))
	if d := cmplx.Abs(got - want); !(d <= tol) {
		t.Fatalf("%s: got %v, want %v (|diff| %g > %g)", label, got, want, d, tol)
	}
	if d := math.Abs(cmplx.Abs(got) - cmplx.Abs(want)); !(d <= tol) {
		t.Fatalf("%s: |got| %v, |want| %v (diff %g > %g)", label, cmplx.Abs(got), cmplx.Abs(want), d, tol)
	}
}
