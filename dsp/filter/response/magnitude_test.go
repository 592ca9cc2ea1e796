package response

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/design"
	"github.com/cwbudde/algo-biquad/internal/testutil"
)

func TestMagnitudes(t *testing.T) {
	h := []complex128{3 + 4i, -1, 0, 1i, complex(math.Inf(1), math.Inf(1))}

	got := Magnitudes(h)
	require.Len(t, got, len(h))
	testutil.RequireSliceNearlyEqual(t, got, []float64{5, 1, 0, 1, math.Inf(1)}, 1e-12, 1e-12)

	db := MagnitudesDB(h)
	assert.InDelta(t, 20*math.Log10(5), db[0], 1e-12)
	assert.True(t, math.IsInf(db[2], -1))
	assert.True(t, math.IsInf(db[4], 1))

	assert.Nil(t, Magnitudes(nil))
	assert.Nil(t, MagnitudesDB(nil))
}

func TestMagnitudes_MatchTrigBatch(t *testing.T) {
	c := design.LowShelfQ(8.0, 4000, 0.5, 48000)
	freqs := testutil.RandomFrequencies(17, 1000, 1, 24000.0)
	e := NewEvaluator[float64](core.WithSampleRate(48000))

	h := e.BiquadComplex(c, freqs)
	r := e.BiquadTrig(c, freqs)

	mags := Magnitudes(h)
	dbs := MagnitudesDB(h)
	phases := Phases(h)
	testutil.RequireFinite(t, mags)
	testutil.RequireFinite(t, phases)

	trigMags := make([]float64, len(r))
	for i := range r {
		trigMags[i] = r[i].Magnitude
	}
	diff, err := testutil.MaxAbsDiff(trigMags, mags)
	require.NoError(t, err)
	assert.Less(t, diff, 1e-12)

	for i := range r {
		assert.InDelta(t, r[i].DB(), dbs[i], 1e-10)
		assert.InDelta(t, 0, testutil.PhaseDiff(r[i].Phase, phases[i]), 1e-12)
	}
}

func TestPhases(t *testing.T) {
	h := []complex128{1i, -1i, complex(-2, math.Copysign(0, -1)), complex(math.Inf(1), 1)}

	got := Phases(h)
	require.Len(t, got, len(h))
	assert.InDelta(t, math.Pi/2, got[0], 1e-15)
	assert.InDelta(t, -math.Pi/2, got[1], 1e-15)
	assert.Equal(t, math.Pi, got[2])
	assert.Zero(t, got[3])

	assert.Nil(t, Phases(nil))
	assert.InDelta(t, cmplx.Phase(1+1i), Phases([]complex128{1 + 1i})[0], 0)
}
