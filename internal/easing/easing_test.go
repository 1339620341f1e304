package easing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-ink-motion/internal/testutil"
)

// float32 tweens are only accurate to about 1e-6.
const tweenTolerance = testutil.TweenTolerance

func sampleCurve(fn Func, steps int) []float64 {
	out := make([]float64, steps+1)
	for i := range out {
		out[i] = fn(float64(i) / float64(steps))
	}
	return out
}

func TestLookup_EmptyNameIsDefault(t *testing.T) {
	fn, ok := Lookup("")
	require.True(t, ok)
	def, _ := Lookup(Default)
	assert.Equal(t, def(0.3), fn(0.3))
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Lookup("bounce")
	assert.False(t, ok)
	_, ok = Lookup("expo")
	assert.False(t, ok, "expo dips below zero near p=0 and must stay unregistered")
}

func TestNames_Sorted(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{"circ", "cubic", "linear", "quad", "quart", "quint", "sine"}, names)
}

func TestCurves_Invariants(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			fn, ok := Lookup(name)
			require.True(t, ok)

			assert.Equal(t, 0.0, fn(0), "f(0)")
			assert.Equal(t, 1.0, fn(1), "f(1)")
			assert.InDelta(t, 0.5, fn(0.5), tweenTolerance, "f(0.5)")

			samples := sampleCurve(fn, 200)
			testutil.AssertAllInRange(t, samples, 0, 1)
			testutil.AssertMonotonic(t, samples)
			testutil.AssertNoNaNOrInf(t, samples)

			for i := 0; i <= 50; i++ {
				p := float64(i) / 50
				assert.InDelta(t, 1-fn(p), fn(1-p), tweenTolerance, "symmetry at p=%v", p)
			}
		})
	}
}

func TestClampUnit(t *testing.T) {
	assert.Equal(t, 0.0, clampUnit(-1e-7))
	assert.Equal(t, 1.0, clampUnit(1.0000001))
	assert.Equal(t, 0.25, clampUnit(0.25))
}
