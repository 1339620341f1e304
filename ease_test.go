package inkmotion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-ink-motion/internal/testutil"
)

func mustEase(t *testing.T, p float64) float64 {
	t.Helper()
	v, err := Ease(p)
	require.NoError(t, err)
	return v
}

func TestEase_FixedPoints(t *testing.T) {
	assert.Equal(t, 0.0, mustEase(t, 0))
	assert.Equal(t, 1.0, mustEase(t, 1))
	assert.InDelta(t, 0.5, mustEase(t, 0.5), testutil.DefaultTolerance)
}

func TestEase_Symmetry(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		p := float64(i) / 1000
		assert.InDelta(t, 1-mustEase(t, p), mustEase(t, 1-p), testutil.DefaultTolerance, "p=%v", p)
	}
}

func TestEase_Monotone(t *testing.T) {
	s := make([]float64, 501)
	for i := range s {
		s[i] = mustEase(t, float64(i)/500)
	}
	testutil.AssertMonotonic(t, s)
	testutil.AssertAllInRange(t, s, 0, 1)
}

func TestEase_InvalidPhase(t *testing.T) {
	for _, p := range []float64{-0.001, 1.001, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Ease(p)
		assert.ErrorIs(t, err, ErrInvalidArgument, "phase %v", p)
	}
}

func TestEaseWith_DefaultMatchesEase(t *testing.T) {
	p := DefaultParams()
	for i := 0; i <= 20; i++ {
		phase := float64(i) / 20
		got, err := EaseWith(phase, p)
		require.NoError(t, err)
		assert.Equal(t, mustEase(t, phase), got)
	}
}

func TestEaseWith_AlternativeCurve(t *testing.T) {
	p := DefaultParams()
	p.Easing = EasingLinear

	got, err := EaseWith(0.3, p)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, got, testutil.TweenTolerance)

	p.Easing = "bounce"
	_, err = EaseWith(0.3, p)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
