package inkmotion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-ink-motion/internal/testutil"
)

func TestPointB_FullyAbsorbedAtZero(t *testing.T) {
	b, err := PointB(0, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, PointState{Position: 0, Opacity: 0}, b)
}

func TestPointB_Peak(t *testing.T) {
	b, err := PointB(1, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, PointState{Position: 90, Opacity: 0.8}, b)
}

func TestPointB_OpacityRamp(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		name        string
		position    float64
		wantOpacity float64
	}{
		{"one unit out", 1, 0.16},
		{"half way through the zone", 2.5, 0.4},
		{"just inside the zone", 4.5, 0.72},
		{"at the threshold", 5, 0.8},
		{"well clear", 45, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := PointB(tt.position/p.MaxDistB, p)
			require.NoError(t, err)
			assert.InDelta(t, tt.position, b.Position, testutil.PositionTolerance)
			assert.InDelta(t, tt.wantOpacity, b.Opacity, testutil.PositionTolerance)
		})
	}
}

func TestPointB_MonotoneAndNonNegative(t *testing.T) {
	p := DefaultParams()
	positions := make([]float64, 101)
	opacities := make([]float64, 101)
	for i := range positions {
		b, err := PointB(float64(i)/100, p)
		require.NoError(t, err)
		positions[i] = b.Position
		opacities[i] = b.Opacity
	}
	testutil.AssertMonotonic(t, positions)
	testutil.AssertAllInRange(t, positions, 0, p.MaxDistB)
	testutil.AssertMonotonic(t, opacities)
	testutil.AssertAllInRange(t, opacities, 0, p.AlphaCap)
}

func TestPointB_InvalidArguments(t *testing.T) {
	p := DefaultParams()
	_, err := PointB(-0.1, p)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = PointB(math.NaN(), p)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	p.AbsorptionThreshold = 0
	_, err = PointB(0.5, p)
	assert.ErrorIs(t, err, ErrInvalidArgument, "zero threshold must fail instead of dividing by zero")
}

func TestPointC_Keyframes(t *testing.T) {
	p := DefaultParams()
	// Relative offsets from B at eased quarters.
	keyframes := []struct {
		eased float64
		rel   float64
	}{
		{0, -10},
		{0.25, 15},
		{0.5, 40},
		{0.75, 65},
		{1, 90},
	}

	for _, kf := range keyframes {
		xB := kf.eased * p.MaxDistB
		c, err := PointC(kf.eased, xB, p)
		require.NoError(t, err)
		assert.Equal(t, xB+kf.rel, c.Position, "eased=%v", kf.eased)
		assert.Equal(t, 1.0, c.Opacity)
	}
}

func TestPointC_OverlapsBAtStart(t *testing.T) {
	c, err := PointC(0, 0, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, PointState{Position: -10, Opacity: 1}, c)
}

func TestPointC_CustomBounds(t *testing.T) {
	p := DefaultParams()
	p.RelMin, p.RelMax = 20, -20

	c, err := PointC(0.5, 10, p)
	require.NoError(t, err)
	assert.Equal(t, 10.0, c.Position)
}

func TestPointC_InvalidArguments(t *testing.T) {
	p := DefaultParams()
	_, err := PointC(1.5, 0, p)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = PointC(0.5, math.Inf(1), p)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
