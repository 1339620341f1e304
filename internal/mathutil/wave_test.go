package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriangleWave_Shape(t *testing.T) {
	tests := []struct {
		name string
		c    float64
		want float64
	}{
		{"start", 0, 0},
		{"quarter", 0.25, 0.5},
		{"midpoint is peak", 0.5, 1},
		{"three quarters", 0.75, 0.5},
		{"just before end", 0.999, 0.002},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TriangleWave(tt.c), 1e-12)
		})
	}
}

func TestTriangleWave_PeakIsExact(t *testing.T) {
	// Falling half owns the midpoint: 2 - 2*0.5 is exactly 1.
	assert.Equal(t, 1.0, TriangleWave(0.5))
}

func TestCosineEase_FixedPoints(t *testing.T) {
	assert.Equal(t, 0.0, CosineEase(0))
	assert.Equal(t, 1.0, CosineEase(1))
	assert.InDelta(t, 0.5, CosineEase(0.5), 1e-15)
}

func TestCosineEase_Symmetric(t *testing.T) {
	for i := 0; i <= 100; i++ {
		p := float64(i) / 100
		assert.InDelta(t, 1-CosineEase(p), CosineEase(1-p), 1e-12, "p=%v", p)
	}
}

func TestLerp_Endpoints(t *testing.T) {
	assert.Equal(t, -10.0, Lerp(-10, 90, 0))
	assert.Equal(t, 90.0, Lerp(-10, 90, 1))
	assert.Equal(t, 40.0, Lerp(-10, 90, 0.5))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0))
	assert.True(t, IsFinite(-1e300))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.Inf(-1)))
}
