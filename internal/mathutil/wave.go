// Package mathutil provides the scalar shaping functions behind the motion model.
//
// Functions here do no argument validation; callers in the root package check
// ranges and report errors before delegating.
package mathutil

import "math"

// TriangleWave maps linear cycle progress c ∈ [0, 1) to a triangular phase.
// The phase rises 0→1 over the first half of the cycle and falls 1→0 over the
// second half:
//
//	c < 0.5:  2c
//	c ≥ 0.5:  2 - 2c
//
// The midpoint c = 0.5 belongs to the falling half and evaluates to exactly 1.
func TriangleWave(c float64) float64 {
	if c < cycleMidpoint {
		return c * riseSlope
	}
	return fallOffset - c*riseSlope
}

// CosineEase is the raised-cosine ease-in-out curve (1 - cos(pπ)) / 2.
// It is 0 at p=0, 1 at p=1 and symmetric about p=0.5.
func CosineEase(p float64) float64 {
	return (1 - math.Cos(p*math.Pi)) / halfDivisor
}

// Lerp linearly interpolates between a and b.
// The form a + t*(b-a) is exact at t=0 and t=1 for finite inputs.
// The product is explicitly rounded so it is never fused into an FMA;
// batch code computing the same product separately must match bit for bit.
func Lerp(a, b, t float64) float64 {
	return a + float64(t*(b-a))
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
