// Package simdops provides SIMD-accelerated series operations for float64 samples.
//
// Function pointers let callers stay agnostic of the underlying implementation
// while the hot paths delegate to github.com/tphakala/simd.
package simdops

import (
	"github.com/tphakala/simd/f64"
)

// Ops provides SIMD-accelerated operations on float64 slices.
type Ops struct {
	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)

	// Sum returns the sum of all elements.
	Sum func(a []float64) float64
}

// Pre-instantiated operations, package-level to avoid repeated allocation.
var ops64 = Ops{
	Scale: f64.Scale,
	Sum:   f64.Sum,
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops {
	return &ops64
}

// Generic returns pure Go implementations of the same operations.
// Used as a reference in tests.
func Generic() *Ops {
	return &Ops{
		Scale: func(dst, a []float64, s float64) {
			for i, v := range a {
				dst[i] = v * s
			}
		},
		Sum: func(a []float64) float64 {
			var sum float64
			for _, v := range a {
				sum += v
			}
			return sum
		},
	}
}
