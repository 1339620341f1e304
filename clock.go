package inkmotion

import (
	"fmt"

	"github.com/tphakala/go-ink-motion/internal/mathutil"
)

// Phase maps a frame index to its triangular cycle phase in [0, 1].
//
// With c = frameIndex / totalFrames, the phase is 2c on the rising half
// (c < 0.5) and 2 - 2c on the falling half, so it peaks at exactly 1 on
// frame totalFrames/2 and returns towards 0 at the end of the cycle.
func Phase(frameIndex, totalFrames int) (float64, error) {
	if totalFrames <= 0 {
		return 0, fmt.Errorf("%w: totalFrames must be positive, got %d", ErrInvalidArgument, totalFrames)
	}
	if frameIndex < 0 || frameIndex >= totalFrames {
		return 0, fmt.Errorf("%w: frame index %d outside [0, %d)", ErrInvalidArgument, frameIndex, totalFrames)
	}

	c := float64(frameIndex) / float64(totalFrames)
	return mathutil.TriangleWave(c), nil
}

// WrapFrame maps any frame number onto the cycle [0, totalFrames).
// Negative frames count backwards from the end of the cycle.
// totalFrames must be positive.
func WrapFrame(frame int64, totalFrames int) int {
	n := int64(totalFrames)
	i := frame % n
	if i < 0 {
		i += n
	}
	return int(i)
}
