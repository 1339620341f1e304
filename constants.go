package inkmotion

// Default motion parameters
const (
	// DefaultMaxDistB is how far point B travels from the origin at the cycle peak.
	DefaultMaxDistB = 90.0

	// DefaultAbsorptionThreshold is the distance below which B fades towards invisible.
	DefaultAbsorptionThreshold = 5.0

	// DefaultAlphaCap is B's opacity once clear of the absorption zone.
	DefaultAlphaCap = 0.8

	// DefaultRelMin is C's offset from B at eased phase 0 (C overlaps B).
	DefaultRelMin = -10.0

	// DefaultRelMax is C's offset from B at eased phase 1.
	DefaultRelMax = 90.0
)

// DefaultTotalFrames is the length of the reference cycle.
const DefaultTotalFrames = 200

// Fixed point A
const (
	originPosition = 0.0 // A never moves
	maxOpacity     = 1.0 // Fully opaque (A and C)
)

// Cycle limits
const (
	maxTotalFrames = 1 << 24 // Upper bound on frames per cycle for trajectory allocation
)

// Parallel sampling
const (
	minFramesPerWorker = 256 // Below this, sampling stays on the calling goroutine
)
