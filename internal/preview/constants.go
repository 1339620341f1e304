package preview

// Playback speed bounds in frames per second.
const (
	DefaultFPS = 30
	minFPS     = 1
	maxFPS     = 120
	fpsStep    = 5
)

// Track layout in terminal cells.
const (
	DefaultWidth = 72
	minWidth     = 16
	trackMargin  = 4
)

// World window shown on the track, matching the rendered video.
const (
	trackXMin = -20.0
	trackXMax = 200.0
)

// Spring smoothing of displayed positions.
const (
	DefaultSpringFrequency = 8.0
	DefaultSpringDamping   = 0.6
)

// Glyphs
const (
	trackRune  = '─'
	hiddenRune = '·'
)
