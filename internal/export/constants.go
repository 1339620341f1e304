package export

// Defaults matching the reference animation
const (
	DefaultFPS  = 30
	DefaultDir  = "public"
	DefaultName = "ink_ratio_physics"
)

// GIF timing
const (
	gifDelayUnitsPerSecond = 100 // GIF frame delays are in 1/100 s
	gifLoopForever         = 0
)

// Rendering fan-out
const (
	framesPerWorkerBatch = 2 // Frames rendered per worker before encoding catches up
)

// File layout
const (
	pngFramePattern = "frame_%04d.png"
	dirPerm         = 0o755
	bytesPerPixel   = 4 // RGBA
)
