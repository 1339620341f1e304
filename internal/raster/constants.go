package raster

import "image/color"

// Default canvas, matching an 8x4 inch figure at 100 dpi.
const (
	defaultWidth  = 800
	defaultHeight = 400
)

// Default world window in model units.
const (
	defaultXMin = -20.0
	defaultXMax = 200.0
	defaultYMin = -20.0
	defaultYMax = 20.0
)

// Markers
const (
	defaultRadius     = 15.0 // World units
	defaultAlphaScale = 0.8  // Base opacity of A and C
	legendSwatch      = 6.0  // Legend marker radius in pixels
)

// Text layout in pixels
const (
	titleFontSize  = 16.0
	legendFontSize = 12.0
	titleTop       = 24
	legendTop      = 48
	legendRowStep  = 20
	legendRight    = 16
	legendTextGap  = 10
	legendTextLift = 4
)

// bezierCircleK places the control points of a cubic Bézier quarter circle.
// See https://pomax.github.io/bezierinfo/#circles_cubic
const bezierCircleK = 0.551784777779014

const maxAlpha = 0xff

var (
	colorBlue  = color.RGBA{0x00, 0x00, 0xff, 0xff}
	colorGreen = color.RGBA{0x00, 0x80, 0x00, 0xff}
	colorRed   = color.RGBA{0xff, 0x00, 0x00, 0xff}
	colorWhite = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorText  = color.RGBA{0x20, 0x20, 0x20, 0xff}
)
