// Package raster turns motion model frame states into images.
//
// A [Renderer] owns no mutable state after construction; each call to
// [Renderer.Render] builds its own rasterizer and font face, so one renderer
// can serve many goroutines.
package raster

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidScene indicates unusable scene parameters.
var ErrInvalidScene = errors.New("invalid scene")

// Marker describes how one point is drawn.
type Marker struct {
	Label string
	Color color.RGBA

	// Radius in world units.
	Radius float64

	// AlphaScale multiplies the point's model opacity.
	AlphaScale float64
}

// Scene fixes the canvas, the world window and the look of the three points.
type Scene struct {
	Width, Height int

	// World window. The mapping keeps world units square and centers the
	// window on the canvas.
	XMin, XMax float64
	YMin, YMax float64

	Background color.RGBA
	Title      string
	ShowLegend bool

	// Markers for A (fixed), B (absorbed) and C (repelled).
	Markers [3]Marker
}

// DefaultScene returns the reference look: white canvas, A blue, B green,
// C red, all of radius 15, with title and legend.
func DefaultScene() Scene {
	return Scene{
		Width:      defaultWidth,
		Height:     defaultHeight,
		XMin:       defaultXMin,
		XMax:       defaultXMax,
		YMin:       defaultYMin,
		YMax:       defaultYMax,
		Background: colorWhite,
		Title:      "Ink Ratio Physics Animation",
		ShowLegend: true,
		Markers: [3]Marker{
			{Label: "Point A", Color: colorBlue, Radius: defaultRadius, AlphaScale: defaultAlphaScale},
			{Label: "Point B", Color: colorGreen, Radius: defaultRadius, AlphaScale: 1},
			{Label: "Point C", Color: colorRed, Radius: defaultRadius, AlphaScale: defaultAlphaScale},
		},
	}
}

// Validate checks if the scene is drawable.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: canvas size must be positive, got %dx%d", ErrInvalidScene, s.Width, s.Height)
	}
	if s.XMax <= s.XMin || s.YMax <= s.YMin {
		return fmt.Errorf("%w: empty world window", ErrInvalidScene)
	}
	for i, m := range s.Markers {
		if m.Radius <= 0 {
			return fmt.Errorf("%w: marker %d radius must be positive", ErrInvalidScene, i)
		}
		if m.AlphaScale < 0 || m.AlphaScale > 1 {
			return fmt.Errorf("%w: marker %d alpha scale must be in [0, 1]", ErrInvalidScene, i)
		}
	}
	return nil
}

// viewport maps world coordinates onto pixels.
type viewport struct {
	scale float64
	offX  float64
	offY  float64
	xMin  float64
	yMax  float64
}

func newViewport(s *Scene) viewport {
	sx := float64(s.Width) / (s.XMax - s.XMin)
	sy := float64(s.Height) / (s.YMax - s.YMin)
	scale := min(sx, sy)
	return viewport{
		scale: scale,
		offX:  (float64(s.Width) - scale*(s.XMax-s.XMin)) / 2,
		offY:  (float64(s.Height) - scale*(s.YMax-s.YMin)) / 2,
		xMin:  s.XMin,
		yMax:  s.YMax,
	}
}

func (v viewport) toPixel(x, y float64) (px, py float64) {
	return v.offX + (x-v.xMin)*v.scale, v.offY + (v.yMax-y)*v.scale
}
