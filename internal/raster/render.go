package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	inkmotion "github.com/tphakala/go-ink-motion"
)

// Renderer draws frame states onto a [Scene].
type Renderer struct {
	scene Scene
	view  viewport
	font  *truetype.Font
}

// NewRenderer validates the scene and loads the label font.
func NewRenderer(scene Scene) (*Renderer, error) {
	if err := scene.Validate(); err != nil {
		return nil, err
	}

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse label font: %w", err)
	}

	return &Renderer{
		scene: scene,
		view:  newViewport(&scene),
		font:  f,
	}, nil
}

// Scene returns the renderer's scene.
func (r *Renderer) Scene() Scene {
	return r.scene
}

// Bounds returns the canvas rectangle of every rendered frame.
func (r *Renderer) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.scene.Width, r.scene.Height)
}

// Render draws one frame on a fresh canvas.
func (r *Renderer) Render(fs inkmotion.FrameState) *image.RGBA {
	dst := image.NewRGBA(r.Bounds())
	r.RenderInto(dst, fs)
	return dst
}

// RenderInto draws one frame onto dst, which must have the canvas bounds.
// Points are painted A, B, C so that C ends up on top.
func (r *Renderer) RenderInto(dst *image.RGBA, fs inkmotion.FrameState) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(r.scene.Background), image.Point{}, draw.Src)

	z := vector.NewRasterizer(r.scene.Width, r.scene.Height)
	for i, pt := range fs.Points() {
		m := r.scene.Markers[i]
		alpha := pt.Opacity * m.AlphaScale
		if alpha <= 0 {
			continue
		}
		cx, cy := r.view.toPixel(pt.Position, 0)
		fillCircle(z, dst, cx, cy, m.Radius*r.view.scale, withAlpha(m.Color, alpha))
	}

	if r.scene.Title != "" {
		face := truetype.NewFace(r.font, &truetype.Options{Size: titleFontSize, Hinting: font.HintingFull})
		width := font.MeasureString(face, r.scene.Title).Round()
		drawText(dst, face, r.scene.Title, (r.scene.Width-width)/2, titleTop)
		_ = face.Close()
	}

	if r.scene.ShowLegend {
		r.drawLegend(z, dst)
	}
}

// drawLegend lists the markers in the upper right corner.
func (r *Renderer) drawLegend(z *vector.Rasterizer, dst *image.RGBA) {
	face := truetype.NewFace(r.font, &truetype.Options{Size: legendFontSize, Hinting: font.HintingFull})
	defer face.Close()

	labelWidth := 0
	for _, m := range r.scene.Markers {
		labelWidth = max(labelWidth, font.MeasureString(face, m.Label).Round())
	}

	swatchX := float64(r.scene.Width - legendRight - labelWidth - legendTextGap)
	textX := r.scene.Width - legendRight - labelWidth
	for i, m := range r.scene.Markers {
		y := legendTop + i*legendRowStep
		fillCircle(z, dst, swatchX, float64(y), legendSwatch, withAlpha(m.Color, m.AlphaScale))
		drawText(dst, face, m.Label, textX, y+legendTextLift)
	}
}

// fillCircle rasterizes a filled circle from four cubic Bézier quarters
// and composites it over dst.
func fillCircle(z *vector.Rasterizer, dst draw.Image, cx, cy, radius float64, c color.Color) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	z.Reset(w, h)
	z.DrawOp = draw.Over

	k := bezierCircleK * radius
	x, y, rr := float32(cx), float32(cy), float32(radius)
	kk := float32(k)

	z.MoveTo(x+rr, y)
	z.CubeTo(x+rr, y+kk, x+kk, y+rr, x, y+rr)
	z.CubeTo(x-kk, y+rr, x-rr, y+kk, x-rr, y)
	z.CubeTo(x-rr, y-kk, x-kk, y-rr, x, y-rr)
	z.CubeTo(x+kk, y-rr, x+rr, y-kk, x+rr, y)
	z.ClosePath()

	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

func drawText(dst draw.Image, face font.Face, s string, x, y int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(colorText),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// withAlpha returns c at the given opacity (0..1) as a non-premultiplied color.
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	a := math.Round(math.Min(math.Max(alpha, 0), 1) * maxAlpha)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}
