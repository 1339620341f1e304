package raster

import (
	"image"
	"image/color"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inkmotion "github.com/tphakala/go-ink-motion"
)

func newTestRenderer(t *testing.T, scene Scene) *Renderer {
	t.Helper()
	r, err := NewRenderer(scene)
	require.NoError(t, err)
	return r
}

func frame(t *testing.T, i int) inkmotion.FrameState {
	t.Helper()
	fs, err := inkmotion.ComposeDefault(i, inkmotion.DefaultTotalFrames)
	require.NoError(t, err)
	return fs
}

// pixelAt returns the canvas color at world position x on the line.
func pixelAt(r *Renderer, img *image.RGBA, x float64) color.RGBA {
	px, py := r.view.toPixel(x, 0)
	return img.RGBAAt(int(px), int(py))
}

func TestScene_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *Scene)
	}{
		{"zero width", func(s *Scene) { s.Width = 0 }},
		{"negative height", func(s *Scene) { s.Height = -1 }},
		{"empty x window", func(s *Scene) { s.XMax = s.XMin }},
		{"inverted y window", func(s *Scene) { s.YMin, s.YMax = 20, -20 }},
		{"zero radius", func(s *Scene) { s.Markers[1].Radius = 0 }},
		{"alpha scale above one", func(s *Scene) { s.Markers[2].AlphaScale = 2 }},
	}

	s := DefaultScene()
	require.NoError(t, s.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultScene()
			tt.modify(&s)
			_, err := NewRenderer(s)
			assert.ErrorIs(t, err, ErrInvalidScene)
		})
	}
}

func TestViewport_CentersWindow(t *testing.T) {
	s := DefaultScene()
	v := newViewport(&s)

	// 220 world units across 800 pixels; the 40-unit tall window is centered.
	assert.InDelta(t, 800.0/220, v.scale, 1e-12)
	px, py := v.toPixel(-20, 0)
	assert.InDelta(t, 0, px, 1e-9)
	assert.InDelta(t, 200, py, 1e-9)
	px, _ = v.toPixel(200, 0)
	assert.InDelta(t, 800, px, 1e-9)
}

func TestRender_Dimensions(t *testing.T) {
	r := newTestRenderer(t, DefaultScene())
	img := r.Render(frame(t, 0))
	assert.Equal(t, image.Rect(0, 0, 800, 400), img.Bounds())
}

func TestRender_PeakFrameColors(t *testing.T) {
	r := newTestRenderer(t, DefaultScene())
	fs := frame(t, 100)
	img := r.Render(fs)

	a := pixelAt(r, img, fs.Fixed.Position)
	assert.Greater(t, a.B, a.R, "A should be blue")
	assert.Greater(t, a.B, a.G, "A should be blue")

	b := pixelAt(r, img, fs.Absorbed.Position)
	assert.Greater(t, b.G, b.R, "B should be green")
	assert.Greater(t, b.G, b.B, "B should be green")

	c := pixelAt(r, img, fs.Repelled.Position)
	assert.Greater(t, c.R, c.G, "C should be red")
	assert.Greater(t, c.R, c.B, "C should be red")

	// Empty canvas between the points.
	assert.Equal(t, colorWhite, pixelAt(r, img, 30))
}

func TestRender_AbsorbedPointIsInvisible(t *testing.T) {
	s := DefaultScene()
	s.Title = ""
	s.ShowLegend = false
	// Hide A and C so only B could show at the origin.
	s.Markers[0].AlphaScale = 0
	s.Markers[2].AlphaScale = 0
	r := newTestRenderer(t, s)

	img := r.Render(frame(t, 0))
	assert.Equal(t, colorWhite, pixelAt(r, img, 0), "B has opacity 0 on frame 0")
}

func TestRender_TitleAndLegendDrawn(t *testing.T) {
	r := newTestRenderer(t, DefaultScene())
	img := r.Render(frame(t, 100))

	inked := 0
	for y := 0; y < legendTop-legendRowStep/2; y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if img.RGBAAt(x, y) != colorWhite {
				inked++
			}
		}
	}
	assert.Positive(t, inked, "title band should contain text")

	plain := DefaultScene()
	plain.Title = ""
	plain.ShowLegend = false
	bare := newTestRenderer(t, plain).Render(frame(t, 100))
	assert.Equal(t, colorWhite, bare.RGBAAt(10, 10))
}

func TestRender_ConcurrentUse(t *testing.T) {
	r := newTestRenderer(t, DefaultScene())
	fs := frame(t, 42)
	want := r.Render(fs)

	var wg sync.WaitGroup
	results := make([]*image.RGBA, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.Render(fs)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want.Pix, got.Pix)
	}
}

func TestWithAlpha(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0, G: 0x80, B: 0, A: 204}, withAlpha(colorGreen, 0.8))
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0, B: 0, A: 0}, withAlpha(colorRed, -1))
	assert.Equal(t, color.NRGBA{R: 0, G: 0, B: 0xff, A: 0xff}, withAlpha(colorBlue, 3))
}
