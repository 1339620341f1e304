package export

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// gifEncoder collects paletted frames and writes the animation on Close.
// image/gif can only encode a complete animation at once.
type gifEncoder struct {
	path  string
	delay int
	anim  gif.GIF
}

func newGIFEncoder(path string, fps int) *gifEncoder {
	return &gifEncoder{
		path:  path,
		delay: max(1, gifDelayUnitsPerSecond/fps),
		anim:  gif.GIF{LoopCount: gifLoopForever},
	}
}

func (e *gifEncoder) Encode(img *image.RGBA) error {
	p := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(p, img.Bounds(), img, img.Bounds().Min)
	e.anim.Image = append(e.anim.Image, p)
	e.anim.Delay = append(e.anim.Delay, e.delay)
	return nil
}

func (e *gifEncoder) Close() error {
	if len(e.anim.Image) == 0 {
		return nil
	}

	f, err := os.Create(e.path)
	if err != nil {
		return fmt.Errorf("failed to create GIF file: %w", err)
	}

	if err := gif.EncodeAll(f, &e.anim); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode GIF: %w", err)
	}

	return f.Close()
}
