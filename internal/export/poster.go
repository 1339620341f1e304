package export

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	inkmotion "github.com/tphakala/go-ink-motion"
	"github.com/tphakala/go-ink-motion/internal/raster"
)

// Poster renders a single frame to a still image. The format follows the
// extension of path (png, jpg, gif, tif, bmp). A positive width rescales
// the image keeping its aspect ratio.
func Poster(m *inkmotion.Model, r *raster.Renderer, frameIndex int, path string, width int) error {
	if m == nil || r == nil {
		return fmt.Errorf("%w: model and renderer are required", ErrInvalidJob)
	}
	if width < 0 {
		return fmt.Errorf("%w: poster width must not be negative, got %d", ErrInvalidJob, width)
	}

	fs, err := m.Frame(frameIndex)
	if err != nil {
		return err
	}

	var img image.Image = r.Render(fs)
	if width > 0 && width != img.Bounds().Dx() {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create poster directory: %w", err)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save poster: %w", err)
	}
	return nil
}
