package export

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// pngEncoder writes every frame as a numbered PNG file.
type pngEncoder struct {
	dir   string
	next  int
	codec png.Encoder
}

func newPNGEncoder(dir string) (*pngEncoder, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create frame directory: %w", err)
	}
	return &pngEncoder{
		dir:   dir,
		codec: png.Encoder{CompressionLevel: png.BestSpeed},
	}, nil
}

func (e *pngEncoder) Encode(img *image.RGBA) error {
	path := filepath.Join(e.dir, fmt.Sprintf(pngFramePattern, e.next))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create frame file: %w", err)
	}

	w := bufio.NewWriter(f)
	if err := e.codec.Encode(w, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode frame %d: %w", e.next, err)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write frame %d: %w", e.next, err)
	}

	e.next++
	return f.Close()
}

func (e *pngEncoder) Close() error {
	return nil
}
