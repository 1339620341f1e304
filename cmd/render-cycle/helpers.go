package main

import (
	"fmt"
	"log"

	inkmotion "github.com/tphakala/go-ink-motion"
	"github.com/tphakala/go-ink-motion/internal/export"
	"github.com/tphakala/go-ink-motion/internal/preset"
	"github.com/tphakala/go-ink-motion/internal/raster"
)

// renderOptions holds the output flags.
type renderOptions struct {
	format   export.Format
	dir      string
	name     string
	width    int
	height   int
	workers  int
	parallel bool
	title    bool
	legend   bool
}

// newJob builds the model, the renderer and the export job.
func newJob(s *preset.Settings, o *renderOptions) (*export.Job, error) {
	cfg := s.Config()
	cfg.EnableParallel = o.parallel

	model, err := inkmotion.New(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create motion model: %w", err)
	}

	scene := raster.DefaultScene()
	scene.Width = o.width
	scene.Height = o.height
	scene.ShowLegend = o.legend
	if !o.title {
		scene.Title = ""
	}

	renderer, err := raster.NewRenderer(scene)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return &export.Job{
		Model:    model,
		Renderer: renderer,
		Format:   o.format,
		Dir:      o.dir,
		Name:     o.name,
		FPS:      s.FPS,
		Workers:  o.workers,
	}, nil
}

// printSummary logs the cycle's key figures.
func printSummary(job *export.Job) {
	sum := job.Model.Summary()
	log.Printf("Peak at frame %d: B=%.2f C=%.2f", sum.PeakFrame, sum.MaxAbsorbed, sum.MaxRepelled)
	log.Printf("B hidden for %d frames, fading for %d", sum.HiddenFrames, sum.FadingFrames)
}

// savePoster writes the frame at the cycle peak as a still image.
func savePoster(job *export.Job, path string, width int) error {
	peak := job.Model.TotalFrames() / 2
	return export.Poster(job.Model, job.Renderer, peak, path, width)
}
