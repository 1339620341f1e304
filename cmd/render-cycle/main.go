// Command render-cycle renders one ink ratio cycle to a video, an animated
// GIF or a numbered PNG sequence.
//
// Usage:
//
//	render-cycle                                   # public/ink_ratio_physics.mp4, or .gif without ffmpeg
//	render-cycle -format gif -frames 120 -fps 24
//	render-cycle -params cycle.yaml -easing cubic -dir out
//	render-cycle -format png -width 1600 -height 800
//	render-cycle -poster public/poster.jpg -poster-width 400
//
// MP4 output requires ffmpeg on PATH. With -format auto a missing or failing
// ffmpeg falls back to GIF.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/tphakala/go-ink-motion/internal/export"
	"github.com/tphakala/go-ink-motion/internal/preset"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	settingsFlags := preset.RegisterFlags(flag.CommandLine)
	format := flag.String("format", defaultFormat, "Output format: auto, mp4, gif, png")
	dir := flag.String("dir", export.DefaultDir, "Output directory")
	name := flag.String("name", export.DefaultName, "Output base name")
	width := flag.Int("width", defaultWidth, "Frame width in pixels")
	height := flag.Int("height", defaultHeight, "Frame height in pixels")
	workers := flag.Int("workers", 0, "Concurrent frame renderers (0 = GOMAXPROCS)")
	parallel := flag.Bool("parallel", true, "Sample the trajectory in parallel")
	noTitle := flag.Bool("no-title", false, "Omit the title")
	noLegend := flag.Bool("no-legend", false, "Omit the legend")
	poster := flag.String("poster", "", "Also save the peak frame as a still image (png, jpg, gif, tif, bmp)")
	posterWidth := flag.Int("poster-width", 0, "Poster width in pixels (0 = frame width)")
	timeout := flag.Duration("timeout", 0, "Abort the export after this long (0 disables)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	settings, err := settingsFlags.Resolve(preset.Default())
	if err != nil {
		return err
	}

	f, err := export.ParseFormat(*format)
	if err != nil {
		return err
	}

	job, err := newJob(&settings, &renderOptions{
		format:   f,
		dir:      *dir,
		name:     *name,
		width:    *width,
		height:   *height,
		workers:  *workers,
		parallel: *parallel,
		title:    !*noTitle,
		legend:   !*noLegend,
	})
	if err != nil {
		return err
	}

	if *verbose {
		job.Log = log.Default()
		if p := settingsFlags.Path(); p != "" {
			log.Printf("Settings: %s", p)
		}
		log.Printf("Cycle: %d frames at %d fps", settings.Frames, settings.FPS)
		log.Printf("Params: %+v", settings.Params)
		log.Printf("Canvas: %dx%d", *width, *height)
		log.Printf("Format: %s", f)
		printSummary(job)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := export.Export(ctx, *job)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("Wrote %d frames as %s to %s in %v\n",
		res.Frames, res.Format, res.Path, time.Since(start).Round(time.Millisecond))

	if *poster != "" {
		if err := savePoster(job, *poster, *posterWidth); err != nil {
			return err
		}
		fmt.Printf("Wrote poster to %s\n", *poster)
	}
	return nil
}
