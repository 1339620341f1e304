package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	inkmotion "github.com/tphakala/go-ink-motion"
	"github.com/tphakala/go-ink-motion/internal/raster"
)

// Job describes one export run.
type Job struct {
	Model    *inkmotion.Model
	Renderer *raster.Renderer

	Format Format
	Dir    string // Created if missing. Defaults to DefaultDir.
	Name   string // Output base name. Defaults to DefaultName.
	FPS    int    // Defaults to DefaultFPS.

	// Workers bounds concurrent frame rendering. Zero means GOMAXPROCS.
	Workers int

	// Log receives progress messages. Nil disables logging.
	Log *log.Logger
}

// Result reports what an export wrote.
type Result struct {
	Format Format
	Path   string
	Frames int
}

func (j *Job) applyDefaults() {
	if j.Format == "" {
		j.Format = FormatAuto
	}
	if j.Dir == "" {
		j.Dir = DefaultDir
	}
	if j.Name == "" {
		j.Name = DefaultName
	}
	if j.FPS == 0 {
		j.FPS = DefaultFPS
	}
	if j.Workers <= 0 {
		j.Workers = runtime.GOMAXPROCS(0)
	}
}

func (j *Job) validate() error {
	if j.Model == nil || j.Renderer == nil {
		return fmt.Errorf("%w: model and renderer are required", ErrInvalidJob)
	}
	if j.FPS < 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidJob, j.FPS)
	}
	if _, err := ParseFormat(string(j.Format)); err != nil {
		return err
	}
	return nil
}

func (j *Job) logf(format string, args ...any) {
	if j.Log != nil {
		j.Log.Printf(format, args...)
	}
}

// Export renders every frame of one cycle and writes it in the job's format.
//
// With [FormatAuto] an MP4 is attempted first; if ffmpeg is missing or fails,
// the partial file is removed and a GIF is written instead.
func Export(ctx context.Context, job Job) (Result, error) {
	job.applyDefaults()
	if err := job.validate(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(job.Dir, dirPerm); err != nil {
		return Result{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	if job.Format != FormatAuto {
		return exportAs(ctx, &job, job.Format)
	}

	res, err := exportAs(ctx, &job, FormatMP4)
	if err == nil {
		return res, nil
	}
	if !shouldFallBack(ctx, err) {
		return Result{}, err
	}

	job.logf("Could not save MP4 (%v), falling back to GIF", err)
	return exportAs(ctx, &job, FormatGIF)
}

func exportAs(ctx context.Context, job *Job, f Format) (Result, error) {
	path := OutputPath(job.Dir, job.Name, f)
	job.logf("Saving animation to %s...", path)

	enc, err := newEncoder(ctx, f, path, job.Renderer.Bounds(), job.FPS)
	if err != nil {
		return Result{}, err
	}

	n, err := renderFrames(ctx, job, enc)
	closeErr := enc.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		// Never leave a truncated file or frame directory behind.
		_ = os.RemoveAll(path)
		return Result{}, err
	}

	job.logf("Successfully saved %s (%d frames)", path, n)
	return Result{Format: f, Path: path, Frames: n}, nil
}

func newEncoder(ctx context.Context, f Format, path string, bounds image.Rectangle, fps int) (Encoder, error) {
	switch f {
	case FormatMP4:
		enc, err := newMP4Encoder(ctx, path, bounds, fps)
		if err != nil {
			return nil, err
		}
		return enc, nil
	case FormatGIF:
		return newGIFEncoder(path, fps), nil
	case FormatPNG:
		enc, err := newPNGEncoder(path)
		if err != nil {
			return nil, err
		}
		return enc, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// renderFrames renders the cycle in batches, each batch fanned out over the
// worker pool, and feeds every batch to enc in frame order.
func renderFrames(ctx context.Context, job *Job, enc Encoder) (int, error) {
	total := job.Model.TotalFrames()
	batch := make([]*image.RGBA, job.Workers*framesPerWorkerBatch)

	for lo := 0; lo < total; lo += len(batch) {
		hi := min(lo+len(batch), total)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(job.Workers)
		for i := lo; i < hi; i++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				fs, err := job.Model.Frame(i)
				if err != nil {
					return fmt.Errorf("frame %d: %w", i, err)
				}
				batch[i-lo] = job.Renderer.Render(fs)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return lo, err
		}

		for i, img := range batch[:hi-lo] {
			if err := enc.Encode(img); err != nil {
				return lo + i, fmt.Errorf("encoding frame %d: %w", lo+i, err)
			}
		}
	}

	return total, nil
}

// shouldFallBack reports whether a failed MP4 attempt should be retried as
// GIF. Cancellation aborts the whole export.
func shouldFallBack(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
