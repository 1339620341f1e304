package export

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"os/exec"
	"strconv"
)

// mp4Encoder pipes raw RGBA frames into an ffmpeg subprocess encoding H.264.
type mp4Encoder struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	w      *bufio.Writer
	stderr bytes.Buffer
	size   image.Point
	closed bool
}

// ffmpegArgs builds the command line for a width x height rgba stream.
// Odd dimensions are padded because yuv420p needs even sizes.
func ffmpegArgs(path string, width, height, fps int) []string {
	return []string{
		"-y",
		"-v", "error",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-r", strconv.Itoa(fps),
		"-i", "pipe:0",
		"-an",
		"-vf", "pad=ceil(iw/2)*2:ceil(ih/2)*2",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-movflags", "+faststart",
		path,
	}
}

func newMP4Encoder(ctx context.Context, path string, bounds image.Rectangle, fps int) (*mp4Encoder, error) {
	ffmpeg, err := exec.LookPath("ffmpeg")
	if err != nil {
		return nil, ErrFFmpegNotFound
	}

	e := &mp4Encoder{size: bounds.Size()}
	e.cmd = exec.CommandContext(ctx, ffmpeg, ffmpegArgs(path, e.size.X, e.size.Y, fps)...)
	e.cmd.Stderr = &e.stderr

	stdin, err := e.cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg stdin pipe: %w", err)
	}

	if err := e.cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting ffmpeg encode: %w", err)
	}

	e.stdin = stdin
	e.w = bufio.NewWriterSize(stdin, e.size.X*e.size.Y*bytesPerPixel)
	return e, nil
}

func (e *mp4Encoder) Encode(img *image.RGBA) error {
	if img.Bounds().Size() != e.size {
		return fmt.Errorf("%w: frame size %v, encoder expects %v", ErrInvalidJob, img.Bounds().Size(), e.size)
	}

	rowBytes := e.size.X * bytesPerPixel
	for y := range e.size.Y {
		off := y * img.Stride
		if _, err := e.w.Write(img.Pix[off : off+rowBytes]); err != nil {
			return fmt.Errorf("writing frame to ffmpeg: %w", err)
		}
	}
	return nil
}

func (e *mp4Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	flushErr := e.w.Flush()
	_ = e.stdin.Close()

	if err := e.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w\n%s", err, e.stderr.Bytes())
	}
	if flushErr != nil {
		return fmt.Errorf("writing frame to ffmpeg: %w", flushErr)
	}
	return nil
}
