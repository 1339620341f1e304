// Package export renders a motion model cycle and writes it as a video,
// an animated GIF or a PNG frame sequence.
package export

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"
)

// Format selects the output container.
type Format string

// Supported formats. [FormatAuto] tries MP4 and falls back to GIF.
const (
	FormatAuto Format = "auto"
	FormatMP4  Format = "mp4"
	FormatGIF  Format = "gif"
	FormatPNG  Format = "png"
)

// Common errors returned by exporters.
var (
	// ErrUnknownFormat indicates an unsupported output format name.
	ErrUnknownFormat = errors.New("unknown export format")

	// ErrFFmpegNotFound indicates that MP4 output was requested but no
	// ffmpeg binary is on PATH.
	ErrFFmpegNotFound = errors.New("ffmpeg not found")

	// ErrInvalidJob indicates missing or inconsistent job fields.
	ErrInvalidJob = errors.New("invalid export job")
)

// ParseFormat maps a user-supplied name to a [Format].
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatMP4, FormatGIF, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want auto, mp4, gif or png)", ErrUnknownFormat, s)
	}
}

// Encoder consumes rendered frames in order.
type Encoder interface {
	// Encode appends one frame. Frames must share the encoder's bounds.
	Encode(img *image.RGBA) error

	// Close finishes the output. It must be called exactly once, also after
	// a failed Encode, to release resources.
	Close() error
}

// OutputPath returns where a format writes inside dir: "<name>.mp4",
// "<name>.gif", or the directory "<name>_frames" for PNG sequences.
func OutputPath(dir, name string, f Format) string {
	switch f {
	case FormatPNG:
		return filepath.Join(dir, name+"_frames")
	default:
		return filepath.Join(dir, name+"."+string(f))
	}
}
