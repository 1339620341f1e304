// Package preset loads animation settings from YAML files and remembers the
// last used settings between runs.
//
// A settings file may set any subset of fields; the rest keep their
// defaults:
//
//	frames: 120
//	fps: 24
//	params:
//	  maxDistB: 60
//	  easing: cubic
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	inkmotion "github.com/tphakala/go-ink-motion"
)

// ErrInvalidPreset indicates a settings file that does not describe a usable cycle.
var ErrInvalidPreset = errors.New("invalid preset")

// Default playback rate, matching the reference animation.
const DefaultFPS = 30

// Settings is everything needed to reproduce an animation.
type Settings struct {
	Frames int              `yaml:"frames"`
	FPS    int              `yaml:"fps"`
	Params inkmotion.Params `yaml:"params"`
}

// Default returns the reference settings.
func Default() Settings {
	return Settings{
		Frames: inkmotion.DefaultTotalFrames,
		FPS:    DefaultFPS,
		Params: inkmotion.DefaultParams(),
	}
}

// Validate checks the settings, including the motion parameters.
func (s *Settings) Validate() error {
	if s.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidPreset, s.FPS)
	}
	cfg := s.Config()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}
	return nil
}

// Config returns the model configuration described by the settings.
func (s *Settings) Config() inkmotion.Config {
	return inkmotion.Config{TotalFrames: s.Frames, Params: s.Params}
}

// Decode reads YAML settings over the defaults. Unknown keys are rejected.
func Decode(r io.Reader) (Settings, error) {
	s := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load reads a YAML settings file.
func Load(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to open preset: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Encode writes the settings as YAML.
func Encode(w io.Writer, s Settings) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&s); err != nil {
		return err
	}
	return enc.Close()
}

func marshal(s Settings) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
