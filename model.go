package inkmotion

import (
	"github.com/tphakala/go-ink-motion/internal/easing"
	"github.com/tphakala/go-ink-motion/internal/simdops"
)

// Model binds a validated cycle length and parameter set.
//
// A Model is immutable after [New] and safe for concurrent use by multiple
// goroutines. Its methods return the same values as [Compose] with the
// model's configuration.
type Model struct {
	config Config
	ease   easing.Func
	ops    *simdops.Ops
}

// New creates a model from the given configuration.
func New(config *Config) (*Model, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Model{
		config: *config,
		ease:   config.Params.easeFunc(),
		ops:    simdops.Float64Ops(),
	}, nil
}

// TotalFrames returns the length of one cycle.
func (m *Model) TotalFrames() int {
	return m.config.TotalFrames
}

// Params returns a copy of the model's motion parameters.
func (m *Model) Params() Params {
	return m.config.Params
}

// Frame returns the state for frameIndex in [0, TotalFrames).
func (m *Model) Frame(frameIndex int) (FrameState, error) {
	phase, err := Phase(frameIndex, m.config.TotalFrames)
	if err != nil {
		return FrameState{}, err
	}
	return composeEased(m.ease(phase), &m.config.Params), nil
}

// FrameAt returns the state for any frame number, wrapping it onto the
// cycle. FrameAt(TotalFrames) equals FrameAt(0), which lets looping players
// run indefinitely.
func (m *Model) FrameAt(frame int64) FrameState {
	// The wrapped index is always in range.
	fs, _ := m.Frame(WrapFrame(frame, m.config.TotalFrames))
	return fs
}
