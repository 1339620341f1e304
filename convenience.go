package inkmotion

// NewDefault creates a model of the reference cycle: [DefaultTotalFrames]
// frames with [DefaultParams].
func NewDefault() *Model {
	m, err := New(&Config{
		TotalFrames: DefaultTotalFrames,
		Params:      DefaultParams(),
	})
	if err != nil {
		// Defaults are constant and always valid.
		panic("inkmotion: default configuration rejected: " + err.Error())
	}
	return m
}

// NewWithFrames creates a model with default parameters and the given
// cycle length.
func NewWithFrames(totalFrames int) (*Model, error) {
	return New(&Config{
		TotalFrames: totalFrames,
		Params:      DefaultParams(),
	})
}

// ComposeDefault is [Compose] with [DefaultParams].
func ComposeDefault(frameIndex, totalFrames int) (FrameState, error) {
	return Compose(frameIndex, totalFrames, DefaultParams())
}

// Frames is a convenience function returning every frame state of one cycle.
func Frames(totalFrames int, p Params) ([]FrameState, error) {
	m, err := New(&Config{TotalFrames: totalFrames, Params: p})
	if err != nil {
		return nil, err
	}

	t := m.Trajectory()
	frames := make([]FrameState, t.Len())
	for i := range frames {
		frames[i] = t.Frame(i)
	}
	return frames, nil
}
