package inkmotion

// FrameState is the complete snapshot of the three points for one frame.
type FrameState struct {
	// Fixed is point A, pinned at the origin and fully opaque.
	Fixed PointState `json:"fixed"`

	// Absorbed is point B, which emerges from and is absorbed back into A.
	Absorbed PointState `json:"absorbed"`

	// Repelled is point C, pushed outward from B as the phase rises.
	Repelled PointState `json:"repelled"`
}

// Points returns A, B and C in order.
func (f FrameState) Points() [3]PointState {
	return [3]PointState{f.Fixed, f.Absorbed, f.Repelled}
}

// Compose computes the frame state for frameIndex of a cycle totalFrames long.
//
// It runs the cycle clock, the configured easing curve and both point motion
// models in order. Compose has no side effects and keeps no state between
// calls, so frames may be computed concurrently and in any order.
// Errors wrap [ErrInvalidArgument].
func Compose(frameIndex, totalFrames int, p Params) (FrameState, error) {
	if err := p.Validate(); err != nil {
		return FrameState{}, err
	}
	phase, err := Phase(frameIndex, totalFrames)
	if err != nil {
		return FrameState{}, err
	}
	return composeEased(p.easeFunc()(phase), &p), nil
}

// composeEased builds the frame from an already eased phase.
func composeEased(eased float64, p *Params) FrameState {
	b := pointB(eased, p)
	return FrameState{
		Fixed:    PointState{Position: originPosition, Opacity: maxOpacity},
		Absorbed: b,
		Repelled: pointC(eased, b.Position, p),
	}
}
