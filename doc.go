// Package inkmotion provides a deterministic motion model for the "ink ratio"
// animation: three points on a line, one fixed, one absorbed into and emerging
// from it, and one repelled from the absorbed point, over a repeating
// forward/backward cycle.
//
// The model is a pure function of the frame index. It keeps no state between
// calls, so frames can be computed in parallel, out of order, repeatedly or
// memoized, always with identical results.
//
// # Quick Start
//
// For a single frame with the reference parameters:
//
//	fs, err := inkmotion.ComposeDefault(50, 200)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(fs.Absorbed.Position, fs.Absorbed.Opacity)
//
// For repeated queries, bind the configuration once:
//
//	m, err := inkmotion.New(&inkmotion.Config{
//	    TotalFrames: 200,
//	    Params:      inkmotion.DefaultParams(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for i := range m.TotalFrames() {
//	    fs, _ := m.Frame(i)
//	    draw(fs)
//	}
//
// # Model
//
// Each frame is computed in four steps:
//
//	frame ─▶ [Cycle Clock] ─▶ phase ─▶ [Easing] ─▶ eased ─▶ [Point B] ─▶ [Point C]
//
//   - [Phase]: c = frame/total; phase = 2c on the rising half and 2-2c on the
//     falling half, a triangle wave peaking at frame total/2.
//   - [Ease]: (1 - cos(phase·π)) / 2. Other symmetric in-out curves can be
//     selected with [Params.Easing].
//   - [PointB]: position eased·MaxDistB; opacity ramps from 0 to AlphaCap
//     across the first AbsorptionThreshold units, then holds at AlphaCap.
//   - [PointC]: offset from B interpolated linearly from RelMin to RelMax,
//     always opaque.
//
// Point A stays at the origin with opacity 1.
//
// # Parameters
//
// [DefaultParams] reproduces the reference animation: B travels 90 units,
// fades over the first 5 units up to 0.8 opacity, and C's offset from B runs
// -10, 15, 40, 65, 90 at eased quarters.
//
// # Errors
//
// Every precondition violation (frame index outside the cycle, non-positive
// frame count, phase outside [0, 1], non-positive threshold or cap) is
// reported synchronously with an error wrapping [ErrInvalidArgument]. Nothing
// is clamped or retried.
//
// # Collaborators
//
// Rendering, encoding and the terminal preview live in internal packages and
// the commands under cmd/. They only read [FrameState] values.
package inkmotion
