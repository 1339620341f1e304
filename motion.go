package inkmotion

import (
	"fmt"

	"github.com/tphakala/go-ink-motion/internal/mathutil"
)

// PointState is the position of one point on the line and its opacity.
type PointState struct {
	Position float64 `json:"position"`
	Opacity  float64 `json:"opacity"`
}

// PointB computes the absorbed point from an eased phase.
//
// B sits at eased·MaxDistB. Within AbsorptionThreshold of the origin its
// opacity ramps linearly from 0 up to AlphaCap; beyond that it stays at
// AlphaCap. At eased phase 0 B is fully absorbed: position 0, opacity 0.
func PointB(eased float64, p Params) (PointState, error) {
	if err := checkUnit("eased phase", eased); err != nil {
		return PointState{}, err
	}
	if err := p.Validate(); err != nil {
		return PointState{}, err
	}
	return pointB(eased, &p), nil
}

// PointC computes the repelled point from an eased phase and B's position.
//
// C's offset from B is interpolated linearly from RelMin to RelMax; C is
// always fully opaque.
func PointC(eased, xB float64, p Params) (PointState, error) {
	if err := checkUnit("eased phase", eased); err != nil {
		return PointState{}, err
	}
	if !mathutil.IsFinite(xB) {
		return PointState{}, fmt.Errorf("%w: B position must be finite, got %v", ErrInvalidArgument, xB)
	}
	if err := p.Validate(); err != nil {
		return PointState{}, err
	}
	return pointC(eased, xB, &p), nil
}

// pointB and pointC assume validated inputs.
func pointB(eased float64, p *Params) PointState {
	x := eased * p.MaxDistB
	return PointState{Position: x, Opacity: absorbedOpacity(x, p)}
}

func pointC(eased, xB float64, p *Params) PointState {
	rel := mathutil.Lerp(p.RelMin, p.RelMax, eased)
	return PointState{Position: xB + rel, Opacity: maxOpacity}
}

func absorbedOpacity(x float64, p *Params) float64 {
	if x < p.AbsorptionThreshold {
		return x / p.AbsorptionThreshold * p.AlphaCap
	}
	return p.AlphaCap
}
