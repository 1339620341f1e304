package inkmotion

import (
	"fmt"
	"math"

	"github.com/tphakala/go-ink-motion/internal/mathutil"
)

// Ease applies the raised-cosine ease-in-out curve (1 - cos(phase·π)) / 2.
//
// Ease(0) = 0, Ease(1) = 1, Ease(0.5) = 0.5 and Ease(1-p) = 1 - Ease(p)
// (up to floating-point rounding).
func Ease(phase float64) (float64, error) {
	if err := checkUnit("phase", phase); err != nil {
		return 0, err
	}
	return mathutil.CosineEase(phase), nil
}

// EaseWith applies the easing curve configured in p.
func EaseWith(phase float64, p Params) (float64, error) {
	if err := checkUnit("phase", phase); err != nil {
		return 0, err
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p.easeFunc()(phase), nil
}

// checkUnit rejects NaN and values outside [0, 1].
func checkUnit(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: %s %v outside [0, 1]", ErrInvalidArgument, name, v)
	}
	return nil
}
