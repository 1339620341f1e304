package inkmotion

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tphakala/go-ink-motion/internal/easing"
	"github.com/tphakala/go-ink-motion/internal/mathutil"
)

// Common errors returned by the motion model.
var (
	// ErrInvalidArgument indicates an out-of-range frame index, a non-positive
	// frame count, a phase outside [0, 1] or an invalid parameter.
	ErrInvalidArgument = errors.New("invalid argument")
)

// EasingCurve names the ease-in-out curve applied to the cycle phase.
type EasingCurve string

// Supported easing curves. [EasingSine] is the raised-cosine curve and the default.
const (
	EasingSine   EasingCurve = "sine"
	EasingLinear EasingCurve = "linear"
	EasingQuad   EasingCurve = "quad"
	EasingCubic  EasingCurve = "cubic"
	EasingQuart  EasingCurve = "quart"
	EasingQuint  EasingCurve = "quint"
	EasingCirc   EasingCurve = "circ"
)

// EasingCurves returns the names of all supported easing curves.
func EasingCurves() []EasingCurve {
	names := easing.Names()
	curves := make([]EasingCurve, len(names))
	for i, n := range names {
		curves[i] = EasingCurve(n)
	}
	return curves
}

// Params configures the point motion models.
// The zero value is not valid; start from [DefaultParams].
type Params struct {
	// MaxDistB is the distance point B travels from the origin at the peak
	// of the cycle.
	MaxDistB float64 `yaml:"maxDistB" json:"maxDistB"`

	// AbsorptionThreshold is the distance from the origin below which B's
	// opacity ramps linearly towards AlphaCap. Must be positive.
	AbsorptionThreshold float64 `yaml:"absorptionThreshold" json:"absorptionThreshold"`

	// AlphaCap is B's opacity once it is at least AbsorptionThreshold away
	// from the origin. Must be in (0, 1].
	AlphaCap float64 `yaml:"alphaCap" json:"alphaCap"`

	// RelMin and RelMax bound C's offset from B. The offset is RelMin at
	// eased phase 0 and RelMax at eased phase 1.
	RelMin float64 `yaml:"relMin" json:"relMin"`
	RelMax float64 `yaml:"relMax" json:"relMax"`

	// Easing selects the curve that smooths the cycle phase.
	// Empty means [EasingSine].
	Easing EasingCurve `yaml:"easing" json:"easing"`
}

// DefaultParams returns the reference configuration: B travels 90 units,
// fades in over the first 5 units up to 0.8 opacity, and C's offset from B
// runs from -10 to 90 on a raised-cosine curve.
func DefaultParams() Params {
	return Params{
		MaxDistB:            DefaultMaxDistB,
		AbsorptionThreshold: DefaultAbsorptionThreshold,
		AlphaCap:            DefaultAlphaCap,
		RelMin:              DefaultRelMin,
		RelMax:              DefaultRelMax,
		Easing:              EasingSine,
	}
}

// Validate checks if the parameters are usable.
func (p *Params) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"maxDistB", p.MaxDistB},
		{"absorptionThreshold", p.AbsorptionThreshold},
		{"alphaCap", p.AlphaCap},
		{"relMin", p.RelMin},
		{"relMax", p.RelMax},
	} {
		if !mathutil.IsFinite(f.value) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidArgument, f.name, f.value)
		}
	}

	if p.MaxDistB < 0 {
		return fmt.Errorf("%w: maxDistB must be non-negative, got %v", ErrInvalidArgument, p.MaxDistB)
	}

	if p.AbsorptionThreshold <= 0 {
		return fmt.Errorf("%w: absorptionThreshold must be positive, got %v", ErrInvalidArgument, p.AbsorptionThreshold)
	}

	if p.AlphaCap <= 0 || p.AlphaCap > maxOpacity {
		return fmt.Errorf("%w: alphaCap must be in (0, 1], got %v", ErrInvalidArgument, p.AlphaCap)
	}

	if _, ok := easing.Lookup(string(p.Easing)); !ok {
		return fmt.Errorf("%w: unknown easing curve %q (want one of %s)",
			ErrInvalidArgument, p.Easing, strings.Join(easing.Names(), ", "))
	}

	return nil
}

// easeFunc returns the configured easing curve. Params must be validated.
func (p *Params) easeFunc() easing.Func {
	fn, ok := easing.Lookup(string(p.Easing))
	if !ok {
		fn, _ = easing.Lookup(easing.Default)
	}
	return fn
}

// Config holds the configuration of a [Model].
type Config struct {
	// TotalFrames is the length of one full forward/backward cycle.
	TotalFrames int

	// Params configures the point motion models.
	Params Params

	// EnableParallel splits trajectory sampling across goroutines.
	// Results are identical to sequential sampling.
	EnableParallel bool
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.TotalFrames <= 0 {
		return fmt.Errorf("%w: totalFrames must be positive, got %d", ErrInvalidArgument, c.TotalFrames)
	}

	if c.TotalFrames > maxTotalFrames {
		return fmt.Errorf("%w: totalFrames too large (max %d)", ErrInvalidArgument, maxTotalFrames)
	}

	return c.Params.Validate()
}
