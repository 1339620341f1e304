// Package easing provides the named ease-in-out curves a motion model can use
// to smooth its cycle phase.
//
// Every curve offered here maps [0, 1] onto [0, 1], fixes both endpoints,
// is monotone non-decreasing and is symmetric about the midpoint
// (f(1-p) = 1 - f(p)). Curves that overshoot (back, elastic, bounce) or that
// dip below zero near the ends (gween's expo) are not registered.
package easing

import (
	"sort"

	"github.com/tanema/gween/ease"

	"github.com/tphakala/go-ink-motion/internal/mathutil"
)

// Func maps a phase in [0, 1] to an eased phase in [0, 1].
type Func func(p float64) float64

// Default is the curve used when none is configured.
const Default = "sine"

var curves = map[string]Func{
	"sine":   mathutil.CosineEase,
	"linear": fromTween(ease.Linear),
	"quad":   fromTween(ease.InOutQuad),
	"cubic":  fromTween(ease.InOutCubic),
	"quart":  fromTween(ease.InOutQuart),
	"quint":  fromTween(ease.InOutQuint),
	"circ":   fromTween(ease.InOutCirc),
}

// Lookup returns the curve registered under name.
// The empty name resolves to [Default].
func Lookup(name string) (Func, bool) {
	if name == "" {
		name = Default
	}
	fn, ok := curves[name]
	return fn, ok
}

// Names returns the registered curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fromTween adapts a gween tween function (t, begin, change, duration) to a
// unit-interval curve. gween works in float32, so results are pinned back
// into [0, 1] to absorb rounding at the ends.
func fromTween(fn ease.TweenFunc) Func {
	return func(p float64) float64 {
		v := float64(fn(float32(p), 0, 1, 1))
		return clampUnit(v)
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
