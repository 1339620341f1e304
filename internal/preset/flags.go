package preset

import (
	"flag"

	inkmotion "github.com/tphakala/go-ink-motion"
)

// Flags binds the settings to command-line flags. Explicitly set flags
// override values from a settings file, which override the base settings.
type Flags struct {
	fs *flag.FlagSet

	path      string
	frames    int
	fps       int
	maxDist   float64
	threshold float64
	alphaCap  float64
	relMin    float64
	relMax    float64
	easing    string
}

// RegisterFlags defines the settings flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	d := Default()
	f := &Flags{fs: fs}

	fs.StringVar(&f.path, "params", "", "YAML settings file")
	fs.IntVar(&f.frames, "frames", d.Frames, "Frames per cycle")
	fs.IntVar(&f.fps, "fps", d.FPS, "Playback rate in frames per second")
	fs.Float64Var(&f.maxDist, "max-dist", d.Params.MaxDistB, "Peak distance of point B from A")
	fs.Float64Var(&f.threshold, "threshold", d.Params.AbsorptionThreshold, "Distance over which B fades in")
	fs.Float64Var(&f.alphaCap, "alpha-cap", d.Params.AlphaCap, "Opacity of B once fully emerged")
	fs.Float64Var(&f.relMin, "rel-min", d.Params.RelMin, "Offset of C from B at the cycle start")
	fs.Float64Var(&f.relMax, "rel-max", d.Params.RelMax, "Offset of C from B at the cycle peak")
	fs.StringVar(&f.easing, "easing", string(d.Params.Easing), "Easing curve: "+curveList())
	return f
}

// Path returns the settings file named by -params, if any.
func (f *Flags) Path() string { return f.path }

// Resolve combines base, the settings file and explicitly set flags. It
// must be called after the flag set is parsed.
func (f *Flags) Resolve(base Settings) (Settings, error) {
	s := base
	if f.path != "" {
		var err error
		if s, err = Load(f.path); err != nil {
			return Settings{}, err
		}
	}

	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "frames":
			s.Frames = f.frames
		case "fps":
			s.FPS = f.fps
		case "max-dist":
			s.Params.MaxDistB = f.maxDist
		case "threshold":
			s.Params.AbsorptionThreshold = f.threshold
		case "alpha-cap":
			s.Params.AlphaCap = f.alphaCap
		case "rel-min":
			s.Params.RelMin = f.relMin
		case "rel-max":
			s.Params.RelMax = f.relMax
		case "easing":
			s.Params.Easing = inkmotion.EasingCurve(f.easing)
		}
	})

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func curveList() string {
	var list string
	for i, c := range inkmotion.EasingCurves() {
		if i > 0 {
			list += ", "
		}
		list += string(c)
	}
	return list
}
