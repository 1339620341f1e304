package inkmotion

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes one sampled cycle.
type Summary struct {
	TotalFrames int

	// PeakFrame is the first frame at which the cycle phase is maximal.
	PeakFrame int

	// Position ranges of B and C over the cycle.
	MinAbsorbed, MaxAbsorbed float64
	MinRepelled, MaxRepelled float64

	// Separation is C's position minus B's position.
	MinSeparation, MaxSeparation float64
	MeanSeparation               float64
	SeparationStdDev             float64

	// MeanAbsorbedOpacity is B's opacity averaged over all frames.
	MeanAbsorbedOpacity float64

	// FadingFrames counts frames in which B is inside the absorption zone
	// (opacity below the cap); HiddenFrames counts those where it is invisible.
	FadingFrames int
	HiddenFrames int
}

// Summary samples the cycle and reduces it to a [Summary].
func (m *Model) Summary() Summary {
	return m.Summarize(m.Trajectory())
}

// Summarize reduces an already sampled trajectory of this model.
func (m *Model) Summarize(t *Trajectory) Summary {
	n := t.Len()
	s := Summary{TotalFrames: n}
	if n == 0 {
		return s
	}

	separation := make([]float64, n)
	floats.SubTo(separation, t.RepelledPosition, t.AbsorbedPosition)

	s.PeakFrame = floats.MaxIdx(t.Phase)
	s.MinAbsorbed = floats.Min(t.AbsorbedPosition)
	s.MaxAbsorbed = floats.Max(t.AbsorbedPosition)
	s.MinRepelled = floats.Min(t.RepelledPosition)
	s.MaxRepelled = floats.Max(t.RepelledPosition)
	s.MinSeparation = floats.Min(separation)
	s.MaxSeparation = floats.Max(separation)
	if n > 1 {
		s.MeanSeparation, s.SeparationStdDev = stat.MeanStdDev(separation, nil)
	} else {
		s.MeanSeparation = separation[0]
	}
	s.MeanAbsorbedOpacity = m.ops.Sum(t.AbsorbedOpacity) / float64(n)

	capOpacity := m.config.Params.AlphaCap
	for _, a := range t.AbsorbedOpacity {
		if a < capOpacity {
			s.FadingFrames++
		}
		if a == 0 {
			s.HiddenFrames++
		}
	}

	return s
}
