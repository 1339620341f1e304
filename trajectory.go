package inkmotion

import (
	"runtime"
	"sync"

	"github.com/tphakala/go-ink-motion/internal/mathutil"
)

// Trajectory holds one full cycle sampled frame by frame, as parallel series.
// Index i of every series belongs to frame i.
type Trajectory struct {
	Phase            []float64
	Eased            []float64
	AbsorbedPosition []float64
	AbsorbedOpacity  []float64
	RepelledPosition []float64
}

// Len returns the number of sampled frames.
func (t *Trajectory) Len() int {
	return len(t.Phase)
}

// Frame reassembles the state of frame i from the series.
func (t *Trajectory) Frame(i int) FrameState {
	return FrameState{
		Fixed:    PointState{Position: originPosition, Opacity: maxOpacity},
		Absorbed: PointState{Position: t.AbsorbedPosition[i], Opacity: t.AbsorbedOpacity[i]},
		Repelled: PointState{Position: t.RepelledPosition[i], Opacity: maxOpacity},
	}
}

// Trajectory samples every frame of the cycle.
//
// When parallel sampling is enabled and the cycle is long enough, the frame
// range is split into contiguous blocks sampled concurrently. Every block
// runs the same arithmetic, so the result is bit-identical to sequential
// sampling and to calling [Model.Frame] per frame.
func (m *Model) Trajectory() *Trajectory {
	n := m.config.TotalFrames
	t := &Trajectory{
		Phase:            make([]float64, n),
		Eased:            make([]float64, n),
		AbsorbedPosition: make([]float64, n),
		AbsorbedOpacity:  make([]float64, n),
		RepelledPosition: make([]float64, n),
	}

	workers := m.workers(n)
	if workers <= 1 {
		m.sampleRange(t, 0, n)
		return t
	}

	blockSize := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += blockSize {
		hi := min(lo+blockSize, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			m.sampleRange(t, lo, hi)
		}(lo, hi)
	}
	wg.Wait()

	return t
}

func (m *Model) workers(n int) int {
	if !m.config.EnableParallel {
		return 1
	}
	return min(runtime.GOMAXPROCS(0), n/minFramesPerWorker)
}

// sampleRange fills frames [lo, hi) of t. Blocks never overlap, so
// concurrent calls on disjoint ranges do not race.
func (m *Model) sampleRange(t *Trajectory, lo, hi int) {
	p := &m.config.Params
	total := float64(m.config.TotalFrames)

	phase := t.Phase[lo:hi]
	eased := t.Eased[lo:hi]
	for i := range phase {
		phase[i] = mathutil.TriangleWave(float64(lo+i) / total)
		eased[i] = m.ease(phase[i])
	}

	posB := t.AbsorbedPosition[lo:hi]
	m.ops.Scale(posB, eased, p.MaxDistB)

	opacity := t.AbsorbedOpacity[lo:hi]
	for i, x := range posB {
		opacity[i] = absorbedOpacity(x, p)
	}

	// C = B + RelMin + eased*(RelMax-RelMin), matching mathutil.Lerp.
	posC := t.RepelledPosition[lo:hi]
	m.ops.Scale(posC, eased, p.RelMax-p.RelMin)
	for i := range posC {
		posC[i] = posB[i] + (p.RelMin + posC[i])
	}
}
