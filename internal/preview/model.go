// Package preview plays a motion model cycle in the terminal.
package preview

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	inkmotion "github.com/tphakala/go-ink-motion"
)

// ErrInvalidOptions indicates unusable preview options.
var ErrInvalidOptions = errors.New("invalid preview options")

// Options control playback and display.
type Options struct {
	FPS   int
	Width int // Track width in cells; 0 uses DefaultWidth

	// Spring smooths the displayed positions of B and C. The model itself
	// is unaffected.
	Spring          bool
	SpringFrequency float64
	SpringDamping   float64
}

// DefaultOptions returns 30 fps playback on a 72 cell track without
// smoothing.
func DefaultOptions() Options {
	return Options{
		FPS:             DefaultFPS,
		Width:           DefaultWidth,
		SpringFrequency: DefaultSpringFrequency,
		SpringDamping:   DefaultSpringDamping,
	}
}

func (o *Options) validate() error {
	if o.FPS < minFPS || o.FPS > maxFPS {
		return fmt.Errorf("%w: fps must be in [%d, %d], got %d", ErrInvalidOptions, minFPS, maxFPS, o.FPS)
	}
	if o.Width != 0 && o.Width < minWidth {
		return fmt.Errorf("%w: width must be at least %d, got %d", ErrInvalidOptions, minWidth, o.Width)
	}
	if o.SpringFrequency <= 0 || o.SpringDamping <= 0 {
		return fmt.Errorf("%w: spring frequency and damping must be positive", ErrInvalidOptions)
	}
	return nil
}

// Model is the bubbletea model of the preview.
type Model struct {
	motion *inkmotion.Model
	frame  int64
	fps    int
	width  int
	paused bool

	// Displayed positions and velocities of B and C.
	spring     harmonica.Spring
	springOn   bool
	freq, damp float64
	bPos, bVel float64
	cPos, cVel float64

	windowWidth int
	quitting    bool
}

// New creates a preview of m starting at frame 0.
func New(m *inkmotion.Model, opts Options) (Model, error) {
	if m == nil {
		return Model{}, fmt.Errorf("%w: nil motion model", ErrInvalidOptions)
	}
	if err := opts.validate(); err != nil {
		return Model{}, err
	}

	width := opts.Width
	if width == 0 {
		width = DefaultWidth
	}

	p := Model{
		motion:   m,
		fps:      opts.FPS,
		width:    width,
		springOn: opts.Spring,
		freq:     opts.SpringFrequency,
		damp:     opts.SpringDamping,
	}
	p.resetSpring()
	return p, nil
}

// Frame returns the current position in the cycle.
func (m Model) Frame() int {
	return inkmotion.WrapFrame(m.frame, m.motion.TotalFrames())
}

// FPS returns the current playback speed.
func (m Model) FPS() int { return m.fps }

// Paused reports whether playback is paused.
func (m Model) Paused() bool { return m.paused }

// SpringEnabled reports whether displayed positions are smoothed.
func (m Model) SpringEnabled() bool { return m.springOn }

func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			return m, tea.Quit
		}
		switch msg.String() {
		case " ":
			m.paused = !m.paused
		case "left", "h":
			m.step(-1)
		case "right", "l":
			m.step(1)
		case "+", "=":
			m.setFPS(m.fps + fpsStep)
		case "-", "_":
			m.setFPS(m.fps - fpsStep)
		case "s":
			m.springOn = !m.springOn
			m.resetSpring()
		}
		return m, nil

	case tickMsg:
		if !m.paused {
			m.step(1)
		}
		m.settle()
		return m, tickCmd(m.fps)

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		return m, nil
	}

	return m, nil
}

func (m *Model) step(delta int64) {
	m.frame = int64(inkmotion.WrapFrame(m.frame+delta, m.motion.TotalFrames()))
	if !m.springOn {
		m.snap()
	}
}

func (m *Model) setFPS(fps int) {
	fps = max(minFPS, min(maxFPS, fps))
	if fps == m.fps {
		return
	}
	m.fps = fps
	m.spring = harmonica.NewSpring(harmonica.FPS(m.fps), m.freq, m.damp)
}

// resetSpring rebuilds the spring for the current rate and puts the
// displayed points on their targets.
func (m *Model) resetSpring() {
	m.spring = harmonica.NewSpring(harmonica.FPS(m.fps), m.freq, m.damp)
	m.snap()
}

func (m *Model) snap() {
	fs := m.motion.FrameAt(m.frame)
	m.bPos, m.bVel = fs.Absorbed.Position, 0
	m.cPos, m.cVel = fs.Repelled.Position, 0
}

// settle advances the displayed points one tick toward the model.
func (m *Model) settle() {
	if !m.springOn {
		m.snap()
		return
	}
	fs := m.motion.FrameAt(m.frame)
	m.bPos, m.bVel = m.spring.Update(m.bPos, m.bVel, fs.Absorbed.Position)
	m.cPos, m.cVel = m.spring.Update(m.cPos, m.cVel, fs.Repelled.Position)
}

// displayed returns the frame state as drawn: the model's state with B and
// C positions replaced by their smoothed values.
func (m Model) displayed() inkmotion.FrameState {
	fs := m.motion.FrameAt(m.frame)
	fs.Absorbed.Position = m.bPos
	fs.Repelled.Position = m.cPos
	return fs
}
