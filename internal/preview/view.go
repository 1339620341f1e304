package preview

import (
	"fmt"
	"math"
	"strings"

	inkmotion "github.com/tphakala/go-ink-motion"
)

var markerRunes = [3]rune{'A', 'B', 'C'}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	fs := m.displayed()
	width := m.trackWidth()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Ink Ratio Physics Animation"))
	b.WriteString("\n\n")
	b.WriteString(renderTrack(fs.Points(), width))
	b.WriteString("\n\n")

	state := "playing"
	if m.paused {
		state = "paused"
	}
	spring := "off"
	if m.springOn {
		spring = "on"
	}
	status := fmt.Sprintf("frame %3d/%d  %s  %d fps  spring %s",
		m.Frame(), m.motion.TotalFrames(), state, m.fps, spring)
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")

	model := m.motion.FrameAt(m.frame)
	values := fmt.Sprintf("B x=%6.2f α=%.2f   C x=%6.2f",
		model.Absorbed.Position, model.Absorbed.Opacity, model.Repelled.Position)
	b.WriteString(statusStyle.Render(values))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpText()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) trackWidth() int {
	if m.windowWidth > 0 {
		return max(minWidth, min(m.width, m.windowWidth-trackMargin))
	}
	return m.width
}

// column maps a world position to a track cell, or -1 if it is off the track.
func column(x float64, width int) int {
	c := int(math.Round((x - trackXMin) / (trackXMax - trackXMin) * float64(width-1)))
	if c < 0 || c >= width {
		return -1
	}
	return c
}

// renderTrack draws the points on a single line. Later points cover earlier
// ones sharing a cell unless they are fully transparent.
func renderTrack(points [3]inkmotion.PointState, width int) string {
	cells := make([]int, width)
	for i := range cells {
		cells[i] = -1
	}
	for i, p := range points {
		c := column(p.Position, width)
		if c < 0 || (p.Opacity <= 0 && cells[c] >= 0) {
			continue
		}
		cells[c] = i
	}

	var b strings.Builder
	run := 0
	flush := func() {
		if run > 0 {
			b.WriteString(trackStyle.Render(strings.Repeat(string(trackRune), run)))
			run = 0
		}
	}
	for _, idx := range cells {
		if idx < 0 {
			run++
			continue
		}
		flush()
		p := points[idx]
		r := markerRunes[idx]
		if p.Opacity <= 0 {
			r = hiddenRune
		}
		b.WriteString(markerStyle(idx, p.Opacity).Render(string(r)))
	}
	flush()
	return b.String()
}
