package preview

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Marker colors for A, B and C, and the color a fully transparent point
// fades to.
var (
	markerColors = [3]colorful.Color{
		{R: 0x4f / 255.0, G: 0x7c / 255.0, B: 0xff / 255.0},
		{R: 0x3c / 255.0, G: 0xc8 / 255.0, B: 0x5a / 255.0},
		{R: 0xff / 255.0, G: 0x55 / 255.0, B: 0x55 / 255.0},
	}
	fadedColor = colorful.Color{R: 0x44 / 255.0, G: 0x44 / 255.0, B: 0x44 / 255.0}
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"})

	trackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#444444"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
)

// shade blends from fadedColor toward c as opacity rises, in Lab space so
// the steps look even.
func shade(c colorful.Color, opacity float64) lipgloss.Color {
	opacity = max(0, min(1, opacity))
	return lipgloss.Color(fadedColor.BlendLab(c, opacity).Clamped().Hex())
}

func markerStyle(i int, opacity float64) lipgloss.Style {
	return lipgloss.NewStyle().Bold(opacity > 0.5).Foreground(shade(markerColors[i], opacity))
}
