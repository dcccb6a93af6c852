package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/riffrun/internal/core"
)

var palette = []core.Color{
	core.ColorDefault,
	core.ColorRed,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightYellow,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorBrightWhite,
	core.ColorOrange,
	core.ColorGray,
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette))
	for _, c := range palette {
		style := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
