package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-coins/internal/core"
)

// palette maps cell colors to terminal colors (ANSI 256).
var palette = map[core.Color]lipgloss.Style{
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("76")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen to styled terminal output. Each run of
// same-colored cells gets one style so escape sequences stay few.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleRun(color, run.String()))
		}
	}
	return sb.String()
}

// styleRun renders text in color; uncolored text is written as is.
func styleRun(color core.Color, text string) string {
	style, ok := palette[color]
	if !ok {
		return text
	}
	return style.Render(text)
}
