package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexmatch/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorPink:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorPurple:  lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorRainbow: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// cellStyle returns the style for a color with attributes applied.
func cellStyle(c core.Color, a core.Attr) lipgloss.Style {
	style, ok := colorStyles[c]
	if !ok {
		style = colorStyles[core.ColorDefault]
	}
	if a.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if a.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	if a.Has(core.AttrFaint) {
		style = style.Faint(true)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color and attributes to minimize ANSI
// escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Attr != start.Attr {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Color == core.ColorDefault && start.Attr == 0 {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(cellStyle(start.Color, start.Attr).Render(run.String()))
		}
	}
	return sb.String()
}
