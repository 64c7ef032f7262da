package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fruit-slicer/internal/core"
)

// ColorStyles maps core.Color to lipgloss styles.
type ColorStyles map[core.Color]lipgloss.Style

// NewColorStyles builds the colour table for a renderer. SSH sessions pass
// their own renderer so colours follow the remote terminal.
func NewColorStyles(r *lipgloss.Renderer) ColorStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return ColorStyles{
		core.ColorDefault:      r.NewStyle(),
		core.ColorRed:          fg("1"),
		core.ColorGreen:        fg("2"),
		core.ColorYellow:       fg("3"),
		core.ColorBlue:         fg("4"),
		core.ColorMagenta:      fg("5"),
		core.ColorCyan:         fg("6"),
		core.ColorWhite:        fg("7"),
		core.ColorBrightRed:    fg("9"),
		core.ColorBrightGreen:  fg("10"),
		core.ColorBrightYellow: fg("11"),
		core.ColorBrightCyan:   fg("14"),
		core.ColorBrightWhite:  fg("15"),
		core.ColorOrange:       fg("208"),
		core.ColorGray:         fg("245"),
		core.ColorDarkGray:     fg("238"),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
// Continuation cells of wide glyphs are skipped; the terminal fills them.
func RenderScreen(s *core.Screen, styles ColorStyles) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				if !cell.Cont {
					run.WriteRune(cell.Rune)
				}
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
