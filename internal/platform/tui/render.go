package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ansiCodes holds the 16/256-color code of each palette color; truecolor
// terminals get the palette's RGB instead.
var ansiCodes = [...]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var cellStyles = buildCellStyles()

func buildCellStyles() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansiCodes))
	for i, code := range ansiCodes {
		if code == "" {
			styles[i] = lipgloss.NewStyle()
			continue
		}
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.CompleteColor{
			TrueColor: hexColor(core.PaletteRGB(core.Color(i))),
			ANSI256:   code,
			ANSI:      code,
		})
	}
	return styles
}

func hexColor(c core.RGB) string {
	to8 := func(v float64) int { return int(core.ClampF(v, 0, 1)*255 + 0.5) }
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	lines := make([]string, s.Height())
	var line, run strings.Builder

	for y := range lines {
		line.Reset()
		run.Reset()
		current := s.At(0, y).Color
		for x := range s.Width() {
			cell := s.At(x, y)
			if cell.Color != current {
				line.WriteString(styleFor(current).Render(run.String()))
				run.Reset()
				current = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			line.WriteString(styleFor(current).Render(run.String()))
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
