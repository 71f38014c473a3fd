package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-froggr/internal/core"
)

// palette holds the ANSI 256 code of each core.Color. Empty means the
// terminal's own foreground.
var palette = map[core.Color]string{
	core.ColorDefault:      "",
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
	core.ColorBrightBlue:   "12",
	core.ColorBrightCyan:   "14",
	core.ColorBrightWhite:  "15",
	core.ColorOrange:       "208",
	core.ColorBrown:        "130",
	core.ColorGray:         "245",
}

var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette))
	for c, code := range palette {
		st := lipgloss.NewStyle()
		if code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		styles[c] = st
	}
	return styles
}

// RenderScreen styles a screen for the terminal. Each run of same-colored
// cells in a row gets one style, so escape codes stay few.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	var run []rune
	for y := range rows {
		var line strings.Builder
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run = run[:0]
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run = append(run, cell.Rune)
			}
			st, ok := colorStyles[color]
			if !ok {
				st = colorStyles[core.ColorDefault]
			}
			line.WriteString(st.Render(string(run)))
		}
		rows[y] = line.String()
	}
	return strings.Join(rows, "\n")
}
