package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// PadRight truncates or pads s to exactly width cells, ignoring ANSI styling.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// FitHeight cuts or extends s to exactly height lines.
func FitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
