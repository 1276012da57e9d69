package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ListItem is one row. Depth indents tree rows; Active marks the current
// selection independently of the cursor.
type ListItem struct {
	Label  string
	Depth  int
	Active bool
}

// List renders items with a cursor, scrolled so the cursor stays visible.
type List struct {
	Items   []ListItem
	Cursor  int
	Focused bool
	Empty   string
}

var (
	listCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#89b4fa"))
	listActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
	listMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
)

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(l.Items) == 0 {
		return listMutedStyle.Render(PadRight(l.Empty, width))
	}
	start := 0
	if l.Cursor >= height {
		start = l.Cursor - height + 1
	}
	end := min(len(l.Items), start+height)
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		it := l.Items[i]
		marker := "  "
		if it.Active {
			marker = "● "
		}
		line := PadRight(marker+strings.Repeat("  ", it.Depth)+it.Label, width)
		switch {
		case i == l.Cursor && l.Focused:
			line = listCursorStyle.Render(line)
		case it.Active:
			line = listActiveStyle.Render(line)
		}
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}
