package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	paneBorder        = lipgloss.Color("#6c7086")
	paneBorderFocused = lipgloss.Color("#89b4fa")
	paneBorderError   = lipgloss.Color("#f38ba8")
	paneText          = lipgloss.Color("#cdd6f4")
)

// Pane is a rounded box with a title set into the top border. Body takes
// precedence over Content when set.
type Pane struct {
	Title   string
	Content string
	Body    Widget
	Focused bool
	Error   bool
}

func (p Pane) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	width = max(width, 4)
	h := max(height, 3)

	border := paneBorder
	if p.Focused {
		border = paneBorderFocused
	}
	if p.Error {
		border = paneBorderError
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(paneText).Bold(true)

	titlePrefix := "  "
	if p.Focused {
		titlePrefix = "● "
	}

	innerWidth := width - 2
	contentWidth := max(1, innerWidth-2)

	title := strings.TrimSpace(titlePrefix + p.Title)
	titleText := " " + title + " "
	if ansi.StringWidth(titleText) > innerWidth {
		titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭") +
		borderStyle.Render(strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		borderStyle.Render("╮")

	innerHeight := h - 2
	content := p.Content
	if p.Body != nil {
		content = p.Body.Render(contentWidth, innerHeight)
	}
	contentLines := splitLines(content)
	rows := make([]string, 0, h)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, v+" "+PadRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
