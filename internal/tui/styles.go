package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorBorder).
			Background(colorMantle)

	activeTabStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorTabOff).
				Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0).
				Bold(true)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	groupStyle     = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	warnStyle      = lipgloss.NewStyle().Foreground(colorWarn).Bold(true)
	integrityStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	cursorStyle    = lipgloss.NewStyle().Background(colorSurface0).Foreground(colorAccent)
)
