package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jask/scenescope/internal/bridge"
	"github.com/jask/scenescope/internal/panel"
	"github.com/jask/scenescope/internal/params"
	"github.com/jask/scenescope/internal/tui/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	v := m.machine.View()
	header := renderHeader(m, v)
	status := renderStatusBar(m, v)
	footer := renderFooter(m)
	bodyHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))
	var body string
	if bodyHeight > 0 {
		body = m.body(v).Render(max(1, m.width), bodyHeight)
	}
	view := strings.Join([]string{header, status, widgets.FitHeight(body, bodyHeight), footer}, "\n")
	view = widgets.FitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func (m Model) body(v panel.View) widgets.Widget {
	switch v.Mode {
	case panel.ModeNeedsReload:
		return widgets.Pane{
			Title:   "Reload required",
			Content: "The target has not been instrumented yet.\n\n" + warnStyle.Render("Press r to reload it and start inspecting."),
			Focused: true,
		}
	case panel.ModeWaiting:
		return widgets.Pane{
			Title:   "Waiting",
			Content: m.spinner.View() + " Waiting for the target to report its scene...",
		}
	}
	return widgets.Columns{
		Widgets: []widgets.Widget{m.leftPane(v), m.inspectorPane(v)},
		Ratios:  []float64{0.4, 0.6},
		Gap:     1,
	}
}

func (m Model) leftPane(v panel.View) widgets.Widget {
	list := widgets.List{
		Items:   m.listItems(v),
		Cursor:  m.cursors[v.Panel.Tag],
		Focused: m.focus == focusList,
		Empty:   "Nothing reported yet",
	}
	switch {
	case v.Panel.Tag == panel.Scene:
		if !v.ShowSceneGraph {
			return widgets.Pane{Title: "Scene", Content: mutedStyle.Render("No scene selected")}
		}
		return widgets.Rows{
			Widgets: []widgets.Widget{
				widgets.Pane{Title: "Scenes  (s: next)", Content: m.sceneList(v)},
				widgets.Pane{Title: "Graph", Body: list, Focused: m.focus == focusList},
			},
			Ratios: []float64{0.25, 0.75},
		}
	case v.ShowRenderer:
		return widgets.Rows{
			Widgets: []widgets.Widget{
				widgets.Pane{Title: "Renderers", Body: list, Focused: m.focus == focusList},
				widgets.Pane{Title: "Statistics", Content: renderStats(m.data.RenderingInfo)},
			},
			Ratios: []float64{0.3, 0.7},
		}
	default:
		return widgets.Pane{Title: v.Panel.Title, Body: list, Focused: m.focus == focusList}
	}
}

func (m Model) listItems(v panel.View) []widgets.ListItem {
	active := v.ActiveEntity
	if v.ShowRenderer {
		active = v.ActiveRenderer
	}
	items := make([]widgets.ListItem, 0, len(m.list))
	for _, e := range m.list {
		items = append(items, widgets.ListItem{Label: e.Ref.Label(), Depth: e.Depth, Active: e.Ref.UUID == active})
	}
	return items
}

func (m Model) sceneList(v panel.View) string {
	lines := make([]string, 0, len(m.data.Scenes))
	for _, s := range m.data.Scenes {
		if s.UUID == v.ActiveScene {
			lines = append(lines, groupStyle.Render("● "+s.Label()))
		} else {
			lines = append(lines, "  "+s.Label())
		}
	}
	return strings.Join(lines, "\n")
}

func renderStats(info *bridge.RenderingInfo) string {
	if info == nil {
		return mutedStyle.Render("No statistics yet")
	}
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Frame", info.Render.Frame},
		{"Draw calls", info.Render.Calls},
		{"Triangles", info.Render.Triangles},
		{"Points", info.Render.Points},
		{"Lines", info.Render.Lines},
		{"Geometries", info.Memory.Geometries},
		{"Textures", info.Memory.Textures},
		{"Programs", info.Programs},
	})
	return t.Render()
}

func (m Model) inspectorPane(v panel.View) widgets.Widget {
	pane := widgets.Pane{Title: "Parameters", Focused: m.focus == focusInspector}
	if !v.ShowInspector {
		pane.Content = mutedStyle.Render("Select an entity to inspect it.")
		return pane
	}
	e, ok := m.data.Inspected[v.Inspected]
	if !ok {
		pane.Content = mutedStyle.Render("No data for " + v.Inspected)
		return pane
	}
	pane.Title = "Parameters: " + bridge.EntityRef{UUID: e.UUID, Name: e.Name, Type: e.Type}.Label()
	for _, r := range m.rows {
		if r.Err != nil {
			pane.Error = true
			break
		}
	}
	pane.Body = widgets.Func(func(width, height int) string {
		return m.renderParams(v, width, height)
	})
	return pane
}

func (m Model) renderParams(v panel.View, width, height int) string {
	var lines []string
	cursorLine := 0
	group := ""
	for i, r := range m.rows {
		if r.Group != group {
			if group != "" {
				lines = append(lines, "")
			}
			group = r.Group
			lines = append(lines, groupStyle.Render(group))
		}
		selected := m.focus == focusInspector && i == m.paramCursor
		if selected {
			cursorLine = len(lines)
		}
		lines = append(lines, paramLine(r, selected, width))
	}
	if deps := dependencies(m.data.Inspected, v.Inspected); len(deps) > 0 {
		lines = append(lines, "", groupStyle.Render("Dependencies"))
		for _, d := range deps {
			lines = append(lines, "  "+d.Label())
		}
	}
	return strings.Join(window(lines, cursorLine, height), "\n")
}

func paramLine(r paramRow, selected bool, width int) string {
	value := r.Text
	switch {
	case r.Err != nil:
		value = integrityStyle.Render("!! " + r.Err.Error())
	case r.Prop.Kind == params.KindEnum && !r.Constrained:
		value += mutedStyle.Render(" (numeric)")
	case selected && (r.Prop.Kind == params.KindEnum || r.Prop.Kind == params.KindNumber || r.Prop.Kind == params.KindVec3):
		value = "‹ " + value + " ›"
	}
	line := fmt.Sprintf("  %-20s %s", r.label(), value)
	if selected {
		return cursorStyle.Render(widgets.PadRight(line, width))
	}
	return line
}

// window keeps line cursor visible in height rows.
func window(lines []string, cursor, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	return lines[start:min(len(lines), start+height)]
}

func renderHeader(m Model, v panel.View) string {
	defs := panel.Definitions()
	tabs := make([]string, 0, len(defs))
	for i, d := range defs {
		label := fmt.Sprintf("%d:%s", i+1, d.Title)
		if d.Tag == v.Panel.Tag {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	left := headerAppStyle.Render("scenescope")
	right := tabSepStyle.Render(" ") + strings.Join(tabs, tabSepStyle.Render("│"))
	right = ansi.Truncate(right, max(1, m.width), "")
	gap := 1
	if lw, rw := ansi.StringWidth(left), ansi.StringWidth(right); lw+rw+1 < m.width {
		gap = m.width - lw - rw
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right, colorMantle)
}

func renderStatusBar(m Model, v panel.View) string {
	if v.ErrorText != "" {
		return renderBar(statusErrBarStyle, max(1, m.width), "✖ "+v.ErrorText, colorSurface0)
	}
	msg := string(v.Mode)
	if m.title != "" {
		msg = m.title + " · " + msg
	}
	if m.closed {
		msg += " · disconnected"
	}
	return renderBar(statusBarStyle, max(1, m.width), msg, colorSurface0)
}

func renderFooter(m Model) string {
	bindings := m.keys.BindingsForScope(m.scope())
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 || strings.HasPrefix(b.Action, tabActionPrefix) {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
		h := kb.Help()
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = descStyle.Render("No shortcuts")
	}
	return renderBar(footerStyle, max(1, m.width), line, bg)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = widgets.PadRight(line, width)
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}
