package tui

import (
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/scenescope/internal/bridge"
	"github.com/jask/scenescope/internal/panel"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case EventMsg:
		if m.machine.Handle(msg.Event) {
			m.refresh()
		}
	case ClosedMsg:
		m.closed = true
		m.logger.Info("bridge event stream closed")
	case timerFiredMsg:
		m.sched.Fire(msg.id)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))
	}
	cmds = append(cmds, m.sched.Drain())
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keys.Action(msg, m.scope())
	if !ok {
		return nil
	}
	switch action {
	case actionQuit:
		m.quitting = true
		return tea.Quit
	case actionNextTab:
		m.cycleTab(1)
	case actionPrevTab:
		m.cycleTab(-1)
	case actionReload:
		m.machine.RequestReload()
		m.client.Reload()
		m.refresh()
	case actionClearError:
		m.machine.ClearError()
	case actionFocus:
		if m.focus == focusList && len(m.rows) > 0 {
			m.focus = focusInspector
		} else {
			m.focus = focusList
		}
	case actionDown:
		m.moveCursor(1)
	case actionUp:
		m.moveCursor(-1)
	case actionSelect:
		if m.focus == focusInspector {
			m.toggleParam()
		} else {
			m.selectListEntry()
		}
	case actionNextScene:
		m.nextScene()
	case actionDecrease:
		m.adjustParam(-1)
	case actionIncrease:
		m.adjustParam(1)
	default:
		if n, ok := strings.CutPrefix(action, tabActionPrefix); ok {
			if i, err := strconv.Atoi(n); err == nil {
				m.selectTab(i - 1)
			}
		}
	}
	return nil
}

func (m *Model) selectTab(index int) {
	defs := panel.Definitions()
	if index < 0 || index >= len(defs) {
		return
	}
	if err := m.machine.SelectPanel(defs[index].Tag); err != nil {
		m.logger.Warn("select panel", "error", err)
		return
	}
	m.focus = focusList
	m.refresh()
}

func (m *Model) cycleTab(delta int) {
	defs := panel.Definitions()
	cur := slices.IndexFunc(defs, func(d panel.Definition) bool { return d.Tag == m.machine.State().ActivePanel })
	m.selectTab(((cur+delta)%len(defs) + len(defs)) % len(defs))
}

func (m *Model) moveCursor(delta int) {
	if m.focus == focusInspector {
		m.paramCursor = clampCursor(m.paramCursor+delta, len(m.rows))
		return
	}
	tag := m.machine.State().ActivePanel
	m.cursors[tag] = clampCursor(m.cursors[tag]+delta, len(m.list))
}

func (m *Model) selectListEntry() {
	if len(m.list) == 0 {
		return
	}
	st := m.machine.State()
	entry := m.list[clampCursor(m.cursors[st.ActivePanel], len(m.list))]
	if st.ActivePanel == panel.Rendering {
		m.machine.SelectRenderer(entry.Ref.UUID)
	} else {
		m.machine.SelectEntity(entry.Ref.UUID)
	}
	m.paramCursor = 0
	m.refresh()
}

func (m *Model) nextScene() {
	scenes := m.data.Scenes
	if len(scenes) == 0 {
		return
	}
	active := m.machine.State().ActiveScene
	i := slices.IndexFunc(scenes, func(s bridge.EntityRef) bool { return s.UUID == active })
	m.machine.SelectScene(scenes[(i+1)%len(scenes)].UUID)
	m.cursors[panel.Scene] = 0
	m.refresh()
}

func (m *Model) adjustParam(delta int) {
	if len(m.rows) == 0 {
		return
	}
	if e, ok := m.rows[m.paramCursor].adjust(delta); ok {
		m.send(e)
	}
}

func (m *Model) toggleParam() {
	if len(m.rows) == 0 {
		return
	}
	if e, ok := m.rows[m.paramCursor].toggle(); ok {
		m.send(e)
	}
}

// send issues the change; the target answers with an entity update, which
// refreshes the inspector.
func (m *Model) send(e edit) {
	id := m.machine.View().Inspected
	m.logger.Debug("update property", "uuid", id, "property", e.Property, "value", e.Value)
	m.client.UpdateProperty(id, e.Property, e.Value)
}
