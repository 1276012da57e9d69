// Package tui hosts the panel machine in a bubbletea program. Bridge events
// and timer expiries all arrive as messages, so the machine is only touched
// from the Update goroutine.
package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/scenescope/internal/bridge"
	"github.com/jask/scenescope/internal/enums"
	"github.com/jask/scenescope/internal/panel"
)

type focus int

const (
	focusList focus = iota
	focusInspector
)

// Options configure a Model.
type Options struct {
	Client       bridge.Client
	Resolver     *enums.Resolver
	Keys         *KeyRegistry
	StartPanel   panel.Tag
	ErrorTimeout time.Duration
	// Title names the target in the header, e.g. its URL.
	Title  string
	Logger *slog.Logger
}

// listEntry is one navigable row of the left pane.
type listEntry struct {
	Ref   bridge.EntityRef
	Depth int
}

type Model struct {
	client  bridge.Client
	machine *panel.Machine
	sched   *loopScheduler
	keys    *KeyRegistry
	enums   *enums.Resolver
	logger  *slog.Logger
	title   string

	data          panel.Data
	list          []listEntry
	rows          []paramRow
	cursors       map[panel.Tag]int
	paramCursor   int
	focus         focus
	lastIntegrity string

	spinner  spinner.Model
	closed   bool
	quitting bool
	width    int
	height   int
}

func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Resolver == nil {
		opts.Resolver = enums.Default()
	}
	if opts.Keys == nil {
		opts.Keys = NewKeyRegistry(DefaultKeyBindings())
	}
	sched := newLoopScheduler()
	spin := spinner.New()
	spin.Spinner = spinner.MiniDot
	spin.Style = mutedStyle

	m := Model{
		client: opts.Client,
		machine: panel.New(panel.Options{
			StartPanel:   opts.StartPanel,
			ErrorTimeout: opts.ErrorTimeout,
			Scheduler:    sched,
			Logger:       logger,
		}),
		sched:   sched,
		keys:    opts.Keys,
		enums:   opts.Resolver,
		logger:  logger.With("component", "tui"),
		title:   opts.Title,
		cursors: map[panel.Tag]int{},
		spinner: spin,
		width:   100,
		height:  32,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// State exposes the machine state for the host and tests.
func (m Model) State() panel.State { return m.machine.State() }

func (m Model) scope() string {
	if m.focus == focusInspector {
		return scopeInspector
	}
	return scopeList
}

// refresh pulls fresh snapshots for the visible panel. It runs only when the
// machine asks for a re-render or the user changed the selection.
func (m *Model) refresh() {
	v := m.machine.View()
	m.data = panel.Fetch(v, m.client)
	m.list = listEntries(v, m.data)
	m.cursors[v.Panel.Tag] = clampCursor(m.cursors[v.Panel.Tag], len(m.list))

	m.rows = nil
	if v.ShowInspector {
		m.rows = buildParamRows(m.data.Inspected, v.Inspected, m.enums)
	}
	m.paramCursor = clampCursor(m.paramCursor, len(m.rows))
	if len(m.rows) == 0 {
		m.focus = focusList
	}
	m.logIntegrity()
}

func (m *Model) logIntegrity() {
	for _, r := range m.rows {
		if r.Err == nil {
			continue
		}
		if text := r.Err.Error(); text != m.lastIntegrity {
			m.lastIntegrity = text
			m.logger.Error("enum table integrity error", "property", r.Prop.Prop, "error", r.Err)
		}
		return
	}
}

func listEntries(v panel.View, d panel.Data) []listEntry {
	var out []listEntry
	switch {
	case v.ShowSceneGraph && d.Graph != nil:
		var walk func(n bridge.GraphNode, depth int)
		walk = func(n bridge.GraphNode, depth int) {
			out = append(out, listEntry{Ref: n.Ref(), Depth: depth})
			for _, c := range n.Children {
				walk(c, depth+1)
			}
		}
		walk(*d.Graph, 0)
	case v.ShowResourceList:
		for _, r := range d.Resources {
			out = append(out, listEntry{Ref: r})
		}
	case v.ShowRenderer:
		for _, r := range d.Renderers {
			out = append(out, listEntry{Ref: r})
		}
	}
	return out
}

func clampCursor(c, n int) int {
	if n == 0 || c < 0 {
		return 0
	}
	if c >= n {
		return n - 1
	}
	return c
}
