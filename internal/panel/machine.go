package panel

import (
	"log/slog"
	"regexp"
	"time"

	"github.com/jask/scenescope/internal/bridge"
)

// DefaultErrorTimeout is how long an error banner stays visible.
const DefaultErrorTimeout = 5 * time.Second

var rendererPattern = regexp.MustCompile(`renderer`)

// Options configure a Machine.
type Options struct {
	StartPanel   Tag
	ErrorTimeout time.Duration
	Scheduler    Scheduler
	Logger       *slog.Logger
}

// Machine is the single owner of State. All methods must be called from one
// goroutine; the Scheduler delivers the error expiry on that same goroutine.
type Machine struct {
	state        State
	errorTimeout time.Duration
	expiresAt    time.Time
	timer        Timer
	timerGen     uint64
	sched        Scheduler
	logger       *slog.Logger
}

var _ bridge.Handler = (*Machine)(nil)

// New returns a Machine in the needs-reload state. opts.Scheduler is
// required: its callbacks must run on the goroutine that calls the Machine.
func New(opts Options) *Machine {
	if _, ok := Lookup(opts.StartPanel); !ok {
		opts.StartPanel = Scene
	}
	if opts.ErrorTimeout <= 0 {
		opts.ErrorTimeout = DefaultErrorTimeout
	}
	if opts.Scheduler == nil {
		panic("panel: Options.Scheduler is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Machine{
		state:        initialState(opts.StartPanel),
		errorTimeout: opts.ErrorTimeout,
		sched:        opts.Scheduler,
		logger:       logger.With("component", "panel"),
	}
}

// State returns a copy of the current state.
func (m *Machine) State() State { return m.state }

// View derives the view state from the current state.
func (m *Machine) View() View { return Derive(m.state) }

// ErrorExpiresAt is the deadline of the visible error; zero when none.
func (m *Machine) ErrorExpiresAt() time.Time { return m.expiresAt }

// Handle applies ev and reports whether the visible panel must refresh.
func (m *Machine) Handle(ev bridge.Event) bool {
	return ev.Accept(m)
}

func (m *Machine) HandleLoad(bridge.Load) bool {
	m.state.ActiveScene = ""
	m.state.ActiveEntity = ""
	m.state.ActiveRenderer = ""
	m.state.Ready = false
	m.state.NeedsReload = false
	m.logger.Debug("target loaded")
	return true
}

func (m *Machine) HandleError(ev bridge.Error) bool {
	m.SetError(ev.Message)
	return true
}

func (m *Machine) HandleObserve(ev bridge.Observe) bool {
	m.state.Ready = true
	if m.state.ActiveRenderer == "" {
		for _, id := range ev.UUIDs {
			if rendererPattern.MatchString(id) {
				m.state.ActiveRenderer = id
				m.logger.Debug("selected renderer", "uuid", id)
				break
			}
		}
	}
	return true
}

func (m *Machine) HandleOverviewUpdate(ev bridge.OverviewUpdate) bool {
	if ev.Type == ResourceScenes && m.state.ActiveScene == "" && len(ev.Entities) > 0 {
		m.state.ActiveScene = ev.Entities[0].UUID
		m.logger.Debug("selected scene", "uuid", m.state.ActiveScene)
	}
	def, _ := Lookup(m.state.ActivePanel)
	return def.Resource != "" && def.Resource == ev.Type
}

func (m *Machine) HandleSceneGraphUpdate(ev bridge.SceneGraphUpdate) bool {
	return m.state.ActivePanel == Scene && m.state.ActiveScene != "" && m.state.ActiveScene == ev.UUID
}

// HandleEntityUpdate always refreshes: the notification does not say which
// panel the entity belongs to.
func (m *Machine) HandleEntityUpdate(bridge.EntityUpdate) bool {
	return true
}

func (m *Machine) HandleRendererUpdate(ev bridge.RendererUpdate) bool {
	return m.rendererVisible(ev.UUID)
}

func (m *Machine) HandleRenderingInfoUpdate(ev bridge.RenderingInfoUpdate) bool {
	return m.rendererVisible(ev.UUID)
}

func (m *Machine) rendererVisible(id string) bool {
	return m.state.ActivePanel == Rendering && m.state.ActiveRenderer != "" && m.state.ActiveRenderer == id
}

// SelectPanel switches tabs. Entity and renderer selections are kept so
// returning to a panel restores them.
func (m *Machine) SelectPanel(tag Tag) error {
	if _, err := ParseTag(string(tag)); err != nil {
		return err
	}
	m.state.ActivePanel = tag
	return nil
}

func (m *Machine) SelectScene(id string)    { m.state.ActiveScene = id }
func (m *Machine) SelectEntity(id string)   { m.state.ActiveEntity = id }
func (m *Machine) SelectRenderer(id string) { m.state.ActiveRenderer = id }

// RequestReload enters the needs-reload mode until the next load.
func (m *Machine) RequestReload() {
	m.state.NeedsReload = true
}

// SetError shows text and restarts the expiry window. A previous message and
// its timer are replaced, never queued.
func (m *Machine) SetError(text string) {
	m.cancelErrorTimer()
	m.state.ErrorText = text
	m.expiresAt = m.sched.Now().Add(m.errorTimeout)
	m.timerGen++
	gen := m.timerGen
	m.timer = m.sched.AfterFunc(m.errorTimeout, func() { m.expireError(gen) })
	m.logger.Info("bridge error", "text", text)
}

// ClearError hides the banner immediately.
func (m *Machine) ClearError() {
	m.cancelErrorTimer()
	m.state.ErrorText = ""
	m.expiresAt = time.Time{}
}

// PendingErrorTimer reports whether an expiry is scheduled.
func (m *Machine) PendingErrorTimer() bool { return m.timer != nil }

func (m *Machine) cancelErrorTimer() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *Machine) expireError(gen uint64) {
	if gen != m.timerGen || m.timer == nil {
		return
	}
	m.timer = nil
	m.state.ErrorText = ""
	m.expiresAt = time.Time{}
}
