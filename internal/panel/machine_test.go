package panel

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/scenescope/internal/bridge"
)

type fakeTimer struct {
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

type fakeScheduler struct {
	now    time.Time
	timers []*fakeTimer
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
}

func (s *fakeScheduler) Now() time.Time { return s.now }

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{at: s.now.Add(d), f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) Advance(d time.Duration) {
	s.now = s.now.Add(d)
	for _, t := range s.timers {
		if !t.stopped && !t.fired && !t.at.After(s.now) {
			t.fired = true
			t.f()
		}
	}
}

func (s *fakeScheduler) pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// tLogWriter routes slog output to t.Log so it shows only for failing tests.
type tLogWriter struct{ t *testing.T }

func (w tLogWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func testLogger(t *testing.T) *slog.Logger {
	return slog.New(slog.NewTextHandler(tLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestMachine(t *testing.T) (*Machine, *fakeScheduler) {
	t.Helper()
	sched := newFakeScheduler()
	return New(Options{Scheduler: sched, Logger: testLogger(t)}), sched
}

func readyMachine(t *testing.T) (*Machine, *fakeScheduler) {
	t.Helper()
	m, sched := newTestMachine(t)
	m.Handle(bridge.Load{})
	m.Handle(bridge.Observe{UUIDs: []string{"scene-1", "renderer-1"}})
	return m, sched
}

func TestInitialState(t *testing.T) {
	m, _ := newTestMachine(t)
	s := m.State()
	assert.Equal(t, Scene, s.ActivePanel)
	assert.True(t, s.NeedsReload)
	assert.False(t, s.Ready)
	assert.Equal(t, ModeNeedsReload, s.Mode())
}

func TestStartPanelFallsBackToScene(t *testing.T) {
	m := New(Options{StartPanel: "bogus", Scheduler: newFakeScheduler()})
	assert.Equal(t, Scene, m.State().ActivePanel)

	m = New(Options{StartPanel: Textures, Scheduler: newFakeScheduler()})
	assert.Equal(t, Textures, m.State().ActivePanel)
}

func TestModeTransitions(t *testing.T) {
	m, _ := newTestMachine(t)
	require.True(t, m.Handle(bridge.Load{}))
	assert.Equal(t, ModeWaiting, m.State().Mode())

	require.True(t, m.Handle(bridge.Observe{UUIDs: []string{"mesh-1"}}))
	assert.Equal(t, ModeReady, m.State().Mode())

	m.Handle(bridge.Error{Message: "boom"})
	assert.Equal(t, ModeReady, m.State().Mode(), "errors are an overlay, not a mode")

	m.RequestReload()
	assert.Equal(t, ModeNeedsReload, m.State().Mode())
	m.Handle(bridge.Load{})
	assert.Equal(t, ModeWaiting, m.State().Mode())
}

func TestLoadResetsSelections(t *testing.T) {
	m, _ := readyMachine(t)
	m.Handle(bridge.OverviewUpdate{Type: "scenes", Entities: []bridge.EntityRef{{UUID: "scene-1"}}})
	m.SelectEntity("mat-1")
	require.NoError(t, m.SelectPanel(Materials))

	m.Handle(bridge.Load{})
	s := m.State()
	assert.Empty(t, s.ActiveScene)
	assert.Empty(t, s.ActiveEntity)
	assert.Empty(t, s.ActiveRenderer)
	assert.False(t, s.Ready)
	assert.False(t, s.NeedsReload)
	assert.Equal(t, Materials, s.ActivePanel)
}

func TestObserveSelectsFirstRendererOnce(t *testing.T) {
	m, _ := newTestMachine(t)
	m.Handle(bridge.Load{})

	assert.True(t, m.Handle(bridge.Observe{UUIDs: []string{"scene-1", "mesh-2"}}))
	assert.Empty(t, m.State().ActiveRenderer)

	m.Handle(bridge.Observe{UUIDs: []string{"geometry-1", "renderer-a", "renderer-b"}})
	assert.Equal(t, "renderer-a", m.State().ActiveRenderer)

	for _, ids := range [][]string{{"renderer-c"}, {"renderer-b", "renderer-a"}, nil} {
		assert.True(t, m.Handle(bridge.Observe{UUIDs: ids}))
		assert.Equal(t, "renderer-a", m.State().ActiveRenderer)
	}
}

func TestObserveKeepsEntitySelection(t *testing.T) {
	m, _ := readyMachine(t)
	m.SelectEntity("mesh-9")
	m.Handle(bridge.Observe{UUIDs: []string{"mesh-10"}})
	assert.Equal(t, "mesh-9", m.State().ActiveEntity)
}

func TestOverviewSelectsFirstScene(t *testing.T) {
	m, _ := readyMachine(t)

	m.Handle(bridge.OverviewUpdate{Type: "scenes"})
	assert.Empty(t, m.State().ActiveScene, "empty list selects nothing")

	m.Handle(bridge.OverviewUpdate{Type: "materials", Entities: []bridge.EntityRef{{UUID: "mat-1"}}})
	assert.Empty(t, m.State().ActiveScene, "only scene overviews select a scene")

	m.Handle(bridge.OverviewUpdate{Type: "scenes", Entities: []bridge.EntityRef{{UUID: "scene-a"}, {UUID: "scene-b"}}})
	assert.Equal(t, "scene-a", m.State().ActiveScene)

	m.Handle(bridge.OverviewUpdate{Type: "scenes", Entities: []bridge.EntityRef{{UUID: "scene-b"}}})
	assert.Equal(t, "scene-a", m.State().ActiveScene)
}

func TestOverviewRerenderMatchesActiveResource(t *testing.T) {
	m, _ := readyMachine(t)
	require.NoError(t, m.SelectPanel(Geometries))

	assert.True(t, m.Handle(bridge.OverviewUpdate{Type: "geometries"}))
	assert.False(t, m.Handle(bridge.OverviewUpdate{Type: "materials"}))

	require.NoError(t, m.SelectPanel(Scene))
	assert.True(t, m.Handle(bridge.OverviewUpdate{Type: "scenes"}))

	require.NoError(t, m.SelectPanel(Rendering))
	assert.False(t, m.Handle(bridge.OverviewUpdate{Type: ""}), "rendering has no resource")
	assert.False(t, m.Handle(bridge.OverviewUpdate{Type: "scenes"}))
}

func TestSceneGraphUpdateRerender(t *testing.T) {
	m, _ := readyMachine(t)
	m.Handle(bridge.OverviewUpdate{Type: "scenes", Entities: []bridge.EntityRef{{UUID: "scene-1"}}})

	assert.True(t, m.Handle(bridge.SceneGraphUpdate{UUID: "scene-1"}), "matching scene on scene panel")
	assert.False(t, m.Handle(bridge.SceneGraphUpdate{UUID: "scene-2"}), "other scene")

	require.NoError(t, m.SelectPanel(Materials))
	assert.False(t, m.Handle(bridge.SceneGraphUpdate{UUID: "scene-1"}), "scene panel not visible")
}

func TestSceneGraphUpdateWithoutActiveScene(t *testing.T) {
	m, _ := readyMachine(t)
	assert.False(t, m.Handle(bridge.SceneGraphUpdate{UUID: ""}))
}

func TestEntityUpdateAlwaysRerenders(t *testing.T) {
	m, _ := readyMachine(t)
	for _, tag := range []Tag{Scene, Geometries, Materials, Textures, Rendering} {
		require.NoError(t, m.SelectPanel(tag))
		assert.True(t, m.Handle(bridge.EntityUpdate{UUID: "unrelated"}), string(tag))
	}
}

func TestRendererUpdatesRerenderOnlyForVisibleRenderer(t *testing.T) {
	m, _ := readyMachine(t)
	require.Equal(t, "renderer-1", m.State().ActiveRenderer)

	assert.False(t, m.Handle(bridge.RendererUpdate{UUID: "renderer-1"}), "rendering panel not visible")
	assert.False(t, m.Handle(bridge.RenderingInfoUpdate{UUID: "renderer-1"}))

	require.NoError(t, m.SelectPanel(Rendering))
	assert.True(t, m.Handle(bridge.RendererUpdate{UUID: "renderer-1"}))
	assert.True(t, m.Handle(bridge.RenderingInfoUpdate{UUID: "renderer-1"}))
	assert.False(t, m.Handle(bridge.RendererUpdate{UUID: "renderer-2"}))
	assert.False(t, m.Handle(bridge.RenderingInfoUpdate{UUID: "renderer-2"}))
}

func TestSelectPanelIsSticky(t *testing.T) {
	m, _ := readyMachine(t)
	require.NoError(t, m.SelectPanel(Rendering))
	m.SelectRenderer("renderer-2")
	require.NoError(t, m.SelectPanel(Scene))
	require.NoError(t, m.SelectPanel(Rendering))
	assert.Equal(t, "renderer-2", m.State().ActiveRenderer)

	m.SelectEntity("mat-1")
	require.NoError(t, m.SelectPanel(Textures))
	assert.Equal(t, "mat-1", m.State().ActiveEntity)
}

func TestSelectPanelRejectsUnknown(t *testing.T) {
	m, _ := readyMachine(t)
	err := m.SelectPanel("lights")
	require.ErrorIs(t, err, ErrUnknownPanel)
	assert.Equal(t, Scene, m.State().ActivePanel)
}

func TestSetErrorSupersedes(t *testing.T) {
	m, sched := readyMachine(t)

	m.SetError("A")
	sched.Advance(2 * time.Second)
	m.SetError("B")

	assert.Equal(t, "B", m.State().ErrorText)
	assert.Equal(t, 1, sched.pending())
	assert.Equal(t, sched.Now().Add(DefaultErrorTimeout), m.ErrorExpiresAt())

	sched.Advance(3 * time.Second)
	assert.Equal(t, "B", m.State().ErrorText, "first timer was cancelled")

	sched.Advance(2 * time.Second)
	assert.Empty(t, m.State().ErrorText)
	assert.False(t, m.PendingErrorTimer())
	assert.Zero(t, sched.pending())
}

func TestErrorEventUsesErrorWindow(t *testing.T) {
	sched := newFakeScheduler()
	m := New(Options{Scheduler: sched, ErrorTimeout: time.Second})
	assert.True(t, m.Handle(bridge.Error{Message: "lost"}))
	assert.Equal(t, "lost", m.State().ErrorText)

	sched.Advance(999 * time.Millisecond)
	assert.Equal(t, "lost", m.State().ErrorText)
	sched.Advance(time.Millisecond)
	assert.Empty(t, m.State().ErrorText)
}

func TestNewRequiresScheduler(t *testing.T) {
	assert.PanicsWithValue(t, "panel: Options.Scheduler is required", func() {
		New(Options{ErrorTimeout: time.Millisecond})
	})
}

// postScheduler fires real timers but hands the callback to the owner loop,
// the way the TUI routes expiries back through Update.
type postScheduler struct {
	post chan func()
	done chan struct{}
}

func (s *postScheduler) Now() time.Time { return time.Now() }

func (s *postScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, func() {
		select {
		case s.post <- f:
		case <-s.done:
		}
	})
}

// Run with -race: expiries fire on timer goroutines while the owner keeps
// mutating the machine.
func TestErrorExpiryRunsOnOwnerGoroutine(t *testing.T) {
	sched := &postScheduler{post: make(chan func()), done: make(chan struct{})}
	defer close(sched.done)
	m := New(Options{Scheduler: sched, ErrorTimeout: time.Millisecond, Logger: testLogger(t)})
	m.Handle(bridge.Load{})

	deadline := time.After(50 * time.Millisecond)
loop:
	for i := 0; ; i++ {
		select {
		case f := <-sched.post:
			f()
		case <-deadline:
			break loop
		default:
			if i%10 == 0 {
				m.SetError("flaky link")
			}
			_ = m.State()
			m.Handle(bridge.Observe{UUIDs: []string{"renderer-1"}})
		}
	}

	m.SetError("last")
	for m.PendingErrorTimer() {
		select {
		case f := <-sched.post:
			f()
		case <-time.After(time.Second):
			t.Fatal("error expiry never delivered")
		}
	}
	assert.Empty(t, m.State().ErrorText)
	assert.Zero(t, m.ErrorExpiresAt())
}

func TestStaleExpiryIsIgnored(t *testing.T) {
	m, sched := readyMachine(t)
	m.SetError("A")
	stale := sched.timers[0].f
	m.SetError("B")

	stale()
	assert.Equal(t, "B", m.State().ErrorText)
}

func TestClearError(t *testing.T) {
	m, sched := readyMachine(t)
	m.SetError("A")
	m.ClearError()
	assert.Empty(t, m.State().ErrorText)
	assert.Zero(t, sched.pending())
	assert.True(t, m.ErrorExpiresAt().IsZero())
}
