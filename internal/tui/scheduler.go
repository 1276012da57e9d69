package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/scenescope/internal/panel"
)

// timerFiredMsg is delivered by tea.Tick when a scheduled callback is due.
type timerFiredMsg struct{ id uint64 }

// loopScheduler runs panel timers on the bubbletea Update goroutine. Each
// AfterFunc queues a tea.Tick; the model collects queued commands after every
// update and dispatches timerFiredMsg back through Fire.
type loopScheduler struct {
	now     func() time.Time
	nextID  uint64
	pending map[uint64]func()
	queued  []tea.Cmd
}

var _ panel.Scheduler = (*loopScheduler)(nil)

func newLoopScheduler() *loopScheduler {
	return &loopScheduler{now: time.Now, pending: map[uint64]func(){}}
}

func (s *loopScheduler) Now() time.Time { return s.now() }

func (s *loopScheduler) AfterFunc(d time.Duration, f func()) panel.Timer {
	s.nextID++
	id := s.nextID
	s.pending[id] = f
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg { return timerFiredMsg{id: id} }))
	return loopTimer{s: s, id: id}
}

// Fire runs the callback for id unless it was stopped.
func (s *loopScheduler) Fire(id uint64) bool {
	f, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	f()
	return true
}

// Drain returns the ticks queued since the last call.
func (s *loopScheduler) Drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

type loopTimer struct {
	s  *loopScheduler
	id uint64
}

func (t loopTimer) Stop() bool {
	if _, ok := t.s.pending[t.id]; !ok {
		return false
	}
	delete(t.s.pending, t.id)
	return true
}
