package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/scenescope/internal/bridge"
)

// EventMsg carries one bridge notification into the Update loop.
type EventMsg struct {
	Event bridge.Event
}

// ClosedMsg reports that the bridge event stream ended.
type ClosedMsg struct{}

// Pump forwards every event to send, typically tea.Program.Send, and sends
// ClosedMsg once the channel is closed.
func Pump(events <-chan bridge.Event, send func(tea.Msg)) {
	for ev := range events {
		send(EventMsg{Event: ev})
	}
	send(ClosedMsg{})
}
