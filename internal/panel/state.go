package panel

// Mode is the top-level display mode of the inspector.
type Mode string

const (
	ModeNeedsReload Mode = "needs-reload"
	ModeWaiting     Mode = "waiting"
	ModeReady       Mode = "ready"
)

// State is the panel-level state. Empty identifiers mean "nothing selected".
type State struct {
	ActivePanel    Tag
	ActiveScene    string
	ActiveEntity   string
	ActiveRenderer string
	Ready          bool
	NeedsReload    bool
	ErrorText      string
}

// Mode reports which of the three exclusive modes the state is in.
func (s State) Mode() Mode {
	switch {
	case s.NeedsReload:
		return ModeNeedsReload
	case s.Ready:
		return ModeReady
	default:
		return ModeWaiting
	}
}

func initialState(start Tag) State {
	return State{ActivePanel: start, NeedsReload: true}
}
