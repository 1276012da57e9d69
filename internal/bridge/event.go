// Package bridge is the channel between the inspector and an instrumented
// scene runtime: the notification contract, the snapshot queries, and the
// transports that feed them.
package bridge

// Event kinds as they appear on the wire and in the journal.
const (
	KindLoad                = "load"
	KindError               = "error"
	KindObserve             = "observe"
	KindOverviewUpdate      = "overview-update"
	KindSceneGraphUpdate    = "scene-graph-update"
	KindEntityUpdate        = "entity-update"
	KindRendererUpdate      = "renderer-update"
	KindRenderingInfoUpdate = "rendering-info-update"
)

// Event is a notification from the inspected target. The set of variants is
// closed: every variant dispatches through a dedicated Handler method.
type Event interface {
	Kind() string
	Accept(h Handler) bool
}

// Handler consumes every Event variant. Each method reports whether the
// event requires the consumer's view to be refreshed.
type Handler interface {
	HandleLoad(Load) bool
	HandleError(Error) bool
	HandleObserve(Observe) bool
	HandleOverviewUpdate(OverviewUpdate) bool
	HandleSceneGraphUpdate(SceneGraphUpdate) bool
	HandleEntityUpdate(EntityUpdate) bool
	HandleRendererUpdate(RendererUpdate) bool
	HandleRenderingInfoUpdate(RenderingInfoUpdate) bool
}

// Load signals that the target was (re)instrumented.
type Load struct{}

// Error carries a bridge-reported failure.
type Error struct {
	Message string
}

// Observe lists identifiers the target started reporting.
type Observe struct {
	UUIDs []string
}

// OverviewUpdate carries the current entity list of one resource type.
type OverviewUpdate struct {
	Type     string
	Entities []EntityRef
}

type SceneGraphUpdate struct {
	UUID string
}

type EntityUpdate struct {
	UUID string
}

type RendererUpdate struct {
	UUID string
}

type RenderingInfoUpdate struct {
	UUID string
}

func (Load) Kind() string                { return KindLoad }
func (Error) Kind() string               { return KindError }
func (Observe) Kind() string             { return KindObserve }
func (OverviewUpdate) Kind() string      { return KindOverviewUpdate }
func (SceneGraphUpdate) Kind() string    { return KindSceneGraphUpdate }
func (EntityUpdate) Kind() string        { return KindEntityUpdate }
func (RendererUpdate) Kind() string      { return KindRendererUpdate }
func (RenderingInfoUpdate) Kind() string { return KindRenderingInfoUpdate }

func (e Load) Accept(h Handler) bool                { return h.HandleLoad(e) }
func (e Error) Accept(h Handler) bool               { return h.HandleError(e) }
func (e Observe) Accept(h Handler) bool             { return h.HandleObserve(e) }
func (e OverviewUpdate) Accept(h Handler) bool      { return h.HandleOverviewUpdate(e) }
func (e SceneGraphUpdate) Accept(h Handler) bool    { return h.HandleSceneGraphUpdate(e) }
func (e EntityUpdate) Accept(h Handler) bool        { return h.HandleEntityUpdate(e) }
func (e RendererUpdate) Accept(h Handler) bool      { return h.HandleRendererUpdate(e) }
func (e RenderingInfoUpdate) Accept(h Handler) bool { return h.HandleRenderingInfoUpdate(e) }
