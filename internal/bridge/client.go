package bridge

// EntityRef names an entity in an overview list.
type EntityRef struct {
	UUID string `json:"uuid"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}

// Label is the display name of the entity, falling back to its type and id.
func (r EntityRef) Label() string {
	switch {
	case r.Name != "":
		return r.Name
	case r.Type != "":
		return r.Type + " " + shortID(r.UUID)
	default:
		return r.UUID
	}
}

// GraphNode is one object in a scene graph tree.
type GraphNode struct {
	UUID     string      `json:"uuid"`
	Name     string      `json:"name,omitempty"`
	Type     string      `json:"type,omitempty"`
	Children []GraphNode `json:"children,omitempty"`
}

// Ref converts the node to an overview reference.
func (n GraphNode) Ref() EntityRef {
	return EntityRef{UUID: n.UUID, Name: n.Name, Type: n.Type}
}

// Entity is the serialized state of one runtime object. Props hold decoded
// JSON values: float64, bool, string, []any for vectors.
type Entity struct {
	UUID  string         `json:"uuid"`
	Type  string         `json:"type"`
	Name  string         `json:"name,omitempty"`
	Props map[string]any `json:"props,omitempty"`
}

// EntitySet holds an inspected entity and the entities it references.
type EntitySet map[string]Entity

// MemoryInfo mirrors the renderer's GPU memory counters.
type MemoryInfo struct {
	Geometries int `json:"geometries"`
	Textures   int `json:"textures"`
}

// RenderInfo mirrors the renderer's per-frame counters.
type RenderInfo struct {
	Calls     int `json:"calls"`
	Triangles int `json:"triangles"`
	Points    int `json:"points"`
	Lines     int `json:"lines"`
	Frame     int `json:"frame"`
}

// RenderingInfo is a renderer statistics snapshot.
type RenderingInfo struct {
	UUID     string     `json:"uuid"`
	Memory   MemoryInfo `json:"memory"`
	Render   RenderInfo `json:"render"`
	Programs int        `json:"programs"`
}

// Queries are synchronous accessors returning the latest snapshots.
type Queries interface {
	SceneGraph(sceneID string) (GraphNode, bool)
	ResourcesOverview(typeTag string) []EntityRef
	EntityAndDependencies(entityID string) EntitySet
	RenderingInfo(rendererID string) (RenderingInfo, bool)
}

// Commander sends actions to the target. Failures are reported back as
// Error events rather than returned.
type Commander interface {
	Reload()
	UpdateProperty(uuid, property string, value any)
}

// Client is a complete bridge: snapshots, commands and the event stream.
type Client interface {
	Queries
	Commander
	Events() <-chan Event
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
