package panel

import "github.com/jask/scenescope/internal/bridge"

// ResourceRenderers is the overview type the target uses to list renderers.
const ResourceRenderers = "renderers"

// View is derived from State on every render and never mutates it.
type View struct {
	Mode             Mode
	Panel            Definition
	ShowSceneGraph   bool
	ShowResourceList bool
	ShowRenderer     bool
	Inspected        string
	ShowInspector    bool
	ActiveScene      string
	ActiveEntity     string
	ActiveRenderer   string
	ErrorText        string
}

func Derive(s State) View {
	def, ok := Lookup(s.ActivePanel)
	if !ok {
		def, _ = Lookup(Scene)
	}
	inspected := s.ActiveEntity
	if def.Tag == Rendering {
		inspected = s.ActiveRenderer
	}
	return View{
		Mode:             s.Mode(),
		Panel:            def,
		ShowSceneGraph:   def.Tag == Scene && s.ActiveScene != "",
		ShowResourceList: def.Resource != "" && def.Tag != Scene,
		ShowRenderer:     def.Tag == Rendering,
		Inspected:        inspected,
		ShowInspector:    inspected != "",
		ActiveScene:      s.ActiveScene,
		ActiveEntity:     s.ActiveEntity,
		ActiveRenderer:   s.ActiveRenderer,
		ErrorText:        s.ErrorText,
	}
}

// Data is everything the visible panel displays, pulled from the bridge.
type Data struct {
	Graph         *bridge.GraphNode
	Scenes        []bridge.EntityRef
	Resources     []bridge.EntityRef
	Renderers     []bridge.EntityRef
	Inspected     bridge.EntitySet
	RenderingInfo *bridge.RenderingInfo
}

// Fetch pulls the snapshots v needs. It only reads from q.
func Fetch(v View, q bridge.Queries) Data {
	var d Data
	if v.Mode != ModeReady {
		return d
	}
	if v.ShowSceneGraph {
		if g, ok := q.SceneGraph(v.ActiveScene); ok {
			d.Graph = &g
		}
		d.Scenes = q.ResourcesOverview(ResourceScenes)
	}
	if v.ShowResourceList {
		d.Resources = q.ResourcesOverview(v.Panel.Resource)
	}
	if v.ShowRenderer {
		d.Renderers = q.ResourcesOverview(ResourceRenderers)
		if v.ActiveRenderer != "" {
			if info, ok := q.RenderingInfo(v.ActiveRenderer); ok {
				d.RenderingInfo = &info
			}
		}
	}
	if v.ShowInspector {
		d.Inspected = q.EntityAndDependencies(v.Inspected)
	}
	return d
}
