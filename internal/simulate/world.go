// Package simulate serves a fake instrumented runtime over the bridge
// protocol, for demos and for exercising the client end to end.
package simulate

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/jask/scenescope/internal/bridge"
)

// ErrUnknownEntity is returned when a command names an entity the world does
// not contain.
var ErrUnknownEntity = errors.New("simulate: unknown entity")

// World is a small sample scene. It is safe for concurrent use.
type World struct {
	mu        sync.Mutex
	scenes    []bridge.GraphNode
	entities  map[string]bridge.Entity
	overviews map[string][]bridge.EntityRef
	renderer  string
	frame     int
	rnd       *rand.Rand
}

// NewWorld builds two scenes with meshes, materials, textures and one
// renderer. seed makes the generated statistics reproducible.
func NewWorld(seed uint64) *World {
	w := &World{
		entities:  map[string]bridge.Entity{},
		overviews: map[string][]bridge.EntityRef{},
		renderer:  "renderer-" + uuid.NewString(),
		rnd:       rand.New(rand.NewPCG(seed, seed^0x5eed)),
	}

	brick := w.add("textures", "Texture", "brick_diffuse", map[string]any{
		"mapping": 300.0, "wrapS": 1000.0, "wrapT": 1000.0,
		"magFilter": 1006.0, "minFilter": 1008.0, "format": 1023.0,
		"type": 1009.0, "encoding": 3001.0, "anisotropy": 4.0, "flipY": true,
	})
	normal := w.add("textures", "Texture", "brick_normal", map[string]any{
		"mapping": 300.0, "wrapS": 1000.0, "wrapT": 1000.0,
		"magFilter": 1006.0, "minFilter": 1008.0, "format": 1023.0,
		"type": 1009.0, "encoding": 3000.0,
	})
	sprite := w.add("textures", "CanvasTexture", "hud", map[string]any{
		"mapping": 300.0, "wrapS": 1001.0, "wrapT": 1001.0,
		"magFilter": 1006.0, "minFilter": 1006.0, "generateMipmaps": false,
	})

	box := w.add("geometries", "BoxGeometry", "", map[string]any{
		"vertexCount": 24.0, "indexed": true, "drawRangeStart": 0.0, "drawRangeCount": 36.0,
	})
	plane := w.add("geometries", "PlaneGeometry", "", map[string]any{
		"vertexCount": 4.0, "indexed": true, "drawRangeStart": 0.0, "drawRangeCount": 6.0,
	})

	brickMat := w.add("materials", "MeshStandardMaterial", "Brick", map[string]any{
		"color": float64(0xb35a3c), "emissive": 0.0, "opacity": 1.0,
		"side": 0.0, "blending": 1.0, "blendSrc": 204.0, "blendDst": 205.0,
		"blendEquation": 100.0, "blendSrcAlpha": -1.0, "blendDstAlpha": -1.0,
		"depthTest": true, "depthWrite": true, "depthFunc": 3.0,
		"metalness": 0.1, "roughness": 0.8, "map": brick, "normalMap": normal,
	})
	floorMat := w.add("materials", "MeshBasicMaterial", "Floor", map[string]any{
		"color": float64(0x808080), "side": 2.0, "blending": 1.0, "wireframe": false,
	})
	hudMat := w.add("materials", "SpriteMaterial", "HUD", map[string]any{
		"color": float64(0xffffff), "transparent": true, "opacity": 0.85,
		"blending": 2.0, "depthTest": false, "map": sprite,
	})

	cube := w.object("Mesh", "Cube", map[string]any{
		"position": []any{0.0, 0.5, 0.0}, "castShadow": true,
		"geometry": box, "material": brickMat,
	})
	floor := w.object("Mesh", "Floor", map[string]any{
		"position": []any{0.0, 0.0, 0.0}, "rotation": []any{-1.5708, 0.0, 0.0},
		"scale": []any{10.0, 10.0, 1.0}, "receiveShadow": true,
		"geometry": plane, "material": floorMat,
	})
	sun := w.object("DirectionalLight", "Sun", map[string]any{
		"position": []any{5.0, 10.0, 7.5}, "castShadow": true,
	})
	camera := w.object("PerspectiveCamera", "Camera", map[string]any{
		"position": []any{3.0, 3.0, 6.0},
	})
	group := w.object("Group", "Props", nil)
	badge := w.object("Sprite", "Badge", map[string]any{"material": hudMat, "renderOrder": 10.0})

	main := w.object("Scene", "Main", nil)
	overlay := w.object("Scene", "Overlay", nil)
	w.scenes = []bridge.GraphNode{
		{UUID: main.UUID, Name: main.Name, Type: main.Type, Children: []bridge.GraphNode{
			{UUID: group.UUID, Name: group.Name, Type: group.Type, Children: []bridge.GraphNode{cube, floor}},
			sun,
			camera,
		}},
		{UUID: overlay.UUID, Name: overlay.Name, Type: overlay.Type, Children: []bridge.GraphNode{badge}},
	}
	for _, s := range w.scenes {
		w.overviews[panelScenes] = append(w.overviews[panelScenes], s.Ref())
	}

	w.entities[w.renderer] = bridge.Entity{UUID: w.renderer, Type: "WebGLRenderer", Props: map[string]any{
		"toneMapping": 4.0, "toneMappingExposure": 1.0, "outputEncoding": 3001.0,
		"shadowMapEnabled": true, "shadowMapType": 2.0,
		"physicallyCorrectLights": true, "pixelRatio": 2.0,
	}}
	w.overviews[panelRenderers] = []bridge.EntityRef{{UUID: w.renderer, Type: "WebGLRenderer"}}
	return w
}

const (
	panelScenes    = "scenes"
	panelRenderers = "renderers"
)

func (w *World) add(overview, typ, name string, props map[string]any) string {
	id := uuid.NewString()
	w.entities[id] = bridge.Entity{UUID: id, Type: typ, Name: name, Props: props}
	w.overviews[overview] = append(w.overviews[overview], bridge.EntityRef{UUID: id, Name: name, Type: typ})
	return id
}

func (w *World) object(typ, name string, props map[string]any) bridge.GraphNode {
	id := uuid.NewString()
	if props == nil {
		props = map[string]any{}
	}
	w.entities[id] = bridge.Entity{UUID: id, Type: typ, Name: name, Props: props}
	return bridge.GraphNode{UUID: id, Name: name, Type: typ}
}

// Renderer is the id of the simulated renderer.
func (w *World) Renderer() string { return w.renderer }

// Scenes lists the scene ids in overview order.
func (w *World) Scenes() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.scenes))
	for _, s := range w.scenes {
		out = append(out, s.UUID)
	}
	return out
}

// Snapshot is the burst a freshly instrumented target sends: load, observe,
// every overview, every scene graph and every entity.
func (w *World) Snapshot() []bridge.Message {
	w.mu.Lock()
	defer w.mu.Unlock()

	msgs := []bridge.Message{
		{Type: bridge.KindLoad},
		{Type: bridge.KindObserve, UUIDs: []string{w.renderer}},
	}
	for _, kind := range []string{panelScenes, "geometries", "materials", "textures", panelRenderers} {
		msgs = append(msgs, bridge.Message{
			Type:         bridge.KindOverviewUpdate,
			ResourceType: kind,
			Entities:     slices.Clone(w.overviews[kind]),
		})
	}
	for _, s := range w.scenes {
		g := s
		msgs = append(msgs, bridge.Message{Type: bridge.KindSceneGraphUpdate, UUID: s.UUID, Graph: &g})
	}
	ids := make([]string, 0, len(w.entities))
	for id := range w.entities {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		e := w.entities[id]
		msgs = append(msgs, bridge.Message{Type: bridge.KindEntityUpdate, UUID: id, Entity: &e})
	}
	info := w.infoLocked()
	msgs = append(msgs, bridge.Message{Type: bridge.KindRenderingInfoUpdate, UUID: w.renderer, Info: &info})
	return msgs
}

// Tick advances one frame and returns the renderer notifications for it.
func (w *World) Tick() []bridge.Message {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.frame++
	renderer := w.entities[w.renderer]
	info := w.infoLocked()
	return []bridge.Message{
		{Type: bridge.KindRendererUpdate, UUID: w.renderer, Entity: &renderer},
		{Type: bridge.KindRenderingInfoUpdate, UUID: w.renderer, Info: &info},
	}
}

// SetProperty changes one property and returns the entity-update announcing
// the new state.
func (w *World) SetProperty(id, property string, value any) (bridge.Message, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	e, ok := w.entities[id]
	if !ok {
		return bridge.Message{}, fmt.Errorf("%w: %s", ErrUnknownEntity, id)
	}
	if property == "" {
		return bridge.Message{}, fmt.Errorf("simulate: empty property for %s", id)
	}
	props := make(map[string]any, len(e.Props)+1)
	for k, v := range e.Props {
		props[k] = v
	}
	props[property] = value
	e.Props = props
	w.entities[id] = e

	kind := bridge.KindEntityUpdate
	if id == w.renderer {
		kind = bridge.KindRendererUpdate
	}
	return bridge.Message{Type: kind, UUID: id, Entity: &e}, nil
}

func (w *World) infoLocked() bridge.RenderingInfo {
	return bridge.RenderingInfo{
		UUID: w.renderer,
		Memory: bridge.MemoryInfo{
			Geometries: len(w.overviews["geometries"]),
			Textures:   len(w.overviews["textures"]),
		},
		Render: bridge.RenderInfo{
			Calls:     4 + w.rnd.IntN(3),
			Triangles: 14 + w.rnd.IntN(20),
			Frame:     w.frame,
		},
		Programs: len(w.overviews["materials"]),
	}
}
