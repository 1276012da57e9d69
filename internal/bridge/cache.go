package bridge

import (
	"slices"
	"sync"
)

// Cache keeps the latest snapshot of everything the target announced. It is
// written by a transport goroutine and read by the UI.
type Cache struct {
	mu        sync.RWMutex
	graphs    map[string]GraphNode
	overviews map[string][]EntityRef
	entities  map[string]Entity
	info      map[string]RenderingInfo
}

func NewCache() *Cache {
	c := &Cache{}
	c.Reset()
	return c
}

// Reset drops every snapshot. A load invalidates all previous state.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.graphs = map[string]GraphNode{}
	c.overviews = map[string][]EntityRef{}
	c.entities = map[string]Entity{}
	c.info = map[string]RenderingInfo{}
}

// Apply stores the snapshots carried by m.
func (c *Cache) Apply(m Message) {
	if m.Type == KindLoad {
		c.Reset()
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if m.Type == KindOverviewUpdate && m.ResourceType != "" {
		c.overviews[m.ResourceType] = slices.Clone(m.Entities)
	}
	if m.Graph != nil {
		id := m.Graph.UUID
		if id == "" {
			id = m.UUID
		}
		c.graphs[id] = *m.Graph
	}
	if m.Entity != nil && m.Entity.UUID != "" {
		c.entities[m.Entity.UUID] = *m.Entity
	}
	if m.Info != nil {
		id := m.Info.UUID
		if id == "" {
			id = m.UUID
		}
		c.info[id] = *m.Info
	}
}

func (c *Cache) SceneGraph(sceneID string) (GraphNode, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	g, ok := c.graphs[sceneID]
	return g, ok
}

func (c *Cache) ResourcesOverview(typeTag string) []EntityRef {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.overviews[typeTag])
}

// EntityAndDependencies returns the entity and every known entity referenced
// by one of its string properties, such as a material's texture maps.
func (c *Cache) EntityAndDependencies(entityID string) EntitySet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	root, ok := c.entities[entityID]
	if !ok {
		return nil
	}
	out := EntitySet{root.UUID: root}
	for _, v := range root.Props {
		id, ok := v.(string)
		if !ok || id == root.UUID {
			continue
		}
		if dep, ok := c.entities[id]; ok {
			out[id] = dep
		}
	}
	return out
}

func (c *Cache) RenderingInfo(rendererID string) (RenderingInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	info, ok := c.info[rendererID]
	return info, ok
}
