// Package panel owns the inspector's selection state and decides, for each
// bridge notification, whether the visible panel has to be refreshed.
package panel

import (
	"errors"
	"fmt"
	"slices"
)

// Tag identifies one of the inspector panels.
type Tag string

const (
	Scene      Tag = "scene"
	Geometries Tag = "geometries"
	Materials  Tag = "materials"
	Textures   Tag = "textures"
	Rendering  Tag = "rendering"
)

// ResourceScenes is the overview type that lists scenes.
const ResourceScenes = "scenes"

// ErrUnknownPanel is returned for tags outside the definition table.
var ErrUnknownPanel = errors.New("unknown panel")

// Definition describes a panel. Resource is empty for panels that are not
// backed by an overview list.
type Definition struct {
	Tag      Tag
	Title    string
	Resource string
}

var definitions = []Definition{
	{Tag: Scene, Title: "Scene", Resource: ResourceScenes},
	{Tag: Geometries, Title: "Geometries", Resource: "geometries"},
	{Tag: Materials, Title: "Materials", Resource: "materials"},
	{Tag: Textures, Title: "Textures", Resource: "textures"},
	{Tag: Rendering, Title: "Rendering"},
}

// Definitions returns the panel table in tab order.
func Definitions() []Definition {
	return slices.Clone(definitions)
}

func Lookup(tag Tag) (Definition, bool) {
	for _, d := range definitions {
		if d.Tag == tag {
			return d, true
		}
	}
	return Definition{}, false
}

// ParseTag validates a panel name from config or flags.
func ParseTag(s string) (Tag, error) {
	if _, ok := Lookup(Tag(s)); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPanel, s)
	}
	return Tag(s), nil
}
