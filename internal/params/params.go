// Package params describes which properties the parameter inspector shows
// for each kind of entity and how each one is edited.
package params

import "strings"

// Kind is the input control used for a property.
type Kind string

const (
	KindVec3    Kind = "vec3"
	KindBoolean Kind = "boolean"
	KindNumber  Kind = "number"
	KindEnum    Kind = "enum"
	KindColor   Kind = "color"
	KindString  Kind = "string"
	KindEntity  Kind = "entity"
)

// Prop describes one editable property.
type Prop struct {
	Name      string
	Prop      string
	Kind      Kind
	EnumType  string
	Step      float64
	Precision int
	Default   any
}

// Group is a titled set of properties.
type Group struct {
	Name  string
	Props []Prop
}

var transform = Group{
	Name: "Transform",
	Props: []Prop{
		{Name: "Position", Prop: "position", Kind: KindVec3, Step: 0.01, Precision: 3},
		{Name: "Rotation", Prop: "rotation", Kind: KindVec3, Step: 0.01, Precision: 3},
		{Name: "Scale", Prop: "scale", Kind: KindVec3, Step: 0.01, Precision: 3, Default: []any{1.0, 1.0, 1.0}},
		{Name: "Matrix Auto Update", Prop: "matrixAutoUpdate", Kind: KindBoolean, Default: true},
	},
}

var object = Group{
	Name: "Object",
	Props: []Prop{
		{Name: "Visible", Prop: "visible", Kind: KindBoolean, Default: true},
		{Name: "Cast Shadow", Prop: "castShadow", Kind: KindBoolean},
		{Name: "Receive Shadow", Prop: "receiveShadow", Kind: KindBoolean},
		{Name: "Frustum Culled", Prop: "frustumCulled", Kind: KindBoolean, Default: true},
		{Name: "Render Order", Prop: "renderOrder", Kind: KindNumber},
		{Name: "Geometry", Prop: "geometry", Kind: KindEntity},
		{Name: "Material", Prop: "material", Kind: KindEntity},
	},
}

var material = Group{
	Name: "Material",
	Props: []Prop{
		{Name: "Color", Prop: "color", Kind: KindColor},
		{Name: "Emissive", Prop: "emissive", Kind: KindColor},
		{Name: "Opacity", Prop: "opacity", Kind: KindNumber, Step: 0.01, Precision: 2, Default: 1.0},
		{Name: "Transparent", Prop: "transparent", Kind: KindBoolean},
		{Name: "Side", Prop: "side", Kind: KindEnum, EnumType: "side"},
		{Name: "Blending", Prop: "blending", Kind: KindEnum, EnumType: "blending"},
		{Name: "Blend Src", Prop: "blendSrc", Kind: KindEnum, EnumType: "blendFactor"},
		{Name: "Blend Dst", Prop: "blendDst", Kind: KindEnum, EnumType: "blendFactor"},
		{Name: "Blend Equation", Prop: "blendEquation", Kind: KindEnum, EnumType: "blendEquation"},
		{Name: "Blend Src Alpha", Prop: "blendSrcAlpha", Kind: KindEnum, EnumType: "blendFactorOrNull"},
		{Name: "Blend Dst Alpha", Prop: "blendDstAlpha", Kind: KindEnum, EnumType: "blendFactorOrNull"},
		{Name: "Depth Test", Prop: "depthTest", Kind: KindBoolean, Default: true},
		{Name: "Depth Write", Prop: "depthWrite", Kind: KindBoolean, Default: true},
		{Name: "Depth Func", Prop: "depthFunc", Kind: KindEnum, EnumType: "depthFunc"},
		{Name: "Alpha Test", Prop: "alphaTest", Kind: KindNumber, Step: 0.01, Precision: 2},
		{Name: "Wireframe", Prop: "wireframe", Kind: KindBoolean},
		{Name: "Metalness", Prop: "metalness", Kind: KindNumber, Step: 0.01, Precision: 2},
		{Name: "Roughness", Prop: "roughness", Kind: KindNumber, Step: 0.01, Precision: 2},
		{Name: "Map", Prop: "map", Kind: KindEntity},
		{Name: "Normal Map", Prop: "normalMap", Kind: KindEntity},
	},
}

var texture = Group{
	Name: "Texture",
	Props: []Prop{
		{Name: "Mapping", Prop: "mapping", Kind: KindEnum, EnumType: "mapping"},
		{Name: "Wrap S", Prop: "wrapS", Kind: KindEnum, EnumType: "wrap"},
		{Name: "Wrap T", Prop: "wrapT", Kind: KindEnum, EnumType: "wrap"},
		{Name: "Mag Filter", Prop: "magFilter", Kind: KindEnum, EnumType: "magFilter"},
		{Name: "Min Filter", Prop: "minFilter", Kind: KindEnum, EnumType: "minFilter"},
		{Name: "Format", Prop: "format", Kind: KindEnum, EnumType: "pixelFormat"},
		{Name: "Type", Prop: "type", Kind: KindEnum, EnumType: "dataType"},
		{Name: "Encoding", Prop: "encoding", Kind: KindEnum, EnumType: "encoding"},
		{Name: "Anisotropy", Prop: "anisotropy", Kind: KindNumber, Default: 1.0},
		{Name: "Flip Y", Prop: "flipY", Kind: KindBoolean, Default: true},
		{Name: "Generate Mipmaps", Prop: "generateMipmaps", Kind: KindBoolean, Default: true},
	},
}

var geometry = Group{
	Name: "Geometry",
	Props: []Prop{
		{Name: "Vertices", Prop: "vertexCount", Kind: KindNumber},
		{Name: "Indexed", Prop: "indexed", Kind: KindBoolean},
		{Name: "Draw Range Start", Prop: "drawRangeStart", Kind: KindNumber},
		{Name: "Draw Range Count", Prop: "drawRangeCount", Kind: KindNumber},
	},
}

var renderer = Group{
	Name: "Renderer",
	Props: []Prop{
		{Name: "Tone Mapping", Prop: "toneMapping", Kind: KindEnum, EnumType: "toneMapping"},
		{Name: "Exposure", Prop: "toneMappingExposure", Kind: KindNumber, Step: 0.01, Precision: 2, Default: 1.0},
		{Name: "Output Encoding", Prop: "outputEncoding", Kind: KindEnum, EnumType: "encoding"},
		{Name: "Shadow Map", Prop: "shadowMapEnabled", Kind: KindBoolean},
		{Name: "Shadow Type", Prop: "shadowMapType", Kind: KindEnum, EnumType: "shadowType"},
		{Name: "Physically Correct Lights", Prop: "physicallyCorrectLights", Kind: KindBoolean},
		{Name: "Pixel Ratio", Prop: "pixelRatio", Kind: KindNumber, Precision: 2},
	},
}

// ForType returns the property groups for an entity type name such as
// "Mesh", "MeshStandardMaterial" or "WebGLRenderer".
func ForType(entityType string) []Group {
	switch {
	case strings.HasSuffix(entityType, "Renderer"):
		return []Group{renderer}
	case strings.HasSuffix(entityType, "Material"):
		return []Group{material}
	case strings.HasSuffix(entityType, "Texture"):
		return []Group{texture}
	case strings.HasSuffix(entityType, "Geometry"):
		return []Group{geometry}
	case entityType == "":
		return nil
	default:
		return []Group{transform, object}
	}
}

// All lists every group, for consistency checks against the enum tables.
func All() []Group {
	return []Group{transform, object, material, texture, geometry, renderer}
}
