package enums

// defaultConstants mirrors the runtime's exported numeric constants.
var defaultConstants = Constants{
	"CullFaceNone":      0,
	"CullFaceBack":      1,
	"CullFaceFront":     2,
	"CullFaceFrontBack": 3,

	"BasicShadowMap":   0,
	"PCFShadowMap":     1,
	"PCFSoftShadowMap": 2,
	"VSMShadowMap":     3,

	"FrontSide":  0,
	"BackSide":   1,
	"DoubleSide": 2,

	"FlatShading":   1,
	"SmoothShading": 2,

	"NoBlending":          0,
	"NormalBlending":      1,
	"AdditiveBlending":    2,
	"SubtractiveBlending": 3,
	"MultiplyBlending":    4,
	"CustomBlending":      5,

	"AddEquation":             100,
	"SubtractEquation":        101,
	"ReverseSubtractEquation": 102,
	"MinEquation":             103,
	"MaxEquation":             104,

	"ZeroFactor":             200,
	"OneFactor":              201,
	"SrcColorFactor":         202,
	"OneMinusSrcColorFactor": 203,
	"SrcAlphaFactor":         204,
	"OneMinusSrcAlphaFactor": 205,
	"DstAlphaFactor":         206,
	"OneMinusDstAlphaFactor": 207,
	"DstColorFactor":         208,
	"OneMinusDstColorFactor": 209,
	"SrcAlphaSaturateFactor": 210,

	"NeverDepth":        0,
	"AlwaysDepth":       1,
	"LessDepth":         2,
	"LessEqualDepth":    3,
	"EqualDepth":        4,
	"GreaterEqualDepth": 5,
	"GreaterDepth":      6,
	"NotEqualDepth":     7,

	"MultiplyOperation": 0,
	"MixOperation":      1,
	"AddOperation":      2,

	"NoToneMapping":         0,
	"LinearToneMapping":     1,
	"ReinhardToneMapping":   2,
	"CineonToneMapping":     3,
	"ACESFilmicToneMapping": 4,

	"UVMapping":                        300,
	"CubeReflectionMapping":            301,
	"CubeRefractionMapping":            302,
	"EquirectangularReflectionMapping": 303,
	"EquirectangularRefractionMapping": 304,
	"CubeUVReflectionMapping":          306,

	"RepeatWrapping":         1000,
	"ClampToEdgeWrapping":    1001,
	"MirroredRepeatWrapping": 1002,

	"NearestFilter":              1003,
	"NearestMipmapNearestFilter": 1004,
	"NearestMipmapLinearFilter":  1005,
	"LinearFilter":               1006,
	"LinearMipmapNearestFilter":  1007,
	"LinearMipmapLinearFilter":   1008,

	"UnsignedByteType":      1009,
	"ByteType":              1010,
	"ShortType":             1011,
	"UnsignedShortType":     1012,
	"IntType":               1013,
	"UnsignedIntType":       1014,
	"FloatType":             1015,
	"HalfFloatType":         1016,
	"UnsignedShort4444Type": 1017,
	"UnsignedShort5551Type": 1018,
	"UnsignedInt248Type":    1020,

	"AlphaFormat":          1021,
	"RGBFormat":            1022,
	"RGBAFormat":           1023,
	"LuminanceFormat":      1024,
	"LuminanceAlphaFormat": 1025,
	"DepthFormat":          1026,
	"DepthStencilFormat":   1027,
	"RedFormat":            1028,

	"LinearEncoding": 3000,
	"sRGBEncoding":   3001,

	"TrianglesDrawMode":     0,
	"TriangleStripDrawMode": 1,
	"TriangleFanDrawMode":   2,

	"ZeroStencilOp":          0,
	"KeepStencilOp":          7680,
	"ReplaceStencilOp":       7681,
	"IncrementStencilOp":     7682,
	"DecrementStencilOp":     7683,
	"IncrementWrapStencilOp": 34055,
	"DecrementWrapStencilOp": 34056,
	"InvertStencilOp":        5386,

	"NeverStencilFunc":        512,
	"LessStencilFunc":         513,
	"EqualStencilFunc":        514,
	"LessEqualStencilFunc":    515,
	"GreaterStencilFunc":      516,
	"NotEqualStencilFunc":     517,
	"GreaterEqualStencilFunc": 518,
	"AlwaysStencilFunc":       519,

	"REVISION": "125",
}

var blendFactors = []string{
	"ZeroFactor",
	"OneFactor",
	"SrcColorFactor",
	"OneMinusSrcColorFactor",
	"SrcAlphaFactor",
	"OneMinusSrcAlphaFactor",
	"DstAlphaFactor",
	"OneMinusDstAlphaFactor",
	"DstColorFactor",
	"OneMinusDstColorFactor",
	"SrcAlphaSaturateFactor",
}

var blendEquations = []string{
	"AddEquation",
	"SubtractEquation",
	"ReverseSubtractEquation",
	"MinEquation",
	"MaxEquation",
}

// defaultRegistry maps each semantic property type to the ordered constant
// names a selection control offers.
var defaultRegistry = Registry{
	"side":     {"FrontSide", "BackSide", "DoubleSide"},
	"blending": {"NoBlending", "NormalBlending", "AdditiveBlending", "SubtractiveBlending", "MultiplyBlending", "CustomBlending"},

	"blendEquation":       blendEquations,
	"blendEquationOrNull": append([]string{"null"}, blendEquations...),
	"blendFactor":         blendFactors,
	"blendFactorOrNull":   append([]string{"null"}, blendFactors...),

	"depthFunc":   {"NeverDepth", "AlwaysDepth", "LessDepth", "LessEqualDepth", "EqualDepth", "GreaterEqualDepth", "GreaterDepth", "NotEqualDepth"},
	"combine":     {"MultiplyOperation", "MixOperation", "AddOperation"},
	"toneMapping": {"NoToneMapping", "LinearToneMapping", "ReinhardToneMapping", "CineonToneMapping", "ACESFilmicToneMapping"},
	"shadowType":  {"BasicShadowMap", "PCFShadowMap", "PCFSoftShadowMap", "VSMShadowMap"},
	"cullFace":    {"CullFaceNone", "CullFaceBack", "CullFaceFront", "CullFaceFrontBack"},
	"shading":     {"FlatShading", "SmoothShading"},
	"mapping":     {"UVMapping", "CubeReflectionMapping", "CubeRefractionMapping", "EquirectangularReflectionMapping", "EquirectangularRefractionMapping", "CubeUVReflectionMapping"},
	"wrap":        {"RepeatWrapping", "ClampToEdgeWrapping", "MirroredRepeatWrapping"},
	"magFilter":   {"NearestFilter", "LinearFilter"},
	"minFilter":   {"NearestFilter", "NearestMipmapNearestFilter", "NearestMipmapLinearFilter", "LinearFilter", "LinearMipmapNearestFilter", "LinearMipmapLinearFilter"},
	"dataType":    {"UnsignedByteType", "ByteType", "ShortType", "UnsignedShortType", "IntType", "UnsignedIntType", "FloatType", "HalfFloatType", "UnsignedShort4444Type", "UnsignedShort5551Type", "UnsignedInt248Type"},
	"pixelFormat": {"AlphaFormat", "RGBFormat", "RGBAFormat", "LuminanceFormat", "LuminanceAlphaFormat", "DepthFormat", "DepthStencilFormat", "RedFormat"},
	"encoding":    {"LinearEncoding", "sRGBEncoding"},
	"drawMode":    {"TrianglesDrawMode", "TriangleStripDrawMode", "TriangleFanDrawMode"},
	"stencilOp":   {"ZeroStencilOp", "KeepStencilOp", "ReplaceStencilOp", "IncrementStencilOp", "DecrementStencilOp", "IncrementWrapStencilOp", "DecrementWrapStencilOp", "InvertStencilOp"},
	"stencilFunc": {"NeverStencilFunc", "LessStencilFunc", "EqualStencilFunc", "LessEqualStencilFunc", "GreaterStencilFunc", "NotEqualStencilFunc", "GreaterEqualStencilFunc", "AlwaysStencilFunc"},
}
