package glw

// Usage hints how the data store of a buffer will be accessed
type Usage uint32

const (
	StreamDraw  Usage = 0x88E0
	StreamRead  Usage = 0x88E1
	StreamCopy  Usage = 0x88E2
	StaticDraw  Usage = 0x88E4
	StaticRead  Usage = 0x88E5
	StaticCopy  Usage = 0x88E6
	DynamicDraw Usage = 0x88E8
	DynamicRead Usage = 0x88E9
	DynamicCopy Usage = 0x88EA
)

// Type is the data type of vertex attribute components and indices
type Type uint32

const (
	// accepted by both VertexAttribPointer and VertexAttribIPointer
	Byte          Type = 0x1400
	UnsignedByte  Type = 0x1401
	Short         Type = 0x1402
	UnsignedShort Type = 0x1403
	Int           Type = 0x1404
	UnsignedInt   Type = 0x1405

	// accepted by VertexAttribPointer only
	Float                   Type = 0x1406
	Double                  Type = 0x140A
	HalfFloat               Type = 0x140B
	Fixed                   Type = 0x140C
	Int2101010Rev           Type = 0x8D9F
	UnsignedInt2101010Rev   Type = 0x8368
	UnsignedInt10F11F11FRev Type = 0x8C3B
)

// Size returns the size in bytes of a single component. The packed formats report the size
// of the whole packed value, and 0 is returned for unknown types.
func (t Type) Size() int {
	switch t {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort, HalfFloat:
		return 2
	case Int, UnsignedInt, Float, Fixed,
		Int2101010Rev, UnsignedInt2101010Rev, UnsignedInt10F11F11FRev:
		return 4
	case Double:
		return 8
	}
	return 0
}

// IsInteger reports whether t can be used with VertexAttribIPointer
func (t Type) IsInteger() bool {
	switch t {
	case Byte, UnsignedByte, Short, UnsignedShort, Int, UnsignedInt:
		return true
	}
	return false
}

// isIndex reports whether t can be used as an index type for DrawElements
func (t Type) isIndex() bool {
	return t == UnsignedByte || t == UnsignedShort || t == UnsignedInt
}

// DrawMode is the kind of primitive to render
type DrawMode uint32

const (
	Points                 DrawMode = 0x0000
	Lines                  DrawMode = 0x0001
	LineLoop               DrawMode = 0x0002
	LineStrip              DrawMode = 0x0003
	Triangles              DrawMode = 0x0004
	TriangleStrip          DrawMode = 0x0005
	TriangleFan            DrawMode = 0x0006
	LinesAdjacency         DrawMode = 0x000A
	LineStripAdjacency     DrawMode = 0x000B
	TrianglesAdjacency     DrawMode = 0x000C
	TriangleStripAdjacency DrawMode = 0x000D
	Patches                DrawMode = 0x000E
)

// StringName selects one of the driver strings returned by GetString
type StringName uint32

const (
	Vendor                 StringName = 0x1F00
	Renderer               StringName = 0x1F01
	Version                StringName = 0x1F02
	ShadingLanguageVersion StringName = 0x8B8C
)

// IndexedStringName selects one of the driver string lists returned by GetStringi
type IndexedStringName uint32

const (
	Extensions IndexedStringName = 0x1F03
)

// BufferBit is a bit set of framebuffer buffers, used with Clear
type BufferBit uint32

const (
	DepthBufferBit   BufferBit = 0x00000100
	StencilBufferBit BufferBit = 0x00000400
	ColorBufferBit   BufferBit = 0x00004000

	AllBufferBits = ColorBufferBit | DepthBufferBit | StencilBufferBit
)

// Has reports whether all bits of o are set in b
func (b BufferBit) Has(o BufferBit) bool {
	return b&o == o
}

// IntegerName selects a piece of integer state returned by GetIntegerv
type IntegerName uint32

const (
	MaxTextureSize       IntegerName = 0x0D33
	MaxVertexAttribs     IntegerName = 0x8869
	MaxTextureImageUnits IntegerName = 0x8872
	MaxUniformBlockSize  IntegerName = 0x8A30
	MajorVersion         IntegerName = 0x821B
	MinorVersion         IntegerName = 0x821C
	NumExtensions        IntegerName = 0x821D
)

const glTrue int32 = 1
