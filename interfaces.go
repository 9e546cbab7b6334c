package glw

// BufferObject is anything which can provide raw bytes to upload into a buffer
type BufferObject interface {
	Bytes() []byte
}

// IndexSource is a BufferObject holding indices for DrawElements
type IndexSource interface {
	BufferObject
	IndexType() Type
	Len() int
}

// VertexAttrib describes how a single vertex attribute is laid out in an array buffer,
// mirroring the arguments of VertexAttribPointer.
type VertexAttrib struct {
	Index      uint32
	Size       int32
	Type       Type
	Normalized bool
	Stride     int32
	Offset     uintptr
}

// VertexSource is a BufferObject holding interleaved vertex data along with a
// description of its attributes.
type VertexSource interface {
	BufferObject
	Attributes() []VertexAttrib
}

// SetVertexAttribs describes and enables every attribute of src against the currently
// bound array buffer and vertex array.
func (c *Context) SetVertexAttribs(src VertexSource) {
	for _, a := range src.Attributes() {
		c.VertexAttribPointer(a.Index, a.Size, a.Type, a.Normalized, a.Stride, a.Offset)
		c.EnableVertexAttribArray(a.Index)
	}
}

// DrawIndexed draws every index of idx, which must already be uploaded to the bound
// element array buffer.
func (c *Context) DrawIndexed(mode DrawMode, idx IndexSource) error {
	return c.DrawElements(mode, int32(idx.Len()), idx.IndexType(), 0)
}
