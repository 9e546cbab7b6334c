package glw

import (
	"fmt"
	"unsafe"
)

// Buffer is the name of an OpenGL buffer object
type Buffer uint32

// VertexArray is the name of an OpenGL vertex array object
type VertexArray uint32

const (
	// NoBuffer unbinds whatever buffer is bound to a target
	NoBuffer Buffer = 0
	// NoVertexArray unbinds the current vertex array
	NoVertexArray VertexArray = 0
)

// BufferKind is the target a buffer is bound to
type BufferKind uint32

const (
	ArrayBuffer             BufferKind = 0x8892
	ElementArrayBuffer      BufferKind = 0x8893
	PixelPackBuffer         BufferKind = 0x88EB
	PixelUnpackBuffer       BufferKind = 0x88EC
	UniformBuffer           BufferKind = 0x8A11
	TextureBuffer           BufferKind = 0x8C2A
	TransformFeedbackBuffer BufferKind = 0x8C8E
	CopyReadBuffer          BufferKind = 0x8F36
	CopyWriteBuffer         BufferKind = 0x8F37
	DrawIndirectBuffer      BufferKind = 0x8F3F
	ShaderStorageBuffer     BufferKind = 0x90D2
	DispatchIndirectBuffer  BufferKind = 0x90EE
	QueryBuffer             BufferKind = 0x9192
	AtomicCounterBuffer     BufferKind = 0x92C0
)

// GenBuffers reserves n buffer names
func (c *Context) GenBuffers(n int) []Buffer {
	if n <= 0 {
		return []Buffer{}
	}
	names := make([]uint32, n)
	c.Driver.GenBuffers(names)
	ret := make([]Buffer, n)
	for i, name := range names {
		ret[i] = Buffer(name)
	}
	return ret
}

func (c *Context) GenBuffer() Buffer {
	return c.GenBuffers(1)[0]
}

func (c *Context) BindBuffer(kind BufferKind, buffer Buffer) {
	c.Driver.BindBuffer(uint32(kind), uint32(buffer))
}

// BufferData creates and initializes the data store of the buffer bound to kind with
// the contents of data. The size is taken from the element type, so data should be
// a slice of plain values such as float32 or a struct of them.
func BufferData[T any](c *Context, kind BufferKind, data []T, usage Usage) {
	if len(data) == 0 {
		c.Driver.BufferData(uint32(kind), 0, nil, uint32(usage))
		return
	}
	var zero T
	size := len(data) * int(unsafe.Sizeof(zero))
	c.Driver.BufferData(uint32(kind), size, unsafe.Pointer(&data[0]), uint32(usage))
}

// BufferDataBytes uploads the bytes of a BufferObject to the buffer bound to kind
func (c *Context) BufferDataBytes(kind BufferKind, obj BufferObject, usage Usage) {
	BufferData(c, kind, obj.Bytes(), usage)
}

// BufferDataPtr is the unchecked form of BufferData, size is in bytes and data may be nil
// to allocate an uninitialized store.
func (c *Context) BufferDataPtr(kind BufferKind, size int, data unsafe.Pointer, usage Usage) {
	c.Driver.BufferData(uint32(kind), size, data, uint32(usage))
}

func (c *Context) DeleteBuffers(buffers ...Buffer) {
	if len(buffers) == 0 {
		return
	}
	names := make([]uint32, len(buffers))
	for i, b := range buffers {
		names[i] = uint32(b)
	}
	c.Driver.DeleteBuffers(names)
}

func (c *Context) DeleteBuffer(buffer Buffer) {
	c.DeleteBuffers(buffer)
}

// GenVertexArrays reserves n vertex array names
func (c *Context) GenVertexArrays(n int) []VertexArray {
	if n <= 0 {
		return []VertexArray{}
	}
	names := make([]uint32, n)
	c.Driver.GenVertexArrays(names)
	ret := make([]VertexArray, n)
	for i, name := range names {
		ret[i] = VertexArray(name)
	}
	return ret
}

func (c *Context) GenVertexArray() VertexArray {
	return c.GenVertexArrays(1)[0]
}

func (c *Context) BindVertexArray(array VertexArray) {
	c.Driver.BindVertexArray(uint32(array))
}

func (c *Context) DeleteVertexArrays(arrays ...VertexArray) {
	if len(arrays) == 0 {
		return
	}
	names := make([]uint32, len(arrays))
	for i, a := range arrays {
		names[i] = uint32(a)
	}
	c.Driver.DeleteVertexArrays(names)
}

func (c *Context) DeleteVertexArray(array VertexArray) {
	c.DeleteVertexArrays(array)
}

// VertexAttribPointer describes attribute index as size components of type ty, read
// stride bytes apart starting offset bytes into the bound array buffer. Integer types are
// converted to floats, normalized to [0,1] or [-1,1] if normalized is set.
func (c *Context) VertexAttribPointer(index uint32, size int32, ty Type, normalized bool, stride int32, offset uintptr) {
	c.Driver.VertexAttribPointer(index, size, uint32(ty), normalized, stride, offset)
}

// VertexAttribIPointer is like VertexAttribPointer but keeps the values as integers,
// so ty must be one of the integer types.
func (c *Context) VertexAttribIPointer(index uint32, size int32, ty Type, stride int32, offset uintptr) error {
	if !ty.IsInteger() {
		return fmt.Errorf("vertex attribute %d: %w: 0x%04X", index, ErrNotIntegerType, uint32(ty))
	}
	c.Driver.VertexAttribIPointer(index, size, uint32(ty), stride, offset)
	return nil
}

// VertexAttribLPointer describes a 64-bit attribute, the only accepted type is Double so
// it is not a parameter.
func (c *Context) VertexAttribLPointer(index uint32, size int32, stride int32, offset uintptr) {
	c.Driver.VertexAttribLPointer(index, size, uint32(Double), stride, offset)
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.Driver.EnableVertexAttribArray(index)
}

func (c *Context) DisableVertexAttribArray(index uint32) {
	c.Driver.DisableVertexAttribArray(index)
}
