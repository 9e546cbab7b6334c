package glw

import (
	"fmt"
)

func (c *Context) ClearColor(red, green, blue, alpha float32) {
	c.Driver.ClearColor(red, green, blue, alpha)
}

func (c *Context) ClearColorArray(rgba [4]float32) {
	c.ClearColor(rgba[0], rgba[1], rgba[2], rgba[3])
}

func (c *Context) Clear(mask BufferBit) {
	c.Driver.Clear(uint32(mask))
}

func (c *Context) DrawArrays(mode DrawMode, first, count int32) {
	c.Driver.DrawArrays(uint32(mode), first, count)
}

// DrawElements draws count indices of type ty read from the bound element array buffer,
// starting offset bytes into it. Only UnsignedByte, UnsignedShort and UnsignedInt indices
// are accepted.
func (c *Context) DrawElements(mode DrawMode, count int32, ty Type, offset uintptr) error {
	if !ty.isIndex() {
		return fmt.Errorf("%w: 0x%04X", ErrInvalidIndexType, uint32(ty))
	}
	c.Driver.DrawElements(uint32(mode), count, uint32(ty), offset)
	return nil
}

func (c *Context) GetString(name StringName) string {
	return c.Driver.GetString(uint32(name))
}

func (c *Context) GetStringi(name IndexedStringName, index uint32) string {
	return c.Driver.GetStringi(uint32(name), index)
}

// GetIntegerv returns a single integer state value
func (c *Context) GetIntegerv(name IntegerName) int32 {
	data := make([]int32, 1)
	c.Driver.GetIntegerv(uint32(name), data)
	return data[0]
}

// Extensions returns every extension supported by the driver
func (c *Context) Extensions() []string {
	n := c.GetIntegerv(NumExtensions)
	if n <= 0 {
		return nil
	}
	ret := make([]string, 0, n)
	for i := uint32(0); i < uint32(n); i++ {
		ret = append(ret, c.GetStringi(Extensions, i))
	}
	return ret
}

// HasExtension reports whether the named extension is supported
func (c *Context) HasExtension(name string) bool {
	for _, e := range c.Extensions() {
		if e == name {
			return true
		}
	}
	return false
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.Driver.Viewport(x, y, width, height)
}

// Scissor sets the window space box outside which fragments are discarded while
// ScissorTest is enabled
func (c *Context) Scissor(x, y, width, height int32) {
	c.Driver.Scissor(x, y, width, height)
}

// Limits are a handful of implementation limits which are commonly checked at startup
type Limits struct {
	MajorVersion         int
	MinorVersion         int
	MaxTextureSize       int
	MaxVertexAttribs     int
	MaxTextureImageUnits int
	MaxUniformBlockSize  int
}

func (c *Context) Limits() Limits {
	return Limits{
		MajorVersion:         int(c.GetIntegerv(MajorVersion)),
		MinorVersion:         int(c.GetIntegerv(MinorVersion)),
		MaxTextureSize:       int(c.GetIntegerv(MaxTextureSize)),
		MaxVertexAttribs:     int(c.GetIntegerv(MaxVertexAttribs)),
		MaxTextureImageUnits: int(c.GetIntegerv(MaxTextureImageUnits)),
		MaxUniformBlockSize:  int(c.GetIntegerv(MaxUniformBlockSize)),
	}
}
