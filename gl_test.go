package glw

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeSize(t *testing.T) {
	sizes := map[Type]int{
		Byte:                    1,
		UnsignedByte:            1,
		Short:                   2,
		UnsignedShort:           2,
		HalfFloat:               2,
		Int:                     4,
		UnsignedInt:             4,
		Float:                   4,
		Fixed:                   4,
		Int2101010Rev:           4,
		UnsignedInt2101010Rev:   4,
		UnsignedInt10F11F11FRev: 4,
		Double:                  8,
		Type(0xdead):            0,
	}
	for ty, size := range sizes {
		assert.Equal(t, size, ty.Size(), "type 0x%X", uint32(ty))
	}
}

func TestClearAndViewport(t *testing.T) {
	d := newRecordingDriver()
	c := NewContext(d)

	c.ClearColorArray([4]float32{0.25, 0.5, 0.75, 1})
	c.Clear(ColorBufferBit | DepthBufferBit)
	c.Clear(AllBufferBits)
	c.Viewport(0, 0, 800, 600)

	assert.Equal(t, []string{
		"ClearColor(0.25,0.5,0.75,1)",
		"Clear(0x4100)",
		"Clear(0x4500)",
		"Viewport(0,0,800,600)",
	}, d.calls)
	assert.True(t, AllBufferBits.Has(StencilBufferBit))
	assert.False(t, ColorBufferBit.Has(ColorBufferBit|DepthBufferBit))
}

func TestDrawCalls(t *testing.T) {
	d := newRecordingDriver()
	c := NewContext(d)

	c.DrawArrays(Triangles, 0, 3)
	require.NoError(t, c.DrawElements(TriangleStrip, 6, UnsignedShort, 12))
	require.NoError(t, c.DrawIndexed(Lines, IndexSliceUint32{0, 1, 1, 2}))

	err := c.DrawElements(Triangles, 3, Float, 0)
	assert.True(t, errors.Is(err, ErrInvalidIndexType))

	assert.Equal(t, []string{
		"DrawArrays(0x4,0,3)",
		"DrawElements(0x5,6,0x1403,12)",
		"DrawElements(0x1,4,0x1405,0)",
	}, d.calls)
}

func TestGetStrings(t *testing.T) {
	d := newRecordingDriver()
	d.strings[uint32(Vendor)] = "ACME"
	d.strings[uint32(Version)] = "4.6.0"
	d.integers[uint32(NumExtensions)] = 2
	d.stringsi[uint32(Extensions)] = []string{"GL_KHR_debug", "GL_ARB_foo"}
	c := NewContext(d)

	assert.Equal(t, "ACME", c.GetString(Vendor))
	assert.Equal(t, "4.6.0", c.GetString(Version))
	assert.Equal(t, "", c.GetString(Renderer))
	assert.Equal(t, "GL_ARB_foo", c.GetStringi(Extensions, 1))

	assert.Equal(t, []string{"GL_KHR_debug", "GL_ARB_foo"}, c.Extensions())
	assert.True(t, c.HasExtension("GL_KHR_debug"))
	assert.False(t, c.HasExtension("GL_NV_bar"))
}

func TestExtensionsNone(t *testing.T) {
	c := NewContext(newRecordingDriver())
	assert.Nil(t, c.Extensions())
}

func TestLimits(t *testing.T) {
	d := newRecordingDriver()
	d.integers[uint32(MajorVersion)] = 4
	d.integers[uint32(MinorVersion)] = 6
	d.integers[uint32(MaxTextureSize)] = 16384
	d.integers[uint32(MaxVertexAttribs)] = 16
	c := NewContext(d)

	l := c.Limits()
	assert.Equal(t, 4, l.MajorVersion)
	assert.Equal(t, 6, l.MinorVersion)
	assert.Equal(t, 16384, l.MaxTextureSize)
	assert.Equal(t, 16, l.MaxVertexAttribs)
	assert.Equal(t, 0, l.MaxUniformBlockSize)
}

func TestGetIntegerv(t *testing.T) {
	d := newRecordingDriver()
	d.integers[0x8872] = 32
	d.integers[0x8A30] = 65536
	c := NewContext(d)

	assert.Equal(t, int32(32), c.GetIntegerv(MaxTextureImageUnits))
	assert.Equal(t, int32(65536), c.GetIntegerv(MaxUniformBlockSize))
	assert.Equal(t, int32(0), c.GetIntegerv(NumExtensions))
}

func TestCheckError(t *testing.T) {
	d := newRecordingDriver()
	c := NewContext(d)

	assert.NoError(t, c.CheckError())

	d.errors = []uint32{uint32(InvalidEnum), uint32(OutOfMemory)}
	err := c.CheckError()
	require.Error(t, err)
	assert.Equal(t, "gl error: INVALID_ENUM, OUT_OF_MEMORY", err.Error())
	assert.True(t, errors.Is(err, OutOfMemory))
	assert.False(t, errors.Is(err, InvalidValue))

	var glErr *Error
	require.True(t, errors.As(err, &glErr))
	assert.Equal(t, []ErrorCode{InvalidEnum, OutOfMemory}, glErr.Codes)

	assert.Equal(t, NoError, c.GetError())
}

func TestCheckErrorIsBounded(t *testing.T) {
	d := newRecordingDriver()
	for i := 0; i < 100; i++ {
		d.errors = append(d.errors, uint32(InvalidOperation))
	}
	c := NewContext(d)

	var glErr *Error
	require.True(t, errors.As(c.CheckError(), &glErr))
	assert.Len(t, glErr.Codes, maxErrorFlags)
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "INVALID_FRAMEBUFFER_OPERATION", InvalidFramebufferOperation.String())
	assert.Equal(t, "Unknown(0x0BAD)", ErrorCode(0xbad).String())
}
