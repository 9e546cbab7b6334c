package glw

import (
	"fmt"
)

// Capability is a piece of server side state toggled with Enable and Disable
type Capability uint32

const (
	LineSmooth                 Capability = 0x0B20
	PolygonSmooth              Capability = 0x0B41
	CullFace                   Capability = 0x0B44
	DepthTest                  Capability = 0x0B71
	StencilTest                Capability = 0x0B90
	Dither                     Capability = 0x0BD0
	Blend                      Capability = 0x0BE2
	ColorLogicOp               Capability = 0x0BF2
	ScissorTest                Capability = 0x0C11
	PolygonOffsetPoint         Capability = 0x2A01
	PolygonOffsetLine          Capability = 0x2A02
	PolygonOffsetFill          Capability = 0x8037
	Multisample                Capability = 0x809D
	SampleAlphaToCoverage      Capability = 0x809E
	SampleAlphaToOne           Capability = 0x809F
	SampleCoverage             Capability = 0x80A0
	DebugOutputSynchronous     Capability = 0x8242
	ProgramPointSize           Capability = 0x8642
	DepthClamp                 Capability = 0x864F
	TextureCubeMapSeamless     Capability = 0x884F
	SampleShading              Capability = 0x8C36
	RasterizerDiscard          Capability = 0x8C89
	PrimitiveRestartFixedIndex Capability = 0x8D69
	FramebufferSRGB            Capability = 0x8DB9
	SampleMask                 Capability = 0x8E51
	PrimitiveRestart           Capability = 0x8F9D
	DebugOutput                Capability = 0x92E0

	ClipDistance0 Capability = 0x3000
	ClipDistance1 Capability = 0x3001
	ClipDistance2 Capability = 0x3002
	ClipDistance3 Capability = 0x3003
	ClipDistance4 Capability = 0x3004
	ClipDistance5 Capability = 0x3005
	ClipDistance6 Capability = 0x3006
	ClipDistance7 Capability = 0x3007
)

// BlendFactor scales the source or destination color when Blend is enabled
type BlendFactor uint32

const (
	Zero                  BlendFactor = 0x0000
	One                   BlendFactor = 0x0001
	SrcColor              BlendFactor = 0x0300
	OneMinusSrcColor      BlendFactor = 0x0301
	SrcAlpha              BlendFactor = 0x0302
	OneMinusSrcAlpha      BlendFactor = 0x0303
	DstAlpha              BlendFactor = 0x0304
	OneMinusDstAlpha      BlendFactor = 0x0305
	DstColor              BlendFactor = 0x0306
	OneMinusDstColor      BlendFactor = 0x0307
	SrcAlphaSaturate      BlendFactor = 0x0308
	ConstantColor         BlendFactor = 0x8001
	OneMinusConstantColor BlendFactor = 0x8002
	ConstantAlpha         BlendFactor = 0x8003
	OneMinusConstantAlpha BlendFactor = 0x8004
)

// Indexable reports whether the capability can be toggled per draw buffer or viewport
// with EnableI and DisableI.
func (c Capability) Indexable() bool {
	return c == Blend || c == ScissorTest
}

func (c *Context) Enable(capability Capability) {
	c.Driver.Enable(uint32(capability))
}

func (c *Context) Disable(capability Capability) {
	c.Driver.Disable(uint32(capability))
}

func (c *Context) IsEnabled(capability Capability) bool {
	return c.Driver.IsEnabled(uint32(capability))
}

// EnableI enables capability for draw buffer or viewport i, only Blend and ScissorTest
// are accepted.
func (c *Context) EnableI(capability Capability, i uint32) error {
	if !capability.Indexable() {
		return fmt.Errorf("enable 0x%04X[%d]: %w", uint32(capability), i, ErrNotIndexable)
	}
	c.Driver.Enablei(uint32(capability), i)
	return nil
}

func (c *Context) DisableI(capability Capability, i uint32) error {
	if !capability.Indexable() {
		return fmt.Errorf("disable 0x%04X[%d]: %w", uint32(capability), i, ErrNotIndexable)
	}
	c.Driver.Disablei(uint32(capability), i)
	return nil
}

// BlendFunc sets how source and destination colors are combined while Blend is enabled
func (c *Context) BlendFunc(src, dst BlendFactor) {
	c.Driver.BlendFunc(uint32(src), uint32(dst))
}
