package glw

import (
	"fmt"
	"image"
	"unsafe"
)

// TextureTarget is the target a texture is bound to
type TextureTarget uint32

const (
	Texture1D                 TextureTarget = 0x0DE0
	Texture2D                 TextureTarget = 0x0DE1
	Texture3D                 TextureTarget = 0x806F
	TextureRectangle          TextureTarget = 0x84F5
	TextureCubeMap            TextureTarget = 0x8513
	Texture1DArray            TextureTarget = 0x8C18
	Texture2DArray            TextureTarget = 0x8C1A
	TextureCubeMapArray       TextureTarget = 0x9009
	Texture2DMultisample      TextureTarget = 0x9100
	Texture2DMultisampleArray TextureTarget = 0x9102
)

// TextureProp is a texture parameter set with TexParameteri
type TextureProp uint32

const (
	TextureMagFilter        TextureProp = 0x2800
	TextureMinFilter        TextureProp = 0x2801
	TextureWrapS            TextureProp = 0x2802
	TextureWrapT            TextureProp = 0x2803
	TextureWrapR            TextureProp = 0x8072
	TextureMinLod           TextureProp = 0x813A
	TextureMaxLod           TextureProp = 0x813B
	TextureBaseLevel        TextureProp = 0x813C
	TextureMaxLevel         TextureProp = 0x813D
	TextureLodBias          TextureProp = 0x8501
	TextureCompareMode      TextureProp = 0x884C
	TextureCompareFunc      TextureProp = 0x884D
	TextureSwizzleR         TextureProp = 0x8E42
	TextureSwizzleG         TextureProp = 0x8E43
	TextureSwizzleB         TextureProp = 0x8E44
	TextureSwizzleA         TextureProp = 0x8E45
	DepthStencilTextureMode TextureProp = 0x90EA
)

// TextureParam is an enumerated value for a TextureProp, such as a wrap mode or filter
type TextureParam uint32

const (
	Nearest              TextureParam = 0x2600
	Linear               TextureParam = 0x2601
	NearestMipmapNearest TextureParam = 0x2700
	LinearMipmapNearest  TextureParam = 0x2701
	NearestMipmapLinear  TextureParam = 0x2702
	LinearMipmapLinear   TextureParam = 0x2703
	Repeat               TextureParam = 0x2901
	ClampToBorder        TextureParam = 0x812D
	ClampToEdge          TextureParam = 0x812F
	MirroredRepeat       TextureParam = 0x8370
	MirrorClampToEdge    TextureParam = 0x8743
)

// Texture is the name of an OpenGL texture object
type Texture uint32

// NoTexture unbinds whatever texture is bound to a target
const NoTexture Texture = 0

// Texture0 is the first texture unit, ActiveTexture(i) selects Texture0+i
const Texture0 uint32 = 0x84C0

// pixel format and internal format used by TexImage2DRGBA
const (
	FormatRGBA  uint32 = 0x1908
	FormatRGBA8 int32  = 0x8058
)

// TexParameteri sets an integer parameter of the texture bound to target
func (c *Context) TexParameteri(target TextureTarget, prop TextureProp, param int32) {
	c.Driver.TexParameteri(uint32(target), uint32(prop), param)
}

// TexParameter sets an enumerated parameter of the texture bound to target
func (c *Context) TexParameter(target TextureTarget, prop TextureProp, param TextureParam) {
	c.TexParameteri(target, prop, int32(param))
}

// GenTextures reserves n texture names
func (c *Context) GenTextures(n int) []Texture {
	if n <= 0 {
		return []Texture{}
	}
	names := make([]uint32, n)
	c.Driver.GenTextures(names)
	ret := make([]Texture, n)
	for i, name := range names {
		ret[i] = Texture(name)
	}
	return ret
}

func (c *Context) GenTexture() Texture {
	return c.GenTextures(1)[0]
}

func (c *Context) BindTexture(target TextureTarget, texture Texture) {
	c.Driver.BindTexture(uint32(target), uint32(texture))
}

func (c *Context) DeleteTextures(textures ...Texture) {
	if len(textures) == 0 {
		return
	}
	names := make([]uint32, len(textures))
	for i, t := range textures {
		names[i] = uint32(t)
	}
	c.Driver.DeleteTextures(names)
}

func (c *Context) DeleteTexture(texture Texture) {
	c.DeleteTextures(texture)
}

// ActiveTexture selects texture unit which subsequent BindTexture calls affect
func (c *Context) ActiveTexture(unit int) error {
	if unit < 0 {
		return fmt.Errorf("texture unit %d out of range", unit)
	}
	c.Driver.ActiveTexture(Texture0 + uint32(unit))
	return nil
}

// TexImage2DRGBA uploads img as the level of detail level of the texture bound to target
func (c *Context) TexImage2DRGBA(target TextureTarget, level int32, img *image.RGBA) error {
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("empty image %v", b)
	}
	if img.Stride != 4*b.Dx() {
		// sub images share the parent's stride, copy them out so rows are packed
		packed := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		for y := 0; y < b.Dy(); y++ {
			copy(packed.Pix[y*packed.Stride:(y+1)*packed.Stride], img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):])
		}
		img = packed
	}
	c.Driver.TexImage2D(uint32(target), level, FormatRGBA8, int32(b.Dx()), int32(b.Dy()),
		FormatRGBA, uint32(UnsignedByte), unsafe.Pointer(&img.Pix[0]))
	return nil
}

func (c *Context) GenerateMipmap(target TextureTarget) {
	c.Driver.GenerateMipmap(uint32(target))
}
