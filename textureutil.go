package glw

import (
	"fmt"
	"image"
	"image/draw"

	// Load the png and jpeg image loaders
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// DecodeRGBA reads an image from disk and converts it to RGBA
func DecodeRGBA(filename string) (*image.RGBA, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	src, _, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if m, ok := src.(*image.RGBA); ok {
		return m, nil
	}
	b := src.Bounds()

	m := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(m, m.Bounds(), src, b.Min, draw.Src)
	return m, nil
}

// LoadTexture2D creates a mipmapped 2D texture from an image file. The texture is left
// bound to Texture2D on the active unit.
func (c *Context) LoadTexture2D(filename string) (Texture, error) {
	img, err := DecodeRGBA(filename)
	if err != nil {
		return 0, err
	}
	return c.CreateTexture2D(img)
}

// CreateTexture2D creates a mipmapped, repeating 2D texture from img. The texture is left
// bound to Texture2D on the active unit.
func (c *Context) CreateTexture2D(img *image.RGBA) (Texture, error) {
	tex := c.GenTexture()
	c.BindTexture(Texture2D, tex)

	if err := c.TexImage2DRGBA(Texture2D, 0, img); err != nil {
		c.BindTexture(Texture2D, NoTexture)
		c.DeleteTexture(tex)
		return 0, err
	}
	c.GenerateMipmap(Texture2D)

	c.TexParameter(Texture2D, TextureWrapS, Repeat)
	c.TexParameter(Texture2D, TextureWrapT, Repeat)
	c.TexParameter(Texture2D, TextureMinFilter, LinearMipmapLinear)
	c.TexParameter(Texture2D, TextureMagFilter, Linear)

	return tex, nil
}
