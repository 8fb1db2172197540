package gfx

import (
	"fmt"
	"image"

	gl "github.com/go-gl/gl/v4.3-core/gl"
)

// Texture owns one 2D texture uploaded from RGBA texel data.
type Texture struct {
	id     uint32
	width  int32
	height int32
}

// NewTexture uploads img with repeat wrapping and trilinear filtering. The
// first row of img is the bottom row of the texture.
func NewTexture(img *image.RGBA) (*Texture, error) {
	if img == nil {
		return nil, fmt.Errorf("texture image is nil")
	}

	t := &Texture{
		width:  int32(img.Rect.Size().X),
		height: int32(img.Rect.Size().Y),
	}
	if t.width == 0 || t.height == 0 {
		return nil, fmt.Errorf("texture image is empty")
	}

	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		t.width,
		t.height,
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

func (t *Texture) Unbind() {
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (t *Texture) Size() (int32, int32) {
	return t.width, t.height
}

func (t *Texture) Destroy() {
	gl.DeleteTextures(1, &t.id)
	t.id = 0
}
