// SPDX-License-Identifier: GPL-2.0-or-later
package texture

import (
	"image"

	"github.com/pkg/errors"

	"goplanet/glh"
	qimage "goplanet/image"
)

type TexPref uint32

const (
	TexPrefMipMap TexPref = 1 << iota
	TexPrefLinear
	TexPrefNearest
	TexPrefNone TexPref = 0
)

type Texture struct {
	glID   *glh.Texture2D
	Width  int32
	Height int32
	flags  TexPref
	name   string
}

// Load reads the image name and uploads it as an RGBA texture.
func Load(dev glh.Device, name string, flags TexPref) (*Texture, error) {
	img, err := qimage.Load(name)
	if err != nil {
		return nil, errors.Wrapf(err, "loading texture %s", name)
	}
	return NewTexture(dev, name, img, flags)
}

// NewTexture uploads img to unit 0 and leaves the unit unbound.
func NewTexture(dev glh.Device, name string, img *image.NRGBA, flags TexPref) (*Texture, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, errors.Errorf("texture %s is empty", name)
	}
	if img.Stride != 4*b.Dx() {
		return nil, errors.Errorf("texture %s has stride %d, want %d", name, img.Stride, 4*b.Dx())
	}
	t := &Texture{
		glID:   glh.NewTexture2D(dev),
		Width:  int32(b.Dx()),
		Height: int32(b.Dy()),
		flags:  flags,
		name:   name,
	}
	t.glID.BindUnit(glh.Texture0)
	dev.TexImage2D(glh.TextureTarget, 0, glh.RGBA, t.Width, t.Height, glh.RGBA, glh.UnsignedByte, glh.Ptr(img.Pix))

	minFilter, magFilter := int32(glh.Linear), int32(glh.Linear)
	if t.Flags(TexPrefNearest) {
		minFilter, magFilter = glh.Nearest, glh.Nearest
	}
	if t.Flags(TexPrefMipMap) {
		dev.GenerateMipmap(glh.TextureTarget)
		if !t.Flags(TexPrefNearest) {
			minFilter = glh.LinearMipmap
		}
	}
	dev.TexParameteri(glh.TextureTarget, glh.TextureMinFilter, minFilter)
	dev.TexParameteri(glh.TextureTarget, glh.TextureMagFilter, magFilter)
	dev.TexParameteri(glh.TextureTarget, glh.TextureWrapS, glh.Repeat)
	dev.TexParameteri(glh.TextureTarget, glh.TextureWrapT, glh.Repeat)
	t.glID.Unbind()
	return t, nil
}

func (t *Texture) Bind() {
	t.glID.Bind()
}

// BindUnit binds t to the given texture unit, e.g. glh.Texture0.
func (t *Texture) BindUnit(unit uint32) {
	t.glID.BindUnit(unit)
}

func (t *Texture) ID() glh.TexID {
	return t.glID.ID()
}

func (t *Texture) Name() string {
	return t.name
}

func (t *Texture) Texels() int {
	if t.Flags(TexPrefMipMap) {
		return int(t.Width * t.Height * 4 / 3)
	}
	return int(t.Width * t.Height)
}

func (t *Texture) Flags(f TexPref) bool {
	return t.flags&f != 0
}

func (t *Texture) Delete() {
	t.glID.Delete()
}
