// SPDX-License-Identifier: GPL-2.0-or-later
package glh

type TexID uint32

type Texture2D struct {
	dev Device
	id  uint32
}

func NewTexture2D(dev Device) *Texture2D {
	return &Texture2D{
		dev: dev,
		id:  dev.GenTexture(),
	}
}

func (t *Texture2D) ID() TexID {
	return TexID(t.id)
}

func (t *Texture2D) Bind() {
	t.dev.BindTexture(TextureTarget, t.id)
}

// BindUnit makes unit the active texture unit and binds t to it.
func (t *Texture2D) BindUnit(unit uint32) {
	t.dev.ActiveTexture(unit)
	t.dev.BindTexture(TextureTarget, t.id)
}

func (t *Texture2D) Unbind() {
	t.dev.BindTexture(TextureTarget, 0)
}

func (t *Texture2D) Delete() {
	if t.id == 0 {
		return
	}
	t.dev.DeleteTexture(t.id)
	t.id = 0
}
