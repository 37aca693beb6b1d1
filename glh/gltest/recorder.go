// SPDX-License-Identifier: GPL-2.0-or-later

// Package gltest provides a glh.Device that records state instead of
// talking to a driver.
package gltest

import (
	"fmt"
	"unsafe"

	"goplanet/glh"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

type Draw struct {
	Mode          uint32
	Count         int32
	Type          uint32
	Offset        uintptr
	VertexArray   uint32
	ElementBuffer uint32
	Texture       uint32
	Program       uint32
	Blend         bool
}

type TexImage struct {
	Texture        uint32
	Level          int32
	InternalFormat int32
	Width, Height  int32
	Format, Type   uint32
}

type Attrib struct {
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     uintptr
	Enabled    bool
}

// Recorder implements glh.Device. Uniform locations are handed out for the
// names in Uniforms only, everything else reports -1 like a driver would
// for an unknown uniform.
type Recorder struct {
	next uint32
	live map[uint32]string

	Uniforms    map[string]int32
	CompileErr  error
	LinkErr     error
	VertexArray uint32
	Buffers     map[uint32]uint32
	ActiveUnit  uint32
	Textures    map[uint32]uint32
	Program     uint32
	Enabled     map[uint32]bool
	BlendSrc    uint32
	BlendDst    uint32
	Matrices    map[int32]mgl32.Mat4
	Ints        map[int32]int32
	Vec4s       map[int32]mgl32.Vec4
	BufferSizes map[uint32]int
	Attribs     map[uint32]*Attrib
	TexParams   map[uint32]map[uint32]int32
	TexImages   []TexImage
	Mipmaps     int
	Draws       []Draw
	Deleted     []uint32
	Viewports   [][4]int32
	Clears      int
	// Reads holds len(Draws) at every ReadPixels call.
	Reads []int
	// Misuse lists calls a real driver would reject or that leak state.
	Misuse []string
}

var _ glh.Device = (*Recorder)(nil)

func New() *Recorder {
	return &Recorder{
		live:        make(map[uint32]string),
		Uniforms:    map[string]int32{"model": 0, "samplerTex": 1},
		Buffers:     make(map[uint32]uint32),
		Textures:    make(map[uint32]uint32),
		Enabled:     make(map[uint32]bool),
		Matrices:    make(map[int32]mgl32.Mat4),
		Ints:        make(map[int32]int32),
		Vec4s:       make(map[int32]mgl32.Vec4),
		BufferSizes: make(map[uint32]int),
		Attribs:     make(map[uint32]*Attrib),
		TexParams:   make(map[uint32]map[uint32]int32),
		ActiveUnit:  glh.Texture0,
	}
}

func (r *Recorder) misuse(format string, args ...interface{}) {
	r.Misuse = append(r.Misuse, fmt.Sprintf(format, args...))
}

func (r *Recorder) gen(kind string) uint32 {
	r.next++
	r.live[r.next] = kind
	return r.next
}

func (r *Recorder) check(kind string, id uint32) {
	if id == 0 {
		return
	}
	if k, ok := r.live[id]; !ok || k != kind {
		r.misuse("%s %d is not a live %s", kind, id, kind)
	}
}

func (r *Recorder) del(kind string, id uint32) {
	if id == 0 {
		return
	}
	if k, ok := r.live[id]; !ok || k != kind {
		r.misuse("delete of unknown %s %d", kind, id)
		return
	}
	delete(r.live, id)
	r.Deleted = append(r.Deleted, id)
}

// Live returns the number of handles of the given kind ("vertexarray",
// "buffer", "texture", "shader", "program") that were never deleted.
func (r *Recorder) Live(kind string) int {
	n := 0
	for _, k := range r.live {
		if k == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) GenVertexArray() uint32 {
	return r.gen("vertexarray")
}

func (r *Recorder) BindVertexArray(va uint32) {
	r.check("vertexarray", va)
	r.VertexArray = va
}

func (r *Recorder) DeleteVertexArray(va uint32) {
	r.del("vertexarray", va)
	if r.VertexArray == va {
		r.VertexArray = 0
	}
}

func (r *Recorder) GenBuffer() uint32 {
	return r.gen("buffer")
}

func (r *Recorder) BindBuffer(target, buf uint32) {
	r.check("buffer", buf)
	r.Buffers[target] = buf
}

func (r *Recorder) BufferData(target uint32, size int, _ unsafe.Pointer, _ uint32) {
	b := r.Buffers[target]
	if b == 0 {
		r.misuse("BufferData on target %#x without a bound buffer", target)
		return
	}
	r.BufferSizes[b] = size
}

func (r *Recorder) DeleteBuffer(buf uint32) {
	r.del("buffer", buf)
	for t, b := range r.Buffers {
		if b == buf {
			r.Buffers[t] = 0
		}
	}
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	a, ok := r.Attribs[index]
	if !ok {
		a = &Attrib{}
		r.Attribs[index] = a
	}
	a.Enabled = true
}

func (r *Recorder) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	if r.VertexArray == 0 {
		r.misuse("VertexAttribPointer %d without a bound vertex array", index)
	}
	if r.Buffers[glh.ArrayBuffer] == 0 {
		r.misuse("VertexAttribPointer %d without a bound array buffer", index)
	}
	a, ok := r.Attribs[index]
	if !ok {
		a = &Attrib{}
		r.Attribs[index] = a
	}
	a.Size, a.Type, a.Normalized, a.Stride, a.Offset = size, xtype, normalized, stride, offset
}

func (r *Recorder) GenTexture() uint32 {
	return r.gen("texture")
}

func (r *Recorder) ActiveTexture(unit uint32) {
	r.ActiveUnit = unit
}

func (r *Recorder) BindTexture(_ uint32, tex uint32) {
	r.check("texture", tex)
	r.Textures[r.ActiveUnit] = tex
}

func (r *Recorder) bound() uint32 {
	t := r.Textures[r.ActiveUnit]
	if t == 0 {
		r.misuse("texture call on unit %#x without a bound texture", r.ActiveUnit)
	}
	return t
}

func (r *Recorder) TexImage2D(_ uint32, level, internalFormat, width, height int32, format, xtype uint32, _ unsafe.Pointer) {
	r.TexImages = append(r.TexImages, TexImage{
		Texture:        r.bound(),
		Level:          level,
		InternalFormat: internalFormat,
		Width:          width,
		Height:         height,
		Format:         format,
		Type:           xtype,
	})
}

func (r *Recorder) TexParameteri(_ uint32, pname uint32, param int32) {
	t := r.bound()
	p, ok := r.TexParams[t]
	if !ok {
		p = make(map[uint32]int32)
		r.TexParams[t] = p
	}
	p[pname] = param
}

func (r *Recorder) GenerateMipmap(_ uint32) {
	r.bound()
	r.Mipmaps++
}

func (r *Recorder) DeleteTexture(tex uint32) {
	r.del("texture", tex)
	for u, t := range r.Textures {
		if t == tex {
			r.Textures[u] = 0
		}
	}
}

func (r *Recorder) CompileShader(_ string, _ uint32) (uint32, error) {
	if r.CompileErr != nil {
		return 0, r.CompileErr
	}
	return r.gen("shader"), nil
}

func (r *Recorder) LinkProgram(shaders ...uint32) (uint32, error) {
	for _, s := range shaders {
		r.check("shader", s)
	}
	if r.LinkErr != nil {
		return 0, r.LinkErr
	}
	return r.gen("program"), nil
}

func (r *Recorder) DeleteShader(shader uint32) {
	r.del("shader", shader)
}

func (r *Recorder) UseProgram(prog uint32) {
	r.check("program", prog)
	r.Program = prog
}

func (r *Recorder) CurrentProgram() uint32 {
	return r.Program
}

func (r *Recorder) DeleteProgram(prog uint32) {
	r.del("program", prog)
}

func (r *Recorder) UniformLocation(_ uint32, name string) int32 {
	if l, ok := r.Uniforms[name]; ok {
		return l
	}
	return -1
}

func (r *Recorder) UniformMatrix4fv(loc int32, m mgl32.Mat4) {
	if loc == -1 {
		return
	}
	r.Matrices[loc] = m
}

func (r *Recorder) Uniform1i(loc int32, v int32) {
	if loc == -1 {
		return
	}
	r.Ints[loc] = v
}

func (r *Recorder) Uniform4f(loc int32, x, y, z, w float32) {
	if loc == -1 {
		return
	}
	r.Vec4s[loc] = mgl32.Vec4{x, y, z, w}
}

func (r *Recorder) Enable(capability uint32) {
	r.Enabled[capability] = true
}

func (r *Recorder) Disable(capability uint32) {
	r.Enabled[capability] = false
}

func (r *Recorder) BlendFunc(sfactor, dfactor uint32) {
	r.BlendSrc, r.BlendDst = sfactor, dfactor
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.Viewports = append(r.Viewports, [4]int32{x, y, width, height})
}

func (r *Recorder) ClearColor(_, _, _, _ float32) {}

func (r *Recorder) Clear(_ uint32) {
	r.Clears++
}

func (r *Recorder) ReadPixels(_, _, width, height int32) []byte {
	r.Reads = append(r.Reads, len(r.Draws))
	return make([]byte, int(width)*int(height)*4)
}

func (r *Recorder) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	if r.VertexArray == 0 {
		r.misuse("DrawElements without a bound vertex array")
	}
	ebo := r.Buffers[glh.ElementArrayBuffer]
	if ebo == 0 {
		r.misuse("DrawElements without a bound element buffer")
	} else if size := r.BufferSizes[ebo]; int(offset)+int(count)*4 > size {
		r.misuse("DrawElements reads %d indices past the end of a %d byte buffer", count, size)
	}
	r.Draws = append(r.Draws, Draw{
		Mode:          mode,
		Count:         count,
		Type:          xtype,
		Offset:        offset,
		VertexArray:   r.VertexArray,
		ElementBuffer: ebo,
		Texture:       r.Textures[glh.Texture0],
		Program:       r.Program,
		Blend:         r.Enabled[glh.Blend],
	})
}

// Err reports the collected misuse as a single error.
func (r *Recorder) Err() error {
	if len(r.Misuse) == 0 {
		return nil
	}
	return errors.Errorf("%d misuses, first: %s", len(r.Misuse), r.Misuse[0])
}
