// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	ArrayBuffer        = gl.ARRAY_BUFFER
	ElementArrayBuffer = gl.ELEMENT_ARRAY_BUFFER
	StaticDraw         = gl.STATIC_DRAW

	Float         = gl.FLOAT
	UnsignedInt   = gl.UNSIGNED_INT
	UnsignedByte  = gl.UNSIGNED_BYTE
	Triangles     = gl.TRIANGLES
	Lines         = gl.LINES
	Texture0      = gl.TEXTURE0
	TextureTarget = gl.TEXTURE_2D

	TextureMinFilter = gl.TEXTURE_MIN_FILTER
	TextureMagFilter = gl.TEXTURE_MAG_FILTER
	TextureWrapS     = gl.TEXTURE_WRAP_S
	TextureWrapT     = gl.TEXTURE_WRAP_T
	Linear           = gl.LINEAR
	Nearest          = gl.NEAREST
	LinearMipmap     = gl.LINEAR_MIPMAP_LINEAR
	Repeat           = gl.REPEAT
	RGBA             = gl.RGBA

	Blend            = gl.BLEND
	DepthTest        = gl.DEPTH_TEST
	CullFace         = gl.CULL_FACE
	SrcAlpha         = gl.SRC_ALPHA
	OneMinusSrcAlpha = gl.ONE_MINUS_SRC_ALPHA

	ColorBufferBit = gl.COLOR_BUFFER_BIT
	DepthBufferBit = gl.DEPTH_BUFFER_BIT

	VertexShader   = gl.VERTEX_SHADER
	FragmentShader = gl.FRAGMENT_SHADER
)

// Device is the graphics context every GL object in this module talks to.
// It must be current on the calling thread.
type Device interface {
	GenVertexArray() uint32
	BindVertexArray(va uint32)
	DeleteVertexArray(va uint32)

	GenBuffer() uint32
	BindBuffer(target, buf uint32)
	BufferData(target uint32, size int, data unsafe.Pointer, usage uint32)
	DeleteBuffer(buf uint32)

	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)

	GenTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(target, tex uint32)
	TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, pixels unsafe.Pointer)
	TexParameteri(target, pname uint32, param int32)
	GenerateMipmap(target uint32)
	DeleteTexture(tex uint32)

	CompileShader(src string, shaderType uint32) (uint32, error)
	LinkProgram(shaders ...uint32) (uint32, error)
	DeleteShader(shader uint32)
	UseProgram(prog uint32)
	CurrentProgram() uint32
	DeleteProgram(prog uint32)
	UniformLocation(prog uint32, name string) int32
	UniformMatrix4fv(loc int32, m mgl32.Mat4)
	Uniform1i(loc int32, v int32)
	Uniform4f(loc int32, x, y, z, w float32)

	Enable(capability uint32)
	Disable(capability uint32)
	BlendFunc(sfactor, dfactor uint32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	ReadPixels(x, y, width, height int32) []byte

	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)
}

func Ptr(data interface{}) unsafe.Pointer {
	return gl.Ptr(data)
}
