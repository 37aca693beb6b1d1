// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// GL is the Device backed by the native OpenGL driver. gl.Init must have
// run on the current context before any method is called.
type GL struct{}

func NewGL() *GL {
	return &GL{}
}

func (*GL) GenVertexArray() uint32 {
	var va uint32
	gl.GenVertexArrays(1, &va)
	return va
}

func (*GL) BindVertexArray(va uint32) {
	gl.BindVertexArray(va)
}

func (*GL) DeleteVertexArray(va uint32) {
	gl.DeleteVertexArrays(1, &va)
}

func (*GL) GenBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func (*GL) BindBuffer(target, buf uint32) {
	gl.BindBuffer(target, buf)
}

func (*GL) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.BufferData(target, size, data, usage)
}

func (*GL) DeleteBuffer(buf uint32) {
	gl.DeleteBuffers(1, &buf)
}

func (*GL) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (*GL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (*GL) GenTexture() uint32 {
	var t uint32
	gl.GenTextures(1, &t)
	return t
}

func (*GL) ActiveTexture(unit uint32) {
	gl.ActiveTexture(unit)
}

func (*GL) BindTexture(target, tex uint32) {
	gl.BindTexture(target, tex)
}

func (*GL) TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	gl.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, pixels)
}

func (*GL) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (*GL) GenerateMipmap(target uint32) {
	gl.GenerateMipmap(target)
}

func (*GL) DeleteTexture(tex uint32) {
	gl.DeleteTextures(1, &tex)
}

func (*GL) CompileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	csource, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(shader, 1, csource, nil)
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, errors.Errorf("failed to compile shader: %v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func (*GL) LinkProgram(shaders ...uint32) (uint32, error) {
	prog := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(prog, s)
	}
	gl.LinkProgram(prog)
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, errors.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}
	for _, s := range shaders {
		gl.DetachShader(prog, s)
	}
	return prog, nil
}

func (*GL) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (*GL) UseProgram(prog uint32) {
	gl.UseProgram(prog)
}

func (*GL) CurrentProgram() uint32 {
	var p int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &p)
	return uint32(p)
}

func (*GL) DeleteProgram(prog uint32) {
	gl.DeleteProgram(prog)
}

func (*GL) UniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func (*GL) UniformMatrix4fv(loc int32, m mgl32.Mat4) {
	// mgl32 is column major like opengl, no transpose needed
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

func (*GL) Uniform1i(loc int32, v int32) {
	gl.Uniform1i(loc, v)
}

func (*GL) Uniform4f(loc int32, x, y, z, w float32) {
	gl.Uniform4f(loc, x, y, z, w)
}

func (*GL) Enable(capability uint32) {
	gl.Enable(capability)
}

func (*GL) Disable(capability uint32) {
	gl.Disable(capability)
}

func (*GL) BlendFunc(sfactor, dfactor uint32) {
	gl.BlendFunc(sfactor, dfactor)
}

func (*GL) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (*GL) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (*GL) Clear(mask uint32) {
	gl.Clear(mask)
}

// ReadPixels returns the RGBA contents of the given rectangle of the
// current read buffer, bottom row first.
func (*GL) ReadPixels(x, y, width, height int32) []byte {
	data := make([]byte, int(width)*int(height)*4)
	if len(data) == 0 {
		return data
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(x, y, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(data))
	return data
}

func (*GL) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElements(mode, count, xtype, gl.PtrOffset(int(offset)))
}
