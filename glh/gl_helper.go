// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"unsafe"

	"github.com/pkg/errors"
)

type Program struct {
	dev  Device
	prog uint32
}

func NewProgram(dev Device, vertex, fragment string) (*Program, error) {
	vert, err := dev.CompileShader(vertex, VertexShader)
	if err != nil {
		return nil, errors.Wrap(err, "vertex shader")
	}
	defer dev.DeleteShader(vert)
	frag, err := dev.CompileShader(fragment, FragmentShader)
	if err != nil {
		return nil, errors.Wrap(err, "fragment shader")
	}
	defer dev.DeleteShader(frag)
	prog, err := dev.LinkProgram(vert, frag)
	if err != nil {
		return nil, err
	}
	return &Program{
		dev:  dev,
		prog: prog,
	}, nil
}

func (p *Program) ID() uint32 {
	return p.prog
}

func (p *Program) Use() {
	p.dev.UseProgram(p.prog)
}

func (p *Program) GetUniformLocation(n string) int32 {
	return p.dev.UniformLocation(p.prog, n)
}

func (p *Program) Delete() {
	if p.prog == 0 {
		return
	}
	p.dev.DeleteProgram(p.prog)
	p.prog = 0
}

type Buffer struct {
	dev    Device
	buf    uint32
	target uint32
}

func NewBuffer(dev Device, target uint32) *Buffer {
	return &Buffer{
		dev:    dev,
		buf:    dev.GenBuffer(),
		target: target,
	}
}

func (b *Buffer) ID() uint32 {
	return b.buf
}

func (b *Buffer) Bind() {
	b.dev.BindBuffer(b.target, b.buf)
}

func (b *Buffer) Unbind() {
	b.dev.BindBuffer(b.target, 0)
}

// SetData sets the data for this buffer. It needs to be bound first.
func (b *Buffer) SetData(size int, data unsafe.Pointer) {
	b.dev.BufferData(b.target, size, data, StaticDraw)
}

func (b *Buffer) Delete() {
	if b.buf == 0 {
		return
	}
	b.dev.DeleteBuffer(b.buf)
	b.buf = 0
}

type VertexArray struct {
	dev Device
	a   uint32
}

func NewVertexArray(dev Device) *VertexArray {
	return &VertexArray{
		dev: dev,
		a:   dev.GenVertexArray(),
	}
}

func (va *VertexArray) ID() uint32 {
	return va.a
}

func (va *VertexArray) Bind() {
	va.dev.BindVertexArray(va.a)
}

func (va *VertexArray) Unbind() {
	va.dev.BindVertexArray(0)
}

func (va *VertexArray) Delete() {
	if va.a == 0 {
		return
	}
	va.dev.DeleteVertexArray(va.a)
	va.a = 0
}
