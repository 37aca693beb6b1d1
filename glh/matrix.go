// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Matrix is a 4x4 transform in opengl column major order. All mutating
// methods post-multiply, so the last operation applied is the first one a
// vertex sees.
type Matrix struct {
	m mgl32.Mat4
}

func Identity() *Matrix {
	return &Matrix{m: mgl32.Ident4()}
}

func FromMat4(m mgl32.Mat4) *Matrix {
	return &Matrix{m: m}
}

func (m *Matrix) Mat4() mgl32.Mat4 {
	return m.m
}

func (m *Matrix) Copy() *Matrix {
	return &Matrix{m: m.m}
}

func (m *Matrix) SetAsUniform(dev Device, id int32) {
	if id == -1 {
		return
	}
	dev.UniformMatrix4fv(id, m.m)
}

// Mul computes m*n.
func (m *Matrix) Mul(n *Matrix) {
	m.m = m.m.Mul4(n.m)
}

func (m *Matrix) Translate(x, y, z float32) {
	m.m = m.m.Mul4(mgl32.Translate3D(x, y, z))
}

// RotateX rotates around the x axis, angle is in radians.
func (m *Matrix) RotateX(angle float32) {
	m.m = m.m.Mul4(mgl32.HomogRotate3DX(angle))
}

// RotateY rotates around the y axis, angle is in radians.
func (m *Matrix) RotateY(angle float32) {
	m.m = m.m.Mul4(mgl32.HomogRotate3DY(angle))
}

// RotateZ rotates around the z axis, angle is in radians.
func (m *Matrix) RotateZ(angle float32) {
	m.m = m.m.Mul4(mgl32.HomogRotate3DZ(angle))
}

func (m *Matrix) Scale(x, y, z float32) {
	m.m = m.m.Mul4(mgl32.Scale3D(x, y, z))
}

// Transform applies m to the point (x, y, z).
func (m *Matrix) Transform(x, y, z float32) mgl32.Vec3 {
	return mgl32.TransformCoordinate(mgl32.Vec3{x, y, z}, m.m)
}
