// SPDX-License-Identifier: GPL-2.0-or-later

package viewer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"goplanet/glh"
	"goplanet/math"
)

const (
	nearClip = 0.1
	farClip  = 1000

	minDistance = 0.5
	maxDistance = 500
	zoomStep    = 0.9
)

// camera looks at the origin from distance units away, raised by pitch
// degrees.
type camera struct {
	distance float32
	pitch    float32
	fov      float32
}

func (c camera) eye() mgl32.Vec3 {
	s, co := math32.Sincos(mgl32.DegToRad(c.pitch))
	return mgl32.Vec3{0, c.distance * s, c.distance * co}
}

func (c camera) view() *glh.Matrix {
	return glh.FromMat4(mgl32.LookAtV(c.eye(), mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}))
}

func (c camera) projection(width, height int) *glh.Matrix {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	fov := math.Clamp(1, c.fov, 170)
	return glh.FromMat4(mgl32.Perspective(mgl32.DegToRad(fov), aspect, nearClip, farClip))
}

// zoom scales the distance by f, within [minDistance, maxDistance].
func zoom(distance, f float32) float32 {
	return math.Clamp(minDistance, distance*f, maxDistance)
}
