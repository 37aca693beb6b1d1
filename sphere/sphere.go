// SPDX-License-Identifier: GPL-2.0-or-later

// Package sphere tessellates UV spheres.
package sphere

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"goplanet/math/vec"
)

const (
	MinSectors = 3
	MinStacks  = 2

	// FloatsPerVertex is the size of one interleaved vertex: x y z u v.
	FloatsPerVertex = 5
)

type UV [2]float32

// Sphere holds the geometry of a UV sphere. Positions and UVs pair up by
// index, all Indices and LineIndices are < len(Positions).
type Sphere struct {
	Radius  float32
	Sectors int
	Stacks  int

	Positions   []vec.Vec3
	UVs         []UV
	Indices     []uint32 // triangles
	LineIndices []uint32 // wireframe
}

func VertexCount(sectors, stacks int) int {
	return (sectors + 1) * (stacks + 1)
}

func IndexCount(sectors, stacks int) int {
	return 6 * sectors * (stacks - 1)
}

func LineIndexCount(sectors, stacks int) int {
	return 2*sectors*stacks + 2*sectors*(stacks-1)
}

// Build creates a sphere of the given radius with sectors longitudinal and
// stacks latitudinal subdivisions. The poles are on the z axis.
func Build(radius float32, sectors, stacks int) (*Sphere, error) {
	switch {
	case !(radius > 0) || math32.IsInf(radius, 0):
		return nil, errors.Errorf("invalid sphere radius %v", radius)
	case sectors < MinSectors:
		return nil, errors.Errorf("sphere needs at least %d sectors, got %d", MinSectors, sectors)
	case stacks < MinStacks:
		return nil, errors.Errorf("sphere needs at least %d stacks, got %d", MinStacks, stacks)
	}
	s := &Sphere{
		Radius:  radius,
		Sectors: sectors,
		Stacks:  stacks,
	}
	s.buildPoints()
	s.buildIndices()
	return s, nil
}

func (s *Sphere) buildPoints() {
	n := VertexCount(s.Sectors, s.Stacks)
	s.Positions = make([]vec.Vec3, 0, n)
	s.UVs = make([]UV, 0, n)

	sectorStep := 2 * math32.Pi / float32(s.Sectors)
	stackStep := math32.Pi / float32(s.Stacks)
	for i := 0; i <= s.Stacks; i++ {
		// from pi/2 down to -pi/2
		lat := math32.Pi/2 - float32(i)*stackStep
		for j := 0; j <= s.Sectors; j++ {
			// the first and last vertex of a ring share a position but
			// not the texture coordinate
			lon := float32(j) * sectorStep
			s.Positions = append(s.Positions, vec.FromSpherical(s.Radius, lat, lon))
			s.UVs = append(s.UVs, UV{
				float32(j) / float32(s.Sectors),
				float32(i) / float32(s.Stacks),
			})
		}
	}
}

func (s *Sphere) buildIndices() {
	s.Indices = make([]uint32, 0, IndexCount(s.Sectors, s.Stacks))
	s.LineIndices = make([]uint32, 0, LineIndexCount(s.Sectors, s.Stacks))
	for i := 0; i < s.Stacks; i++ {
		k1 := uint32(i * (s.Sectors + 1)) // current stack
		k2 := k1 + uint32(s.Sectors+1)    // next stack
		for j := 0; j < s.Sectors; j, k1, k2 = j+1, k1+1, k2+1 {
			// the top and bottom stacks collapse to a single triangle
			if i != 0 {
				s.Indices = append(s.Indices, k1, k2, k1+1)
			}
			if i != s.Stacks-1 {
				s.Indices = append(s.Indices, k1+1, k2, k2+1)
			}

			s.LineIndices = append(s.LineIndices, k1, k2)
			if i != 0 {
				s.LineIndices = append(s.LineIndices, k1, k1+1)
			}
		}
	}
}

// Interleave returns the vertex stream for a single array buffer, one
// x y z u v tuple per vertex.
func Interleave(positions []vec.Vec3, uvs []UV) ([]float32, error) {
	if len(positions) != len(uvs) {
		return nil, errors.Errorf("got %d positions but %d texture coordinates", len(positions), len(uvs))
	}
	data := make([]float32, 0, FloatsPerVertex*len(positions))
	for i, p := range positions {
		data = append(data, p[0], p[1], p[2], uvs[i][0], uvs[i][1])
	}
	return data, nil
}

// Interleave returns the vertex stream of s, see Interleave.
func (s *Sphere) Interleave() []float32 {
	data, _ := Interleave(s.Positions, s.UVs)
	return data
}
