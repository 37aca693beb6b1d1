// SPDX-License-Identifier: GPL-2.0-or-later

package sphere

import (
	"testing"

	"github.com/chewxy/math32"

	"goplanet/math/vec"
)

func TestCounts(t *testing.T) {
	for _, tc := range []struct {
		sectors, stacks         int
		vertices, indices, line int
	}{
		{3, 2, 12, 18, 18},
		{4, 3, 20, 48, 40},
		{36, 18, 703, 3672, 2520},
	} {
		s, err := Build(1, tc.sectors, tc.stacks)
		if err != nil {
			t.Fatalf("Build(1, %d, %d): %v", tc.sectors, tc.stacks, err)
		}
		if len(s.Positions) != tc.vertices {
			t.Errorf("Build(1, %d, %d) has %d vertices, want %d", tc.sectors, tc.stacks, len(s.Positions), tc.vertices)
		}
		if len(s.UVs) != len(s.Positions) {
			t.Errorf("Build(1, %d, %d) has %d uvs for %d vertices", tc.sectors, tc.stacks, len(s.UVs), len(s.Positions))
		}
		if len(s.Indices) != tc.indices {
			t.Errorf("Build(1, %d, %d) has %d indices, want %d", tc.sectors, tc.stacks, len(s.Indices), tc.indices)
		}
		if len(s.LineIndices) != tc.line {
			t.Errorf("Build(1, %d, %d) has %d line indices, want %d", tc.sectors, tc.stacks, len(s.LineIndices), tc.line)
		}
		if VertexCount(tc.sectors, tc.stacks) != tc.vertices ||
			IndexCount(tc.sectors, tc.stacks) != tc.indices ||
			LineIndexCount(tc.sectors, tc.stacks) != tc.line {
			t.Errorf("count helpers disagree for %d x %d", tc.sectors, tc.stacks)
		}
	}
}

func TestIndicesInRange(t *testing.T) {
	s, err := Build(2.5, 36, 18)
	if err != nil {
		t.Fatal(err)
	}
	n := uint32(len(s.Positions))
	for i, idx := range s.Indices {
		if idx >= n {
			t.Fatalf("Indices[%d]=%d, only %d vertices", i, idx, n)
		}
	}
	for i, idx := range s.LineIndices {
		if idx >= n {
			t.Fatalf("LineIndices[%d]=%d, only %d vertices", i, idx, n)
		}
	}
}

func TestNoDegenerateTriangles(t *testing.T) {
	s, err := Build(1, 12, 6)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(s.Indices); i += 3 {
		a, b, c := s.Positions[s.Indices[i]], s.Positions[s.Indices[i+1]], s.Positions[s.Indices[i+2]]
		area := vec.Cross(vec.Sub(b, a), vec.Sub(c, a)).Length()
		if area < 1e-6 {
			t.Errorf("triangle %d (%v) is degenerate", i/3, s.Indices[i:i+3])
		}
	}
}

func TestOnSurface(t *testing.T) {
	const r = 3
	s, err := Build(r, 8, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range s.Positions {
		if d := math32.Abs(p.Length() - r); d > 1e-5 {
			t.Errorf("vertex %d %v is %v off the surface", i, p, d)
		}
	}
	if top := s.Positions[0]; math32.Abs(top[2]-r) > 1e-5 {
		t.Errorf("first vertex %v is not the north pole", top)
	}
	if bottom := s.Positions[len(s.Positions)-1]; math32.Abs(bottom[2]+r) > 1e-5 {
		t.Errorf("last vertex %v is not the south pole", bottom)
	}
}

func TestUVs(t *testing.T) {
	s, err := Build(1, 4, 2)
	if err != nil {
		t.Fatal(err)
	}
	if s.UVs[0] != (UV{0, 0}) {
		t.Errorf("UVs[0]=%v, want [0 0]", s.UVs[0])
	}
	if last := s.UVs[len(s.UVs)-1]; last != (UV{1, 1}) {
		t.Errorf("last uv=%v, want [1 1]", last)
	}
	// seam: same position, different u
	if s.UVs[4][0] != 1 {
		t.Errorf("UVs[4]=%v, want u=1", s.UVs[4])
	}
}

func TestBuildErrors(t *testing.T) {
	for _, tc := range []struct {
		r               float32
		sectors, stacks int
	}{
		{0, 36, 18},
		{-1, 36, 18},
		{math32.NaN(), 36, 18},
		{math32.Inf(1), 36, 18},
		{1, 2, 18},
		{1, 36, 1},
	} {
		if _, err := Build(tc.r, tc.sectors, tc.stacks); err == nil {
			t.Errorf("Build(%v, %d, %d) succeeded", tc.r, tc.sectors, tc.stacks)
		}
	}
}

func TestInterleave(t *testing.T) {
	data, err := Interleave([]vec.Vec3{{1, 2, 3}, {4, 5, 6}}, []UV{{0.1, 0.2}, {0.3, 0.4}})
	if err != nil {
		t.Fatal(err)
	}
	want := []float32{1, 2, 3, 0.1, 0.2, 4, 5, 6, 0.3, 0.4}
	if len(data) != len(want) {
		t.Fatalf("Interleave has len %d, want %d", len(data), len(want))
	}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("data[%d]=%v, want %v", i, data[i], want[i])
		}
	}
	if _, err := Interleave([]vec.Vec3{{1, 2, 3}}, nil); err == nil {
		t.Errorf("Interleave accepted mismatched lengths")
	}
}
