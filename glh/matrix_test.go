// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"testing"

	"github.com/chewxy/math32"
)

const (
	e = 1.e-6
)

func eq(a, b [16]float32) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > e {
			return false
		}
	}
	return true
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if !eq(m.m, [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}) {
		t.Errorf("Identity broken: %v", m.m)
	}
}

func TestTranslate(t *testing.T) {
	m := Identity()
	m.Translate(2, 3, 5)
	if !eq(m.m, [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		2, 3, 5, 1,
	}) {
		t.Errorf("Identity.Translate(2,3,5) = %v", m.m)
	}
}

func TestScale(t *testing.T) {
	m := Identity()
	m.Scale(2, 3, 5)
	if !eq(m.m, [16]float32{
		2, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 5, 0,
		0, 0, 0, 1,
	}) {
		t.Errorf("Identity.Scale(2,3,5) = %v", m.m)
	}
}

func TestRotateX(t *testing.T) {
	m := Identity()
	m.RotateX(math32.Pi / 2)
	if !eq(m.m, [16]float32{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, -1, 0, 0,
		0, 0, 0, 1,
	}) {
		t.Errorf("Identity.RotateX(pi/2) = %v", m.m)
	}
}

func TestRotateY(t *testing.T) {
	m := Identity()
	m.RotateY(math32.Pi / 2)
	if !eq(m.m, [16]float32{
		0, 0, -1, 0,
		0, 1, 0, 0,
		1, 0, 0, 0,
		0, 0, 0, 1,
	}) {
		t.Errorf("Identity.RotateY(pi/2) = %v", m.m)
	}
}

func TestRotateZ(t *testing.T) {
	m := Identity()
	m.RotateZ(math32.Pi / 2)
	if !eq(m.m, [16]float32{
		0, 1, 0, 0,
		-1, 0, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}) {
		t.Errorf("Identity.RotateZ(pi/2) = %v", m.m)
	}
}

func TestOrder(t *testing.T) {
	// scale happens first, the translation last
	m := Identity()
	m.Translate(1, 0, 0)
	m.Scale(2, 2, 2)
	got := m.Transform(1, 1, 1)
	if math32.Abs(got[0]-3) > e || math32.Abs(got[1]-2) > e || math32.Abs(got[2]-2) > e {
		t.Errorf("Translate(1,0,0).Scale(2,2,2) * (1,1,1) = %v, want [3 2 2]", got)
	}
}

func TestCopy(t *testing.T) {
	m := Identity()
	c := m.Copy()
	c.Scale(4, 4, 4)
	if !eq(m.m, Identity().m) {
		t.Errorf("modifying a copy changed the original: %v", m.m)
	}
}
