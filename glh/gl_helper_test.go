// SPDX-License-Identifier: GPL-2.0-or-later

package glh_test

import (
	"testing"

	"goplanet/glh"
	"goplanet/glh/gltest"

	"github.com/pkg/errors"
)

func TestNewProgram(t *testing.T) {
	r := gltest.New()
	p, err := glh.NewProgram(r, "vert", "frag")
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}
	if r.Live("shader") != 0 {
		t.Errorf("%d shaders alive after linking, want 0", r.Live("shader"))
	}
	p.Use()
	if r.CurrentProgram() != p.ID() {
		t.Errorf("CurrentProgram()=%v, want %v", r.CurrentProgram(), p.ID())
	}
	if l := p.GetUniformLocation("model"); l != 0 {
		t.Errorf("GetUniformLocation(model)=%v, want 0", l)
	}
	if l := p.GetUniformLocation("nothing"); l != -1 {
		t.Errorf("GetUniformLocation(nothing)=%v, want -1", l)
	}
	p.Delete()
	p.Delete()
	if err := r.Err(); err != nil {
		t.Error(err)
	}
	if r.Live("program") != 0 {
		t.Errorf("program still alive after Delete")
	}
}

func TestNewProgramCompileError(t *testing.T) {
	r := gltest.New()
	r.CompileErr = errors.New("syntax error")
	if _, err := glh.NewProgram(r, "vert", "frag"); err == nil {
		t.Fatalf("NewProgram succeeded with a broken shader")
	}
}

func TestNewProgramLinkError(t *testing.T) {
	r := gltest.New()
	r.LinkErr = errors.New("unresolved symbol")
	if _, err := glh.NewProgram(r, "vert", "frag"); err == nil {
		t.Fatalf("NewProgram succeeded with a failing link")
	}
	if r.Live("shader") != 0 {
		t.Errorf("%d shaders leaked on link failure", r.Live("shader"))
	}
}

func TestBufferDelete(t *testing.T) {
	r := gltest.New()
	b := glh.NewBuffer(r, glh.ArrayBuffer)
	b.Bind()
	b.SetData(12, nil)
	if r.BufferSizes[b.ID()] != 12 {
		t.Errorf("buffer size=%v, want 12", r.BufferSizes[b.ID()])
	}
	b.Unbind()
	b.Delete()
	b.Delete()
	if err := r.Err(); err != nil {
		t.Error(err)
	}
	if r.Live("buffer") != 0 {
		t.Errorf("buffer still alive after Delete")
	}
}
