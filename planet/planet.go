// SPDX-License-Identifier: GPL-2.0-or-later

// Package planet draws textured, rotating UV spheres.
package planet

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"goplanet/conlog"
	"goplanet/glh"
	"goplanet/math"
	"goplanet/math/vec"
	"goplanet/sphere"
	"goplanet/texture"
)

const (
	DefaultSectors       = 36
	DefaultStacks        = 18
	DefaultRotationSpeed = 0.5

	// Tilt is the rotation around x applied before the spin, in radians.
	// Both turn clockwise seen from the positive axis, the pole leans
	// towards +y.
	Tilt = 1.5
	// AtmosphereScale is the size of the atmosphere shell relative to the
	// planet.
	AtmosphereScale = 1.25
	DefaultAlpha    = 0.25

	// SamplerUniform is set to texture unit 0 when the program has it.
	SamplerUniform = "samplerTex"
	// AtmosphereUniform receives the atmosphere color and alpha as vec4.
	AtmosphereUniform = "atmosphereColor"

	stride   = sphere.FloatsPerVertex * 4
	uvOffset = 3 * 4
)

var DefaultColor = mgl32.Vec3{0.4, 0.6, 1.0}

type Config struct {
	Name    string
	Radius  float32
	Texture string
	// TextureFlags default to texture.TexPrefLinear.
	TextureFlags texture.TexPref
	// Sectors and Stacks default to DefaultSectors and DefaultStacks.
	Sectors int
	Stacks  int

	RotationSpeed float32
	OrbitRadius   float32
	OrbitSpeed    float32
	Parent        *Planet
}

// DefaultConfig returns a config with the default subdivision and
// rotation speed.
func DefaultConfig(name string, radius float32, tex string) Config {
	return Config{
		Name:          name,
		Radius:        radius,
		Texture:       tex,
		Sectors:       DefaultSectors,
		Stacks:        DefaultStacks,
		RotationSpeed: DefaultRotationSpeed,
	}
}

// Planet owns the GPU objects of one sphere. It must only be used on the
// thread the device is current on.
type Planet struct {
	id   uuid.UUID
	name string
	log  *logrus.Entry

	sphere        *sphere.Sphere
	rotationSpeed float32
	orbitRadius   float32
	orbitSpeed    float32
	parent        *Planet

	dev     glh.Device
	vao     *glh.VertexArray
	vbo     *glh.Buffer
	ebo     *glh.Buffer
	lineEBO *glh.Buffer
	tex     *texture.Texture
}

// New builds the geometry of cfg, uploads it and loads the texture.
func New(dev glh.Device, cfg Config) (*Planet, error) {
	if cfg.Sectors == 0 {
		cfg.Sectors = DefaultSectors
	}
	if cfg.Stacks == 0 {
		cfg.Stacks = DefaultStacks
	}
	if cfg.TextureFlags == texture.TexPrefNone {
		cfg.TextureFlags = texture.TexPrefLinear
	}
	s, err := sphere.Build(cfg.Radius, cfg.Sectors, cfg.Stacks)
	if err != nil {
		return nil, errors.Wrapf(err, "planet %s", cfg.Name)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "planet id")
	}
	p := &Planet{
		id:            id,
		name:          cfg.Name,
		sphere:        s,
		rotationSpeed: cfg.RotationSpeed,
		orbitRadius:   cfg.OrbitRadius,
		orbitSpeed:    cfg.OrbitSpeed,
		dev:           dev,
	}
	p.log = conlog.With(logrus.Fields{
		"planet": p.name,
		"id":     p.id.String(),
	})
	if cfg.Parent != nil {
		if err := p.SetParent(cfg.Parent); err != nil {
			return nil, err
		}
	}

	// The texture first, a missing file must not leak buffers.
	tex, err := texture.Load(dev, cfg.Texture, cfg.TextureFlags)
	if err != nil {
		return nil, errors.Wrapf(err, "planet %s", cfg.Name)
	}
	p.tex = tex
	p.prepareBuffers()

	p.log.Infof("created with %d vertices, %d indices, texture %s %dx%d",
		len(s.Positions), len(s.Indices), tex.Name(), tex.Width, tex.Height)
	return p, nil
}

func (p *Planet) prepareBuffers() {
	p.vao = glh.NewVertexArray(p.dev)
	p.vao.Bind()

	data := p.sphere.Interleave()
	p.vbo = glh.NewBuffer(p.dev, glh.ArrayBuffer)
	p.vbo.Bind()
	p.vbo.SetData(4*len(data), glh.Ptr(data))

	p.dev.VertexAttribPointer(0, 3, glh.Float, false, stride, 0)
	p.dev.EnableVertexAttribArray(0)
	p.dev.VertexAttribPointer(1, 2, glh.Float, false, stride, uvOffset)
	p.dev.EnableVertexAttribArray(1)

	p.ebo = glh.NewBuffer(p.dev, glh.ElementArrayBuffer)
	p.ebo.Bind()
	p.ebo.SetData(4*len(p.sphere.Indices), glh.Ptr(p.sphere.Indices))

	p.lineEBO = glh.NewBuffer(p.dev, glh.ElementArrayBuffer)
	p.lineEBO.Bind()
	p.lineEBO.SetData(4*len(p.sphere.LineIndices), glh.Ptr(p.sphere.LineIndices))

	p.vao.Unbind()
	p.lineEBO.Unbind()
	p.vbo.Unbind()
}

func (p *Planet) ID() uuid.UUID {
	return p.id
}

func (p *Planet) Name() string {
	return p.name
}

func (p *Planet) Radius() float32 {
	return p.sphere.Radius
}

func (p *Planet) RotationSpeed() float32 {
	return p.rotationSpeed
}

func (p *Planet) SetRotationSpeed(s float32) {
	p.rotationSpeed = s
}

// Sphere returns the geometry the planet was built from.
func (p *Planet) Sphere() *sphere.Sphere {
	return p.sphere
}

func (p *Planet) Texture() *texture.Texture {
	return p.tex
}

func (p *Planet) Parent() *Planet {
	return p.parent
}

// SetParent makes p orbit around parent. A nil parent makes p orbit the
// origin.
func (p *Planet) SetParent(parent *Planet) error {
	for a := parent; a != nil; a = a.parent {
		if a == p {
			return errors.Errorf("planet %s can not orbit %s, it would orbit itself", p.name, parent.name)
		}
	}
	p.parent = parent
	return nil
}

// Position returns the orbit position after elapsed seconds. Orbits lie
// in the y=0 plane around the parent position.
func (p *Planet) Position(elapsed float64) vec.Vec3 {
	var center vec.Vec3
	if p.parent != nil {
		center = p.parent.Position(elapsed)
	}
	if p.orbitRadius == 0 {
		return center
	}
	s, c := math32.Sincos(math.Angle(p.orbitSpeed, elapsed))
	return vec.Add(center, vec.Vec3{p.orbitRadius * c, 0, p.orbitRadius * s})
}

// OrbitMatrix returns the translation to Position(elapsed), the base
// matrix for Draw.
func (p *Planet) OrbitMatrix(elapsed float64) *glh.Matrix {
	pos := p.Position(elapsed)
	m := glh.Identity()
	m.Translate(pos[0], pos[1], pos[2])
	return m
}

// Transform returns base * Ry(-rotationSpeed*elapsed) * Rx(-Tilt).
func Transform(base *glh.Matrix, elapsed float64, rotationSpeed float32) *glh.Matrix {
	m := base.Copy()
	m.RotateY(-math.Angle(rotationSpeed, elapsed))
	m.RotateX(-Tilt)
	return m
}

// AtmosphereTransform returns base scaled by AtmosphereScale.
func AtmosphereTransform(base *glh.Matrix) *glh.Matrix {
	m := base.Copy()
	m.Scale(AtmosphereScale, AtmosphereScale, AtmosphereScale)
	return m
}

func (p *Planet) closed() bool {
	return p.vao == nil
}

func (p *Planet) bindTexture() {
	p.tex.BindUnit(glh.Texture0)
	prog := p.dev.CurrentProgram()
	if loc := p.dev.UniformLocation(prog, SamplerUniform); loc != -1 {
		p.dev.Uniform1i(loc, 0)
	}
}

func (p *Planet) drawElements(mode uint32, ebo *glh.Buffer, count int) {
	p.vao.Bind()
	ebo.Bind()
	p.dev.DrawElements(mode, int32(count), glh.UnsignedInt, 0)
	ebo.Unbind()
	p.vao.Unbind()
}

// Draw renders the textured planet with the model matrix
// Transform(base, elapsed, rotationSpeed) written to modelLoc. The
// program using modelLoc must be current.
func (p *Planet) Draw(modelLoc int32, base *glh.Matrix, elapsed float64, rotationSpeed float32) {
	if p.closed() {
		return
	}
	Transform(base, elapsed, rotationSpeed).SetAsUniform(p.dev, modelLoc)
	p.bindTexture()
	p.drawElements(glh.Triangles, p.ebo, len(p.sphere.Indices))
}

// DrawWireframe is Draw with the sphere grid as lines.
func (p *Planet) DrawWireframe(modelLoc int32, base *glh.Matrix, elapsed float64, rotationSpeed float32) {
	if p.closed() {
		return
	}
	Transform(base, elapsed, rotationSpeed).SetAsUniform(p.dev, modelLoc)
	p.bindTexture()
	p.drawElements(glh.Lines, p.lineEBO, len(p.sphere.LineIndices))
}

// DrawAtmosphere renders a blended shell AtmosphereScale times the planet
// size. Blending is off again afterwards.
func (p *Planet) DrawAtmosphere(modelLoc int32, base *glh.Matrix, color mgl32.Vec3, alpha float32) {
	if p.closed() {
		return
	}
	p.dev.Enable(glh.Blend)
	p.dev.BlendFunc(glh.SrcAlpha, glh.OneMinusSrcAlpha)
	AtmosphereTransform(base).SetAsUniform(p.dev, modelLoc)
	prog := p.dev.CurrentProgram()
	if loc := p.dev.UniformLocation(prog, AtmosphereUniform); loc != -1 {
		p.dev.Uniform4f(loc, color[0], color[1], color[2], alpha)
	}
	p.drawElements(glh.Triangles, p.ebo, len(p.sphere.Indices))
	p.dev.Disable(glh.Blend)
}

// Close releases the GPU objects. Draw calls on a closed planet do
// nothing.
func (p *Planet) Close() {
	if p.closed() {
		return
	}
	p.vao.Delete()
	p.vbo.Delete()
	p.ebo.Delete()
	p.lineEBO.Delete()
	p.tex.Delete()
	p.vao = nil
	p.log.Info("released")
}
