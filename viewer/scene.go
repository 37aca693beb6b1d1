// SPDX-License-Identifier: GPL-2.0-or-later

package viewer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"goplanet/conlog"
	"goplanet/cvars"
	"goplanet/glh"
	"goplanet/image"
	"goplanet/planet"
)

// pendingPlanet is a planet requested by a command, built once the
// scene has a device.
type pendingPlanet struct {
	cfg    planet.Config
	parent string
}

type scene struct {
	dev     glh.Device
	program *glh.Program

	modelLoc      int32
	projectionLoc int32
	viewLoc       int32
	useTextureLoc int32

	planets []*planet.Planet
	pending []pendingPlanet

	width, height int
}

func newScene(dev glh.Device) (*scene, error) {
	p, err := glh.NewProgram(dev, vertexSource, fragmentSource)
	if err != nil {
		return nil, errors.Wrap(err, "planet program")
	}
	return &scene{
		dev:           dev,
		program:       p,
		modelLoc:      p.GetUniformLocation("model"),
		projectionLoc: p.GetUniformLocation("projection"),
		viewLoc:       p.GetUniformLocation("view"),
		useTextureLoc: p.GetUniformLocation("useTexture"),
	}, nil
}

func (s *scene) find(name string) *planet.Planet {
	for _, p := range s.planets {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

func (s *scene) add(cfg planet.Config) (*planet.Planet, error) {
	if s.find(cfg.Name) != nil {
		return nil, errors.Errorf("planet %s already exists", cfg.Name)
	}
	p, err := planet.New(s.dev, cfg)
	if err != nil {
		return nil, err
	}
	s.planets = append(s.planets, p)
	return p, nil
}

func (s *scene) queue(cfg planet.Config, parent string) {
	s.pending = append(s.pending, pendingPlanet{cfg: cfg, parent: parent})
}

// flush builds the queued planets in order. A failing planet is logged
// and skipped.
func (s *scene) flush() {
	pending := s.pending
	s.pending = nil
	for _, pp := range pending {
		if pp.parent != "" {
			parent := s.find(pp.parent)
			if parent == nil {
				conlog.Printf("planet %s: unknown parent %s\n", pp.cfg.Name, pp.parent)
				continue
			}
			pp.cfg.Parent = parent
		}
		if _, err := s.add(pp.cfg); err != nil {
			conlog.Printf("%v\n", err)
		}
	}
}

func (s *scene) resize(width, height int) {
	s.width, s.height = width, height
}

func (s *scene) setUseTexture(v int32) {
	if s.useTextureLoc != -1 {
		s.dev.Uniform1i(s.useTextureLoc, v)
	}
}

func sceneCamera() camera {
	return camera{
		distance: cvars.CameraDistance.Value(),
		pitch:    cvars.CameraPitch.Value(),
		fov:      cvars.CameraFov.Value(),
	}
}

// draw renders one frame. Atmospheres go last so they blend over every
// planet.
func (s *scene) draw(elapsed float64) {
	s.dev.Viewport(0, 0, int32(s.width), int32(s.height))
	s.dev.ClearColor(0, 0, 0.02, 1)
	s.dev.Clear(glh.ColorBufferBit | glh.DepthBufferBit)
	s.dev.Enable(glh.DepthTest)

	s.program.Use()
	cam := sceneCamera()
	cam.projection(s.width, s.height).SetAsUniform(s.dev, s.projectionLoc)
	cam.view().SetAsUniform(s.dev, s.viewLoc)

	s.setUseTexture(1)
	wireframe := cvars.RenderWireframe.Bool()
	for _, p := range s.planets {
		base := p.OrbitMatrix(elapsed)
		if wireframe {
			p.DrawWireframe(s.modelLoc, base, elapsed, p.RotationSpeed())
		} else {
			p.Draw(s.modelLoc, base, elapsed, p.RotationSpeed())
		}
	}

	if !cvars.DrawAtmosphere.Bool() {
		return
	}
	s.setUseTexture(0)
	color := mgl32.Vec3{
		cvars.AtmosphereRed.Value(),
		cvars.AtmosphereGreen.Value(),
		cvars.AtmosphereBlue.Value(),
	}
	alpha := cvars.AtmosphereAlpha.Value()
	for _, p := range s.planets {
		p.DrawAtmosphere(s.modelLoc, p.OrbitMatrix(elapsed), color, alpha)
	}
}

// screenshot writes the current frame as the first free
// <prefix>NNNN.png in dir.
func (s *scene) screenshot(dir string) (string, error) {
	w, h := s.width, s.height
	if w <= 0 || h <= 0 {
		return "", errors.Errorf("no frame to capture")
	}
	pix := s.dev.ReadPixels(0, 0, int32(w), int32(h))
	// the framebuffer starts at the bottom row
	stride := 4 * w
	flipped := make([]byte, len(pix))
	for y := 0; y < h; y++ {
		copy(flipped[y*stride:(y+1)*stride], pix[(h-1-y)*stride:])
	}
	prefix := cvars.ScreenshotPrefix.String()
	for i := 0; i < 10000; i++ {
		name := filepath.Join(dir, fmt.Sprintf("%s%04d.png", prefix, i))
		if _, err := os.Stat(name); err == nil {
			continue
		}
		if err := image.Write(name, flipped, w, h); err != nil {
			return "", err
		}
		return name, nil
	}
	return "", errors.Errorf("no free screenshot name for %s", prefix)
}

func (s *scene) close() {
	for _, p := range s.planets {
		p.Close()
	}
	s.planets = nil
	s.program.Delete()
}
