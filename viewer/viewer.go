// SPDX-License-Identifier: GPL-2.0-or-later

// Package viewer shows planets in a window.
package viewer

import (
	"log"

	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"

	cmdl "goplanet/commandline"
	"goplanet/conlog"
	"goplanet/cvars"
	"goplanet/filesystem"
	"goplanet/gametime"
	"goplanet/glh"
	kc "goplanet/keycode"
	"goplanet/planet"
	"goplanet/window"
)

const autoexec = "autoexec.cfg"

var clock = gametime.New()

// applyCommandLine moves the video flags into their cvars.
func applyCommandLine() {
	if w := cmdl.Width(); w > 0 {
		cvars.VideoWidth.SetValue(float32(w))
	}
	if h := cmdl.Height(); h > 0 {
		cvars.VideoHeight.SetValue(float32(h))
	}
	if cmdl.Fullscreen() {
		cvars.VideoFullscreen.SetByString("1")
	} else if cmdl.Window() {
		cvars.VideoFullscreen.SetByString("0")
	}
	if b := cmdl.Backend(); b != "" {
		cvars.VideoBackend.SetByString(b)
	}
	cvars.VideoVsync.SetValue(float32(cmdl.SwapInterval()))
}

// startupScripts queues autoexec.cfg, when present, and every -exec file.
func startupScripts() {
	if _, err := filesystem.Stat(autoexec); err == nil {
		cbuffer.AddText("exec " + autoexec + "\n")
	}
	for _, e := range cmdl.Exec() {
		cbuffer.AddText("exec \"" + e + "\"\n")
	}
}

func primaryPlanet() planet.Config {
	cfg := planet.DefaultConfig(
		cvars.PlanetName.String(),
		cvars.PlanetRadius.Value(),
		cvars.PlanetTexture.String())
	cfg.Sectors = cvars.PlanetSectors.Int()
	cfg.Stacks = cvars.PlanetStacks.Int()
	cfg.RotationSpeed = cvars.PlanetRotSpeed.Value()
	return cfg
}

func executeBuffer() {
	if err := cbuffer.Execute(); err != nil {
		conlog.Printf("%v\n", err)
	}
}

func onKey(k kc.KeyCode) {
	if c := bindings.Event(k); c != "" {
		cbuffer.AddText(c)
	}
}

// setup runs on the main thread: window, program, startup scripts and the
// primary planet.
func setup() (window.Window, error) {
	filesystem.UseBaseDir(cmdl.BaseDirectory())
	applyCommandLine()

	w, err := window.Open(cvars.VideoBackend.String(), window.Config{
		Title:        "goplanet",
		Width:        cvars.VideoWidth.Int(),
		Height:       cvars.VideoHeight.Int(),
		Fullscreen:   cvars.VideoFullscreen.Bool(),
		SwapInterval: cvars.VideoVsync.Int(),
	})
	if err != nil {
		return nil, err
	}
	s, err := newScene(glh.NewGL())
	if err != nil {
		w.Shutdown()
		return nil, err
	}
	active = s

	startupScripts()
	executeBuffer()
	pending := s.pending
	s.pending = nil
	if _, err := s.add(primaryPlanet()); err != nil {
		s.close()
		w.Shutdown()
		return nil, errors.Wrap(err, "primary planet")
	}
	s.pending = append(s.pending, pending...)
	s.flush()
	return w, nil
}

// frame runs on the main thread. It reports false once the viewer should
// stop.
func frame(w window.Window) bool {
	if !w.Poll(onKey) {
		return false
	}
	executeBuffer()
	if !clock.UpdateTime() {
		return !quit
	}
	active.flush()
	active.resize(w.Size())
	active.draw(clock.SimTime())
	captureScreenshot()
	w.Swap()
	return !quit
}

// Run shows the planets until the window is closed. It must be called
// from the function passed to mainthread.Run.
func Run() error {
	var (
		w   window.Window
		err error
	)
	mainthread.Call(func() {
		w, err = setup()
	})
	if err != nil {
		return err
	}
	log.Printf("Showing %d planets", len(active.planets))
	clock.Reset()

	running := true
	for running {
		mainthread.Call(func() {
			running = frame(w)
		})
	}

	mainthread.Call(func() {
		active.close()
		active = nil
		w.Shutdown()
	})
	return nil
}
