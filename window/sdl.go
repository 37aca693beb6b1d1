// SPDX-License-Identifier: GPL-2.0-or-later

package window

import (
	"log"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	kc "goplanet/keycode"
)

type sdlWindow struct {
	window  *sdl.Window
	context sdl.GLContext
}

func openSDL(cfg Config) (*sdlWindow, error) {
	v := sdl.Version{}
	sdl.GetVersion(&v)
	log.Printf("Found SDL version %d.%d.%d\n", v.Major, v.Minor, v.Patch)
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Wrap(err, "sdl init")
	}
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, glMajor)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, glMinor)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	create := func() (*sdl.Window, error) {
		return sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
			int32(cfg.Width), int32(cfg.Height), flags)
	}
	w, err := create()
	if err != nil {
		sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 16)
		w, err = create()
	}
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrap(err, "couldn't create window")
	}
	ctx, err := w.GLCreateContext()
	if err != nil {
		w.Destroy()
		sdl.Quit()
		return nil, errors.Wrap(err, "couldn't create GL context")
	}
	s := &sdlWindow{window: w, context: ctx}
	if err := sdl.GLSetSwapInterval(cfg.SwapInterval); err != nil {
		log.Printf("Could not set swap interval %d: %v", cfg.SwapInterval, err)
	}
	if err := initGL(); err != nil {
		s.Shutdown()
		return nil, err
	}
	return s, nil
}

func (s *sdlWindow) Poll(onKey func(kc.KeyCode)) bool {
	open := true
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.KeyboardEvent:
			if t.Type == sdl.KEYDOWN && t.Repeat == 0 {
				press(onKey, keyFromSDL(t.Keysym.Scancode))
			}
		case *sdl.MouseButtonEvent:
			if t.Type == sdl.MOUSEBUTTONDOWN {
				press(onKey, mouseFromSDL(t.Button))
			}
		case *sdl.MouseWheelEvent:
			press(onKey, wheelKey(float64(t.Y)))
		case *sdl.QuitEvent:
			open = false
		}
	}
	return open
}

func mouseFromSDL(b uint8) kc.KeyCode {
	switch b {
	case sdl.BUTTON_LEFT:
		return kc.MOUSE1
	case sdl.BUTTON_RIGHT:
		return kc.MOUSE2
	case sdl.BUTTON_MIDDLE:
		return kc.MOUSE3
	}
	return kc.None
}

func (s *sdlWindow) Size() (int, int) {
	w, h := s.window.GLGetDrawableSize()
	return int(w), int(h)
}

func (s *sdlWindow) Swap() {
	s.window.GLSwap()
}

func (s *sdlWindow) Shutdown() {
	sdl.GLDeleteContext(s.context)
	s.window.Destroy()
	sdl.Quit()
}
