// SPDX-License-Identifier: GPL-2.0-or-later

// Package window opens a window with a current OpenGL 4.6 core context.
package window

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"goplanet/conlog"
	kc "goplanet/keycode"
)

const (
	glMajor = 4
	glMinor = 6
)

type Config struct {
	Title        string
	Width        int
	Height       int
	Fullscreen   bool
	SwapInterval int
}

type Window interface {
	// Poll handles pending events and calls onKey for every key, mouse
	// button or wheel press. It reports false once the window was asked to
	// close.
	Poll(onKey func(kc.KeyCode)) bool
	// Size returns the drawable size in pixels.
	Size() (int, int)
	Swap()
	Shutdown()
}

// Open creates a window with the given backend, "sdl" or "glfw". The
// empty name selects sdl. Must be called on the main thread.
func Open(backend string, cfg Config) (Window, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	var (
		w   Window
		err error
	)
	switch strings.ToLower(backend) {
	case "", "sdl":
		w, err = openSDL(cfg)
	case "glfw":
		w, err = openGLFW(cfg)
	default:
		return nil, errors.Errorf("unknown window backend %q", backend)
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

// press drops keys without a code.
func press(onKey func(kc.KeyCode), k kc.KeyCode) {
	if k != kc.None {
		onKey(k)
	}
}

func initGL() error {
	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "gl init")
	}
	conlog.Printf("GL_VENDOR: %s\n", gl.GoStr(gl.GetString(gl.VENDOR)))
	conlog.Printf("GL_RENDERER: %s\n", gl.GoStr(gl.GetString(gl.RENDERER)))
	conlog.Printf("GL_VERSION: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.DebugMessageCallback(debugCb, unsafe.Pointer(nil))
	return nil
}

func debugCb(
	source uint32,
	gltype uint32,
	id uint32,
	severity uint32,
	length int32,
	message string,
	userParam unsafe.Pointer) {
	e := conlog.With(logrus.Fields{
		"source":   source,
		"type":     gltype,
		"id":       id,
		"severity": severity,
	})
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		e.Errorf("[GL_DEBUG] %s", message)
	case gl.DEBUG_SEVERITY_MEDIUM:
		e.Warnf("[GL_DEBUG] %s", message)
	default:
		e.Debugf("[GL_DEBUG] %s", message)
	}
}
