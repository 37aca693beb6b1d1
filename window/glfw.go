// SPDX-License-Identifier: GPL-2.0-or-later

package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	kc "goplanet/keycode"
)

type glfwWindow struct {
	window  *glfw.Window
	pending []kc.KeyCode
}

func openGLFW(cfg Config) (*glfwWindow, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "glfw init")
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, glMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, glMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}
	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "couldn't create window")
	}
	w.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)

	g := &glfwWindow{window: w}
	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		g.pending = append(g.pending, keyFromGLFW(key))
	})
	w.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch b {
		case glfw.MouseButtonLeft:
			g.pending = append(g.pending, kc.MOUSE1)
		case glfw.MouseButtonRight:
			g.pending = append(g.pending, kc.MOUSE2)
		case glfw.MouseButtonMiddle:
			g.pending = append(g.pending, kc.MOUSE3)
		}
	})
	w.SetScrollCallback(func(_ *glfw.Window, _, y float64) {
		g.pending = append(g.pending, wheelKey(y))
	})
	if err := initGL(); err != nil {
		g.Shutdown()
		return nil, err
	}
	return g, nil
}

func (g *glfwWindow) Poll(onKey func(kc.KeyCode)) bool {
	glfw.PollEvents()
	keys := g.pending
	g.pending = nil
	for _, k := range keys {
		press(onKey, k)
	}
	return !g.window.ShouldClose()
}

func (g *glfwWindow) Size() (int, int) {
	return g.window.GetFramebufferSize()
}

func (g *glfwWindow) Swap() {
	g.window.SwapBuffers()
}

func (g *glfwWindow) Shutdown() {
	g.window.Destroy()
	glfw.Terminate()
}
