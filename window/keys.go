// SPDX-License-Identifier: GPL-2.0-or-later

package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/veandco/go-sdl2/sdl"

	kc "goplanet/keycode"
)

// keyFromSDL uses the scancode, bindings follow the physical key and not
// the keyboard layout.
func keyFromSDL(s sdl.Scancode) kc.KeyCode {
	switch {
	case s >= sdl.SCANCODE_A && s <= sdl.SCANCODE_Z:
		return kc.KeyCode('a' + (s - sdl.SCANCODE_A))
	case s >= sdl.SCANCODE_1 && s <= sdl.SCANCODE_9:
		return kc.KeyCode('1' + (s - sdl.SCANCODE_1))
	case s >= sdl.SCANCODE_F1 && s <= sdl.SCANCODE_F12:
		return kc.F1 + kc.KeyCode(s-sdl.SCANCODE_F1)
	}
	switch s {
	case sdl.SCANCODE_0:
		return '0'
	case sdl.SCANCODE_TAB:
		return kc.TAB
	case sdl.SCANCODE_RETURN, sdl.SCANCODE_RETURN2:
		return kc.ENTER
	case sdl.SCANCODE_ESCAPE:
		return kc.ESCAPE
	case sdl.SCANCODE_SPACE:
		return kc.SPACE
	case sdl.SCANCODE_BACKSPACE:
		return kc.BACKSPACE
	case sdl.SCANCODE_MINUS:
		return '-'
	case sdl.SCANCODE_EQUALS:
		return '='
	case sdl.SCANCODE_SEMICOLON:
		return ';'
	case sdl.SCANCODE_COMMA:
		return ','
	case sdl.SCANCODE_PERIOD:
		return '.'
	case sdl.SCANCODE_SLASH:
		return '/'
	case sdl.SCANCODE_GRAVE:
		return '`'
	case sdl.SCANCODE_UP:
		return kc.UPARROW
	case sdl.SCANCODE_DOWN:
		return kc.DOWNARROW
	case sdl.SCANCODE_LEFT:
		return kc.LEFTARROW
	case sdl.SCANCODE_RIGHT:
		return kc.RIGHTARROW
	case sdl.SCANCODE_LALT, sdl.SCANCODE_RALT:
		return kc.ALT
	case sdl.SCANCODE_LCTRL, sdl.SCANCODE_RCTRL:
		return kc.CTRL
	case sdl.SCANCODE_LSHIFT, sdl.SCANCODE_RSHIFT:
		return kc.SHIFT
	case sdl.SCANCODE_INSERT:
		return kc.INS
	case sdl.SCANCODE_DELETE:
		return kc.DEL
	case sdl.SCANCODE_PAGEDOWN:
		return kc.PGDN
	case sdl.SCANCODE_PAGEUP:
		return kc.PGUP
	case sdl.SCANCODE_HOME:
		return kc.HOME
	case sdl.SCANCODE_END:
		return kc.END
	case sdl.SCANCODE_PAUSE:
		return kc.PAUSE
	case sdl.SCANCODE_KP_PLUS:
		return kc.KP_PLUS
	case sdl.SCANCODE_KP_MINUS:
		return kc.KP_MINUS
	case sdl.SCANCODE_KP_MULTIPLY:
		return kc.KP_STAR
	case sdl.SCANCODE_KP_DIVIDE:
		return kc.KP_SLASH
	case sdl.SCANCODE_KP_ENTER:
		return kc.KP_ENTER
	}
	return kc.None
}

func keyFromGLFW(k glfw.Key) kc.KeyCode {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return kc.KeyCode('a' + (k - glfw.KeyA))
	case k >= glfw.Key0 && k <= glfw.Key9:
		return kc.KeyCode('0' + (k - glfw.Key0))
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return kc.F1 + kc.KeyCode(k-glfw.KeyF1)
	}
	switch k {
	case glfw.KeyTab:
		return kc.TAB
	case glfw.KeyEnter:
		return kc.ENTER
	case glfw.KeyEscape:
		return kc.ESCAPE
	case glfw.KeySpace:
		return kc.SPACE
	case glfw.KeyBackspace:
		return kc.BACKSPACE
	case glfw.KeyMinus:
		return '-'
	case glfw.KeyEqual:
		return '='
	case glfw.KeySemicolon:
		return ';'
	case glfw.KeyComma:
		return ','
	case glfw.KeyPeriod:
		return '.'
	case glfw.KeySlash:
		return '/'
	case glfw.KeyGraveAccent:
		return '`'
	case glfw.KeyUp:
		return kc.UPARROW
	case glfw.KeyDown:
		return kc.DOWNARROW
	case glfw.KeyLeft:
		return kc.LEFTARROW
	case glfw.KeyRight:
		return kc.RIGHTARROW
	case glfw.KeyLeftAlt, glfw.KeyRightAlt:
		return kc.ALT
	case glfw.KeyLeftControl, glfw.KeyRightControl:
		return kc.CTRL
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return kc.SHIFT
	case glfw.KeyInsert:
		return kc.INS
	case glfw.KeyDelete:
		return kc.DEL
	case glfw.KeyPageDown:
		return kc.PGDN
	case glfw.KeyPageUp:
		return kc.PGUP
	case glfw.KeyHome:
		return kc.HOME
	case glfw.KeyEnd:
		return kc.END
	case glfw.KeyPause:
		return kc.PAUSE
	case glfw.KeyKPAdd:
		return kc.KP_PLUS
	case glfw.KeyKPSubtract:
		return kc.KP_MINUS
	case glfw.KeyKPMultiply:
		return kc.KP_STAR
	case glfw.KeyKPDivide:
		return kc.KP_SLASH
	case glfw.KeyKPEnter:
		return kc.KP_ENTER
	}
	return kc.None
}

// wheelKey turns a vertical scroll amount into a wheel key.
func wheelKey(y float64) kc.KeyCode {
	switch {
	case y > 0:
		return kc.MWHEELUP
	case y < 0:
		return kc.MWHEELDOWN
	}
	return kc.None
}
