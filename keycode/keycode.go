// Package keycode names the keys bindings can refer to. Printable ascii
// keys use their lower case character as code.
package keycode

import (
	"sort"
	"strings"
)

type KeyCode int

const (
	None KeyCode = -1

	TAB           KeyCode = 9
	ENTER         KeyCode = 13
	ESCAPE        KeyCode = 27
	SPACE         KeyCode = 32
	BACKSPACE     KeyCode = 127
	UPARROW       KeyCode = 128
	DOWNARROW     KeyCode = 129
	LEFTARROW     KeyCode = 130
	RIGHTARROW    KeyCode = 131
	ALT           KeyCode = 132
	CTRL          KeyCode = 133
	SHIFT         KeyCode = 134
	F1            KeyCode = 135
	F2            KeyCode = 136
	F3            KeyCode = 137
	F4            KeyCode = 138
	F5            KeyCode = 139
	F6            KeyCode = 140
	F7            KeyCode = 141
	F8            KeyCode = 142
	F9            KeyCode = 143
	F10           KeyCode = 144
	F11           KeyCode = 145
	F12           KeyCode = 146
	INS           KeyCode = 147
	DEL           KeyCode = 148
	PGDN          KeyCode = 149
	PGUP          KeyCode = 150
	HOME          KeyCode = 151
	END           KeyCode = 152
	KP_NUMLOCK    KeyCode = 153
	KP_SLASH      KeyCode = 154
	KP_STAR       KeyCode = 155
	KP_MINUS      KeyCode = 156
	KP_HOME       KeyCode = 157
	KP_UPARROW    KeyCode = 158
	KP_PGUP       KeyCode = 159
	KP_PLUS       KeyCode = 160
	KP_LEFTARROW  KeyCode = 161
	KP_5          KeyCode = 162
	KP_RIGHTARROW KeyCode = 163
	KP_END        KeyCode = 164
	KP_DOWNARROW  KeyCode = 165
	KP_PGDN       KeyCode = 166
	KP_ENTER      KeyCode = 167
	KP_INS        KeyCode = 168
	KP_DEL        KeyCode = 169
	MOUSE1        KeyCode = 200
	MOUSE2        KeyCode = 201
	MOUSE3        KeyCode = 202
	MWHEELUP      KeyCode = 239
	MWHEELDOWN    KeyCode = 240
	PAUSE         KeyCode = 255

	// Count bounds every valid key code.
	Count = 256
)

var (
	s2k = map[string]KeyCode{
		"TAB":        TAB,
		"ENTER":      ENTER,
		"ESCAPE":     ESCAPE,
		"SPACE":      SPACE,
		"BACKSPACE":  BACKSPACE,
		"UPARROW":    UPARROW,
		"DOWNARROW":  DOWNARROW,
		"LEFTARROW":  LEFTARROW,
		"RIGHTARROW": RIGHTARROW,

		"ALT":   ALT,
		"CTRL":  CTRL,
		"SHIFT": SHIFT,

		"KP_NUMLOCK":    KP_NUMLOCK,
		"KP_SLASH":      KP_SLASH,
		"KP_STAR":       KP_STAR,
		"KP_MINUS":      KP_MINUS,
		"KP_HOME":       KP_HOME,
		"KP_UPARROW":    KP_UPARROW,
		"KP_PGUP":       KP_PGUP,
		"KP_PLUS":       KP_PLUS,
		"KP_LEFTARROW":  KP_LEFTARROW,
		"KP_5":          KP_5,
		"KP_RIGHTARROW": KP_RIGHTARROW,
		"KP_END":        KP_END,
		"KP_DOWNARROW":  KP_DOWNARROW,
		"KP_PGDN":       KP_PGDN,
		"KP_ENTER":      KP_ENTER,
		"KP_INS":        KP_INS,
		"KP_DEL":        KP_DEL,

		"F1":  F1,
		"F2":  F2,
		"F3":  F3,
		"F4":  F4,
		"F5":  F5,
		"F6":  F6,
		"F7":  F7,
		"F8":  F8,
		"F9":  F9,
		"F10": F10,
		"F11": F11,
		"F12": F12,

		"INS":  INS,
		"DEL":  DEL,
		"PGDN": PGDN,
		"PGUP": PGUP,
		"HOME": HOME,
		"END":  END,

		"MOUSE1": MOUSE1,
		"MOUSE2": MOUSE2,
		"MOUSE3": MOUSE3,

		"MWHEELUP":   MWHEELUP,
		"MWHEELDOWN": MWHEELDOWN,

		"PAUSE": PAUSE,

		"SEMICOLON": ';', // a raw semicolon separates commands
		"TILDE":     '~',
	}
	k2s = reverseMap(s2k)
)

func reverseMap(m map[string]KeyCode) map[KeyCode]string {
	r := make(map[KeyCode]string)
	for k, v := range m {
		r[v] = k
	}
	return r
}

// KeyToString returns the name used for k in bind commands.
func KeyToString(k KeyCode) string {
	if k == None {
		return "<KEY NOT FOUND>"
	}
	if s, ok := k2s[k]; ok {
		return s
	}
	if k > 32 && k < 127 {
		return string(rune(k))
	}
	return "<UNKNOWN KEYNUM>"
}

// StringToKey is the inverse of KeyToString. Names are case insensitive,
// single characters are taken as they are.
func StringToKey(s string) KeyCode {
	if len(s) == 0 {
		return None
	}
	if len(s) == 1 {
		return KeyCode(s[0])
	}
	if v, ok := s2k[strings.ToUpper(s)]; ok {
		return v
	}
	return None
}

// Names returns all multi character key names, sorted.
func Names() []string {
	n := make([]string, 0, len(s2k))
	for k := range s2k {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}
