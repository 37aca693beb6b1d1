// SPDX-License-Identifier: GPL-2.0-or-later

package keycode

import (
	"testing"
)

func TestKeyToString(t *testing.T) {
	tests := []struct {
		key KeyCode
		str string
	}{
		{TAB, "TAB"},
		{PAUSE, "PAUSE"},
		{0x30, "0"},
		{0x3B, "SEMICOLON"},
		{0x3D, "="},
		{0x61, "a"},
		{0x7E, "TILDE"},
		{0x7F, "BACKSPACE"},
		{0x80, "UPARROW"},
		{None, "<KEY NOT FOUND>"},
		{250, "<UNKNOWN KEYNUM>"},
	}
	for _, test := range tests {
		if got := KeyToString(test.key); got != test.str {
			t.Errorf("KeyToString(%d) = %s; want %s", test.key, got, test.str)
		}
	}
}

func TestStringToKey(t *testing.T) {
	tests := []struct {
		key KeyCode
		str string
	}{
		{TAB, "TAB"},
		{ESCAPE, "escape"},
		{F12, "f12"},
		{PAUSE, "PAUSE"},
		{0x30, "0"},
		{0x3B, ";"},
		{0x3B, "SEMICOLON"},
		{0x61, "a"},
		{0x7F, "BACKSPACE"},
		{KP_PLUS, "kp_plus"},
		{None, ""},
		{None, "NOSUCHKEY"},
	}
	for _, test := range tests {
		if got := StringToKey(test.str); got != test.key {
			t.Errorf("StringToKey(%s) = %d; want %d", test.str, got, test.key)
		}
	}
}

func TestNames(t *testing.T) {
	n := Names()
	for i := 1; i < len(n); i++ {
		if n[i-1] >= n[i] {
			t.Fatalf("Names not sorted at %d: %q >= %q", i, n[i-1], n[i])
		}
	}
	for _, s := range n {
		if k := StringToKey(s); KeyToString(k) != s {
			t.Errorf("%q does not round trip, got %q", s, KeyToString(k))
		}
	}
}
