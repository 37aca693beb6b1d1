// SPDX-License-Identifier: GPL-2.0-or-later

package keys

import (
	"testing"

	"goplanet/cmd"
	kc "goplanet/keycode"
)

func TestDefaults(t *testing.T) {
	b := Defaults()
	for _, tc := range []struct {
		key  kc.KeyCode
		want string
	}{
		{kc.ESCAPE, "quit\n"},
		{kc.F12, "screenshot\n"},
		{'w', "toggle r_wireframe\n"},
		{kc.KP_MINUS, "zoom 1.1111111\n"},
		{'q', ""},
		{kc.None, ""},
		{kc.Count, ""},
	} {
		if got := b.Event(tc.key); got != tc.want {
			t.Errorf("Event(%s) = %q, want %q", kc.KeyToString(tc.key), got, tc.want)
		}
	}
}

func TestBindCommands(t *testing.T) {
	b := &Bindings{}
	cmds := cmd.New()
	if err := b.Register(cmds); err != nil {
		t.Fatal(err)
	}
	if err := b.Register(cmds); err == nil {
		t.Errorf("registering twice succeeded")
	}
	run := func(line string) {
		t.Helper()
		ok, err := cmds.Execute(cmd.Parse(line))
		if !ok || err != nil {
			t.Fatalf("%q: %v %v", line, ok, err)
		}
	}

	run(`bind q "planet moon textures/moon 0.25"`)
	if got := b.Get('q'); got != "planet moon textures/moon 0.25" {
		t.Errorf("q bound to %q", got)
	}
	run("bind F5 cycle r_planet_sectors 12 36 72")
	if got := b.Get(kc.F5); got != "cycle r_planet_sectors 12 36 72" {
		t.Errorf("F5 bound to %q", got)
	}
	run("bind nosuchkey quit")
	run("bind q")
	run("bindlist")
	run("unbind q")
	if got := b.Get('q'); got != "" {
		t.Errorf("q still bound to %q", got)
	}
	run("unbindall")
	if got := b.Get(kc.F5); got != "" {
		t.Errorf("F5 still bound to %q", got)
	}
}
