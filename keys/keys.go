// SPDX-License-Identifier: GPL-2.0-or-later

// Package keys maps key presses to console commands.
package keys

import (
	"strings"

	"goplanet/cmd"
	"goplanet/conlog"
	kc "goplanet/keycode"
)

// Bindings holds the command text bound to each key.
type Bindings struct {
	b [kc.Count]string
}

// Defaults returns the bindings a fresh viewer starts with.
func Defaults() *Bindings {
	b := &Bindings{}
	b.Set(kc.ESCAPE, "quit")
	b.Set(kc.F12, "screenshot")
	b.Set('w', "toggle r_wireframe")
	b.Set('a', "toggle r_atmosphere")
	b.Set('=', "zoom 0.9")
	b.Set(kc.KP_PLUS, "zoom 0.9")
	b.Set(kc.MWHEELUP, "zoom 0.9")
	b.Set('-', "zoom 1.1111111")
	b.Set(kc.KP_MINUS, "zoom 1.1111111")
	b.Set(kc.MWHEELDOWN, "zoom 1.1111111")
	return b
}

func valid(k kc.KeyCode) bool {
	return k >= 0 && k < kc.Count
}

func (b *Bindings) Set(k kc.KeyCode, command string) {
	if valid(k) {
		b.b[k] = command
	}
}

// Get returns the command bound to k, or "".
func (b *Bindings) Get(k kc.KeyCode) string {
	if !valid(k) {
		return ""
	}
	return b.b[k]
}

func (b *Bindings) Clear() {
	for i := range b.b {
		b.b[i] = ""
	}
}

// Event returns the command text to queue for a press of k, terminated by
// a newline. It returns "" for unbound keys.
func (b *Bindings) Event(k kc.KeyCode) string {
	c := b.Get(k)
	if c == "" {
		return ""
	}
	return c + "\n"
}

// Register adds bind, unbind, unbindall and bindlist to cmds.
func (b *Bindings) Register(cmds *cmd.Commands) error {
	for _, c := range []struct {
		name string
		f    cmd.QFunc
	}{
		{"bind", b.bind},
		{"unbind", b.unbind},
		{"unbindall", b.unbindAll},
		{"bindlist", b.list},
	} {
		if err := cmds.Add(c.name, c.f); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bindings) bind(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) == 0 {
		conlog.Printf("bind <key> [command] : attach a command to a key\n")
		return nil
	}
	k := kc.StringToKey(args[0].String())
	if !valid(k) {
		conlog.Printf("\"%s\" isn't a valid key\n", args[0].String())
		return nil
	}
	if len(args) == 1 {
		if c := b.Get(k); c != "" {
			conlog.Printf("\"%s\" = \"%s\"\n", args[0].String(), c)
		} else {
			conlog.Printf("\"%s\" is not bound\n", args[0].String())
		}
		return nil
	}
	parts := make([]string, 0, len(args)-1)
	for _, p := range args[1:] {
		parts = append(parts, p.String())
	}
	b.Set(k, strings.Join(parts, " "))
	return nil
}

func (b *Bindings) unbind(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 1 {
		conlog.Printf("unbind <key> : remove commands from a key\n")
		return nil
	}
	k := kc.StringToKey(args[0].String())
	if !valid(k) {
		conlog.Printf("\"%s\" isn't a valid key\n", args[0].String())
		return nil
	}
	b.Set(k, "")
	return nil
}

func (b *Bindings) unbindAll(_ cmd.Arguments) error {
	b.Clear()
	return nil
}

func (b *Bindings) list(_ cmd.Arguments) error {
	n := 0
	for i, c := range b.b {
		if c == "" {
			continue
		}
		conlog.SafePrintf("   %s \"%s\"\n", kc.KeyToString(kc.KeyCode(i)), c)
		n++
	}
	conlog.SafePrintf("%d bindings\n", n)
	return nil
}
