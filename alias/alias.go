// SPDX-License-Identifier: GPL-2.0-or-later
package alias

import (
	"sort"
	"strings"

	"goplanet/cbuf"
	"goplanet/cmd"
	"goplanet/conlog"
)

// Aliases maps a name to the command text it expands to. Every value
// ends with a '\n'.
type Aliases map[string]string

func New() Aliases {
	return make(Aliases)
}

// Register adds the alias, unalias and unaliasall commands to cmds.
func (al Aliases) Register(cmds *cmd.Commands) error {
	if err := cmds.Add("alias", al.alias); err != nil {
		return err
	}
	if err := cmds.Add("unalias", al.unalias); err != nil {
		return err
	}
	return cmds.Add("unaliasall", al.unaliasAll)
}

func (al Aliases) alias(a cmd.Arguments) error {
	args := a.Args()[1:]
	switch c := len(args); c {
	case 0:
		al.list()
	case 1:
		al.print(args[0].String())
	default:
		al.set(args)
	}
	return nil
}

func (al Aliases) list() {
	if len(al) == 0 {
		conlog.SafePrintf("no alias commands found\n")
		return
	}
	names := make([]string, 0, len(al))
	for k := range al {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		// each alias value ends with a '\n'
		conlog.SafePrintf("  %s: %s", k, al[k])
	}
	conlog.SafePrintf("%v alias command(s)\n", len(al))
}

func (al Aliases) print(name string) {
	if v, ok := al[name]; ok {
		conlog.Printf("  %s: %s", name, v)
	}
}

func (al Aliases) set(args []cmd.QArg) {
	// the parts have '"' already removed
	parts := make([]string, 0, len(args)-1)
	for _, a := range args[1:] {
		parts = append(parts, a.String())
	}
	al[args[0].String()] = strings.TrimSpace(strings.Join(parts, " ")) + "\n"
}

func (al Aliases) unalias(a cmd.Arguments) error {
	args := a.Args()[1:]
	switch c := len(args); c {
	case 1:
		name := args[0].String()
		if _, ok := al[name]; ok {
			delete(al, name)
		} else {
			conlog.Printf("No alias named %s\n", name)
		}
	default:
		conlog.Printf("unalias <name> : delete alias\n")
	}
	return nil
}

func (al Aliases) unaliasAll(_ cmd.Arguments) error {
	for k := range al {
		delete(al, k)
	}
	return nil
}

func (al Aliases) Get(name string) (string, bool) {
	a, ok := al[name]
	return a, ok
}

// Execute returns the executor expanding aliases in front of the rest of
// the buffer.
func (al Aliases) Execute() cbuf.Efunc {
	return func(cb *cbuf.CommandBuffer, a cbuf.Arguments) (bool, error) {
		args := a.Args()
		if len(args) == 0 {
			return false, nil
		}
		if v, ok := al.Get(args[0].String()); ok {
			cb.InsertText(v)
			return true, nil
		}
		return false, nil
	}
}
