// SPDX-License-Identifier: GPL-2.0-or-later

package viewer

import (
	"github.com/pkg/errors"

	"goplanet/alias"
	"goplanet/cbuf"
	"goplanet/cmd"
	"goplanet/conlog"
	"goplanet/cvar"
	"goplanet/cvars"
	"goplanet/filesystem"
	"goplanet/keys"
	"goplanet/planet"
)

var (
	active   *scene
	cbuffer  cbuf.CommandBuffer
	aliases  = alias.New()
	bindings = keys.Defaults()
	quit     bool

	screenshotPending bool
)

func init() {
	cmd.Must(cmd.AddCommand("exec", execCmd))
	cmd.Must(cmd.AddCommand("planet", planetCmd))
	cmd.Must(cmd.AddCommand("planetlist", planetList))
	cmd.Must(cmd.AddCommand("quit", quitCmd))
	cmd.Must(cmd.AddCommand("screenshot", screenshotCmd))
	cmd.Must(cmd.AddCommand("zoom", zoomCmd))
	cmd.Must(aliases.Register(cmd.Default()))
	cmd.Must(bindings.Register(cmd.Default()))
	cvars.PlanetRotSpeed.SetCallback(onRotSpeed)

	cbuffer.SetCommandExecutors([]cbuf.Efunc{
		func(_ *cbuf.CommandBuffer, a cbuf.Arguments) (bool, error) {
			return cmd.Execute(a)
		},
		func(_ *cbuf.CommandBuffer, a cbuf.Arguments) (bool, error) {
			return cvar.Execute(a)
		},
		aliases.Execute(),
	})
}

// onRotSpeed applies r_planet_rotspeed to the primary planet.
func onRotSpeed(cv *cvar.Cvar) {
	if active == nil {
		return
	}
	if p := active.find(cvars.PlanetName.String()); p != nil {
		p.SetRotationSpeed(cv.Value())
	}
}

func execCmd(a cmd.Arguments) error {
	args := a.Args()
	if len(args) != 2 {
		conlog.Printf("exec <filename> : execute a script file\n")
		return nil
	}
	name := args[1].String()
	b, err := filesystem.ReadFile(name)
	if err != nil {
		conlog.Printf("couldn't exec %s\n", name)
		return nil
	}
	conlog.Printf("execing %s\n", name)
	cbuffer.InsertText(string(b))
	return nil
}

// planet <name> <texture> <radius> [orbit radius] [orbit speed] [parent] [rotation speed]
func planetCmd(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) < 3 {
		conlog.Printf("planet <name> <texture> <radius> [orbit radius] [orbit speed] [parent] [rotation speed]\n")
		return nil
	}
	if active == nil {
		return errors.New("no scene to add a planet to")
	}
	cfg := planet.DefaultConfig(args[0].String(), args[2].Float32(), args[1].String())
	parent := ""
	if len(args) > 3 {
		cfg.OrbitRadius = args[3].Float32()
	}
	if len(args) > 4 {
		cfg.OrbitSpeed = args[4].Float32()
	}
	if len(args) > 5 {
		parent = args[5].String()
	}
	if len(args) > 6 {
		cfg.RotationSpeed = args[6].Float32()
	}
	active.queue(cfg, parent)
	return nil
}

func planetList(_ cmd.Arguments) error {
	if active == nil {
		return nil
	}
	for _, p := range active.planets {
		parent := ""
		if p.Parent() != nil {
			parent = p.Parent().Name()
		}
		conlog.SafePrintf("%-12s r=%-6v tex=%s parent=%s id=%s\n",
			p.Name(), p.Radius(), p.Texture().Name(), parent, p.ID())
	}
	conlog.SafePrintf("%d planets\n", len(active.planets))
	return nil
}

func quitCmd(_ cmd.Arguments) error {
	quit = true
	return nil
}

// screenshotCmd only marks the request, the capture happens once the
// next frame is drawn and before it is swapped.
func screenshotCmd(_ cmd.Arguments) error {
	if active == nil {
		return errors.New("no scene to capture")
	}
	screenshotPending = true
	return nil
}

func captureScreenshot() {
	if !screenshotPending || active == nil {
		return
	}
	screenshotPending = false
	name, err := active.screenshot(filesystem.BaseDir())
	if err != nil {
		conlog.Printf("screenshot: %v\n", err)
		return
	}
	conlog.Printf("Wrote %s\n", name)
}

// zoom <factor> : scale the camera distance
func zoomCmd(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 1 || !(args[0].Float32() > 0) {
		conlog.Printf("zoom <factor> : scale the camera distance\n")
		return nil
	}
	cvars.CameraDistance.SetValue(zoom(cvars.CameraDistance.Value(), args[0].Float32()))
	return nil
}
