// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"goplanet/cvar"
)

var (
	AtmosphereAlpha  *cvar.Cvar
	AtmosphereBlue   *cvar.Cvar
	AtmosphereGreen  *cvar.Cvar
	AtmosphereRed    *cvar.Cvar
	CameraDistance   *cvar.Cvar
	CameraFov        *cvar.Cvar
	CameraPitch      *cvar.Cvar
	DrawAtmosphere   *cvar.Cvar
	HostMaxFps       *cvar.Cvar
	HostTimeScale    *cvar.Cvar
	PlanetName       *cvar.Cvar
	PlanetRadius     *cvar.Cvar
	PlanetRotSpeed   *cvar.Cvar
	PlanetSectors    *cvar.Cvar
	PlanetStacks     *cvar.Cvar
	PlanetTexture    *cvar.Cvar
	RenderWireframe  *cvar.Cvar
	ScreenshotPrefix *cvar.Cvar
	VideoBackend     *cvar.Cvar
	VideoFullscreen  *cvar.Cvar
	VideoHeight      *cvar.Cvar
	VideoVsync       *cvar.Cvar
	VideoWidth       *cvar.Cvar
)

func init() {
	AtmosphereAlpha = cvar.MustRegister("r_atmosphere_alpha", "0.25", cvar.ARCHIVE)
	AtmosphereBlue = cvar.MustRegister("r_atmosphere_b", "1.0", cvar.ARCHIVE)
	AtmosphereGreen = cvar.MustRegister("r_atmosphere_g", "0.6", cvar.ARCHIVE)
	AtmosphereRed = cvar.MustRegister("r_atmosphere_r", "0.4", cvar.ARCHIVE)
	CameraDistance = cvar.MustRegister("cam_distance", "5", cvar.ARCHIVE)
	CameraFov = cvar.MustRegister("cam_fov", "45", cvar.ARCHIVE)
	CameraPitch = cvar.MustRegister("cam_pitch", "20", cvar.ARCHIVE)
	DrawAtmosphere = cvar.MustRegister("r_atmosphere", "1", cvar.ARCHIVE)
	HostMaxFps = cvar.MustRegister("host_maxfps", "250", cvar.ARCHIVE)
	HostTimeScale = cvar.MustRegister("host_timescale", "1", cvar.NONE)
	PlanetName = cvar.MustRegister("r_planet_name", "earth", cvar.NONE)
	PlanetRadius = cvar.MustRegister("r_planet_radius", "1", cvar.NONE)
	PlanetRotSpeed = cvar.MustRegister("r_planet_rotspeed", "0.5", cvar.NOTIFY)
	PlanetSectors = cvar.MustRegister("r_planet_sectors", "36", cvar.NONE)
	PlanetStacks = cvar.MustRegister("r_planet_stacks", "18", cvar.NONE)
	PlanetTexture = cvar.MustRegister("r_planet_texture", "textures/earth", cvar.NONE)
	RenderWireframe = cvar.MustRegister("r_wireframe", "0", cvar.NONE)
	ScreenshotPrefix = cvar.MustRegister("scr_prefix", "planet", cvar.ARCHIVE)
	VideoBackend = cvar.MustRegister("vid_backend", "sdl", cvar.ARCHIVE)
	VideoFullscreen = cvar.MustRegister("vid_fullscreen", "0", cvar.ARCHIVE)
	VideoHeight = cvar.MustRegister("vid_height", "768", cvar.ARCHIVE)
	VideoVsync = cvar.MustRegister("vid_vsync", "1", cvar.ARCHIVE)
	VideoWidth = cvar.MustRegister("vid_width", "1024", cvar.ARCHIVE)
}
