// SPDX-License-Identifier: GPL-2.0-or-later

package gametime

import (
	"goplanet/cvars"
	"goplanet/math"
	"goplanet/qtime"
)

// GameTime separates the wall clock from the animation clock. Planets
// move with SimTime, which advances by the frame time scaled with
// host_timescale, so host_timescale 0 pauses them.
type GameTime struct {
	time       float64
	oldTime    float64
	frameTime  float64
	simTime    float64
	frameCount int
	clock      func() float64
}

func New() *GameTime {
	return &GameTime{clock: qtime.Seconds}
}

func (h *GameTime) Reset() {
	h.time = h.clock()
	h.oldTime = h.time
	h.frameTime = 0
	h.simTime = 0
	h.frameCount = 0
}

func (h *GameTime) Time() float64      { return h.time }
func (h *GameTime) FrameTime() float64 { return h.frameTime }
func (h *GameTime) SimTime() float64   { return h.simTime }
func (h *GameTime) FrameCount() int    { return h.frameCount }

// UpdateTime updates the time of the next frame.
// Returns false if it would exceed host_maxfps, 0 is no limit.
func (h *GameTime) UpdateTime() bool {
	h.time = h.clock()
	if maxFPS := float64(cvars.HostMaxFps.Value()); maxFPS > 0 {
		maxFPS = math.Clamp(10.0, maxFPS, 1000.0)
		if h.time-h.oldTime < 1/maxFPS {
			return false
		}
	}
	h.frameTime = h.time - h.oldTime
	h.oldTime = h.time
	h.frameCount++

	scale := math.Clamp(0, float64(cvars.HostTimeScale.Value()), 100)
	h.simTime += h.frameTime * scale
	return true
}
