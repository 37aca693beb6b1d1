package math

import (
	gmath "math"

	"github.com/chewxy/math32"
)

// WrapRadians changes an angle to be within [0, 2*pi)
func WrapRadians(a float32) float32 {
	a = a - math32.Floor(a/(2*math32.Pi))*2*math32.Pi
	if a >= 2*math32.Pi {
		return 0
	}
	return a
}

// Angle returns speed*elapsed wrapped to [0, 2*pi), computed in double
// precision.
func Angle(speed float32, elapsed float64) float32 {
	a := float64(speed) * elapsed
	a -= gmath.Floor(a/(2*gmath.Pi)) * 2 * gmath.Pi
	return WrapRadians(float32(a))
}
