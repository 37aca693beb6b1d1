// SPDX-License-Identifier: GPL-2.0-or-later

package qtime

import (
	"time"
)

var (
	startTime = time.Now()
	now       = time.Now
)

// QTime returns the time since program start.
func QTime() time.Duration {
	return now().Sub(startTime)
}

// Seconds returns QTime in seconds, the elapsed time planets animate with.
func Seconds() float64 {
	return QTime().Seconds()
}

// Reset restarts the clock at zero.
func Reset() {
	startTime = now()
}
