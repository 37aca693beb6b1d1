// SPDX-License-Identifier: GPL-2.0-or-later

package conlog

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	logger = logrus.StandardLogger()
	p      = func(format string, v ...interface{}) {
		logger.Info(strings.TrimRight(fmt.Sprintf(format, v...), "\n"))
	}
	sp = p
)

func SetPrintf(f func(string, ...interface{})) {
	p = f
}

func SetSafePrintf(f func(string, ...interface{})) {
	sp = f
}

// SetLogger replaces the logger behind the default printers and With.
func SetLogger(l *logrus.Logger) {
	logger = l
}

func Printf(format string, v ...interface{}) {
	p(format, v...)
}

func SafePrintf(format string, v ...interface{}) {
	sp(format, v...)
}

// With returns a log entry carrying the given fields, for messages
// that belong to one object like a planet.
func With(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}
