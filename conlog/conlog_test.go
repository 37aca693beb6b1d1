package conlog

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestPrintfDefault(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	SetLogger(l)
	defer SetLogger(logrus.StandardLogger())

	Printf("\"%s\" is \"%s\"\n", "r_planet_radius", "1")
	if !strings.Contains(buf.String(), `r_planet_radius`) {
		t.Errorf("log output %q misses the message", buf.String())
	}
}

func TestSetPrintf(t *testing.T) {
	var got string
	SetPrintf(func(format string, v ...interface{}) {
		got = fmt.Sprintf(format, v...)
	})
	defer SetPrintf(func(format string, v ...interface{}) {
		logger.Info(strings.TrimRight(fmt.Sprintf(format, v...), "\n"))
	})
	Printf("%d planets\n", 3)
	if got != "3 planets\n" {
		t.Errorf("got %q", got)
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	SetLogger(l)
	defer SetLogger(logrus.StandardLogger())

	With(logrus.Fields{"planet": "earth"}).Info("loaded")
	if !strings.Contains(buf.String(), "planet=earth") {
		t.Errorf("log output %q misses the field", buf.String())
	}
}
