package commandline

import (
	"flag"
	"fmt"
	"strconv"
)

var (
	fullscreen bool
	window     bool

	vsync = boolInt{true, 1}

	height int
	width  int

	backend string
	basedir string
	execs   stringList
)

// boolInt is a flag that can be given alone or with a number.
type boolInt struct {
	set bool
	num int
}

func (b *boolInt) IsBoolFlag() bool {
	// We can not support both "-flag" and "-flag 10"
	// This allows "-flag", and "-flag=10"
	// and also "-flag=true" and "-flag=false"
	// but not "-flag 10"
	return true
}

func (b *boolInt) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil {
		v, err := strconv.ParseBool(s)
		b.set = v
		return err
	}
	b.set = true
	b.num = int(v)
	return nil
}

func (b *boolInt) String() string {
	return fmt.Sprintf("Set: %v, Num: %v", b.set, b.num)
}

// stringList collects every occurrence of a repeated flag.
type stringList []string

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func (s *stringList) String() string {
	return fmt.Sprint([]string(*s))
}

func init() {
	register(flag.CommandLine)
}

func register(fs *flag.FlagSet) {
	fs.BoolVar(&fullscreen, "f", false, "")
	fs.BoolVar(&fullscreen, "fullscreen", false, "run fullscreen")
	fs.BoolVar(&window, "window", false, "")
	fs.BoolVar(&window, "w", false, "")

	fs.Var(&vsync, "vsync", "swap interval, -vsync=false disables it")

	fs.IntVar(&height, "height", -1, "window height, negative is unset")
	fs.IntVar(&width, "width", -1, "window width, negative is unset")

	fs.StringVar(&backend, "backend", "", "window backend, sdl or glfw")
	fs.StringVar(&basedir, "basedir", ".", "asset base directory")
	fs.Var(&execs, "exec", "config script to run at startup, may repeat")
}

func BaseDirectory() string {
	return basedir
}

func Backend() string {
	return backend
}

func Exec() []string {
	return execs
}

func Height() int {
	return height
}

func Width() int {
	return width
}

// Fullscreen reports whether fullscreen was requested. -window wins.
func Fullscreen() bool {
	return fullscreen && !window
}

func Window() bool {
	return window
}

func VSync() bool {
	return vsync.set
}

// SwapInterval is the requested swap interval, 0 when vsync is off.
func SwapInterval() int {
	if !vsync.set {
		return 0
	}
	return vsync.num
}
