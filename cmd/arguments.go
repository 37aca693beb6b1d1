// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"log"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type QArg struct {
	a string
}

func NewArg(s string) QArg {
	return QArg{s}
}

func (a QArg) String() string {
	return a.a
}

func (a QArg) Int() int {
	r, err := strconv.ParseInt(a.a, 10, 0)
	if err != nil {
		return 0
	}
	return int(r)
}

func (a QArg) Float32() float32 {
	r, err := strconv.ParseFloat(a.a, 32)
	if err != nil {
		return 0
	}
	return float32(r)
}

func (a QArg) Float64() float64 {
	r, err := strconv.ParseFloat(a.a, 64)
	if err != nil {
		return 0
	}
	return r
}

func (a QArg) Bool() bool {
	switch a.a {
	case "1", "t", "T", "true", "TRUE", "True", "On", "ON", "on":
		return true
	default:
		return false
	}
}

type Arguments struct {
	// each arg on its own
	args []QArg
	// the trimmed input line
	full string
}

func (c *Arguments) Argv(i int) QArg {
	if i < 0 || i >= len(c.args) {
		log.Printf("Got Argv out of bounds %v, %v", i, len(c.args))
		return QArg{""}
	}
	return c.args[i]
}

func (c *Arguments) Full() string {
	return c.full
}

func (c *Arguments) Args() []QArg {
	return c.args
}

func (c *Arguments) ArgumentString() string {
	// args[0] is the cmd
	if len(c.args) < 2 {
		return ""
	}
	r := strings.TrimPrefix(c.full, c.args[0].String())
	r = strings.TrimLeftFunc(r, unicode.IsSpace)
	if len(r) > 1 && r[0] == '"' {
		r = strings.Trim(r, "\"\t\n\v\f\r ")
	}
	return r
}

// Parse splits a single command line into its arguments. Double quotes
// group words, everything after // is a comment and the first line break
// ends the command.
func Parse(s string) (args Arguments) {
	args.full = strings.TrimFunc(s, unicode.IsSpace)
	args.args = []QArg{}

	in := args.full
	for pos := 0; pos < len(in); {
		r, w := utf8.DecodeRuneInString(in[pos:])
		switch {
		case isEndOfLine(r):
			return
		case isSpace(r):
			pos += w
		case r == '"':
			end := strings.IndexAny(in[pos+1:], "\"\n")
			if end < 0 || in[pos+1+end] == '\n' {
				log.Printf("unterminated string in %q", in)
				return
			}
			args.args = append(args.args, QArg{in[pos+1 : pos+1+end]})
			pos += end + 2
		case strings.HasPrefix(in[pos:], "//"):
			return
		default:
			start := pos
			for pos < len(in) {
				r, w := utf8.DecodeRuneInString(in[pos:])
				if !isWordRune(r) {
					break
				}
				pos += w
			}
			args.args = append(args.args, QArg{in[start:pos]})
		}
	}
	return
}

func isWordRune(r rune) bool {
	// this is an ugly ascii workaround
	return r > ' ' && r != '"'
}

func isEndOfLine(r rune) bool {
	return r == '\r' || r == '\n'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
