// SPDX-License-Identifier: GPL-2.0-or-later

package cbuf

import (
	"strings"

	"goplanet/cmd"
)

type Arguments = cmd.Arguments

// CommandBuffer holds console text waiting to be executed. Commands are
// separated by newlines or semicolons outside of quotes.
type CommandBuffer struct {
	buf string
	// toogle to add a wait to Execute,
	// causing the following commands to be executed one frame later
	wait      bool
	executors executors
}

func (c *CommandBuffer) SetCommandExecutors(e []Efunc) {
	c.executors = e
}

// Execute runs buffered commands until the buffer is empty or a wait
// command was seen. It stops at the first executor error, the remaining
// text stays buffered.
func (c *CommandBuffer) Execute() error {
	for len(c.buf) != 0 {
		i := 0
		quote := false
	LineLoop:
		for i = 0; i < len(c.buf); i++ {
			switch c.buf[i] {
			case '"':
				quote = !quote
				continue LineLoop
			case ';':
				if quote {
					continue LineLoop
				}
				break LineLoop
			case '\n':
				break LineLoop
			}
		}
		// do not put ';' or '\n' in line
		line := c.buf[:i]
		// but remove this char as well
		if i < len(c.buf) {
			i++
		}
		c.buf = c.buf[i:]
		if strings.TrimSpace(line) == "wait" {
			c.wait = true
		} else if err := c.executors.execute(c, line); err != nil {
			return err
		}
		if c.wait {
			// wait for the next frame to continue executing
			c.wait = false
			return nil
		}
	}
	return nil
}

func (c *CommandBuffer) AddText(text string) {
	c.buf = c.buf + text
}

func (c *CommandBuffer) InsertText(text string) {
	c.buf = text + "\n" + c.buf
}

// Empty reports whether all buffered commands ran.
func (c *CommandBuffer) Empty() bool {
	return len(c.buf) == 0
}
