// This file is part of Regwatch.
//
// Regwatch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Regwatch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Regwatch.  If not, see <https://www.gnu.org/licenses/>.

// Package terminal is a thin wrapper over a posix terminal. It allows the
// terminal to be switched between canonical mode, for line input, and cbreak
// mode, for single key input.
//
// If the input file is not a terminal, for example if input has been
// redirected from a file, then mode changes are ignored and input is read a
// line at a time in the usual way.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output io.Writer
	reader *bufio.Reader

	isTerm     bool
	canAttr    unix.Termios
	cbreakAttr unix.Termios

	mu sync.Mutex
}

// Open prepares a Terminal for the input and output files. The current
// attributes of the input terminal are remembered and will be restored by
// CanonicalMode().
func Open(input *os.File, output io.Writer) (*Terminal, error) {
	if input == nil {
		return nil, fmt.Errorf("terminal: requires an input file")
	}
	if output == nil {
		return nil, fmt.Errorf("terminal: requires an output")
	}

	t := &Terminal{
		input:  input,
		output: output,
		reader: bufio.NewReader(input),
	}

	// an error here means that input is not a terminal
	if err := termios.Tcgetattr(input.Fd(), &t.canAttr); err == nil {
		t.isTerm = true
		t.cbreakAttr = t.canAttr
		termios.Cfmakecbreak(&t.cbreakAttr)
	}

	return t, nil
}

// IsTerminal returns true if the input is a terminal.
func (t *Terminal) IsTerminal() bool {
	return t.isTerm
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (t *Terminal) CanonicalMode() error {
	if !t.isTerm {
		return nil
	}
	return termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.canAttr)
}

// CBreakMode puts terminal into cbreak mode. Keys are available to ReadKey()
// as soon as they are pressed.
func (t *Terminal) CBreakMode() error {
	if !t.isTerm {
		return nil
	}
	return termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.cbreakAttr)
}

// Print writes the formatted string to the output.
func (t *Terminal) Print(s string, a ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.output, s, a...)
}

// ReadLine prints the prompt and returns the next line of input without the
// line ending.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	t.Print("%s", prompt)
	s, err := t.reader.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// ReadKey returns the next byte of input. In cbreak mode this is the next key
// press.
func (t *Terminal) ReadKey() (byte, error) {
	return t.reader.ReadByte()
}
