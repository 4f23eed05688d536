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

package debugger

import (
	"errors"
	"io"
	"strings"

	"github.com/regwatch/regwatch/logger"
)

const prompt = "regwatch> "

// InputLoop reads and acts upon commands until QUIT is issued or the input
// reaches EOF. Errors in individual commands are printed and do not end the
// loop.
func (dbg *Debugger) InputLoop(in Input) error {
	dbg.input = in
	defer func() {
		dbg.input = nil
	}()

	for !dbg.quit {
		line, err := in.ReadLine(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				// run any final command that wasn't terminated with a newline
				if strings.TrimSpace(line) != "" {
					dbg.command(line)
				}
				return nil
			}
			return err
		}
		dbg.command(line)
	}

	return nil
}

func (dbg *Debugger) command(line string) {
	if err := dbg.ParseCommand(line); err != nil {
		logger.Log(logger.Allow, "debugger", err)
		dbg.printf("* %v\n", err)
	}
}
