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
	"fmt"
	"sort"
	"strings"
)

// debugger keywords
const (
	cmdHelp   = "HELP"
	cmdShow   = "SHOW"
	cmdSet    = "SET"
	cmdSetD   = "SETD"
	cmdFlag   = "FLAG"
	cmdBase   = "BASE"
	cmdRun    = "RUN"
	cmdStop   = "STOP"
	cmdKeys   = "KEYS"
	cmdReset  = "RESET"
	cmdTrace  = "TRACE"
	cmdMemViz = "MEMVIZ"
	cmdLog    = "LOG"
	cmdStats  = "STATS"
	cmdPrefs  = "PREFS"
	cmdQuit   = "QUIT"
)

type helpEntry struct {
	usage string
	text  string
}

var help = map[string]helpEntry{
	cmdHelp:   {"HELP [command]", "List commands or show help for a single command"},
	cmdShow:   {"SHOW [GPR|FPU|CP0]", "Show the registers of a register file. The most recently written register is marked with *"},
	cmdSet:    {"SET <file> <register> <value>", "Set a register. Registers are named ($t0, t0, f2, status) or numbered. Float registers accept floating point values"},
	cmdSetD:   {"SETD <register> <value>", "Set an even numbered float register and the following register to a double"},
	cmdFlag:   {"FLAG [<n> ON|OFF]", "Show or change the floating point condition flags"},
	cmdBase:   {"BASE HEX|DEC", "Change the base values are displayed in"},
	cmdRun:    {"RUN [STEP|TIMED|UNLIMITED]", "Run the program. STEP executes one instruction. TIMED and UNLIMITED run in the background until STOP"},
	cmdStop:   {"STOP", "Stop a program running in the background"},
	cmdKeys:   {"KEYS", "Step with the space bar. Any other key returns to the command line"},
	cmdReset:  {"RESET [file]", "Reset registers to their defaults and rewind the program"},
	cmdTrace:  {"TRACE START|STOP|CLEAR|SAVE <file>|REPLAY <file>", "Record register writes made while the program runs. Replay accepts CSV or Parquet files"},
	cmdMemViz: {"MEMVIZ <file>", "Write a graphviz description of the simulator state"},
	cmdLog:    {"LOG [n]", "Show the most recent log entries"},
	cmdStats:  {"STATS", "Show statistics about the register engine"},
	cmdPrefs:  {"PREFS [key value]", "List or change preferences"},
	cmdQuit:   {"QUIT", "Exit regwatch"},
}

func (dbg *Debugger) printHelp(tokens *Tokens) error {
	if kw, ok := tokens.Get(); ok {
		h, ok := help[strings.ToUpper(kw)]
		if !ok {
			return fmt.Errorf("no help for %s", kw)
		}
		dbg.printf("%s\n  %s\n", h.usage, h.text)
		return nil
	}

	keys := make([]string, 0, len(help))
	for k := range help {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		dbg.printf("  %-8s %s\n", k, help[k].text)
	}
	return nil
}
