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
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/regwatch/regwatch/govern"
	"github.com/regwatch/regwatch/logger"
	"github.com/regwatch/regwatch/registers"
	"github.com/regwatch/regwatch/trace"
	"github.com/regwatch/regwatch/view"
)

// ParseCommand acts upon a single line of user input. The empty string does
// nothing.
func (dbg *Debugger) ParseCommand(userInput string) error {
	tokens := TokeniseInput(userInput)

	command, ok := tokens.Get()
	if !ok {
		return nil
	}

	switch strings.ToUpper(command) {
	default:
		return fmt.Errorf("%s is not a command (try HELP)", command)

	case cmdHelp:
		return dbg.printHelp(tokens)

	case cmdShow:
		return dbg.show(tokens)

	case cmdSet:
		return dbg.set(tokens)

	case cmdSetD:
		return dbg.setDouble(tokens)

	case cmdFlag:
		return dbg.flag(tokens)

	case cmdBase:
		arg, ok := tokens.Get()
		if !ok {
			dbg.println(dbg.ins.DisplayBase().String())
			return nil
		}
		base, err := view.ParseBase(arg)
		if err != nil {
			return err
		}
		return dbg.ins.Preferences().Set("view.hex", base == view.Hex)

	case cmdRun:
		return dbg.run(tokens)

	case cmdStop:
		if !dbg.stopBackground() {
			return fmt.Errorf("program is not running")
		}

	case cmdKeys:
		return dbg.keys()

	case cmdReset:
		return dbg.reset(tokens)

	case cmdTrace:
		return dbg.trace(tokens)

	case cmdMemViz:
		path, ok := tokens.Get()
		if !ok {
			return fmt.Errorf("MEMVIZ requires a filename")
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := dbg.ins.MemViz(f); err != nil {
			return err
		}
		dbg.printf("simulator state written to %s\n", path)

	case cmdLog:
		n := 10
		if arg, ok := tokens.Get(); ok {
			var err error
			n, err = strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("LOG: %w", err)
			}
		}
		dbg.outputCrit.Lock()
		logger.Tail(dbg.output, n)
		dbg.outputCrit.Unlock()

	case cmdStats:
		dbg.stats()

	case cmdPrefs:
		key, ok := tokens.Get()
		if !ok {
			dbg.printf("%s", dbg.ins.Preferences())
			return nil
		}
		if tokens.IsEnd() {
			return fmt.Errorf("PREFS requires a value for %s", key)
		}
		return dbg.ins.Preferences().Set(key, tokens.Remainder())

	case cmdQuit:
		dbg.quit = true
	}

	return nil
}

// parse a register file name. the empty string is the general file
func parseFile(s string) (registers.FileID, error) {
	if s == "" {
		return registers.General, nil
	}
	return registers.ParseFileID(s)
}

func (dbg *Debugger) show(tokens *Tokens) error {
	arg, _ := tokens.Get()
	file, err := parseFile(arg)
	if err != nil {
		return err
	}

	v := dbg.views[file]
	cols := v.Columns()
	rows := v.Rows()

	// column widths
	width := make([]int, len(cols))
	for i, c := range cols {
		width[i] = len(c.String())
	}
	for _, r := range rows {
		for i, c := range r.Cells {
			width[i] = max(width[i], len(c))
		}
	}

	s := strings.Builder{}
	s.WriteString("  ")
	for i, c := range cols {
		s.WriteString(fmt.Sprintf("%-*s  ", width[i], c))
	}
	dbg.println(strings.TrimRight(s.String(), " "))

	for _, r := range rows {
		s.Reset()
		if r.Highlighted {
			s.WriteString("* ")
		} else {
			s.WriteString("  ")
		}
		for i, c := range r.Cells {
			s.WriteString(fmt.Sprintf("%-*s  ", width[i], c))
		}
		dbg.println(strings.TrimRight(s.String(), " "))
	}

	if file == registers.Float {
		dbg.printf("  condition flags: %08b\n", dbg.ins.State().Bank.ConditionFlags())
	}

	return nil
}

func (dbg *Debugger) lookup(file registers.FileID, name string) (int, error) {
	return dbg.ins.State().Bank.Lookup(file, name)
}

func (dbg *Debugger) set(tokens *Tokens) error {
	f, _ := tokens.Get()
	reg, _ := tokens.Get()
	text := tokens.Remainder()
	if text == "" {
		return fmt.Errorf("SET requires a register file, a register and a value")
	}

	file, err := parseFile(f)
	if err != nil {
		return err
	}
	id, err := dbg.lookup(file, reg)
	if err != nil {
		return err
	}

	col := view.ColValue
	if file == registers.Float {
		col = view.ColFloat
	}

	return dbg.ins.Edit(dbg.views[file], id, col, text)
}

func (dbg *Debugger) setDouble(tokens *Tokens) error {
	reg, _ := tokens.Get()
	text := tokens.Remainder()
	if text == "" {
		return fmt.Errorf("SETD requires a register and a value")
	}

	id, err := dbg.lookup(registers.Float, reg)
	if err != nil {
		return err
	}

	return dbg.ins.Edit(dbg.views[registers.Float], id, view.ColDouble, text)
}

func (dbg *Debugger) flag(tokens *Tokens) error {
	b := dbg.ins.State().Bank

	arg, ok := tokens.Get()
	if !ok {
		for n := range b.NumConditionFlags() {
			set, _ := b.ConditionFlag(n)
			dbg.printf("  %d: %v\n", n, set)
		}
		return nil
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("FLAG: %w", err)
	}

	state, _ := tokens.Get()
	switch strings.ToUpper(state) {
	case "ON", "1", "TRUE":
		return b.SetConditionFlag(n, true)
	case "OFF", "0", "FALSE":
		return b.SetConditionFlag(n, false)
	}

	return fmt.Errorf("FLAG requires ON or OFF")
}

func (dbg *Debugger) run(tokens *Tokens) error {
	mode := govern.SingleStep
	if arg, ok := tokens.Get(); ok {
		var err error
		mode, err = govern.ParseRunMode(arg)
		if err != nil {
			return err
		}
	}

	if dbg.ins.State().Running() {
		return fmt.Errorf("program is already running")
	}

	ips := dbg.ins.Preferences().TimedIPS.Load()

	if mode == govern.SingleStep {
		if dbg.runner.Next() >= dbg.runner.Program().Len() {
			return fmt.Errorf("program has ended (use RESET)")
		}
		return dbg.runner.Run(context.Background(), mode, ips)
	}

	// a previous background run may have finished without STOP
	dbg.Wait()

	dbg.background(func(ctx context.Context) error {
		return dbg.runner.Run(ctx, mode, ips)
	})
	dbg.printf("running in %v mode\n", mode)

	return nil
}

func (dbg *Debugger) keys() error {
	in, ok := dbg.input.(KeyInput)
	if !ok {
		return fmt.Errorf("KEYS is not available with this input")
	}
	if dbg.ins.State().Running() {
		return fmt.Errorf("program is already running")
	}

	if err := in.CBreakMode(); err != nil {
		return err
	}
	defer in.CanonicalMode()

	ips := dbg.ins.Preferences().TimedIPS.Load()

	for {
		k, err := in.ReadKey()
		if err != nil {
			return err
		}
		if k != ' ' {
			return nil
		}
		if err := dbg.runner.Run(context.Background(), govern.SingleStep, ips); err != nil {
			return err
		}
		dbg.printf("pc = %s\n", view.HexText(dbg.ins.ReadRegister(registers.General, registers.ProgramCounter)))
	}
}

func (dbg *Debugger) reset(tokens *Tokens) error {
	dbg.stopBackground()

	arg, ok := tokens.Get()
	if ok {
		file, err := registers.ParseFileID(arg)
		if err != nil {
			return err
		}
		return dbg.ins.Reset(file)
	}

	dbg.ins.ResetAll()
	dbg.runner.Rewind()
	dbg.println("registers reset and program rewound")

	return nil
}

func (dbg *Debugger) stopRecording() bool {
	if len(dbg.recordHandles) == 0 {
		return false
	}
	for _, h := range dbg.recordHandles {
		dbg.ins.Unsubscribe(h)
	}
	dbg.recordHandles = dbg.recordHandles[:0]
	return true
}

func (dbg *Debugger) trace(tokens *Tokens) error {
	arg, _ := tokens.Get()

	switch strings.ToUpper(arg) {
	case "START":
		if len(dbg.recordHandles) > 0 {
			return fmt.Errorf("trace is already recording")
		}
		if dbg.recorder == nil {
			dbg.recorder = trace.NewRecorder(dbg.ins.State().Bank, dbg.ins.Preferences().TraceCapacity.Load())
		}
		for f := range registers.NumFiles {
			dbg.recordHandles = append(dbg.recordHandles, dbg.ins.Subscribe(f, dbg.recorder))
		}
		dbg.println("trace recording")

	case "STOP":
		if !dbg.stopRecording() {
			return fmt.Errorf("trace is not recording")
		}
		dbg.printf("trace stopped with %d events\n", dbg.recorder.Len())

	case "CLEAR":
		if dbg.recorder != nil {
			dbg.recorder.Clear()
		}

	case "SAVE":
		path, ok := tokens.Get()
		if !ok {
			return fmt.Errorf("TRACE SAVE requires a filename")
		}
		if dbg.recorder == nil {
			return fmt.Errorf("nothing to save")
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := dbg.recorder.Save(context.Background(), f); err != nil {
			return err
		}
		dbg.printf("%d events saved to %s\n", dbg.recorder.Len(), path)

	case "REPLAY":
		path, ok := tokens.Get()
		if !ok {
			return fmt.Errorf("TRACE REPLAY requires a filename")
		}
		if dbg.ins.State().Running() {
			return fmt.Errorf("can not replay while the program is running")
		}
		df, err := trace.Load(context.Background(), path)
		if err != nil {
			return err
		}
		n, err := trace.Replay(context.Background(), df, dbg.ins.State().Bank)
		dbg.ins.RefreshAll()
		if err != nil {
			return err
		}
		dbg.printf("%d events replayed\n", n)

	default:
		return fmt.Errorf("TRACE requires START, STOP, CLEAR, SAVE or REPLAY")
	}

	return nil
}

func (dbg *Debugger) stats() {
	st := dbg.ins.State()
	state, mode := st.Condition()

	dbg.printf("state: %v (%v)\n", state, mode)
	dbg.printf("notifications: %v\n", st.Notifier.NotificationsEnabled())
	dbg.printf("gateway acquisitions: %d\n", st.Gateway.Acquisitions())
	for f := range registers.NumFiles {
		dbg.printf("subscribers (%v): %d\n", f, st.Notifier.Subscribers(f))
	}
	dbg.printf("program: %s at %d of %d\n", dbg.runner.Program().Name, dbg.runner.Next(), dbg.runner.Program().Len())
	if dbg.recorder != nil {
		dbg.printf("trace: %d events (full: %v)\n", dbg.recorder.Len(), dbg.recorder.Full())
	}
}
