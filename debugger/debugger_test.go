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

package debugger_test

import (
	"io"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/regwatch/regwatch/config"
	"github.com/regwatch/regwatch/debugger"
	"github.com/regwatch/regwatch/inspector"
	"github.com/regwatch/regwatch/registers"
	"github.com/regwatch/regwatch/runner"
	"github.com/regwatch/regwatch/simulation"
	"github.com/regwatch/regwatch/test"
)

// scripted input. returns io.EOF when the script has been exhausted
type script struct {
	lines []string
}

func (s *script) ReadLine(_ string) (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	l := s.lines[0]
	s.lines = s.lines[1:]
	return l, nil
}

type fixture struct {
	ins    *inspector.Inspector
	runner *runner.Runner
	dbg    *debugger.Debugger
	out    *test.CompareWriter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	p, err := config.NewPreferences()
	test.DemandSuccess(t, err)

	state := simulation.NewState()
	f := &fixture{
		ins:    inspector.NewInspector(state, p),
		runner: runner.NewRunner(state, runner.Demo(10)),
		out:    &test.CompareWriter{},
	}
	f.dbg = debugger.NewDebugger(f.ins, f.runner, f.out)
	t.Cleanup(f.dbg.CleanUp)

	return f
}

func (f *fixture) run(t *testing.T, lines ...string) string {
	t.Helper()
	f.out.Clear()
	test.ExpectSuccess(t, f.dbg.InputLoop(&script{lines: lines}))
	return f.out.String()
}

func TestSetAndShow(t *testing.T) {
	f := newFixture(t)

	out := f.run(t, "SET gpr t0 42", "SHOW gpr")
	test.ExpectEquality(t, f.ins.ReadRegister(registers.General, 8), uint32(42))
	test.ExpectSuccess(t, strings.Contains(out, "42"))

	// lower case keywords and register names with a leading $
	f.run(t, "set gpr $t1 0x10")
	test.ExpectEquality(t, f.ins.ReadRegister(registers.General, 9), uint32(16))

	// switching base changes the display
	f.run(t, "BASE hex")
	test.ExpectSuccess(t, f.ins.Preferences().Hex.Load())
	out = f.run(t, "SHOW")
	test.ExpectSuccess(t, strings.Contains(out, "0000002a"))
}

func TestSetErrors(t *testing.T) {
	f := newFixture(t)

	out := f.run(t, "SET gpr t0 bogus", "SHOW gpr")
	test.ExpectSuccess(t, strings.Contains(out, "parse error"))
	test.ExpectSuccess(t, strings.Contains(out, "INVALID"))
	test.ExpectEquality(t, f.ins.ReadRegister(registers.General, 8), uint32(0))

	out = f.run(t, "SET gpr zero 1")
	test.ExpectSuccess(t, strings.Contains(out, "not editable"))

	out = f.run(t, "SET gpr nosuchreg 1")
	test.ExpectSuccess(t, strings.Contains(out, "unknown register"))

	out = f.run(t, "WIBBLE")
	test.ExpectSuccess(t, strings.Contains(out, "is not a command"))
}

func TestSetDouble(t *testing.T) {
	f := newFixture(t)

	f.run(t, "SETD f2 -3.75")
	d, err := f.ins.ReadDouble(registers.Float, 2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, math.Float64frombits(d), -3.75)

	// odd registers can not hold a double
	out := f.run(t, "SETD f3 1.0")
	test.ExpectSuccess(t, strings.Contains(out, "*"))
	d, err = f.ins.ReadDouble(registers.Float, 2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, math.Float64frombits(d), -3.75)
}

func TestFlags(t *testing.T) {
	f := newFixture(t)

	f.run(t, "FLAG 3 on")
	set, err := f.ins.State().Bank.ConditionFlag(3)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, set)

	f.run(t, "FLAG 3 off")
	set, err = f.ins.State().Bank.ConditionFlag(3)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, set)
}

func TestStepAndReset(t *testing.T) {
	f := newFixture(t)

	f.run(t, "RUN step", "RUN step", "RUN")
	test.ExpectEquality(t, f.runner.Next(), 3)
	test.ExpectEquality(t, f.ins.ReadRegister(registers.General, registers.ProgramCounter), uint32(0x0040000c))

	// the highlight does not survive the end of the step
	out := f.run(t, "SHOW gpr")
	test.ExpectFailure(t, strings.Contains(out, "* "))

	f.run(t, "RESET")
	test.ExpectEquality(t, f.runner.Next(), 0)
	test.ExpectEquality(t, f.ins.ReadRegister(registers.General, 9), uint32(0))
}

func TestQuit(t *testing.T) {
	f := newFixture(t)

	f.run(t, "QUIT", "SET gpr t0 1")
	test.ExpectSuccess(t, f.dbg.Quit())
	test.ExpectEquality(t, f.ins.ReadRegister(registers.General, 8), uint32(0))
}

func TestTraceReplay(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(t.TempDir(), "trace.csv")

	out := f.run(t,
		"TRACE START",
		"RUN step", "RUN step", "RUN step", "RUN step", "RUN step",
		"TRACE STOP",
		"TRACE SAVE "+path,
	)
	test.ExpectSuccess(t, strings.Contains(out, "saved"))
	test.ExpectEquality(t, f.ins.ReadRegister(registers.General, 10), uint32(1))

	f.run(t, "RESET")
	test.ExpectEquality(t, f.ins.ReadRegister(registers.General, 10), uint32(0))

	out = f.run(t, "TRACE REPLAY "+path)
	test.ExpectSuccess(t, strings.Contains(out, "replayed"))
	test.ExpectEquality(t, f.ins.ReadRegister(registers.General, 10), uint32(1))
}

func TestHelp(t *testing.T) {
	f := newFixture(t)

	out := f.run(t, "HELP")
	test.ExpectSuccess(t, strings.Contains(out, "SETD"))

	out = f.run(t, "HELP trace")
	test.ExpectSuccess(t, strings.Contains(out, "REPLAY"))
}

func TestBackgroundRun(t *testing.T) {
	p, err := config.NewPreferences()
	test.DemandSuccess(t, err)

	state := simulation.NewState()
	ins := inspector.NewInspector(state, p)
	r := runner.NewRunner(state, runner.Demo(50))

	// only the tail of the output is interesting
	out, err := test.NewRingWriter(256)
	test.DemandSuccess(t, err)

	dbg := debugger.NewDebugger(ins, r, out)
	defer dbg.CleanUp()

	test.ExpectSuccess(t, dbg.InputLoop(&script{lines: []string{"RUN unlimited"}}))
	dbg.Wait()

	test.ExpectEquality(t, r.Next(), r.Program().Len())
	test.ExpectFailure(t, state.Running())
	test.ExpectSuccess(t, strings.Contains(out.String(), "program stopped"))

	// the demonstration program leaves the last fibonacci number in $v0
	test.ExpectInequality(t, ins.ReadRegister(registers.General, 2), uint32(0))

	// nothing left to interrupt
	test.ExpectEquality(t, dbg.Interrupt(), false)
}
