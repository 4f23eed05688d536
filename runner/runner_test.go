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

package runner_test

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/regwatch/regwatch/curated"
	"github.com/regwatch/regwatch/govern"
	"github.com/regwatch/regwatch/notifications"
	"github.com/regwatch/regwatch/registers"
	"github.com/regwatch/regwatch/runner"
	"github.com/regwatch/regwatch/simulation"
	"github.com/regwatch/regwatch/test"
	"github.com/regwatch/regwatch/view"
)

type counter struct {
	crit   sync.Mutex
	events []notifications.Event
}

func (c *counter) Notify(ev notifications.Event) {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.events = append(c.events, ev)
}

func (c *counter) len() int {
	c.crit.Lock()
	defer c.crit.Unlock()
	return len(c.events)
}

func TestStep(t *testing.T) {
	s := simulation.NewState()
	p := &runner.Program{
		Name: "test",
		Instructions: []runner.Instruction{
			{Text: "li $t0, 5", Writes: []runner.Write{{File: registers.General, Register: 8, Value: 5}}},
			{Text: "li $zero, 5", Writes: []runner.Write{{File: registers.General, Register: 0, Value: 5}}},
			{Text: "li.d $f2, 1.0", Writes: []runner.Write{{File: registers.Float, Register: 2, Double: true, Wide: math.Float64bits(1.0)}}},
		},
	}
	r := runner.NewRunner(s, p)

	test.ExpectSuccess(t, r.Step())
	test.ExpectEquality(t, s.Bank.Read(registers.General, 8), uint32(5))
	test.ExpectEquality(t, s.Bank.Read(registers.General, registers.ProgramCounter), uint32(0x00400004))

	test.ExpectSuccess(t, r.Step())
	test.ExpectEquality(t, s.Bank.Read(registers.General, 0), uint32(0))

	test.ExpectSuccess(t, r.Step())
	d, err := s.Bank.ReadDouble(registers.Float, 2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, math.Float64frombits(d), 1.0)
	test.ExpectEquality(t, s.Bank.Read(registers.General, registers.ProgramCounter), uint32(0x0040000c))

	err = r.Step()
	test.ExpectEquality(t, curated.Is(err, runner.ProgramEnded), true)

	r.Rewind()
	test.ExpectEquality(t, r.Next(), 0)
}

func TestBadWrite(t *testing.T) {
	s := simulation.NewState()
	p := &runner.Program{
		Name: "bad",
		Instructions: []runner.Instruction{
			{Text: "li.d $f3, 1.0", Writes: []runner.Write{{File: registers.Float, Register: 3, Double: true}}},
		},
	}
	r := runner.NewRunner(s, p)
	test.ExpectFailure(t, r.Step())
}

func TestRunModes(t *testing.T) {
	s := simulation.NewState()
	c := &counter{}
	s.Notifier.Subscribe(registers.General, c)

	p := runner.Demo(10)
	r := runner.NewRunner(s, p)

	// single step executes one instruction and reports the write and the
	// program counter change
	test.ExpectSuccess(t, r.Run(context.Background(), govern.SingleStep, 0))
	test.ExpectEquality(t, r.Next(), 1)
	test.ExpectEquality(t, c.len(), 2)
	test.ExpectFailure(t, s.Running())

	// unlimited runs to the end without reporting
	test.ExpectSuccess(t, r.Run(context.Background(), govern.Unlimited, 0))
	test.ExpectEquality(t, r.Next(), p.Len())
	test.ExpectEquality(t, c.len(), 2)

	// fib(10) sequence starting 1, 2, 3, 5 ...
	test.ExpectEquality(t, s.Bank.Read(registers.General, 2), uint32(89))
	test.ExpectEquality(t, s.Bank.Read(registers.General, 16), uint32(10))
	test.ExpectEquality(t, s.Bank.Read(registers.General, registers.ProgramCounter), uint32(0x00400000+p.Len()*4))
}

func TestRunTimed(t *testing.T) {
	s := simulation.NewState()
	c := &counter{}
	s.Notifier.Subscribe(registers.General, c)

	r := runner.NewRunner(s, runner.Demo(100))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	test.ExpectSuccess(t, r.Run(ctx, govern.Timed, 100))

	// the program is too long to finish at 100 instructions per second
	test.ExpectInequality(t, r.Next(), r.Program().Len())
	test.ExpectInequality(t, c.len(), 0)

	// timed mode with a bad rate
	test.ExpectFailure(t, r.Run(context.Background(), govern.Timed, 0))
	test.ExpectFailure(t, s.Running())
}

// the program counter is advanced before the instruction's writes so the
// highlight ends on the register the instruction changed
func TestHighlightDestination(t *testing.T) {
	s := simulation.NewState()
	v := view.NewView(registers.General, s.Bank.Info(registers.General))
	s.Notifier.Subscribe(registers.General, v)
	s.AddListener(v)

	r := runner.NewRunner(s, runner.Demo(10))

	test.ExpectSuccess(t, s.Start(govern.Timed))
	defer s.Stop()

	// li $t0, li $t1, li $s0, mtc1.d and then addu $t2, $t0, $t1
	for range 5 {
		test.DemandSuccess(t, r.Step())
	}

	row, ok := v.Highlight().Row()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, row, 10)
	test.ExpectEquality(t, s.Bank.Read(registers.General, registers.ProgramCounter), uint32(0x00400014))

	// move $t0, $t1
	test.DemandSuccess(t, r.Step())
	row, _ = v.Highlight().Row()
	test.ExpectEquality(t, row, 8)
}
