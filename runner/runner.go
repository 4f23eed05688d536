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

package runner

import (
	"context"
	"sync"

	"github.com/regwatch/regwatch/curated"
	"github.com/regwatch/regwatch/govern"
	"github.com/regwatch/regwatch/limiter"
	"github.com/regwatch/regwatch/logger"
	"github.com/regwatch/regwatch/registers"
	"github.com/regwatch/regwatch/simulation"
)

// ProgramEnded is returned by Step() and Run() when there are no more
// instructions.
const ProgramEnded = "runner: program %s has ended"

// Runner executes a Program.
type Runner struct {
	state *simulation.State
	prog  *Program

	// the mutex is held for the duration of Run() and Step() and protects the
	// next field
	crit sync.Mutex
	next int
}

// NewRunner is the preferred method of initialisation for the Runner type.
func NewRunner(state *simulation.State, prog *Program) *Runner {
	return &Runner{
		state: state,
		prog:  prog,
	}
}

// Program returns the program being executed.
func (r *Runner) Program() *Program {
	return r.prog
}

// Next returns the index of the next instruction to be executed.
func (r *Runner) Next() int {
	r.crit.Lock()
	defer r.crit.Unlock()
	return r.next
}

// Rewind the program to the first instruction. Registers are not changed.
func (r *Runner) Rewind() {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.next = 0
}

// must be called with the critical section held
func (r *Runner) step() error {
	if r.next >= r.prog.Len() {
		return curated.Errorf(ProgramEnded, r.prog.Name)
	}

	ins := r.prog.Instructions[r.next]
	r.next++

	b := r.state.Bank

	// pc advances at fetch. the instruction's own writes are the last to be
	// committed
	pc := b.Read(registers.General, registers.ProgramCounter)
	if err := b.Update(registers.General, registers.ProgramCounter, pc+4); err != nil {
		return err
	}

	for _, w := range ins.Writes {
		var err error
		if w.Double {
			err = b.WriteDouble(w.File, w.Register, w.Wide)
		} else {
			err = b.Update(w.File, w.Register, w.Value)
		}
		if err != nil {
			return curated.Errorf("runner: %s: %v", ins.Text, err)
		}
	}

	return nil
}

// Step executes the next instruction outside of a Run(). The simulator state
// is not changed.
func (r *Runner) Step() error {
	r.crit.Lock()
	defer r.crit.Unlock()
	return r.step()
}

// Run the program in the specified mode. The simulator is started before the
// first instruction and stopped when Run() returns.
//
// In SingleStep mode a single instruction is executed. In Timed mode
// instructions are executed at the rate given by ips. In Unlimited mode
// instructions are executed as quickly as possible. Timed and Unlimited runs
// continue until the program ends or the context is cancelled.
//
// Reaching the end of the program is not an error.
func (r *Runner) Run(ctx context.Context, mode govern.RunMode, ips int) error {
	r.crit.Lock()
	defer r.crit.Unlock()

	if err := r.state.Start(mode); err != nil {
		return err
	}
	defer r.state.Stop()

	var lim *limiter.Limiter
	if mode == govern.Timed {
		var err error
		lim, err = limiter.NewLimiter(ips)
		if err != nil {
			return err
		}
		defer lim.Stop()
	}

	for {
		if lim != nil {
			if err := lim.Wait(ctx); err != nil {
				return nil
			}
		} else if ctx.Err() != nil {
			return nil
		}

		err := r.step()
		if err != nil {
			if curated.Is(err, ProgramEnded) {
				logger.Logf(logger.Allow, "runner", "%s: ended after %d instructions", r.prog.Name, r.next)
				return nil
			}
			return err
		}

		if mode == govern.SingleStep {
			return nil
		}
	}
}
