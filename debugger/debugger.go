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
	"io"
	"sync"

	"github.com/regwatch/regwatch/inspector"
	"github.com/regwatch/regwatch/notifications"
	"github.com/regwatch/regwatch/registers"
	"github.com/regwatch/regwatch/runner"
	"github.com/regwatch/regwatch/trace"
	"github.com/regwatch/regwatch/view"
)

// Input is the source of commands for the InputLoop().
type Input interface {
	ReadLine(prompt string) (string, error)
}

// KeyInput is implemented by an Input that can also provide single key
// presses. The KEYS command requires that the Input implements this
// interface.
type KeyInput interface {
	Input
	ReadKey() (byte, error)
	CBreakMode() error
	CanonicalMode() error
}

// Debugger is the interactive front end.
type Debugger struct {
	ins    *inspector.Inspector
	runner *runner.Runner

	// one view per register file
	views [registers.NumFiles]*view.View

	// output is shared with the background run goroutine
	outputCrit sync.Mutex
	output     io.Writer

	// cancel is not nil while the program is running in the background
	runCrit sync.Mutex
	cancel  context.CancelFunc
	runDone chan bool

	// the input currently driving the debugger. set by InputLoop()
	input Input

	recorder      *trace.Recorder
	recordHandles []notifications.Handle

	quit bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(ins *inspector.Inspector, r *runner.Runner, output io.Writer) *Debugger {
	dbg := &Debugger{
		ins:    ins,
		runner: r,
		output: output,
	}
	for f := range registers.NumFiles {
		dbg.views[f] = ins.NewView(f)
	}
	return dbg
}

func (dbg *Debugger) printf(s string, a ...any) {
	dbg.outputCrit.Lock()
	defer dbg.outputCrit.Unlock()
	fmt.Fprintf(dbg.output, s, a...)
}

func (dbg *Debugger) println(s string) {
	dbg.printf("%s\n", s)
}

// Quit returns true if the QUIT command has been issued.
func (dbg *Debugger) Quit() bool {
	return dbg.quit
}

// background runs the program in a new goroutine. it is an error to call this
// function while a background run is in progress
func (dbg *Debugger) background(run func(ctx context.Context) error) {
	ctx, cancel := context.WithCancel(context.Background())

	dbg.runCrit.Lock()
	dbg.cancel = cancel
	dbg.runDone = make(chan bool)
	done := dbg.runDone
	dbg.runCrit.Unlock()

	go func() {
		defer close(done)
		err := run(ctx)

		dbg.runCrit.Lock()
		dbg.cancel = nil
		dbg.runCrit.Unlock()
		cancel()

		if err != nil {
			dbg.printf("run: %v\n", err)
		} else {
			dbg.printf("program stopped at instruction %d of %d\n", dbg.runner.Next(), dbg.runner.Program().Len())
		}
	}()
}

// stopBackground stops a background run and waits for it to finish. Returns
// false if there was nothing to stop.
func (dbg *Debugger) stopBackground() bool {
	dbg.runCrit.Lock()
	cancel := dbg.cancel
	done := dbg.runDone
	dbg.runCrit.Unlock()

	if done == nil {
		return false
	}
	if cancel != nil {
		cancel()
	}
	<-done

	dbg.runCrit.Lock()
	if dbg.runDone == done {
		dbg.runDone = nil
	}
	dbg.runCrit.Unlock()

	return cancel != nil
}

// Wait blocks until a background run has finished.
func (dbg *Debugger) Wait() {
	dbg.runCrit.Lock()
	done := dbg.runDone
	dbg.runCrit.Unlock()
	if done != nil {
		<-done
	}
}

// CleanUp stops any background run and detaches the trace recorder.
func (dbg *Debugger) CleanUp() {
	dbg.stopBackground()
	dbg.stopRecording()
	for _, v := range dbg.views {
		dbg.ins.CloseView(v)
	}
}

// Interrupt stops a background run. Returns false if nothing was running.
func (dbg *Debugger) Interrupt() bool {
	return dbg.stopBackground()
}
