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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/regwatch/regwatch/config"
	"github.com/regwatch/regwatch/debugger"
	"github.com/regwatch/regwatch/inspector"
	"github.com/regwatch/regwatch/logger"
	"github.com/regwatch/regwatch/modalflag"
	"github.com/regwatch/regwatch/prefs"
	"github.com/regwatch/regwatch/registers"
	"github.com/regwatch/regwatch/runner"
	"github.com/regwatch/regwatch/simulation"
	"github.com/regwatch/regwatch/statsview"
	"github.com/regwatch/regwatch/terminal"
	"github.com/regwatch/regwatch/trace"
	"github.com/regwatch/regwatch/version"
	"github.com/regwatch/regwatch/view"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("INSPECT", "REPLAY")
	md.AdditionalHelp(version.String())

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "INSPECT":
		err = inspect(md)

	case "REPLAY":
		err = replay(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		os.Exit(20)
	}
}

// the flags common to both modes. the returned function applies them to
// the preferences after the preferences have been loaded
func commonFlags(md *modalflag.Modes) func(p *config.Preferences) error {
	hex := md.AddBool("hex", false, "display values in hexadecimal")
	echo := md.AddBool("echo", false, "echo log entries to stderr")
	md.AddPrefs()

	return func(p *config.Preferences) error {
		var err error
		md.Visit(func(flag string) {
			if err != nil {
				return
			}
			switch flag {
			case "hex":
				err = p.Set("view.hex", *hex)
			case "echo":
				err = p.Set("log.echo", *echo)
			}
		})
		if err != nil {
			return err
		}

		if p.LogEcho.Load() {
			logger.SetEcho(os.Stderr)
		} else {
			logger.SetEcho(nil)
		}

		return nil
	}
}

func preferences(apply func(p *config.Preferences) error) (*config.Preferences, error) {
	p, err := config.NewPreferences()
	if err != nil {
		return nil, err
	}

	// preferences from the -prefs flag are on the top of the command line
	// stack. Load() consumes them
	defer prefs.PopCommandLineStack()

	if err := p.Load(prefs.SystemEnvironment); err != nil {
		return nil, err
	}

	return p, apply(p)
}

func inspect(md *modalflag.Modes) error {
	md.NewMode()

	apply := commonFlags(md)
	ips := md.AddInt("ips", config.DefaultTimedIPS, "instructions per second in the timed run mode")
	iterations := md.AddInt("iterations", 20, "number of iterations of the demonstration program")
	stats := md.AddBool("statsview", false, "run the statsview server")
	statsAddr := md.AddString("statsaddr", statsview.DefaultAddress, "address of the statsview server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	pr, err := preferences(apply)
	if err != nil {
		return err
	}

	md.Visit(func(flag string) {
		if flag == "ips" && err == nil {
			err = pr.Set("runner.ips", *ips)
		}
	})
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(os.Stdout, *statsAddr)
	}

	state := simulation.NewState()
	ins := inspector.NewInspector(state, pr)
	run := runner.NewRunner(state, runner.Demo(*iterations))

	term, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer term.CanonicalMode()

	dbg := debugger.NewDebugger(ins, run, os.Stdout)
	defer dbg.CleanUp()

	// ctrl-c stops a running program. if no program is running then
	// regwatch exits
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)
	go func() {
		for range intChan {
			if !dbg.Interrupt() {
				term.CanonicalMode()
				fmt.Println("\r")
				os.Exit(0)
			}
		}
	}()

	fmt.Println(version.String())
	fmt.Printf("%s program loaded (%d instructions). type HELP for commands\n",
		run.Program().Name, run.Program().Len())

	return dbg.InputLoop(term)
}

func replay(md *modalflag.Modes) error {
	md.NewMode()

	apply := commonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("trace file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	pr, err := preferences(apply)
	if err != nil {
		return err
	}

	state := simulation.NewState()
	ins := inspector.NewInspector(state, pr)

	ctx := context.Background()
	df, err := trace.Load(ctx, md.GetArg(0))
	if err != nil {
		return err
	}

	n, err := trace.Replay(ctx, df, state.Bank)
	if err != nil {
		return err
	}
	ins.RefreshAll()

	fmt.Printf("%d events replayed from %s\n", n, md.GetArg(0))
	for f := range registers.NumFiles {
		v := ins.NewView(f)
		printChanged(os.Stdout, ins, v)
		ins.CloseView(v)
	}

	return nil
}

// printChanged writes the rows of a view for registers that differ from
// their default value.
func printChanged(w io.Writer, ins *inspector.Inspector, v *view.View) {
	fmt.Fprintf(w, "%s\n", v.File())
	for _, r := range v.Rows() {
		info, _ := v.Info(r.ID)
		if ins.ReadRegister(v.File(), r.ID) == info.Default {
			continue
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(r.Cells, "  "))
	}
}
