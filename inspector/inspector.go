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

package inspector

import (
	"slices"
	"sync"

	"github.com/regwatch/regwatch/bank"
	"github.com/regwatch/regwatch/config"
	"github.com/regwatch/regwatch/curated"
	"github.com/regwatch/regwatch/govern"
	"github.com/regwatch/regwatch/logger"
	"github.com/regwatch/regwatch/notifications"
	"github.com/regwatch/regwatch/prefs"
	"github.com/regwatch/regwatch/registers"
	"github.com/regwatch/regwatch/simulation"
	"github.com/regwatch/regwatch/view"
)

// NotEditableCell is returned by Edit() if the cell can not be edited.
const NotEditableCell = "inspector: cell is not editable: row %d %v"

// Inspector is the boundary API of the register engine.
type Inspector struct {
	state *simulation.State
	prefs *config.Preferences

	crit    sync.Mutex
	views   []*view.View
	handles []attached
	base    view.Base
}

// NewInspector is the preferred method of initialisation for the Inspector
// type. The Inspector follows changes to the display preferences.
func NewInspector(state *simulation.State, p *config.Preferences) *Inspector {
	ins := &Inspector{
		state: state,
		prefs: p,
	}

	if p.Hex.Load() {
		ins.base = view.Hex
	}

	p.Hex.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			ins.SetDisplayBase(view.Hex)
		} else {
			ins.SetDisplayBase(view.Decimal)
		}
		return nil
	})

	p.Highlight.SetHookPost(func(v prefs.Value) error {
		for _, vw := range ins.allViews() {
			vw.SetHighlighting(v.(bool))
		}
		return nil
	})

	state.AddListener(ins)

	return ins
}

// State returns the simulator state the Inspector is attached to.
func (ins *Inspector) State() *simulation.State {
	return ins.state
}

// Preferences returns the preferences the Inspector is following.
func (ins *Inspector) Preferences() *config.Preferences {
	return ins.prefs
}

func (ins *Inspector) allViews() []*view.View {
	ins.crit.Lock()
	defer ins.crit.Unlock()
	return slices.Clone(ins.views)
}

// ReadRegister returns the value of the register. A register that does not
// exist reads as zero.
func (ins *Inspector) ReadRegister(file registers.FileID, reg int) uint32 {
	return ins.state.Bank.Read(file, reg)
}

// parser returns the text parser suitable for single registers of the file.
func parser(file registers.FileID) func(string) (uint32, error) {
	if file == registers.Float {
		return view.ParseFloat
	}
	return view.Parse
}

// WriteRegister parses the text and writes the value to the register.
// Registers in the floating point file accept floating point text.
func (ins *Inspector) WriteRegister(file registers.FileID, reg int, text string) error {
	v, err := parser(file)(text)
	if err != nil {
		logger.Logf(logger.Allow, "inspector", "%s register %d: %v", file, reg, err)
		return err
	}

	err = ins.state.Bank.Write(file, reg, v)
	if err != nil {
		logger.Logf(logger.Allow, "inspector", "%v", err)
		return err
	}

	ins.refreshIfQuiet(file)
	return nil
}

// ReadDouble returns the value of the register pair starting at the even
// register reg.
func (ins *Inspector) ReadDouble(file registers.FileID, reg int) (uint64, error) {
	v, err := ins.state.Bank.ReadDouble(file, reg)
	if err != nil {
		logger.Logf(logger.Allow, "inspector", "error: %v", err)
	}
	return v, err
}

// WriteDouble parses the text as a double and writes it to the register pair
// starting at the even register reg.
func (ins *Inspector) WriteDouble(file registers.FileID, reg int, text string) error {
	v, err := view.ParseDouble(text)
	if err != nil {
		logger.Logf(logger.Allow, "inspector", "%s register %d: %v", file, reg, err)
		return err
	}

	err = ins.state.Bank.WriteDouble(file, reg, v)
	if err != nil {
		if curated.Is(err, bank.InvalidAlignment) {
			logger.Logf(logger.Allow, "inspector", "error: %v", err)
		} else {
			logger.Logf(logger.Allow, "inspector", "%v", err)
		}
		return err
	}

	ins.refreshIfQuiet(file)
	return nil
}

// Subscribe an observer to write events for the register file.
func (ins *Inspector) Subscribe(file registers.FileID, obs notifications.Observer) notifications.Handle {
	return ins.state.Notifier.Subscribe(file, obs)
}

// Unsubscribe an observer. Returns false if the handle was not recognised.
func (ins *Inspector) Unsubscribe(h notifications.Handle) bool {
	return ins.state.Notifier.Unsubscribe(h)
}

// OnSimulatorStart is called when the simulated program starts running.
func (ins *Inspector) OnSimulatorStart(mode govern.RunMode) error {
	return ins.state.Start(mode)
}

// OnSimulatorStop is called when the simulated program stops running.
func (ins *Inspector) OnSimulatorStop() {
	ins.state.Stop()
}

// SetDisplayBase changes the base of every view. Register values are not
// affected.
func (ins *Inspector) SetDisplayBase(base view.Base) {
	ins.crit.Lock()
	ins.base = base
	ins.crit.Unlock()

	for _, v := range ins.allViews() {
		v.SetBase(base)
	}
}

// DisplayBase returns the current display base.
func (ins *Inspector) DisplayBase() view.Base {
	ins.crit.Lock()
	defer ins.crit.Unlock()
	return ins.base
}
