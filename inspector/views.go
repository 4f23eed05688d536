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
	"github.com/regwatch/regwatch/bank"
	"github.com/regwatch/regwatch/curated"
	"github.com/regwatch/regwatch/govern"
	"github.com/regwatch/regwatch/logger"
	"github.com/regwatch/regwatch/notifications"
	"github.com/regwatch/regwatch/registers"
	"github.com/regwatch/regwatch/view"
)

type attached struct {
	view   *view.View
	handle notifications.Handle
}

// NewView creates a view of the register file. The view is subscribed to
// write events for the file and kept up to date by the Inspector until it is
// closed with CloseView().
func (ins *Inspector) NewView(file registers.FileID) *view.View {
	v := view.NewView(file, ins.state.Bank.Info(file))
	v.SetBase(ins.DisplayBase())
	v.SetHighlighting(ins.prefs.Highlight.Load())

	h := ins.state.Notifier.Subscribe(file, v)

	ins.crit.Lock()
	ins.views = append(ins.views, v)
	ins.handles = append(ins.handles, attached{view: v, handle: h})
	ins.crit.Unlock()

	if ins.state.Running() {
		v.SimulatorStarted(ins.state.Mode())
	}

	ins.refreshView(v)

	return v
}

// CloseView detaches a view created by NewView().
func (ins *Inspector) CloseView(v *view.View) {
	ins.crit.Lock()
	defer ins.crit.Unlock()

	for i, a := range ins.handles {
		if a.view == v {
			ins.state.Notifier.Unsubscribe(a.handle)
			ins.handles = append(ins.handles[:i], ins.handles[i+1:]...)
			break
		}
	}
	for i, o := range ins.views {
		if o == v {
			ins.views = append(ins.views[:i], ins.views[i+1:]...)
			break
		}
	}
}

// the view is refreshed from inside the gateway so that a write event can
// not be delivered between taking the snapshot and applying it
func (ins *Inspector) refreshView(v *view.View) {
	err := ins.state.Bank.SnapshotInto(v.File(), v.Refresh)
	if err != nil {
		logger.Logf(logger.Allow, "inspector", "%v", err)
	}
}

// Refresh every view of the register file with the current register values.
func (ins *Inspector) Refresh(file registers.FileID) {
	for _, v := range ins.allViews() {
		if v.File() == file {
			ins.refreshView(v)
		}
	}
}

// RefreshAll refreshes every view.
func (ins *Inspector) RefreshAll() {
	for _, v := range ins.allViews() {
		ins.refreshView(v)
	}
}

// views are only updated by events while notifications are enabled
func (ins *Inspector) refreshIfQuiet(file registers.FileID) {
	if !ins.state.Notifier.NotificationsEnabled() {
		ins.Refresh(file)
	}
}

// Edit changes the register shown in the row of the view using the text
// entered by the user in the column. On a parse error the cell shows the
// INVALID marker and the register is unchanged.
func (ins *Inspector) Edit(v *view.View, row int, col view.Column, text string) error {
	info, ok := v.Info(row)
	if !ok || !v.Editable(row, col) {
		var err error
		if ok && !info.Editable() {
			err = curated.Errorf(bank.NotEditable, info.Name)
		} else {
			err = curated.Errorf(NotEditableCell, row, col)
		}
		logger.Logf(logger.Allow, "inspector", "%v", err)
		return err
	}

	var err error
	switch col {
	case view.ColDouble:
		err = ins.WriteDouble(v.File(), row, text)
	default:
		err = ins.WriteRegister(v.File(), row, text)
	}

	if curated.Is(err, view.ParseError) {
		v.MarkInvalid(row, col)
	}

	return err
}

// SimulatorStarted implements the simulation.Listener interface.
func (ins *Inspector) SimulatorStarted(mode govern.RunMode) {
	for _, v := range ins.allViews() {
		v.SimulatorStarted(mode)
	}
}

// SimulatorStopped implements the simulation.Listener interface. Views are
// refreshed because writes made while notifications were disabled have not
// been seen by them.
func (ins *Inspector) SimulatorStopped() {
	for _, v := range ins.allViews() {
		v.SimulatorStopped()
	}
	ins.RefreshAll()
}

// Reset the register file and refresh its views. Views receive a reset notice
// from the bank which clears their highlight.
func (ins *Inspector) Reset(file registers.FileID) error {
	if err := ins.state.Bank.Reset(file); err != nil {
		return err
	}
	ins.Refresh(file)
	logger.Logf(logger.Allow, "inspector", "%s registers reset", file)
	return nil
}

// ResetAll resets every register file.
func (ins *Inspector) ResetAll() {
	ins.state.Reset()
	ins.RefreshAll()
}
