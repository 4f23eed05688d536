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

package view

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/regwatch/regwatch/govern"
	"github.com/regwatch/regwatch/notifications"
	"github.com/regwatch/regwatch/registers"
)

// Column identifies the content of a column in a View.
type Column int

// List of columns.
const (
	ColName Column = iota
	ColNumber
	ColValue
	ColFloat
	ColDouble
)

func (c Column) String() string {
	switch c {
	case ColName:
		return "Name"
	case ColNumber:
		return "Number"
	case ColValue:
		return "Value"
	case ColFloat:
		return "Float"
	case ColDouble:
		return "Double"
	}
	return ""
}

// Row is the presentation of a single register.
type Row struct {
	ID          int
	Cells       []string
	Highlighted bool
}

type cell struct {
	row int
	col Column
}

// View is a projection of one register file. It implements the
// notifications.Observer and notifications.ResetObserver interfaces.
type View struct {
	crit sync.Mutex

	file    registers.FileID
	info    []registers.Info
	columns []Column
	values  []uint32

	base      Base
	highlight Highlight

	// when false the highlight never leaves the Idle state
	highlighting bool

	// cells that should show the invalid marker in place of a value
	invalid map[cell]bool
}

// NewView is the preferred method of initialisation for the View type. The
// info argument is the static information for every register in the file,
// as returned by bank.Info().
func NewView(file registers.FileID, info []registers.Info) *View {
	v := &View{
		file:         file,
		info:         info,
		values:       make([]uint32, len(info)),
		highlighting: true,
		invalid:      make(map[cell]bool),
	}

	if file == registers.Float {
		v.columns = []Column{ColName, ColFloat, ColDouble}
	} else {
		v.columns = []Column{ColName, ColNumber, ColValue}
	}

	for i, r := range info {
		v.values[i] = r.Default
	}

	return v
}

func (v *View) String() string {
	return fmt.Sprintf("%s view", v.file)
}

// File returns the register file the View is projecting.
func (v *View) File() registers.FileID {
	return v.file
}

// Columns returns the list of columns in the View.
func (v *View) Columns() []Column {
	return v.columns
}

// Len returns the number of rows in the View.
func (v *View) Len() int {
	return len(v.info)
}

// Info returns the static information for the register in the row.
func (v *View) Info(row int) (registers.Info, bool) {
	if row < 0 || row >= len(v.info) {
		return registers.Info{}, false
	}
	return v.info[row], true
}

// Notify implements the notifications.Observer interface.
func (v *View) Notify(ev notifications.Event) {
	if ev.File != v.file || ev.Access != notifications.Write {
		return
	}

	v.crit.Lock()
	defer v.crit.Unlock()

	if ev.Register < 0 || ev.Register >= len(v.values) {
		return
	}

	v.values[ev.Register] = ev.Value
	v.clearInvalid(ev.Register)

	if v.highlighting {
		v.highlight.Write(ev.Register)
	}
}

// Reset implements the notifications.ResetObserver interface. Values return
// to their defaults and the highlight returns to Idle.
func (v *View) Reset(file registers.FileID) {
	if file != v.file {
		return
	}

	v.crit.Lock()
	defer v.crit.Unlock()

	for i, r := range v.info {
		v.values[i] = r.Default
	}
	clear(v.invalid)
	v.highlight.Clear()
}

// Refresh replaces the values in the View. Values that have changed clear any
// invalid marker on the row. Refresh does not change the highlight.
func (v *View) Refresh(values []uint32) {
	v.crit.Lock()
	defer v.crit.Unlock()

	for i := 0; i < len(values) && i < len(v.values); i++ {
		if v.values[i] != values[i] {
			v.values[i] = values[i]
			v.clearInvalid(i)
		}
	}
}

// must be called with the critical section held
func (v *View) clearInvalid(row int) {
	for c := range v.invalid {
		if c.row == row || (c.col == ColDouble && c.row == registers.PairBase(row)) {
			delete(v.invalid, c)
		}
	}
}

// SimulatorStarted arms the highlight if the mode reports register changes.
func (v *View) SimulatorStarted(mode govern.RunMode) {
	v.crit.Lock()
	defer v.crit.Unlock()
	if v.highlighting && mode.Highlights() {
		v.highlight.Arm()
	} else {
		v.highlight.Clear()
	}
}

// SimulatorStopped returns the highlight to Idle.
func (v *View) SimulatorStopped() {
	v.crit.Lock()
	defer v.crit.Unlock()
	v.highlight.Clear()
}

// ClearHighlight returns the highlight to Idle.
func (v *View) ClearHighlight() {
	v.SimulatorStopped()
}

// SetHighlighting turns highlighting on or off. Turning highlighting off
// returns the highlight to Idle.
func (v *View) SetHighlighting(on bool) {
	v.crit.Lock()
	defer v.crit.Unlock()
	v.highlighting = on
	if !on {
		v.highlight.Clear()
	}
}

// Highlight returns a copy of the highlight state.
func (v *View) Highlight() Highlight {
	v.crit.Lock()
	defer v.crit.Unlock()
	return v.highlight
}

// SetBase changes the base used for formatting values.
func (v *View) SetBase(base Base) {
	v.crit.Lock()
	defer v.crit.Unlock()
	v.base = base
}

// Base returns the base used for formatting values.
func (v *View) Base() Base {
	v.crit.Lock()
	defer v.crit.Unlock()
	return v.base
}

// MarkInvalid causes the cell to show the invalid marker until the value of
// the register changes.
func (v *View) MarkInvalid(row int, col Column) {
	v.crit.Lock()
	defer v.crit.Unlock()
	if row < 0 || row >= len(v.values) {
		return
	}
	v.invalid[cell{row: row, col: col}] = true
}

// Kind returns the kind of value shown in the column for the row.
func (v *View) Kind(row int, col Column) Kind {
	switch col {
	case ColFloat:
		return Float
	case ColDouble:
		return Double
	}
	if row >= 0 && row < len(v.info) && v.info[row].Unsigned {
		return UnsignedInt
	}
	return Int
}

// Editable returns true if the cell can be edited.
func (v *View) Editable(row int, col Column) bool {
	if row < 0 || row >= len(v.info) || !v.info[row].Editable() {
		return false
	}
	switch col {
	case ColValue, ColFloat:
		return true
	case ColDouble:
		return registers.IsPairAligned(row) && row+1 < len(v.info) && v.info[row+1].Editable()
	}
	return false
}

// must be called with the critical section held
func (v *View) text(row int, col Column) string {
	if v.invalid[cell{row: row, col: col}] {
		return invalid
	}

	r := v.info[row]

	switch col {
	case ColName:
		return r.Name
	case ColNumber:
		if r.HideNumber {
			return ""
		}
		return strconv.Itoa(r.Number)
	case ColValue, ColFloat:
		return Format(uint64(v.values[row]), v.base, v.Kind(row, col))
	case ColDouble:
		if !registers.IsPairAligned(row) || row+1 >= len(v.values) {
			return ""
		}
		return Format(registers.Combine(v.values[row], v.values[row+1]), v.base, Double)
	}

	return ""
}

// Cell returns the text for a single cell.
func (v *View) Cell(row int, col Column) string {
	v.crit.Lock()
	defer v.crit.Unlock()
	if row < 0 || row >= len(v.info) {
		return ""
	}
	return v.text(row, col)
}

// Rows returns the presentation of every register in the file.
func (v *View) Rows() []Row {
	v.crit.Lock()
	defer v.crit.Unlock()

	hl, ok := v.highlight.Row()

	rows := make([]Row, len(v.info))
	for i := range v.info {
		rows[i] = Row{
			ID:          i,
			Cells:       make([]string, len(v.columns)),
			Highlighted: ok && hl == i,
		}
		for j, c := range v.columns {
			rows[i].Cells[j] = v.text(i, c)
		}
	}

	return rows
}
