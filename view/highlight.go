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

// HighlightState is the condition of the highlight state machine.
type HighlightState int

// List of highlight states.
//
// The machine is Armed when the simulator starts in a mode that reports
// register changes. A write event while Armed moves it to Highlighted. It
// returns to Idle when the simulator stops or the register file is reset.
const (
	Idle HighlightState = iota
	Armed
	Highlighted
)

func (s HighlightState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Armed:
		return "Armed"
	case Highlighted:
		return "Highlighted"
	}
	return ""
}

// Highlight records which row, if any, was most recently written. The zero
// value is Idle.
type Highlight struct {
	state HighlightState
	row   int
}

// Arm the highlight. Any existing highlighted row is forgotten.
func (h *Highlight) Arm() {
	h.state = Armed
	h.row = 0
}

// Clear returns the highlight to Idle.
func (h *Highlight) Clear() {
	h.state = Idle
	h.row = 0
}

// Write moves the highlight to row. Returns false and does nothing if the
// highlight is Idle.
func (h *Highlight) Write(row int) bool {
	if h.state == Idle {
		return false
	}
	h.state = Highlighted
	h.row = row
	return true
}

// State returns the current state.
func (h Highlight) State() HighlightState {
	return h.state
}

// Row returns the highlighted row. The second value is false if no row is
// highlighted.
func (h Highlight) Row() (int, bool) {
	if h.state != Highlighted {
		return -1, false
	}
	return h.row, true
}
