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

package registers

import (
	"fmt"
	"sync/atomic"
)

// Definition describes a register before it is placed in a File.
type Definition struct {
	Number      int
	Name        string
	Alias       string
	Description string
	Default     uint32

	// register cannot be edited interactively
	ReadOnly bool

	// register always reads as zero. writes by the simulated program are
	// discarded
	HardwiredZero bool

	// value should be treated as unsigned when presented in decimal
	Unsigned bool

	// the register number is not shown to the user
	HideNumber bool
}

// Register is a single 32 bit register in a register file.
type Register struct {
	Definition

	// position of register in the file
	ID int

	value atomic.Uint32
}

func (r *Register) String() string {
	return fmt.Sprintf("%s=0x%08x", r.Name, r.Value())
}

// Label returns the name of the register.
func (r *Register) Label() string {
	return r.Name
}

// Value returns the current value of the register.
func (r *Register) Value() uint32 {
	return r.value.Load()
}

// Load value into register. Callers must serialise calls to Load().
func (r *Register) Load(val uint32) {
	r.value.Store(val)
}

// Reset the register to its architectural default.
func (r *Register) Reset() {
	r.value.Store(r.Default)
}

// Editable returns true if the register can be changed interactively.
func (r *Register) Editable() bool {
	return !r.ReadOnly && !r.HardwiredZero
}

// Info is a copy of the static information of a register. It is suitable for
// handing to presentation code, which must never see the Register itself.
type Info struct {
	Definition
	ID int
}

// Editable returns true if the register can be changed interactively.
func (i Info) Editable() bool {
	return !i.ReadOnly && !i.HardwiredZero
}

// Info returns the static information for the register.
func (r *Register) Info() Info {
	return Info{Definition: r.Definition, ID: r.ID}
}
