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
	"fmt"

	"github.com/regwatch/regwatch/registers"
)

// Write is a single register write made by an Instruction.
type Write struct {
	File     registers.FileID
	Register int
	Value    uint32

	// if Double is true then Wide is written to the register pair starting at
	// Register and Value is ignored
	Double bool
	Wide   uint64
}

func (w Write) String() string {
	if w.Double {
		return fmt.Sprintf("%s[%d:%d] <- %#016x", w.File, w.Register, w.Register+1, w.Wide)
	}
	return fmt.Sprintf("%s[%d] <- %#08x", w.File, w.Register, w.Value)
}

// Instruction is the effect of one instruction of the simulated program.
type Instruction struct {
	Text   string
	Writes []Write
}

// Program is a sequence of Instructions.
type Program struct {
	Name         string
	Instructions []Instruction
}

// Len returns the number of instructions in the program.
func (p *Program) Len() int {
	return len(p.Instructions)
}
