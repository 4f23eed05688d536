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

import "fmt"

// ProgramCounter is the ID of the pc register in the general file.
const ProgramCounter = 32

// list of register IDs in the general file that have special meaning
const (
	Zero       = 0
	GlobalPtr  = 28
	StackPtr   = 29
	ReturnAddr = 31
	Hi         = 33
	Lo         = 34
)

// NumFloatConditionFlags is the number of condition flags in coprocessor 1.
const NumFloatConditionFlags = 8

var generalNames = [...]struct {
	name string
	desc string
}{
	{"$zero", "constant 0"},
	{"$at", "reserved for assembler"},
	{"$v0", "expression evaluation and results of a function"},
	{"$v1", "expression evaluation and results of a function"},
	{"$a0", "argument 1"},
	{"$a1", "argument 2"},
	{"$a2", "argument 3"},
	{"$a3", "argument 4"},
	{"$t0", "temporary (not preserved across call)"},
	{"$t1", "temporary (not preserved across call)"},
	{"$t2", "temporary (not preserved across call)"},
	{"$t3", "temporary (not preserved across call)"},
	{"$t4", "temporary (not preserved across call)"},
	{"$t5", "temporary (not preserved across call)"},
	{"$t6", "temporary (not preserved across call)"},
	{"$t7", "temporary (not preserved across call)"},
	{"$s0", "saved temporary (preserved across call)"},
	{"$s1", "saved temporary (preserved across call)"},
	{"$s2", "saved temporary (preserved across call)"},
	{"$s3", "saved temporary (preserved across call)"},
	{"$s4", "saved temporary (preserved across call)"},
	{"$s5", "saved temporary (preserved across call)"},
	{"$s6", "saved temporary (preserved across call)"},
	{"$s7", "saved temporary (preserved across call)"},
	{"$t8", "temporary (not preserved across call)"},
	{"$t9", "temporary (not preserved across call)"},
	{"$k0", "reserved for OS kernel"},
	{"$k1", "reserved for OS kernel"},
	{"$gp", "pointer to global area"},
	{"$sp", "stack pointer"},
	{"$fp", "frame pointer"},
	{"$ra", "return address (used by function call)"},
}

// NewGeneralFile creates the general purpose register file. The file contains
// the 32 general purpose registers followed by pc, hi and lo.
func NewGeneralFile() *File {
	defs := make([]Definition, 0, len(generalNames)+3)
	for i, n := range generalNames {
		defs = append(defs, Definition{
			Number:      i,
			Name:        n.name,
			Description: n.desc,
		})
	}

	defs[Zero].HardwiredZero = true
	defs[GlobalPtr].Default = 0x10008000
	defs[StackPtr].Default = 0x7fffeffc
	defs[ReturnAddr].ReadOnly = true

	defs = append(defs,
		Definition{
			Number:      ProgramCounter,
			Name:        "pc",
			Description: "program counter",
			Default:     0x00400000,
			ReadOnly:    true,
			Unsigned:    true,
			HideNumber:  true,
		},
		Definition{
			Number:      Hi,
			Name:        "hi",
			Description: "high-order word of multiply product, or divide remainder",
			HideNumber:  true,
		},
		Definition{
			Number:      Lo,
			Name:        "lo",
			Description: "low-order word of multiply product, or divide quotient",
			HideNumber:  true,
		},
	)

	return NewFile(General, defs, false, 0)
}

// NewFloatFile creates the coprocessor 1 register file. Even numbered
// registers can be paired with the following register to form a double.
func NewFloatFile() *File {
	defs := make([]Definition, 32)
	for i := range defs {
		defs[i] = Definition{
			Number: i,
			Name:   fmt.Sprintf("$f%d", i),
		}
		switch {
		case i%2 == 1:
			defs[i].Description = "should not be referenced explicitly in your program"
		case i <= 2:
			defs[i].Description = "floating point subprogram return value"
		case i == 12:
			defs[i].Description = "floating point subprogram argument 1"
		case i == 14:
			defs[i].Description = "floating point subprogram argument 2"
		case i >= 20:
			defs[i].Description = "saved temporary (preserved across call)"
		default:
			defs[i].Description = "temporary (not preserved across call)"
		}
	}
	return NewFile(Float, defs, true, NumFloatConditionFlags)
}

// NewControlFile creates the coprocessor 0 register file.
func NewControlFile() *File {
	defs := []Definition{
		{Number: 8, Name: "$8 (vaddr)", Alias: "vaddr", Description: "Memory address at which address exception occurred"},
		{Number: 12, Name: "$12 (status)", Alias: "status", Description: "Interrupt mask and enable bits", Default: 0x0000ff11},
		{Number: 13, Name: "$13 (cause)", Alias: "cause", Description: "Exception type and pending interrupt bits"},
		{Number: 14, Name: "$14 (epc)", Alias: "epc", Description: "Address of instruction that caused exception"},
	}
	return NewFile(Control, defs, false, 0)
}
