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

// Package registers implements the register files of the MIPS simulator. There
// are three files: the general purpose file (including the pc, hi and lo
// registers), the floating point file of coprocessor 1 and the control file
// of coprocessor 0.
//
// A File is a fixed size, ordered collection of Register values. The position
// of a register in the file is its ID. The architectural register number is a
// separate value because the coprocessor 0 registers are sparsely numbered.
//
// Register values are stored atomically so that reading a register is always
// safe. Writing however, must be serialised by the caller. In practice this
// means that only the bank package writes to register values, and only from
// inside the mutation gateway.
//
// The floating point file supports pairing. An even numbered register and the
// register that follows it form a 64 bit double value. The Combine() and
// Split() functions in this package convert between the two representations.
package registers
