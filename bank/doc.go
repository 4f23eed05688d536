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

// Package bank owns the register files of the simulator and is the only
// package that changes register values. Every change is made from inside the
// mutation gateway and, when notifications are enabled, is followed by a
// write event delivered to the subscribers of the register file before the
// write returns.
//
// There are two write paths. Write() is for interactive edits and refuses to
// change registers that are not editable. Update() is for the simulated
// program, which is allowed to change the program counter and the return
// address register. Writes to the hardwired zero register by the simulated
// program are discarded.
//
// The floating point file can be accessed as 64 bit register pairs with
// ReadDouble() and WriteDouble(). Both halves of a pair are accessed in a
// single acquisition of the gateway so that a partially written pair is
// never seen.
package bank
