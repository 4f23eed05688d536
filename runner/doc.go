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

// Package runner executes a Program against the register bank. It takes the
// part of the simulated-execution actor: every write it makes goes through
// the simulator write path of the bank and so is serialised with edits made
// by the user.
//
// A Program is a list of Instructions. Instructions are not decoded. Each
// one is simply the list of register writes that the real instruction would
// have caused. After the writes of an instruction are made the program
// counter is advanced by four.
package runner
