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

// Package debugger is the interactive front end of regwatch. It reads
// commands from an Input, which will usually be a terminal.Terminal, and acts
// upon them through an inspector.Inspector.
//
// The simulated program can be run in the background with the RUN command.
// While it is running the user can continue to inspect and edit registers.
// Edits made while the program is running are serialised with the writes
// made by the program.
//
// The list of commands is available with the HELP command.
package debugger
