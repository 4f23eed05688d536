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

// Package inspector is the boundary between the register engine and the
// front ends that present it. Front ends read and write registers, create
// views and govern the simulator through an Inspector. They never touch the
// register bank directly.
//
// Text entered by the user is parsed before it is committed. A parse failure
// leaves the register unchanged and the cell that was being edited shows the
// INVALID marker. Errors are returned to the caller and logged. None of the
// errors are fatal.
//
// The Inspector keeps the views it creates up to date. While the simulator
// is running in SingleStep or Timed mode views are updated by write events.
// At other times the Inspector refreshes the views after each interactive
// edit and whenever the simulator stops.
package inspector
