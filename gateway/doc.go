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

// Package gateway implements the single point of serialisation for all
// mutations of simulator state. Every register write, whether made by the
// simulated program or by the interactive inspector, is made from inside a
// call to Gateway.WithLock(). The result is a total order over all commits.
//
// The gateway is shared by every register file and is also available to the
// memory of the simulator so that memory and register writes are ordered
// with respect to one another.
//
// The lock is held only for the duration of a single register write, or for
// a register pair write that must be observed as one unit. It is never held
// for the duration of a simulated instruction.
//
// Acquisition is not re-entrant. A goroutine that calls WithLock() while it
// already holds the gateway will cause a panic rather than a deadlock. This
// most often happens when an observer of a register write tries to write to
// a register.
package gateway
