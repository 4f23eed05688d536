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

// Package simulation ties together the register bank, the mutation gateway
// and the change notifier, and governs the run state of the simulator.
//
// The State type is created once when the program starts and lives for the
// lifetime of the process. Register values are not reset when the simulator
// is started, only when Reset() is called.
//
// Starting the simulator in SingleStep or Timed mode enables change
// notifications. In Unlimited mode notifications are disabled and interested
// parties should refresh their view of the registers when the simulator
// stops. Listeners added with AddListener() are told about every start and
// stop.
package simulation
