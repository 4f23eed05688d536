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

// Package govern defines the types that describe the current condition of the
// simulator. The two conditions are RunMode and State.
//
// The RunMode decides whether register changes made by the running program
// are reported to observers as they happen. In SingleStep and Timed modes
// they are. In Unlimited mode the program runs too quickly for per write
// reporting to be useful and observers are instead refreshed when the
// simulator stops.
package govern
