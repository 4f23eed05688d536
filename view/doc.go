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

// Package view turns register values into text for presentation and keeps
// the per view highlight state.
//
// A View is a projection of one register file. It never reads the register
// bank while handling an event. Values arrive in the events themselves or
// are handed to Refresh() by the owner of the view, who is in a position to
// take a consistent snapshot. This means that a View can be subscribed to a
// notifications.Notifier directly.
//
// Formatting is controlled by the Base and the Kind of the value. The Base is
// a property of the View and can be changed at any time without affecting
// the stored register values.
package view
