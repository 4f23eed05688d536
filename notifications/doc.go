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

// Package notifications delivers register change events to interested
// parties. Observers subscribe to a single register file and are notified,
// in the order they subscribed, of every committed write to that file.
//
// Delivery is synchronous. NotifyWrite() is called by the bank package from
// inside the mutation gateway, and so an observer has seen the event before
// the write that caused it returns to its caller. Because the gateway is
// held during delivery, observers must not write to registers. They should
// update their own state from the information in the Event and return.
//
// Notification of writes can be disabled entirely. This happens when the
// simulated program runs at unlimited speed, where the cost of notification
// on every write would be prohibitive. Reset notices are always delivered.
package notifications
