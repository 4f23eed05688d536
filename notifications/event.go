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

package notifications

import (
	"fmt"

	"github.com/regwatch/regwatch/registers"
)

// Access is the kind of register access described by an Event.
type Access int

// List of access kinds.
const (
	Read Access = iota
	Write
)

func (a Access) String() string {
	switch a {
	case Read:
		return "READ"
	case Write:
		return "WRITE"
	}
	return ""
}

// Event describes a single access to a register.
type Event struct {
	File     registers.FileID
	Register int
	Value    uint32
	Access   Access
}

func (ev Event) String() string {
	return fmt.Sprintf("%s %s[%d] = 0x%08x", ev.Access, ev.File, ev.Register, ev.Value)
}

// Observer implementations receive register events.
type Observer interface {
	Notify(ev Event)
}

// ResetObserver is an optional interface for an Observer. Implementations
// are told when the register file they are subscribed to has been reset.
type ResetObserver interface {
	Reset(file registers.FileID)
}

// ObserverFunc allows a plain function to be used as an Observer.
type ObserverFunc func(ev Event)

// Notify implements the Observer interface.
func (f ObserverFunc) Notify(ev Event) {
	f(ev)
}
