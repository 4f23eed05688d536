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

package notifications_test

import (
	"testing"

	"github.com/regwatch/regwatch/notifications"
	"github.com/regwatch/regwatch/registers"
	"github.com/regwatch/regwatch/test"
)

type recorder struct {
	name   string
	log    *[]string
	events []notifications.Event
	resets int
}

func (r *recorder) Notify(ev notifications.Event) {
	r.events = append(r.events, ev)
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
}

func (r *recorder) Reset(_ registers.FileID) {
	r.resets++
}

func TestDisabledByDefault(t *testing.T) {
	n := notifications.NewNotifier()
	test.ExpectFailure(t, n.NotificationsEnabled())

	r := &recorder{}
	n.Subscribe(registers.General, r)
	n.NotifyWrite(notifications.Event{File: registers.General, Register: 1, Value: 1})
	test.ExpectEquality(t, len(r.events), 0)

	n.SetNotificationsEnabled(true)
	n.NotifyWrite(notifications.Event{File: registers.General, Register: 1, Value: 1})
	test.ExpectEquality(t, len(r.events), 1)
	test.ExpectEquality(t, r.events[0].Access, notifications.Write)
}

func TestRegistrationOrder(t *testing.T) {
	n := notifications.NewNotifier()
	n.SetNotificationsEnabled(true)

	var log []string
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}
	c := &recorder{name: "c", log: &log}
	n.Subscribe(registers.Float, a)
	hb := n.Subscribe(registers.Float, b)
	n.Subscribe(registers.Float, c)
	test.ExpectEquality(t, n.Subscribers(registers.Float), 3)

	n.NotifyWrite(notifications.Event{File: registers.Float, Register: 2})
	test.DemandEquality(t, len(log), 3)
	test.ExpectEquality(t, log[0], "a")
	test.ExpectEquality(t, log[1], "b")
	test.ExpectEquality(t, log[2], "c")

	test.ExpectSuccess(t, n.Unsubscribe(hb))
	test.ExpectFailure(t, n.Unsubscribe(hb))

	log = log[:0]
	n.NotifyWrite(notifications.Event{File: registers.Float, Register: 2})
	test.DemandEquality(t, len(log), 2)
	test.ExpectEquality(t, log[0], "a")
	test.ExpectEquality(t, log[1], "c")
}

func TestFileIsolation(t *testing.T) {
	n := notifications.NewNotifier()
	n.SetNotificationsEnabled(true)

	g := &recorder{}
	f := &recorder{}
	n.Subscribe(registers.General, g)
	n.Subscribe(registers.Float, f)

	n.NotifyWrite(notifications.Event{File: registers.Float, Register: 0})
	test.ExpectEquality(t, len(g.events), 0)
	test.ExpectEquality(t, len(f.events), 1)
}

func TestResetAlwaysDelivered(t *testing.T) {
	n := notifications.NewNotifier()
	r := &recorder{}
	n.Subscribe(registers.Control, r)

	// plain functions don't implement ResetObserver and are skipped
	n.Subscribe(registers.Control, notifications.ObserverFunc(func(notifications.Event) {}))

	n.NotifyReset(registers.Control)
	test.ExpectEquality(t, r.resets, 1)
}

func TestSubscribeDuringDelivery(t *testing.T) {
	n := notifications.NewNotifier()
	n.SetNotificationsEnabled(true)

	late := &recorder{}
	var count int
	n.Subscribe(registers.General, notifications.ObserverFunc(func(notifications.Event) {
		count++
		n.Subscribe(registers.General, late)
	}))

	// the late subscriber is not part of the delivery in progress
	n.NotifyWrite(notifications.Event{File: registers.General})
	test.ExpectEquality(t, count, 1)
	test.ExpectEquality(t, len(late.events), 0)

	n.NotifyWrite(notifications.Event{File: registers.General})
	test.ExpectEquality(t, len(late.events), 1)
}

func TestSubscribeRejected(t *testing.T) {
	n := notifications.NewNotifier()
	n.SetNotificationsEnabled(true)

	r := &recorder{}
	test.ExpectEquality(t, n.Subscribe(registers.NumFiles, r), notifications.Handle{})
	test.ExpectEquality(t, n.Subscribe(registers.General, nil), notifications.Handle{})
	test.ExpectEquality(t, n.Subscribers(registers.General), 0)
	test.ExpectFailure(t, n.Unsubscribe(notifications.Handle{}))

	// a valid subscription is never the zero handle
	h := n.Subscribe(registers.General, r)
	test.ExpectInequality(t, h, notifications.Handle{})
	test.ExpectSuccess(t, n.Unsubscribe(h))
}
