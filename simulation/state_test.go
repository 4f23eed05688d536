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

package simulation_test

import (
	"testing"

	"github.com/regwatch/regwatch/curated"
	"github.com/regwatch/regwatch/govern"
	"github.com/regwatch/regwatch/registers"
	"github.com/regwatch/regwatch/simulation"
	"github.com/regwatch/regwatch/test"
)

type listener struct {
	started []govern.RunMode
	stopped int
}

func (l *listener) SimulatorStarted(mode govern.RunMode) {
	l.started = append(l.started, mode)
}

func (l *listener) SimulatorStopped() {
	l.stopped++
}

type armCheck struct {
	s       *simulation.State
	enabled []bool
}

func (a *armCheck) SimulatorStarted(_ govern.RunMode) {
	a.enabled = append(a.enabled, a.s.Notifier.NotificationsEnabled())
}

func (a *armCheck) SimulatorStopped() {}

func TestLifecycle(t *testing.T) {
	s := simulation.NewState()
	l := &listener{}
	s.AddListener(l)
	s.AddListener(l)

	test.ExpectFailure(t, s.Running())
	test.ExpectFailure(t, s.Notifier.NotificationsEnabled())

	test.ExpectSuccess(t, s.Start(govern.SingleStep))
	test.ExpectSuccess(t, s.Running())
	test.ExpectSuccess(t, s.Notifier.NotificationsEnabled())

	err := s.Start(govern.Timed)
	test.ExpectEquality(t, curated.Is(err, simulation.AlreadyRunning), true)
	test.ExpectEquality(t, s.Mode(), govern.SingleStep)

	s.Stop()
	test.ExpectFailure(t, s.Running())
	test.ExpectFailure(t, s.Notifier.NotificationsEnabled())

	// stopping again does not inform listeners
	s.Stop()

	test.ExpectSuccess(t, s.Start(govern.Unlimited))
	test.ExpectFailure(t, s.Notifier.NotificationsEnabled())
	st, m := s.Condition()
	test.ExpectEquality(t, st, govern.Running)
	test.ExpectEquality(t, m, govern.Unlimited)
	s.Stop()

	test.DemandEquality(t, len(l.started), 2)
	test.ExpectEquality(t, l.started[0], govern.SingleStep)
	test.ExpectEquality(t, l.started[1], govern.Unlimited)
	test.ExpectEquality(t, l.stopped, 2)

	s.RemoveListener(l)
	test.ExpectSuccess(t, s.Start(govern.Timed))
	s.Stop()
	test.ExpectEquality(t, len(l.started), 2)
}

func TestReset(t *testing.T) {
	s := simulation.NewState()
	test.ExpectSuccess(t, s.Bank.Write(registers.General, 8, 10))

	// starting and stopping does not reset the registers
	test.ExpectSuccess(t, s.Start(govern.Unlimited))
	s.Stop()
	test.ExpectEquality(t, s.Bank.Read(registers.General, 8), uint32(10))

	s.Reset()
	test.ExpectEquality(t, s.Bank.Read(registers.General, 8), uint32(0))
}

// listeners are told of the start before any write event can reach them
func TestListenersBeforeNotifications(t *testing.T) {
	s := simulation.NewState()
	a := &armCheck{s: s}
	s.AddListener(a)

	test.ExpectSuccess(t, s.Start(govern.SingleStep))
	test.ExpectSuccess(t, s.Notifier.NotificationsEnabled())
	s.Stop()

	test.DemandEquality(t, len(a.enabled), 1)
	test.ExpectFailure(t, a.enabled[0])
}
