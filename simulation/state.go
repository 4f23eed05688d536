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

package simulation

import (
	"slices"
	"sync"

	"github.com/regwatch/regwatch/bank"
	"github.com/regwatch/regwatch/curated"
	"github.com/regwatch/regwatch/gateway"
	"github.com/regwatch/regwatch/govern"
	"github.com/regwatch/regwatch/logger"
	"github.com/regwatch/regwatch/notifications"
)

// AlreadyRunning is returned by Start() if the simulator is running.
const AlreadyRunning = "simulation: already running in %v mode"

// Listener is implemented by types that need to know when the simulator
// starts and stops.
type Listener interface {
	SimulatorStarted(mode govern.RunMode)
	SimulatorStopped()
}

// State is the process wide simulator state.
type State struct {
	Gateway  *gateway.Gateway
	Notifier *notifications.Notifier
	Bank     *bank.Bank

	crit      sync.Mutex
	state     govern.State
	mode      govern.RunMode
	listeners []Listener
}

// NewState is the preferred method of initialisation for the State type.
func NewState() *State {
	s := &State{
		Gateway:  gateway.NewGateway(),
		Notifier: notifications.NewNotifier(),
	}
	s.Bank = bank.NewBank(s.Gateway, s.Notifier)
	return s
}

// AddListener adds a Listener. A Listener can only be added once.
func (s *State) AddListener(l Listener) {
	s.crit.Lock()
	defer s.crit.Unlock()
	if slices.Contains(s.listeners, l) {
		return
	}
	s.listeners = append(s.listeners, l)
}

// RemoveListener removes a Listener added with AddListener().
func (s *State) RemoveListener(l Listener) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.listeners = slices.DeleteFunc(s.listeners, func(o Listener) bool {
		return o == l
	})
}

// must be called with the critical section held. the returned slice can be
// used outside of the critical section
func (s *State) copyListeners() []Listener {
	return slices.Clone(s.listeners)
}

// Start the simulator in the specified mode. Listeners are informed and then
// notifications are enabled or disabled according to the mode.
func (s *State) Start(mode govern.RunMode) error {
	s.crit.Lock()
	if s.state == govern.Running {
		s.crit.Unlock()
		return curated.Errorf(AlreadyRunning, s.mode)
	}
	s.state = govern.Running
	s.mode = mode
	l := s.copyListeners()
	s.crit.Unlock()

	// listeners are armed before the first event can reach them
	for _, o := range l {
		o.SimulatorStarted(mode)
	}
	s.Notifier.SetNotificationsEnabled(mode.Highlights())

	logger.Logf(logger.Allow, "simulation", "started in %v mode", mode)
	return nil
}

// Stop the simulator. Notifications are disabled before listeners are
// informed. Stopping a simulator that is not running does nothing.
func (s *State) Stop() {
	s.crit.Lock()
	if s.state != govern.Running {
		s.crit.Unlock()
		return
	}
	s.state = govern.Stopped
	l := s.copyListeners()
	s.crit.Unlock()

	s.Notifier.SetNotificationsEnabled(false)
	for _, o := range l {
		o.SimulatorStopped()
	}

	logger.Log(logger.Allow, "simulation", "stopped")
}

// Running returns true if the simulator is running.
func (s *State) Running() bool {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.state == govern.Running
}

// Mode returns the mode the simulator was most recently started in.
func (s *State) Mode() govern.RunMode {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.mode
}

// Condition returns the current state and mode.
func (s *State) Condition() (govern.State, govern.RunMode) {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.state, s.mode
}

// Reset every register file to its default values.
func (s *State) Reset() {
	s.Bank.ResetAll()
	logger.Log(logger.Allow, "simulation", "registers reset")
}
