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
	"sync"
	"sync/atomic"

	"github.com/regwatch/regwatch/logger"
	"github.com/regwatch/regwatch/registers"
)

// Handle identifies a subscription. It is returned by Subscribe() and used
// with Unsubscribe().
type Handle struct {
	file registers.FileID
	id   uint64
}

// File returns the register file of the subscription.
func (h Handle) File() registers.FileID {
	return h.file
}

type subscription struct {
	id  uint64
	obs Observer
}

// Notifier maintains the list of subscribers for each register file.
type Notifier struct {
	// the subscriber lists are replaced rather than modified. this means
	// that a list taken for delivery is never changed by a Subscribe() or
	// Unsubscribe() that happens during delivery
	crit        sync.Mutex
	subscribers [registers.NumFiles][]subscription
	nextID      uint64

	enabled atomic.Bool
}

// NewNotifier is the preferred method of initialisation for the Notifier
// type. Notifications are disabled to begin with.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe observer to write events for the register file. Subscribing the
// same observer more than once results in duplicate delivery.
//
// An invalid file or a nil observer is rejected and the zero Handle is
// returned. The zero Handle is never a valid subscription.
func (n *Notifier) Subscribe(file registers.FileID, obs Observer) Handle {
	if !file.Valid() || obs == nil {
		logger.Logf(logger.Allow, "notifications", "subscription rejected: file %v, observer %v", file, obs)
		return Handle{}
	}

	n.crit.Lock()
	defer n.crit.Unlock()

	n.nextID++
	h := Handle{file: file, id: n.nextID}

	l := make([]subscription, len(n.subscribers[file]), len(n.subscribers[file])+1)
	copy(l, n.subscribers[file])
	n.subscribers[file] = append(l, subscription{id: h.id, obs: obs})

	return h
}

// Unsubscribe the subscription identified by the handle. Returns false if
// the subscription does not exist.
func (n *Notifier) Unsubscribe(h Handle) bool {
	n.crit.Lock()
	defer n.crit.Unlock()

	if !h.file.Valid() {
		return false
	}

	for i, s := range n.subscribers[h.file] {
		if s.id == h.id {
			l := make([]subscription, 0, len(n.subscribers[h.file])-1)
			l = append(l, n.subscribers[h.file][:i]...)
			l = append(l, n.subscribers[h.file][i+1:]...)
			n.subscribers[h.file] = l
			return true
		}
	}

	return false
}

// Subscribers returns the number of subscribers for the register file.
func (n *Notifier) Subscribers(file registers.FileID) int {
	n.crit.Lock()
	defer n.crit.Unlock()
	if !file.Valid() {
		return 0
	}
	return len(n.subscribers[file])
}

func (n *Notifier) list(file registers.FileID) []subscription {
	n.crit.Lock()
	defer n.crit.Unlock()
	if !file.Valid() {
		return nil
	}
	return n.subscribers[file]
}

// SetNotificationsEnabled turns delivery of write events on or off.
func (n *Notifier) SetNotificationsEnabled(enabled bool) {
	n.enabled.Store(enabled)
}

// NotificationsEnabled returns true if write events are being delivered.
func (n *Notifier) NotificationsEnabled() bool {
	return n.enabled.Load()
}

// NotifyWrite delivers the event to every subscriber of the event's register
// file, in subscription order. The function returns after every subscriber
// has been notified.
//
// Must only be called from inside the mutation gateway.
func (n *Notifier) NotifyWrite(ev Event) {
	if !n.enabled.Load() {
		return
	}
	ev.Access = Write
	for _, s := range n.list(ev.File) {
		s.obs.Notify(ev)
	}
}

// NotifyReset tells every subscriber that implements ResetObserver that the
// register file has been reset. Reset notices are delivered even when
// notifications are disabled.
func (n *Notifier) NotifyReset(file registers.FileID) {
	for _, s := range n.list(file) {
		if r, ok := s.obs.(ResetObserver); ok {
			r.Reset(file)
		}
	}
}
