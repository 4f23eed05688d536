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

package bank

import (
	"github.com/regwatch/regwatch/curated"
	"github.com/regwatch/regwatch/gateway"
	"github.com/regwatch/regwatch/notifications"
	"github.com/regwatch/regwatch/registers"
)

// Bank is the collection of register files.
type Bank struct {
	gate   *gateway.Gateway
	notify *notifications.Notifier
	files  [registers.NumFiles]*registers.File
}

// NewBank is the preferred method of initialisation for the Bank type. The
// register files are created and set to their default values.
func NewBank(gate *gateway.Gateway, notify *notifications.Notifier) *Bank {
	b := &Bank{
		gate:   gate,
		notify: notify,
	}
	b.files[registers.General] = registers.NewGeneralFile()
	b.files[registers.Float] = registers.NewFloatFile()
	b.files[registers.Control] = registers.NewControlFile()
	return b
}

func (b *Bank) file(file registers.FileID) (*registers.File, error) {
	if !file.Valid() {
		return nil, curated.Errorf(UnknownFile, file)
	}
	return b.files[file], nil
}

func (b *Bank) register(file registers.FileID, reg int) (*registers.Register, error) {
	f, err := b.file(file)
	if err != nil {
		return nil, err
	}
	r, ok := f.Register(reg)
	if !ok {
		return nil, curated.Errorf(UnknownRegister, file, reg)
	}
	return r, nil
}

// Len returns the number of registers in the file. Returns zero if the file
// does not exist.
func (b *Bank) Len(file registers.FileID) int {
	f, err := b.file(file)
	if err != nil {
		return 0
	}
	return f.Len()
}

// Info returns the static information for every register in the file.
func (b *Bank) Info(file registers.FileID) []registers.Info {
	f, err := b.file(file)
	if err != nil {
		return nil
	}
	return f.Info()
}

// Lookup returns the ID of the named register in the file. See
// registers.File.Lookup() for the accepted forms of the name.
func (b *Bank) Lookup(file registers.FileID, name string) (int, error) {
	f, err := b.file(file)
	if err != nil {
		return -1, err
	}
	id, ok := f.Lookup(name)
	if !ok {
		return -1, curated.Errorf("unknown register: %s register %s", file, name)
	}
	return id, nil
}

// Read returns the current value of the register. Reading a register that
// does not exist returns zero. Use ReadChecked() if the existence of the
// register is in doubt.
//
// Read does not acquire the gateway and is safe to call from an observer.
func (b *Bank) Read(file registers.FileID, reg int) uint32 {
	v, _ := b.ReadChecked(file, reg)
	return v
}

// ReadChecked is the same as Read() but returns an error if the register does
// not exist.
func (b *Bank) ReadChecked(file registers.FileID, reg int) (uint32, error) {
	r, err := b.register(file, reg)
	if err != nil {
		return 0, err
	}
	return r.Value(), nil
}

// Snapshot returns the value of every register in the file. The values are
// collected from inside the gateway and so represent a single point in the
// commit order.
func (b *Bank) Snapshot(file registers.FileID) ([]uint32, error) {
	f, err := b.file(file)
	if err != nil {
		return nil, err
	}

	var v []uint32
	_ = b.gate.WithLock(func() error {
		v = f.Values()
		return nil
	})

	return v, nil
}

// SnapshotInto calls fn with the value of every register in the file. fn is
// called from inside the gateway so no write can be committed, or notified,
// until fn returns. fn must not write to the Bank.
func (b *Bank) SnapshotInto(file registers.FileID, fn func([]uint32)) error {
	f, err := b.file(file)
	if err != nil {
		return err
	}

	return b.gate.WithLock(func() error {
		fn(f.Values())
		return nil
	})
}

// commit must only be called from inside the gateway.
func (b *Bank) commit(file registers.FileID, r *registers.Register, val uint32) {
	r.Load(val)
	b.notify.NotifyWrite(notifications.Event{
		File:     file,
		Register: r.ID,
		Value:    val,
		Access:   notifications.Write,
	})
}

// Write is the interactive write path. Returns a NotEditable error if the
// register cannot be changed by the user. Otherwise the value is committed
// and subscribers are notified before the function returns.
func (b *Bank) Write(file registers.FileID, reg int, val uint32) error {
	r, err := b.register(file, reg)
	if err != nil {
		return err
	}

	if !r.Editable() {
		return curated.Errorf(NotEditable, r.Name)
	}

	return b.gate.WithLock(func() error {
		b.commit(file, r, val)
		return nil
	})
}

// Update is the write path for the simulated program. Editability is not
// checked but writes to a hardwired zero register are discarded and no
// event is generated.
func (b *Bank) Update(file registers.FileID, reg int, val uint32) error {
	r, err := b.register(file, reg)
	if err != nil {
		return err
	}

	if r.HardwiredZero {
		return nil
	}

	return b.gate.WithLock(func() error {
		b.commit(file, r, val)
		return nil
	})
}

// Reset the register file to its default values. No write events are
// generated but subscribers to the file are sent a reset notice.
func (b *Bank) Reset(file registers.FileID) error {
	f, err := b.file(file)
	if err != nil {
		return err
	}

	return b.gate.WithLock(func() error {
		f.Reset()
		b.notify.NotifyReset(file)
		return nil
	})
}

// ResetAll resets every register file. See Reset().
func (b *Bank) ResetAll() {
	for id := range registers.NumFiles {
		_ = b.Reset(id)
	}
}

// NumConditionFlags returns the number of condition flags in the floating
// point file.
func (b *Bank) NumConditionFlags() int {
	return b.files[registers.Float].NumConditionFlags()
}

// ConditionFlag returns the state of the floating point condition flag.
func (b *Bank) ConditionFlag(n int) (bool, error) {
	return b.files[registers.Float].ConditionFlag(n)
}

// ConditionFlags returns the floating point condition flags as a bit field.
func (b *Bank) ConditionFlags() uint32 {
	return b.files[registers.Float].ConditionFlags()
}

// SetConditionFlag sets or clears the floating point condition flag.
func (b *Bank) SetConditionFlag(n int, set bool) error {
	return b.gate.WithLock(func() error {
		return b.files[registers.Float].SetConditionFlag(n, set)
	})
}
