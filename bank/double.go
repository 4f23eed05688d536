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
	"github.com/regwatch/regwatch/registers"
)

// pair returns the two registers that form the double starting at reg.
func (b *Bank) pair(file registers.FileID, reg int) (*registers.Register, *registers.Register, error) {
	f, err := b.file(file)
	if err != nil {
		return nil, nil, err
	}

	if !f.Pairs() || !registers.IsPairAligned(reg) {
		return nil, nil, curated.Errorf(InvalidAlignment, file, reg)
	}

	low, ok := f.Register(reg)
	if !ok {
		return nil, nil, curated.Errorf(UnknownRegister, file, reg)
	}
	high, ok := f.Register(reg + 1)
	if !ok {
		return nil, nil, curated.Errorf(InvalidAlignment, file, reg)
	}

	return low, high, nil
}

// ReadDouble returns the 64 bit value formed by the even register reg and the
// register that follows it. Returns an InvalidAlignment error if reg is odd
// or the file does not support register pairs.
//
// Both halves are read from inside the gateway. ReadDouble must not be called
// by an observer.
func (b *Bank) ReadDouble(file registers.FileID, reg int) (uint64, error) {
	low, high, err := b.pair(file, reg)
	if err != nil {
		return 0, err
	}

	var v uint64
	_ = b.gate.WithLock(func() error {
		v = registers.CombinePair(low, high)
		return nil
	})

	return v, nil
}

// WriteDouble writes the 64 bit value to the even register reg and the
// register that follows it. Returns an InvalidAlignment error if reg is odd
// or the file does not support register pairs.
//
// Both halves are written in a single acquisition of the gateway. A write
// event is generated for each half, the low register first.
func (b *Bank) WriteDouble(file registers.FileID, reg int, val uint64) error {
	low, high, err := b.pair(file, reg)
	if err != nil {
		return err
	}

	lv, hv := registers.Split(val)

	return b.gate.WithLock(func() error {
		low.Load(lv)
		high.Load(hv)
		b.commitEvents(file, low, high)
		return nil
	})
}

// commitEvents generates write events for registers that have already been
// loaded. must only be called from inside the gateway.
func (b *Bank) commitEvents(file registers.FileID, regs ...*registers.Register) {
	for _, r := range regs {
		b.commit(file, r, r.Value())
	}
}
