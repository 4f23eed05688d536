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

package registers

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// File is a fixed size, ordered collection of registers. The number of
// registers and their order never changes once the File has been created.
type File struct {
	id   FileID
	regs []*Register

	// lookup tables. keys are lowercase and without the leading '$'
	byName   map[string]int
	byNumber map[int]int

	// an even register and the register that follows it can be accessed as
	// a 64 bit value
	pairs bool

	// condition flags are stored as individual bits. numFlags is zero for
	// files that do not have condition flags
	numFlags int
	flags    atomic.Uint32
}

// NewFile is the preferred method of initialisation for the File type.
// Registers are reset to their default values.
func NewFile(id FileID, defs []Definition, pairs bool, numFlags int) *File {
	f := &File{
		id:       id,
		regs:     make([]*Register, len(defs)),
		byName:   make(map[string]int),
		byNumber: make(map[int]int),
		pairs:    pairs,
		numFlags: numFlags,
	}

	for i, d := range defs {
		r := &Register{Definition: d, ID: i}
		r.Reset()
		f.regs[i] = r
		f.byName[normaliseName(d.Name)] = i
		if d.Alias != "" {
			f.byName[normaliseName(d.Alias)] = i
		}
		f.byNumber[d.Number] = i
	}

	return f
}

func normaliseName(s string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "$"))
}

func (f *File) String() string {
	return f.id.String()
}

// ID returns the identity of the register file.
func (f *File) ID() FileID {
	return f.id
}

// Len returns the number of registers in the file.
func (f *File) Len() int {
	return len(f.regs)
}

// Pairs returns true if the file supports 64 bit register pairs.
func (f *File) Pairs() bool {
	return f.pairs
}

// Register returns the register with the specified ID.
func (f *File) Register(id int) (*Register, bool) {
	if id < 0 || id >= len(f.regs) {
		return nil, false
	}
	return f.regs[id], true
}

// Info returns the static information of every register in the file.
func (f *File) Info() []Info {
	info := make([]Info, len(f.regs))
	for i, r := range f.regs {
		info[i] = r.Info()
	}
	return info
}

// Lookup returns the ID of the named register. The name can be the register
// name with or without the leading '$', the register alias or the
// architectural register number.
func (f *File) Lookup(name string) (int, bool) {
	n := normaliseName(name)
	if id, ok := f.byName[n]; ok {
		return id, true
	}
	if v, err := strconv.Atoi(n); err == nil {
		if id, ok := f.byNumber[v]; ok {
			return id, true
		}
	}
	return -1, false
}

// Reset all registers to their default value and clear any condition flags.
// Callers must serialise calls to Reset() with any other write.
func (f *File) Reset() {
	for _, r := range f.regs {
		r.Reset()
	}
	f.flags.Store(0)
}

// Values returns the current value of every register in the file.
func (f *File) Values() []uint32 {
	v := make([]uint32, len(f.regs))
	for i, r := range f.regs {
		v[i] = r.Value()
	}
	return v
}

// NumConditionFlags returns the number of condition flags in the file.
func (f *File) NumConditionFlags() int {
	return f.numFlags
}

// ConditionFlag returns the state of condition flag n.
func (f *File) ConditionFlag(n int) (bool, error) {
	if n < 0 || n >= f.numFlags {
		return false, fmt.Errorf("no condition flag %d in %s file", n, f.id)
	}
	return f.flags.Load()&(1<<n) != 0, nil
}

// SetConditionFlag sets or clears condition flag n. Callers must serialise
// calls to SetConditionFlag() with any other write.
func (f *File) SetConditionFlag(n int, set bool) error {
	if n < 0 || n >= f.numFlags {
		return fmt.Errorf("no condition flag %d in %s file", n, f.id)
	}
	v := f.flags.Load()
	if set {
		v |= 1 << n
	} else {
		v &^= 1 << n
	}
	f.flags.Store(v)
	return nil
}

// ConditionFlags returns all condition flags as a bit field. Bit 0 is
// condition flag 0.
func (f *File) ConditionFlags() uint32 {
	return f.flags.Load()
}
