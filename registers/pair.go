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

// Combine two 32 bit values into a single 64 bit value. The low value forms
// the least significant 32 bits. The bits are concatenated, not added.
func Combine(low, high uint32) uint64 {
	return uint64(high)<<32 | uint64(low)
}

// Split a 64 bit value into the low and high 32 bit halves.
func Split(v uint64) (low, high uint32) {
	return uint32(v), uint32(v >> 32)
}

// CombinePair combines the values of two registers. See Combine().
func CombinePair(low, high *Register) uint64 {
	return Combine(low.Value(), high.Value())
}

// IsPairAligned returns true if id is the first register of a register pair.
func IsPairAligned(id int) bool {
	return id >= 0 && id%2 == 0
}

// PairBase returns the ID of the even register of the pair that id belongs
// to.
func PairBase(id int) int {
	return id - id%2
}
