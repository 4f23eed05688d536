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

package view

import (
	"fmt"
	"math"
	"strconv"
)

// Format returns the text for value according to the base and kind. Only the
// low 32 bits of value are used unless kind is Double.
//
// Hex output is lower case and zero padded to 8 or 16 digits, with no
// prefix.
func Format(value uint64, base Base, kind Kind) string {
	if base == Hex {
		if kind.Wide() {
			return fmt.Sprintf("%016x", value)
		}
		return fmt.Sprintf("%08x", uint32(value))
	}

	switch kind {
	case Int:
		return strconv.FormatInt(int64(int32(uint32(value))), 10)
	case UnsignedInt:
		return strconv.FormatUint(uint64(uint32(value)), 10)
	case Float:
		return strconv.FormatFloat(float64(math.Float32frombits(uint32(value))), 'g', -1, 32)
	case Double:
		return strconv.FormatFloat(math.Float64frombits(value), 'g', -1, 64)
	}

	return strconv.FormatUint(value, 10)
}

// HexText returns value as 0x prefixed hex text that will be accepted by
// Parse().
func HexText(value uint32) string {
	return fmt.Sprintf("0x%08x", value)
}
