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
	"strings"
)

// Base is the numeric base used when formatting values.
type Base int

// List of valid bases.
const (
	Decimal Base = iota
	Hex
)

func (b Base) String() string {
	switch b {
	case Decimal:
		return "decimal"
	case Hex:
		return "hex"
	}
	return ""
}

// ParseBase converts text to a Base.
func ParseBase(s string) (Base, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dec", "decimal", "10":
		return Decimal, nil
	case "hex", "hexadecimal", "16":
		return Hex, nil
	}
	return Decimal, fmt.Errorf("view: unrecognised base: %s", s)
}

// Kind is the interpretation of the bits of a value.
type Kind int

// List of valid kinds.
const (
	Int Kind = iota
	UnsignedInt
	Float
	Double
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case UnsignedInt:
		return "unsigned"
	case Float:
		return "float"
	case Double:
		return "double"
	}
	return ""
}

// Wide returns true if the kind is a 64 bit value.
func (k Kind) Wide() bool {
	return k == Double
}
