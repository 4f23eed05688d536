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
	"strings"
)

// FileID identifies one of the logical register files.
type FileID int

// List of register files.
const (
	General FileID = iota
	Float
	Control

	// the number of register files. not a valid FileID
	NumFiles
)

func (id FileID) String() string {
	switch id {
	case General:
		return "general"
	case Float:
		return "float"
	case Control:
		return "control"
	}
	return fmt.Sprintf("file(%d)", int(id))
}

// Valid returns true if the FileID refers to a register file.
func (id FileID) Valid() bool {
	return id >= General && id < NumFiles
}

// ParseFileID converts a name to a FileID. As well as the names returned by
// String(), the coprocessor names cp0 and cp1 are accepted.
func ParseFileID(s string) (FileID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "general", "gpr", "cpu":
		return General, nil
	case "float", "fpu", "cp1":
		return Float, nil
	case "control", "cp0":
		return Control, nil
	}
	return NumFiles, fmt.Errorf("unrecognised register file (%s)", s)
}
