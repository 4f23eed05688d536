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

package govern

import (
	"fmt"
	"strings"
)

// RunMode indicates how the simulated program is being executed.
type RunMode int

// List of defined run modes.
const (
	SingleStep RunMode = iota
	Timed
	Unlimited
)

func (m RunMode) String() string {
	switch m {
	case SingleStep:
		return "SingleStep"
	case Timed:
		return "Timed"
	case Unlimited:
		return "Unlimited"
	}

	return ""
}

// Highlights returns true if register changes should be reported, and
// highlighted, while the simulator runs in this mode.
func (m RunMode) Highlights() bool {
	return m == SingleStep || m == Timed
}

// ParseRunMode converts a string to a RunMode. Short forms "step" and
// "timed" are accepted.
func ParseRunMode(s string) (RunMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "singlestep", "step":
		return SingleStep, nil
	case "timed":
		return Timed, nil
	case "unlimited", "run":
		return Unlimited, nil
	}
	return SingleStep, fmt.Errorf("govern: unrecognised run mode: %s", s)
}
