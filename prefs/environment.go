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

package prefs

import (
	"github.com/xyproto/env/v2"
)

// Environment is the source of values for ApplyEnvironment().
type Environment interface {
	Has(name string) bool
	Str(name string, optionalDefault ...string) string
}

type system struct{}

func (system) Has(name string) bool {
	return env.Has(name)
}

func (system) Str(name string, optionalDefault ...string) string {
	return env.Str(name, optionalDefault...)
}

// SystemEnvironment is the Environment of the running process.
var SystemEnvironment Environment = system{}

// MapEnvironment is an Environment backed by a map. It is useful for testing
// and for supplying values from sources other than the process environment.
type MapEnvironment map[string]string

// Has implements the Environment interface.
func (m MapEnvironment) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// Str implements the Environment interface.
func (m MapEnvironment) Str(name string, optionalDefault ...string) string {
	if v, ok := m[name]; ok {
		return v
	}
	if len(optionalDefault) > 0 {
		return optionalDefault[0]
	}
	return ""
}
