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

// Package version reports the build of the program. The number is set at
// link time with:
//
//	go build -ldflags "-X github.com/regwatch/regwatch/version.number=v0.1.0"
//
// Without a number the version is taken from the module build information.
package version

import (
	"runtime/debug"
	"strings"
)

// ApplicationName is the name of the program.
const ApplicationName = "Regwatch"

// set by the linker
var number string

// String returns the application name and version.
func String() string {
	v, rev := Version()
	if rev == "" {
		return ApplicationName + " " + v
	}
	return ApplicationName + " " + v + " (" + rev + ")"
}

// Version returns the version and the vcs revision. The revision is suffixed
// with "+dirty" if the source had been modified when it was built and is
// empty if the build has no vcs information.
func Version() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return versionOr("local"), ""
	}
	return fromBuildInfo(info)
}

func versionOr(def string) string {
	if number != "" {
		return number
	}
	return def
}

func fromBuildInfo(info *debug.BuildInfo) (string, string) {
	var rev string
	var dirty bool
	var vcs bool

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if len(rev) > 12 {
		rev = rev[:12]
	}
	if dirty && rev != "" {
		rev += "+dirty"
	}

	v := info.Main.Version
	if v == "" || v == "(devel)" {
		if vcs {
			v = "unreleased"
		} else {
			v = "local"
		}
	}

	return versionOr(strings.TrimSpace(v)), rev
}
