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

package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/regwatch/regwatch/test"
)

func TestFromBuildInfo(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	v, rev := fromBuildInfo(info)
	test.ExpectEquality(t, v, "unreleased")
	test.ExpectEquality(t, rev, "0123456789ab+dirty")

	info = &debug.BuildInfo{Main: debug.Module{Version: "v1.2.3"}}
	v, rev = fromBuildInfo(info)
	test.ExpectEquality(t, v, "v1.2.3")
	test.ExpectEquality(t, rev, "")

	// linker supplied number takes precedence
	number = "v9.9.9"
	defer func() { number = "" }()
	v, _ = fromBuildInfo(info)
	test.ExpectEquality(t, v, "v9.9.9")
}

func TestString(t *testing.T) {
	test.ExpectSuccess(t, strings.HasPrefix(String(), ApplicationName+" "))
}
