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

package prefs_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/regwatch/regwatch/prefs"
	"github.com/regwatch/regwatch/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.String(), "false")

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, v.Load())
	test.ExpectSuccess(t, v.Set("off"))
	test.ExpectFailure(t, v.Load())
	test.ExpectSuccess(t, v.Set("ON"))
	test.ExpectSuccess(t, v.Load())
	test.ExpectFailure(t, v.Set(10))

	v.SetDefault(false)
	test.ExpectFailure(t, v.Load())
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get(), prefs.Value(false))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.String(), "0")
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.Load(), 10)
	test.ExpectSuccess(t, v.Set(" 20 "))
	test.ExpectEquality(t, v.Load(), 20)
	test.ExpectFailure(t, v.Set("twenty"))
	test.ExpectEquality(t, v.Load(), 20)
	test.ExpectFailure(t, v.Set(1.5))

	v.SetDefault(30)
	test.ExpectSuccess(t, v.Set(1))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Load(), 30)
}

func TestString(t *testing.T) {
	var v prefs.String
	v.SetMaxLen(5)
	test.ExpectSuccess(t, v.Set("regwatch"))
	test.ExpectEquality(t, v.String(), "regwa")
	v.SetDefault("abc")
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "abc")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post []int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) <= 0 {
			return fmt.Errorf("must be positive")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = append(post, nv.(int))
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Load(), 5)
	test.ExpectSuccess(t, v.Set(5))

	test.DemandEquality(t, len(post), 2)
	test.ExpectEquality(t, post[0], 5)
	test.ExpectEquality(t, post[1], 5)
}

func TestGroup(t *testing.T) {
	var hex prefs.Bool
	var ips prefs.Int
	var name prefs.String

	grp := prefs.NewGroup("test")
	test.ExpectSuccess(t, grp.AddWithEnvironment("view.hex", "TEST_HEX", &hex))
	test.ExpectSuccess(t, grp.AddWithEnvironment("runner.ips", "TEST_IPS", &ips))
	test.ExpectSuccess(t, grp.Add("name", &name))
	test.ExpectFailure(t, grp.Add("name", &name))
	test.ExpectFailure(t, grp.Add(" ", &name))

	test.ExpectEquality(t, strings.Join(grp.Keys(), ","), "name,runner.ips,view.hex")

	test.ExpectSuccess(t, grp.Set("runner.ips", "40"))
	v, err := grp.Get("runner.ips")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, prefs.Value(40))
	test.ExpectFailure(t, grp.Set("missing", 1))

	// environment
	env := prefs.MapEnvironment{
		"TEST_HEX": "true",
		"OTHER":    "1",
	}
	test.ExpectSuccess(t, grp.ApplyEnvironment(env))
	test.ExpectSuccess(t, hex.Load())
	test.ExpectEquality(t, ips.Load(), 40)

	test.ExpectFailure(t, grp.ApplyEnvironment(prefs.MapEnvironment{"TEST_IPS": "many"}))

	// command line overrides the environment
	prefs.PushCommandLineStack("view.hex::false; runner.ips::25; unused::1")
	test.ExpectSuccess(t, grp.ApplyCommandLine())
	test.ExpectFailure(t, hex.Load())
	test.ExpectEquality(t, ips.Load(), 25)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")

	test.ExpectEquality(t, grp.String(), "name :: \nrunner.ips :: 25 [TEST_IPS]\nview.hex :: false [TEST_HEX]\n")

	test.ExpectSuccess(t, grp.Reset())
	test.ExpectEquality(t, ips.Load(), 0)
}
