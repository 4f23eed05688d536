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

package config_test

import (
	"testing"

	"github.com/regwatch/regwatch/config"
	"github.com/regwatch/regwatch/prefs"
	"github.com/regwatch/regwatch/test"
)

func TestDefaults(t *testing.T) {
	p, err := config.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, p.Hex.Load())
	test.ExpectSuccess(t, p.Highlight.Load())
	test.ExpectEquality(t, p.TimedIPS.Load(), config.DefaultTimedIPS)
	test.ExpectEquality(t, p.TraceCapacity.Load(), config.DefaultTraceCapacity)
	test.ExpectEquality(t, len(p.Keys()), 5)
}

func TestLoad(t *testing.T) {
	p, err := config.NewPreferences()
	test.DemandSuccess(t, err)

	prefs.PushCommandLineStack("runner.ips::50")
	defer prefs.PopCommandLineStack()

	err = p.Load(prefs.MapEnvironment{
		"REGWATCH_HEX":       "true",
		"REGWATCH_TIMED_IPS": "20",
		"REGWATCH_LOG_ECHO":  "yes",
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, p.Hex.Load())
	test.ExpectSuccess(t, p.LogEcho.Load())

	// command line takes priority
	test.ExpectEquality(t, p.TimedIPS.Load(), 50)
}

func TestValidation(t *testing.T) {
	p, err := config.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.Set("runner.ips", 0))
	test.ExpectEquality(t, p.TimedIPS.Load(), config.DefaultTimedIPS)
	test.ExpectFailure(t, p.Load(prefs.MapEnvironment{"REGWATCH_TRACE_CAP": "-1"}))
	test.ExpectSuccess(t, p.Set("trace.capacity", "0"))
}
