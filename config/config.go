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

// Package config defines the preferences of the program and how they are
// loaded. Values are taken, in order of increasing priority, from the
// defaults, from the environment and from the -prefs command line flag.
//
// The recognised environment variables are:
//
//	REGWATCH_HEX		display values in hex (true/false)
//	REGWATCH_HIGHLIGHT	highlight the most recently written register
//	REGWATCH_TIMED_IPS	instructions per second in the Timed run mode
//	REGWATCH_TRACE_CAP	maximum number of events in a trace
//	REGWATCH_LOG_ECHO	echo log entries to stderr
package config

import (
	"fmt"

	"github.com/regwatch/regwatch/prefs"
)

// Default values.
const (
	DefaultTimedIPS      = 10
	DefaultTraceCapacity = 100000
)

// Preferences are the live settings of the program.
type Preferences struct {
	group *prefs.Group

	Hex           prefs.Bool
	Highlight     prefs.Bool
	TimedIPS      prefs.Int
	TraceCapacity prefs.Int
	LogEcho       prefs.Bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are set to their defaults.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		group: prefs.NewGroup("regwatch"),
	}

	p.Hex.SetDefault(false)
	p.Highlight.SetDefault(true)
	p.TimedIPS.SetDefault(DefaultTimedIPS)
	p.TraceCapacity.SetDefault(DefaultTraceCapacity)
	p.LogEcho.SetDefault(false)

	p.TimedIPS.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("instructions per second must be positive")
		}
		return nil
	})
	p.TraceCapacity.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("trace capacity must not be negative")
		}
		return nil
	})

	for _, e := range []struct {
		key string
		env string
		p   interface {
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
			String() string
		}
	}{
		{key: "view.hex", env: "REGWATCH_HEX", p: &p.Hex},
		{key: "view.highlight", env: "REGWATCH_HIGHLIGHT", p: &p.Highlight},
		{key: "runner.ips", env: "REGWATCH_TIMED_IPS", p: &p.TimedIPS},
		{key: "trace.capacity", env: "REGWATCH_TRACE_CAP", p: &p.TraceCapacity},
		{key: "log.echo", env: "REGWATCH_LOG_ECHO", p: &p.LogEcho},
	} {
		if err := p.group.AddWithEnvironment(e.key, e.env, e.p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Load applies the environment and then the top of the command line stack.
func (p *Preferences) Load(env prefs.Environment) error {
	if err := p.group.ApplyEnvironment(env); err != nil {
		return err
	}
	return p.group.ApplyCommandLine()
}

// Set the preference with the key. See Keys() for the list of keys.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.group.Set(key, v)
}

// Keys returns the list of preference keys.
func (p *Preferences) Keys() []string {
	return p.group.Keys()
}

func (p *Preferences) String() string {
	return p.group.String()
}
