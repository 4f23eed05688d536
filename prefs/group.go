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
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/regwatch/regwatch/logger"
)

type entry struct {
	p   pref
	env string
}

// Group is a named collection of preferences.
type Group struct {
	crit    sync.Mutex
	name    string
	entries map[string]entry
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup(name string) *Group {
	return &Group{
		name:    name,
		entries: make(map[string]entry),
	}
}

// Add a preference to the group. The key must not already be in use.
func (grp *Group) Add(key string, p pref) error {
	return grp.AddWithEnvironment(key, "", p)
}

// AddWithEnvironment adds a preference to the group that can also be set by
// the named environment variable. See ApplyEnvironment().
func (grp *Group) AddWithEnvironment(key string, env string, p pref) error {
	grp.crit.Lock()
	defer grp.crit.Unlock()

	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("prefs: %s: empty key", grp.name)
	}
	if _, ok := grp.entries[key]; ok {
		return fmt.Errorf("prefs: %s: key already in use: %s", grp.name, key)
	}

	grp.entries[key] = entry{p: p, env: env}
	return nil
}

// Keys returns the sorted list of keys in the group.
func (grp *Group) Keys() []string {
	grp.crit.Lock()
	defer grp.crit.Unlock()

	keys := make([]string, 0, len(grp.entries))
	for k := range grp.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (grp *Group) lookup(key string) (entry, error) {
	grp.crit.Lock()
	defer grp.crit.Unlock()

	e, ok := grp.entries[strings.TrimSpace(key)]
	if !ok {
		return entry{}, fmt.Errorf("prefs: %s: no such preference: %s", grp.name, key)
	}
	return e, nil
}

// Set the value of the preference with the key.
func (grp *Group) Set(key string, v Value) error {
	e, err := grp.lookup(key)
	if err != nil {
		return err
	}
	return e.p.Set(v)
}

// Get the value of the preference with the key.
func (grp *Group) Get(key string) (Value, error) {
	e, err := grp.lookup(key)
	if err != nil {
		return nil, err
	}
	return e.p.Get(), nil
}

// Reset every preference in the group to its default value.
func (grp *Group) Reset() error {
	for _, k := range grp.Keys() {
		e, _ := grp.lookup(k)
		if err := e.p.Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %s: %w", grp.name, k, err)
		}
	}
	return nil
}

// String returns every key and value in the group, one per line.
func (grp *Group) String() string {
	s := strings.Builder{}
	for _, k := range grp.Keys() {
		e, _ := grp.lookup(k)
		s.WriteString(fmt.Sprintf("%s :: %s", k, e.p))
		if e.env != "" {
			s.WriteString(fmt.Sprintf(" [%s]", e.env))
		}
		s.WriteString("\n")
	}
	return s.String()
}

// ApplyEnvironment sets every preference that was added with an environment
// variable name and for which the variable is set in the environment.
func (grp *Group) ApplyEnvironment(env Environment) error {
	for _, k := range grp.Keys() {
		e, _ := grp.lookup(k)
		if e.env == "" || !env.Has(e.env) {
			continue
		}
		if err := e.p.Set(env.Str(e.env)); err != nil {
			return fmt.Errorf("prefs: %s: %s: %w", grp.name, e.env, err)
		}
		logger.Logf(logger.Allow, "prefs", "%s set from environment (%s)", k, e.env)
	}
	return nil
}

// ApplyCommandLine sets every preference that has a value at the top of the
// command line stack. Values are removed from the stack as they are used.
func (grp *Group) ApplyCommandLine() error {
	for _, k := range grp.Keys() {
		ok, v := GetCommandLinePref(k)
		if !ok {
			continue
		}
		e, _ := grp.lookup(k)
		if err := e.p.Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %s: %w", grp.name, k, err)
		}
		logger.Logf(logger.Allow, "prefs", "%s set from command line", k)
	}
	return nil
}
