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

// Package prefs holds the live settings of the program. Each setting is one
// of the types Bool, Int or String. The value of a setting can be read and
// changed from any goroutine.
//
// Settings are collected into a Group under a dotted key. For example:
//
//	var hex prefs.Bool
//	var ips prefs.Int
//
//	grp := prefs.NewGroup("regwatch")
//	grp.Add("view.hex", &hex)
//	grp.Add("runner.ips", &ips)
//
// The value of a setting in a Group can then be changed by key:
//
//	grp.Set("runner.ips", "100")
//
// Settings are not saved to disk. Values can be supplied by the environment
// with ApplyEnvironment() and by the command line with the command line
// stack. See PushCommandLineStack() for details.
//
// Hooks can be added to each setting. The pre hook is called before a new
// value is stored and can reject the value by returning an error. The post
// hook is called after the value has been stored and is a good place to
// propagate the new value to the rest of the program.
package prefs
