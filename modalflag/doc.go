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

// Package modalflag wraps the flag package of the standard library so that a
// program can have modes, each with its own set of flags.
//
// Arguments are given to the Modes type with NewArgs() and parsed with
// Parse(). Sub-modes available after the flags of the current mode are
// listed with AddSubModes(). The first listed sub-mode is the default. For
// example, regwatch has two top level modes:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("INSPECT", "REPLAY")
//
//	switch r, err := md.Parse() {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "INSPECT":
//		md.NewMode()
//		hex := md.AddBool("hex", false, "display values in hex")
//		...
//	}
//
// Flags for a mode are added after the call to NewMode() and before the next
// call to Parse(). Arguments that are neither flags nor sub-modes are
// available with RemainingArgs() and GetArg().
//
// Every mode can have a -prefs flag added with AddPrefs(). The value of the
// flag is pushed onto the prefs command line stack by Parse().
package modalflag
