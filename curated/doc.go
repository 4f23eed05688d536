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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values.
//
// The pattern is what distinguishes one curated error from another. The Is()
// function checks whether an error was created with a specific pattern:
//
//	e := curated.Errorf(bank.NotEditable, "$zero")
//
//	if curated.Is(e, bank.NotEditable) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. Curated errors wrapped with the %v or %w verbs both count
// as being in the chain. Curated errors also implement Unwrap() so the
// errors.Is() and errors.As() functions in the standard library work as
// expected for uncurated errors wrapped inside a curated error.
//
// The Error() function normalises the chain so that adjacent duplicate parts
// are removed. For example, the following will print "trace: file not found"
// and not "trace: trace: file not found":
//
//	e := curated.Errorf("trace: %v", curated.Errorf("trace: %v", "file not found"))
//	fmt.Println(e)
package curated
