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

package bank

// Sentinal error patterns returned by the bank. Test for them with
// curated.Is().
const (
	NotEditable      = "register not editable: %s"
	InvalidAlignment = "invalid double alignment: %s register %d"
	UnknownRegister  = "unknown register: %s register %d"
	UnknownFile      = "unknown register file: %v"
)
