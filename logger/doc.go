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

// Package logger is the central logging facility for Regwatch. Entries are
// made up of a tag and a detail string. Consecutive identical entries are
// collapsed into one entry with a repeat count.
//
// Whether an entry is accepted depends on the Permission argument. The
// logger.Allow value can be used when an entry should always be made.
//
// Components use the package level functions, which write to the central
// logger. Tests that need isolation can create their own instance with
// NewLogger().
package logger
