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

// Package trace records register write events in a DataFrame so that they
// can be saved, inspected with other tools, and replayed into the register
// bank at a later time.
//
// A Recorder is a notifications.Observer. It only sees events while change
// notifications are enabled, which is to say while the simulator is running
// in SingleStep or Timed mode.
//
// Saved traces are CSV files with the columns:
//
//	seq, file, register, name, value
//
// Traces can be loaded from CSV or Parquet files with the same columns.
package trace
