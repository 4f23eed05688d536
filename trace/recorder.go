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

package trace

import (
	"context"
	"fmt"
	"io"
	"sync"

	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/exports"

	"github.com/regwatch/regwatch/logger"
	"github.com/regwatch/regwatch/notifications"
	"github.com/regwatch/regwatch/registers"
)

// column names of a trace
const (
	ColSeq      = "seq"
	ColFile     = "file"
	ColRegister = "register"
	ColName     = "name"
	ColValue    = "value"
)

// NewFrame returns an empty trace.
func NewFrame() *dataframe.DataFrame {
	return dataframe.NewDataFrame(
		dataframe.NewSeriesInt64(ColSeq, nil),
		dataframe.NewSeriesString(ColFile, nil),
		dataframe.NewSeriesInt64(ColRegister, nil),
		dataframe.NewSeriesString(ColName, nil),
		dataframe.NewSeriesInt64(ColValue, nil),
	)
}

// Namer is the source of register names for the Recorder. The bank.Bank type
// satisfies this interface.
type Namer interface {
	Info(file registers.FileID) []registers.Info
}

// Recorder is an Observer that appends every write event it is notified of
// to a DataFrame.
type Recorder struct {
	crit sync.Mutex

	frame    *dataframe.DataFrame
	names    [registers.NumFiles][]string
	capacity int
	seq      int64
	full     bool
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. Recording stops when the trace contains capacity rows. A capacity of
// zero or less means that the trace is unbounded.
func NewRecorder(namer Namer, capacity int) *Recorder {
	rec := &Recorder{
		frame:    NewFrame(),
		capacity: capacity,
	}
	for f := range registers.NumFiles {
		for _, r := range namer.Info(f) {
			rec.names[f] = append(rec.names[f], r.Name)
		}
	}
	return rec
}

func (rec *Recorder) name(file registers.FileID, reg int) string {
	if !file.Valid() || reg < 0 || reg >= len(rec.names[file]) {
		return ""
	}
	return rec.names[file][reg]
}

// Notify implements the notifications.Observer interface.
func (rec *Recorder) Notify(ev notifications.Event) {
	if ev.Access != notifications.Write {
		return
	}

	rec.crit.Lock()
	defer rec.crit.Unlock()

	if rec.capacity > 0 && rec.frame.NRows() >= rec.capacity {
		if !rec.full {
			rec.full = true
			logger.Logf(logger.Allow, "trace", "capacity of %d events reached", rec.capacity)
		}
		return
	}

	rec.frame.Append(nil,
		rec.seq,
		ev.File.String(),
		int64(ev.Register),
		rec.name(ev.File, ev.Register),
		int64(ev.Value),
	)
	rec.seq++
}

// Len returns the number of events in the trace.
func (rec *Recorder) Len() int {
	rec.crit.Lock()
	defer rec.crit.Unlock()
	return rec.frame.NRows()
}

// Full returns true if events have been discarded because the trace is at
// capacity.
func (rec *Recorder) Full() bool {
	rec.crit.Lock()
	defer rec.crit.Unlock()
	return rec.full
}

// Frame returns a copy of the trace.
func (rec *Recorder) Frame() *dataframe.DataFrame {
	rec.crit.Lock()
	defer rec.crit.Unlock()
	return rec.frame.Copy()
}

// Clear the trace.
func (rec *Recorder) Clear() {
	rec.crit.Lock()
	defer rec.crit.Unlock()
	rec.frame = NewFrame()
	rec.seq = 0
	rec.full = false
}

// Save the trace as CSV.
func (rec *Recorder) Save(ctx context.Context, w io.Writer) error {
	f := rec.Frame()
	if err := exports.ExportToCSV(ctx, w, f); err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	logger.Logf(logger.Allow, "trace", "saved %d events", f.NRows())
	return nil
}
