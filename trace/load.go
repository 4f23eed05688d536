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
	"os"
	"path/filepath"
	"strconv"
	"strings"

	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/imports"
	"github.com/xitongsys/parquet-go-source/local"

	"github.com/regwatch/regwatch/curated"
	"github.com/regwatch/regwatch/logger"
	"github.com/regwatch/regwatch/registers"
)

// Sentinal error patterns returned by the package.
const (
	EmptyTrace     = "trace: empty trace: %s"
	MissingColumn  = "trace: missing column: %s"
	MalformedEvent = "trace: malformed event at row %d: %v"
)

// Load a trace from a file. Files with the .parquet extension are loaded as
// Parquet files. Any other file is assumed to be CSV.
func Load(ctx context.Context, path string) (*dataframe.DataFrame, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return LoadParquet(ctx, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	defer f.Close()

	df, err := LoadCSV(ctx, f)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "trace", "loaded %d events from %s", df.NRows(), path)
	return df, nil
}

// LoadCSV loads a trace from CSV data.
func LoadCSV(ctx context.Context, r io.ReadSeeker) (*dataframe.DataFrame, error) {
	df, err := imports.LoadFromCSV(ctx, r, imports.CSVLoadOptions{
		InferDataTypes: true,
	})
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	if df == nil || len(df.Series) == 0 {
		return nil, curated.Errorf(EmptyTrace, "csv")
	}
	return df, nil
}

// LoadParquet loads a trace from a Parquet file.
func LoadParquet(ctx context.Context, path string) (*dataframe.DataFrame, error) {
	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	defer fr.Close()

	df, err := imports.LoadFromParquet(ctx, fr)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	if df == nil || len(df.Series) == 0 {
		return nil, curated.Errorf(EmptyTrace, path)
	}

	logger.Logf(logger.Allow, "trace", "loaded %d events from %s", df.NRows(), path)
	return df, nil
}

// Updater is the destination of replayed events. The bank.Bank type
// satisfies this interface.
type Updater interface {
	Update(file registers.FileID, reg int, val uint32) error
}

// Event is a single row of a trace.
type Event struct {
	Seq      int64
	File     registers.FileID
	Register int
	Name     string
	Value    uint32
}

// toInt64 converts a value from a series to an int64. Series inferred from
// CSV data will usually be int64 but values loaded from Parquet files may be
// of other types.
func toInt64(v any) (int64, error) {
	switch v := v.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		return strconv.ParseInt(strings.TrimSpace(v), 0, 64)
	case nil:
		return 0, fmt.Errorf("missing value")
	}
	return 0, fmt.Errorf("unsupported type %T", v)
}

// Events converts every row of a trace into an Event.
func Events(df *dataframe.DataFrame) ([]Event, error) {
	cols := make(map[string]dataframe.Series)
	for _, name := range []string{ColSeq, ColFile, ColRegister, ColValue} {
		i, err := df.NameToColumn(name)
		if err != nil {
			return nil, curated.Errorf(MissingColumn, name)
		}
		cols[name] = df.Series[i]
	}

	var name dataframe.Series
	if i, err := df.NameToColumn(ColName); err == nil {
		name = df.Series[i]
	}

	n := df.NRows()
	events := make([]Event, 0, n)

	for row := range n {
		var ev Event
		var err error

		ev.Seq, err = toInt64(cols[ColSeq].Value(row))
		if err != nil {
			return nil, curated.Errorf(MalformedEvent, row, err)
		}

		ev.File, err = registers.ParseFileID(fmt.Sprintf("%v", cols[ColFile].Value(row)))
		if err != nil {
			return nil, curated.Errorf(MalformedEvent, row, err)
		}

		reg, err := toInt64(cols[ColRegister].Value(row))
		if err != nil {
			return nil, curated.Errorf(MalformedEvent, row, err)
		}
		ev.Register = int(reg)

		val, err := toInt64(cols[ColValue].Value(row))
		if err != nil {
			return nil, curated.Errorf(MalformedEvent, row, err)
		}
		if val < 0 || val > 0xffffffff {
			return nil, curated.Errorf(MalformedEvent, row, "value out of range")
		}
		ev.Value = uint32(val)

		if name != nil {
			if s, ok := name.Value(row).(string); ok {
				ev.Name = s
			}
		}

		events = append(events, ev)
	}

	return events, nil
}

// Replay the events of a trace, in the order they were recorded, using the
// simulator write path. Returns the number of events replayed. Replay stops
// at the first error or when the context is cancelled.
func Replay(ctx context.Context, df *dataframe.DataFrame, dst Updater) (int, error) {
	events, err := Events(df)
	if err != nil {
		return 0, err
	}

	for i, ev := range events {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := dst.Update(ev.File, ev.Register, ev.Value); err != nil {
			return i, fmt.Errorf("trace: replay of event %d: %w", ev.Seq, err)
		}
	}

	logger.Logf(logger.Allow, "trace", "replayed %d events", len(events))
	return len(events), nil
}
