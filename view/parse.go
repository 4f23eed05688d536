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

package view

import (
	"math"
	"strconv"
	"strings"

	"github.com/regwatch/regwatch/curated"
)

// ParseError is the pattern of errors returned when text can not be
// converted to a value. Test for it with curated.Is().
const ParseError = "parse error: %v"

// invalid is the text shown in place of a value that could not be parsed.
const invalid = "INVALID"

func hexDigits(s string) (string, bool) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:], true
	}
	return s, false
}

func parseFailed(s string) error {
	return curated.Errorf(ParseError, strconv.Quote(s))
}

// Parse converts text to a 32 bit value. The text can be hex with a 0x
// prefix or decimal. Negative decimal values are stored as two's complement.
func Parse(text string) (uint32, error) {
	s := strings.TrimSpace(text)

	if h, ok := hexDigits(s); ok {
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return 0, parseFailed(text)
		}
		return uint32(v), nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < math.MinInt32 || v > math.MaxUint32 {
		return 0, parseFailed(text)
	}

	return uint32(v), nil
}

// ParseFloat converts text to the bit pattern of a single precision floating
// point number. Text with a 0x prefix is taken to be the bit pattern itself.
func ParseFloat(text string) (uint32, error) {
	s := strings.TrimSpace(text)

	if h, ok := hexDigits(s); ok {
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return 0, parseFailed(text)
		}
		return uint32(v), nil
	}

	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, parseFailed(text)
	}

	return math.Float32bits(float32(f)), nil
}

// ParseDouble is the 64 bit equivalent of ParseFloat().
func ParseDouble(text string) (uint64, error) {
	s := strings.TrimSpace(text)

	if h, ok := hexDigits(s); ok {
		v, err := strconv.ParseUint(h, 16, 64)
		if err != nil {
			return 0, parseFailed(text)
		}
		return v, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, parseFailed(text)
	}

	return math.Float64bits(f), nil
}
