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

package govern_test

import (
	"testing"

	"github.com/regwatch/regwatch/govern"
	"github.com/regwatch/regwatch/test"
)

func TestRunMode(t *testing.T) {
	test.ExpectSuccess(t, govern.SingleStep.Highlights())
	test.ExpectSuccess(t, govern.Timed.Highlights())
	test.ExpectFailure(t, govern.Unlimited.Highlights())

	for _, m := range []govern.RunMode{govern.SingleStep, govern.Timed, govern.Unlimited} {
		p, err := govern.ParseRunMode(m.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, p, m)
	}

	p, err := govern.ParseRunMode(" step ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, govern.SingleStep)

	_, err = govern.ParseRunMode("fast")
	test.ExpectFailure(t, err)
}
