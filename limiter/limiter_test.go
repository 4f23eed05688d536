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

package limiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/regwatch/regwatch/limiter"
	"github.com/regwatch/regwatch/test"
)

func TestLimiter(t *testing.T) {
	_, err := limiter.NewLimiter(0)
	test.ExpectFailure(t, err)

	lim, err := limiter.NewLimiter(100)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	test.ExpectEquality(t, lim.Period(), 10*time.Millisecond)

	start := time.Now()
	for range 5 {
		test.ExpectSuccess(t, lim.Wait(context.Background()))
	}

	// the first tick is immediate so five ticks take at least four periods
	test.ExpectSuccess(t, time.Since(start) >= 30*time.Millisecond)
}

func TestLimiterCancel(t *testing.T) {
	lim, err := limiter.NewLimiter(1)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	// consume the immediate tick
	test.ExpectSuccess(t, lim.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	test.ExpectFailure(t, lim.Wait(ctx))

	lim.Stop()
	test.ExpectFailure(t, lim.Wait(context.Background()))

	// stopping twice is harmless
	lim.Stop()
}
