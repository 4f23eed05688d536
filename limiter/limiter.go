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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate. It is used to pace the simulated program in the Timed run mode.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewLimiter(30)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		if err := lim.Wait(ctx); err != nil {
//			return err
//		}
//		step()
//	}
package limiter

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Limiter will trigger a fixed number of times per second.
type Limiter struct {
	period atomic.Int64

	tick chan bool
	done chan bool
	stop sync.Once
}

// NewLimiter is the preferred method of initialisation for Limiter type.
func NewLimiter(perSecond int) (*Limiter, error) {
	lim := &Limiter{
		tick: make(chan bool),
		done: make(chan bool),
	}

	if err := lim.SetLimit(perSecond); err != nil {
		return nil, err
	}

	// run ticker concurrently
	go func() {
		adjusted := time.Duration(lim.period.Load())
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.done:
				return
			}

			time.Sleep(adjusted)

			// correct the sleep for the overshoot of the previous period
			period := time.Duration(lim.period.Load())
			nt := time.Now()
			adjusted -= nt.Sub(t) - period
			if adjusted < 0 || adjusted > period*2 {
				adjusted = period
			}
			t = nt
		}
	}()

	return lim, nil
}

// SetLimit changes the rate at which the Limiter triggers.
func (lim *Limiter) SetLimit(perSecond int) error {
	if perSecond <= 0 {
		return fmt.Errorf("limiter: rate must be positive: %d", perSecond)
	}
	lim.period.Store(int64(time.Second / time.Duration(perSecond)))
	return nil
}

// Period returns the time between triggers.
func (lim *Limiter) Period() time.Duration {
	return time.Duration(lim.period.Load())
}

// Wait will block until the next trigger or until the context is done.
func (lim *Limiter) Wait(ctx context.Context) error {
	select {
	case <-lim.done:
		return fmt.Errorf("limiter: stopped")
	default:
	}

	select {
	case <-lim.tick:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-lim.done:
		return fmt.Errorf("limiter: stopped")
	}
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// Stop the Limiter. Calls to Wait() after Stop() return an error
// immediately.
func (lim *Limiter) Stop() {
	lim.stop.Do(func() {
		close(lim.done)
	})
}
