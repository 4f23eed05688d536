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

package gateway

import (
	"sync"
	"sync/atomic"

	"github.com/regwatch/regwatch/assert"
	"github.com/regwatch/regwatch/curated"
)

// Reentry is the pattern of the curated error used as the panic value when
// the gateway is acquired by the goroutine that already holds it.
const Reentry = "gateway: re-entrant acquisition by goroutine %d"

// Gateway serialises mutations of simulator state.
type Gateway struct {
	crit sync.Mutex

	// goroutine ID of the current holder of the gateway. zero if the gateway
	// is not held
	owner atomic.Uint64

	// number of times the gateway has been acquired
	acquisitions atomic.Uint64
}

// NewGateway is the preferred method of initialisation for the Gateway type.
func NewGateway() *Gateway {
	return &Gateway{}
}

// WithLock runs the function with the gateway held. The gateway is released
// on every exit path of the function, including a panic. The error returned
// by the function is returned by WithLock().
func (g *Gateway) WithLock(fn func() error) error {
	id := assert.GetGoRoutineID()
	if g.owner.Load() == id {
		panic(curated.Errorf(Reentry, id))
	}

	g.crit.Lock()
	g.owner.Store(id)
	g.acquisitions.Add(1)

	defer func() {
		g.owner.Store(0)
		g.crit.Unlock()
	}()

	return fn()
}

// Held returns true if the calling goroutine currently holds the gateway.
func (g *Gateway) Held() bool {
	return g.owner.Load() == assert.GetGoRoutineID()
}

// Acquisitions returns the number of times the gateway has been acquired.
func (g *Gateway) Acquisitions() uint64 {
	return g.acquisitions.Load()
}
