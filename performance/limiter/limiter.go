// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter paces the emulation against wall clock time.
package limiter

import (
	"time"
)

// Limiter ticks a fixed number of times per second. The emulation should run
// for a fixed number of cycles between each tick.
type Limiter struct {
	interval time.Duration
	tick     chan bool
	quit     chan bool
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The rate is the number of ticks per second and must be greater than zero.
func NewLimiter(rate int) *Limiter {
	lim := &Limiter{
		interval: time.Second / time.Duration(max(rate, 1)),
		tick:     make(chan bool),
		quit:     make(chan bool),
	}

	go func() {
		// the sleep period is adjusted by how late the previous tick was
		adjusted := lim.interval
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}
			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - lim.interval
			adjusted = max(adjusted, 0)
			t = nt
		}
	}()

	return lim
}

// Interval returns the period between ticks.
func (lim *Limiter) Interval() time.Duration {
	return lim.interval
}

// Wait for the next tick.
func (lim *Limiter) Wait() {
	<-lim.tick
}

// HasWaited returns true if a tick was ready. It does not block.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// Stop the limiter. The Wait() function must not be called after Stop().
func (lim *Limiter) Stop() {
	close(lim.quit)
}
