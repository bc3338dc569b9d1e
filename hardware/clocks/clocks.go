// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package clocks converts elapsed time into a number of ticks at a fixed
// rate. The emulation uses three clocks: one for the rate at which CPU
// instructions are executed, one for the rate at which the timers are
// decremented and one for the rate at which the input is polled.
//
// A Clock never drifts. When ticks are consumed the reference point of the
// clock advances by exactly the duration of those ticks, so any time left
// over is carried forward to the next call to ConsumeTicks().
//
// Time is taken from a TimeSource. RealTime is the wall clock. ManualTime
// only advances when told to and is useful for testing.
package clocks

import (
	"time"
)

// Standard clock rates in Hz.
const (
	CPU   = 500.0
	Timer = 60.0
	Poll  = 10.0
)

// Clock measures elapsed time in ticks of a fixed period.
type Clock struct {
	src    TimeSource
	hz     float64
	period time.Duration
	ref    time.Time
}

// NewClock is the preferred method of initialisation for the Clock type. The
// rate is in Hz. A nil TimeSource means the wall clock.
func NewClock(hz float64, src TimeSource) *Clock {
	if src == nil {
		src = RealTime{}
	}
	clk := &Clock{src: src}
	clk.SetRate(hz)
	clk.Rebase()
	return clk
}

// SetRate changes the rate of the clock. A rate of zero or less is ignored.
// The reference point is not changed.
func (clk *Clock) SetRate(hz float64) {
	if hz <= 0 {
		return
	}
	clk.hz = hz
	clk.period = time.Duration(1000000/hz) * time.Microsecond
	if clk.period <= 0 {
		clk.period = time.Microsecond
	}
}

// Rate returns the rate of the clock in Hz.
func (clk *Clock) Rate() float64 {
	return clk.hz
}

// Period returns the duration of a single tick.
func (clk *Clock) Period() time.Duration {
	return clk.period
}

// Rebase sets the reference point of the clock to now. Any pending ticks are
// discarded.
func (clk *Clock) Rebase() {
	clk.ref = clk.src.Now()
}

// ConsumeTicks returns the number of whole ticks that have elapsed since the
// reference point and advances the reference point by that many ticks.
func (clk *Clock) ConsumeTicks() int {
	elapsed := clk.src.Now().Sub(clk.ref)
	if elapsed < clk.period {
		return 0
	}
	n := int(elapsed / clk.period)
	clk.ref = clk.ref.Add(time.Duration(n) * clk.period)
	return n
}

// UntilNext returns the time remaining until the next tick is due. Zero if a
// tick is already due.
func (clk *Clock) UntilNext() time.Duration {
	d := clk.period - clk.src.Now().Sub(clk.ref)
	if d < 0 {
		return 0
	}
	return d
}
