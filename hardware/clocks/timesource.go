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

package clocks

import (
	"sync"
	"time"
)

// TimeSource is the source of the current time for a Clock.
type TimeSource interface {
	Now() time.Time

	// Sleep for the duration. The time returned by Now() should have
	// advanced by at least that much when Sleep() returns
	Sleep(d time.Duration)
}

// RealTime implements the TimeSource interface with the wall clock.
type RealTime struct{}

// Now implements the TimeSource interface.
func (RealTime) Now() time.Time {
	return time.Now()
}

// Sleep implements the TimeSource interface.
func (RealTime) Sleep(d time.Duration) {
	time.Sleep(d)
}

// ManualTime implements the TimeSource interface with a time that only
// changes when Advance() or Sleep() is called. It is safe for concurrent use.
type ManualTime struct {
	crit sync.Mutex
	now  time.Time
}

// NewManualTime is the preferred method of initialisation for the ManualTime
// type.
func NewManualTime() *ManualTime {
	return &ManualTime{
		now: time.Unix(0, 0),
	}
}

// Now implements the TimeSource interface.
func (mt *ManualTime) Now() time.Time {
	mt.crit.Lock()
	defer mt.crit.Unlock()
	return mt.now
}

// Advance the time by the duration.
func (mt *ManualTime) Advance(d time.Duration) {
	mt.crit.Lock()
	defer mt.crit.Unlock()
	mt.now = mt.now.Add(d)
}

// Sleep implements the TimeSource interface. It does not block and is the
// same as calling Advance().
func (mt *ManualTime) Sleep(d time.Duration) {
	mt.Advance(d)
}
