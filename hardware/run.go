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

package hardware

import (
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
)

// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// how long to sleep between checks while the emulation is paused
const pausedSleep = 20 * time.Millisecond

// Run the emulation until the continueCheck() function returns the Ending
// state or until an error occurs. Between passes of the emulation the
// goroutine sleeps until the nearest clock is next due.
//
// The CPU is not stepped while continueCheck() returns the Paused state.
// When the emulation resumes the clocks are rebased.
func (ch *Chip8) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running:
			if ch.paused {
				ch.paused = false
				ch.rebase()
			}
			if _, err := ch.Pass(); err != nil {
				return err
			}
		case govern.Paused:
			ch.paused = true
		default:
			return curated.Errorf("chip8: unsupported emulation state (%v) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}

		switch state {
		case govern.Running:
			if !ch.paused {
				ch.src.Sleep(ch.untilNext())
			}
		case govern.Paused:
			ch.src.Sleep(pausedSleep)
		}
	}

	return nil
}

// RunForDuration runs the emulation for the specified amount of emulated
// time. The clocks are used as they are in Run() but there is no sleeping
// between passes. Returns the number of passes performed.
func (ch *Chip8) RunForDuration(d time.Duration, continueCheck func() (govern.State, error)) (int, error) {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	end := ch.src.Now().Add(d)
	passes := 0

	state := govern.Running
	for state == govern.Running && ch.src.Now().Before(end) {
		if _, err := ch.Pass(); err != nil {
			return passes, err
		}
		passes++

		var err error
		state, err = continueCheck()
		if err != nil {
			return passes, err
		}
	}

	return passes, nil
}

// the time until the nearest clock is due
func (ch *Chip8) untilNext() time.Duration {
	return min(ch.CPUClock.UntilNext(), ch.TimerClock.UntilNext(), ch.PollClock.UntilNext())
}
