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
	"github.com/jetsetilly/gopher8/hardware/cpu"
)

// Step the emulation by a single CPU instruction. The clocks are not
// consulted and the timers are not ticked.
func (ch *Chip8) Step() (cpu.Result, error) {
	res, err := ch.CPU.Step(ch.Mem, ch.Display, ch.Keypad)
	if err == nil {
		ch.instructions++
	}
	return res, err
}

// Instructions returns the number of instructions executed since the last
// reset.
func (ch *Chip8) Instructions() int {
	return ch.instructions
}

// Pass performs a single pass of the emulation. Changes to the clock rate
// preferences are applied first and then everything that is due according
// to the clocks is performed in order:
//
//   - the keypad is replaced from the input source if the poll clock has
//     ticked
//   - the CPU is stepped once for every tick of the CPU clock
//   - the timers are ticked once for every tick of the timer clock and a
//     frame of audio is generated for each tick
//   - the renderers are updated if any instruction changed the display
//
// Returns true if the display changed.
func (ch *Chip8) Pass() (bool, error) {
	ch.updateRates()

	if ch.PollClock.ConsumeTicks() > 0 {
		ch.Keypad.Replace(ch.input, ch.Instance.Prefs.GetKeyMap())
	}

	var redraw bool

	for n := ch.CPUClock.ConsumeTicks(); n > 0; n-- {
		res, err := ch.Step()
		if err != nil {
			return redraw, err
		}
		redraw = redraw || res.Redraw
	}

	for n := ch.TimerClock.ConsumeTicks(); n > 0; n-- {
		if _, err := ch.Beeper.Frame(ch.CPU.ST); err != nil {
			return redraw, err
		}
		ch.CPU.TickTimers()
	}

	if redraw {
		for _, r := range ch.renderers {
			if err := r.UpdateDisplay(ch.Display); err != nil {
				return redraw, err
			}
		}
	}

	return redraw, nil
}
