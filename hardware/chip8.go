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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/beeper"
	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
)

// Renderer implementations present the display. UpdateDisplay() is called
// after a pass of the emulation in which the display changed.
type Renderer interface {
	UpdateDisplay(disp *display.Display) error
}

// Chip8 struct is the main container for the emulated components of the
// CHIP-8 interpreter.
type Chip8 struct {
	Instance *instance.Instance

	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *display.Display
	Keypad  *input.Keypad
	Beeper  *beeper.Beeper

	// the three timing domains
	CPUClock   *clocks.Clock
	TimerClock *clocks.Clock
	PollClock  *clocks.Clock

	src       clocks.TimeSource
	renderers []Renderer
	input     input.Source

	// the emulation was paused during Run(). the clocks will be rebased when
	// the emulation resumes
	paused bool

	// logging is allowed by default
	logging bool

	// number of instructions executed since the last reset
	instructions int
}

// NewChip8 creates a new Chip8 and everything associated with the hardware.
// If prefs is nil then transient preferences are used. If src is nil then
// the wall clock is used.
func NewChip8(p *preferences.Preferences, src clocks.TimeSource) (*Chip8, error) {
	if src == nil {
		src = clocks.RealTime{}
	}

	ch := &Chip8{
		Instance: instance.NewInstance(p),
		Mem:      memory.NewMemory(),
		Display:  display.NewDisplay(),
		Keypad:   &input.Keypad{},
		src:      src,
		logging:  true,
	}

	ch.CPU = cpu.NewCPU(ch.Instance)
	ch.Beeper = beeper.NewBeeper(ch.Instance.Prefs)

	ch.CPUClock = clocks.NewClock(ch.Instance.Prefs.CPUClock.Get().(float64), src)
	ch.TimerClock = clocks.NewClock(ch.Instance.Prefs.TimerClock.Get().(float64), src)
	ch.PollClock = clocks.NewClock(ch.Instance.Prefs.PollClock.Get().(float64), src)

	return ch, nil
}

// updateRates sets the rate of each clock from the preferences. the
// preferences may be shared with other instances so each instance checks for
// changes for itself, rather than with a preference hook
func (ch *Chip8) updateRates() {
	update := func(clk *clocks.Clock, hz float64) {
		if hz != clk.Rate() {
			clk.SetRate(hz)
		}
	}
	update(ch.CPUClock, ch.Instance.Prefs.CPUClock.Get().(float64))
	update(ch.TimerClock, ch.Instance.Prefs.TimerClock.Get().(float64))
	update(ch.PollClock, ch.Instance.Prefs.PollClock.Get().(float64))
}

// AllowLogging implements the logger.Permission interface.
func (ch *Chip8) AllowLogging() bool {
	return ch.logging
}

// SetLogging allows or disallows log entries made by the emulation. Log
// entries made with logger.Allow are not affected.
func (ch *Chip8) SetLogging(allow bool) {
	ch.logging = allow
}

// LoadProgram copies the program into memory at the program origin and
// resets the emulation.
func (ch *Chip8) LoadProgram(data []byte) error {
	ch.Reset()
	if err := ch.Mem.LoadProgram(data); err != nil {
		return curated.Errorf("chip8: %v", err)
	}
	logger.Logf(ch, "chip8", "loaded program of %d bytes", len(data))
	return nil
}

// Reset the emulation. Memory is cleared and the font reloaded. The CPU,
// display and keypad are all reset and the clocks are rebased.
func (ch *Chip8) Reset() {
	ch.Mem.Reset()
	ch.CPU.Reset()
	ch.Display.Clear()
	ch.Keypad.Reset()
	ch.instructions = 0
	ch.rebase()
}

// AddRenderer adds a Renderer implementation to the list of renderers that
// are updated when the display changes.
func (ch *Chip8) AddRenderer(r Renderer) {
	for _, o := range ch.renderers {
		if o == r {
			return
		}
	}
	ch.renderers = append(ch.renderers, r)
}

// AddAudioMixer adds a Mixer implementation to the list of mixers that
// receive audio from the beeper.
func (ch *Chip8) AddAudioMixer(m beeper.Mixer) {
	ch.Beeper.AddMixer(m)
}

// SetInputSource sets the source of keypresses. The keypad is replaced from
// the source on every tick of the poll clock. A nil source releases every
// key.
func (ch *Chip8) SetInputSource(src input.Source) {
	ch.input = src
}

// EndMixing should be called when the emulation is finished with. Every
// attached audio mixer is told to conclude.
func (ch *Chip8) EndMixing() error {
	if err := ch.Beeper.EndMixing(); err != nil {
		return curated.Errorf("chip8: %v", err)
	}
	return nil
}

func (ch *Chip8) rebase() {
	ch.CPUClock.Rebase()
	ch.TimerClock.Rebase()
	ch.PollClock.Rebase()
}
