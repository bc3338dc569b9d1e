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

// Package beeper generates the sound of the CHIP-8. The only sound is a
// single tone that plays while the sound timer is greater than zero.
//
// Audio is generated one frame at a time, one frame for every tick of the
// timer clock. The length of a frame depends on the rate of the timer clock so
// that SampleFreq samples are always generated for every second of emulated
// time. Frames are sent to every attached Mixer. Samples are unsigned 8-bit
// values with silence at the midpoint.
package beeper

import (
	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/hardware/preferences"
)

// SampleFreq is the number of samples generated per second.
const SampleFreq = 48000

// SamplesPerFrame is the number of samples generated per tick of the timer
// clock at the standard rate.
const SamplesPerFrame = SampleFreq / int(clocks.Timer)

// sample values
const (
	silence   = 0x80
	amplitude = 0x20
)

// Mixer is implemented by anything that can play or record the beeper.
type Mixer interface {
	SetAudio(samples []uint8) error

	// some mixers may need to conclude and/or dispose of resources gently.
	// the Mixer should be considered unusable after EndMixing() has been
	// called
	EndMixing() error
}

// Beeper generates the tone.
type Beeper struct {
	prefs  *preferences.Preferences
	mixers []Mixer

	// the frame buffer is reused for every frame. it grows as required
	frame []uint8

	// the timer rate used to size the most recent frame. the number of frames
	// and samples since the rate was last changed are used to decide the
	// length of the next frame
	rate    float64
	frames  int
	samples int

	// position in the square wave, in samples. the wave is continuous across
	// frames
	phase float64

	// whether the tone was sounding in the most recent frame
	active bool
}

// NewBeeper is the preferred method of initialisation for the Beeper type.
func NewBeeper(prefs *preferences.Preferences) *Beeper {
	return &Beeper{
		prefs: prefs,
		frame: make([]uint8, SamplesPerFrame),
	}
}

// AddMixer adds a Mixer to the list of mixers that receive audio frames.
func (bp *Beeper) AddMixer(m Mixer) {
	bp.mixers = append(bp.mixers, m)
}

// Active returns true if the tone was sounding in the most recent frame.
func (bp *Beeper) Active() bool {
	return bp.active
}

// Frame generates one frame of audio for the value of the sound timer and
// sends it to the mixers. The returned slice is reused on the next call.
func (bp *Beeper) Frame(soundTimer uint8) ([]uint8, error) {
	bp.active = soundTimer > 0
	bp.resize()

	if !bp.active {
		for i := range bp.frame {
			bp.frame[i] = silence
		}
		bp.phase = 0
	} else {
		// number of samples in half a cycle of the tone
		half := SampleFreq / bp.prefs.Tone.Get().(float64) / 2

		for i := range bp.frame {
			if int(bp.phase/half)%2 == 0 {
				bp.frame[i] = silence + amplitude
			} else {
				bp.frame[i] = silence - amplitude
			}
			bp.phase++
			if bp.phase >= half*2 {
				bp.phase -= half * 2
			}
		}
	}

	if len(bp.frame) == 0 {
		return bp.frame, nil
	}

	for _, m := range bp.mixers {
		if err := m.SetAudio(bp.frame); err != nil {
			return bp.frame, err
		}
	}

	return bp.frame, nil
}

// resize the frame buffer for the next frame. the length is chosen so that the
// total number of samples for a run of frames never drifts from SampleFreq per
// second of timer ticks
func (bp *Beeper) resize() {
	rate := bp.prefs.TimerClock.Get().(float64)
	if rate <= 0 {
		rate = clocks.Timer
	}
	if rate != bp.rate {
		bp.rate = rate
		bp.frames = 0
		bp.samples = 0
	}

	bp.frames++
	total := int(float64(bp.frames) * SampleFreq / bp.rate)
	n := total - bp.samples
	bp.samples = total

	if n > cap(bp.frame) {
		bp.frame = make([]uint8, n)
	}
	bp.frame = bp.frame[:n]
}

// EndMixing calls EndMixing() for every attached Mixer. The first error is
// returned but every Mixer is called regardless.
func (bp *Beeper) EndMixing() error {
	var first error
	for _, m := range bp.mixers {
		if err := m.EndMixing(); err != nil && first == nil {
			first = err
		}
	}
	bp.mixers = bp.mixers[:0]
	return first
}
