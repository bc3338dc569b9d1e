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

package beeper_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/beeper"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/test"
)

type mockMixer struct {
	samples []uint8
	ended   bool
	err     error
}

func (m *mockMixer) SetAudio(samples []uint8) error {
	m.samples = append(m.samples, samples...)
	return m.err
}

func (m *mockMixer) EndMixing() error {
	m.ended = true
	return m.err
}

func TestSilence(t *testing.T) {
	bp := beeper.NewBeeper(preferences.NewTransientPreferences())
	mix := &mockMixer{}
	bp.AddMixer(mix)

	frame, err := bp.Frame(0)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, bp.Active())
	test.DemandEquality(t, len(frame), beeper.SamplesPerFrame)
	test.ExpectEquality(t, len(mix.samples), beeper.SamplesPerFrame)

	for _, s := range frame {
		test.DemandEquality(t, s, uint8(0x80))
	}
}

func TestTone(t *testing.T) {
	p := preferences.NewTransientPreferences()
	p.Tone.Set(1000.0)
	bp := beeper.NewBeeper(p)

	frame, err := bp.Frame(10)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bp.Active())

	// at 48kHz a 1kHz tone has a half cycle of 24 samples
	test.ExpectEquality(t, frame[0], frame[23])
	test.ExpectInequality(t, frame[23], frame[24])
	test.ExpectEquality(t, frame[0], frame[48])

	// the wave is symmetrical around silence
	test.ExpectEquality(t, int(frame[0])+int(frame[24]), 0x100)

	// count the transitions. 800 samples is 16.67 cycles of the tone
	transitions := 0
	for i := 1; i < len(frame); i++ {
		if frame[i] != frame[i-1] {
			transitions++
		}
	}
	test.ExpectEquality(t, transitions, 33)
}

func TestFrameLength(t *testing.T) {
	p := preferences.NewTransientPreferences()
	bp := beeper.NewBeeper(p)
	mix := &mockMixer{}
	bp.AddMixer(mix)

	test.DemandSuccess(t, p.TimerClock.Set(30.0))
	frame, err := bp.Frame(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(frame), 1600)

	test.DemandSuccess(t, p.TimerClock.Set(50.0))
	frame, err = bp.Frame(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(frame), 960)

	// frame lengths vary when the rate does not divide the sample frequency
	// but one second of frames is always one second of audio
	test.DemandSuccess(t, p.TimerClock.Set(7.0))
	mix.samples = mix.samples[:0]
	for i := 0; i < 7; i++ {
		_, err = bp.Frame(0)
		test.DemandSuccess(t, err)
	}
	test.ExpectEquality(t, len(mix.samples), beeper.SampleFreq)

	test.DemandSuccess(t, p.TimerClock.Set(60.0))
	frame, err = bp.Frame(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(frame), beeper.SamplesPerFrame)
}

func TestMixerErrors(t *testing.T) {
	bp := beeper.NewBeeper(preferences.NewTransientPreferences())
	a := &mockMixer{err: errors.New("test")}
	b := &mockMixer{}
	bp.AddMixer(a)
	bp.AddMixer(b)

	_, err := bp.Frame(1)
	test.ExpectFailure(t, err)

	err = bp.EndMixing()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, a.ended)
	test.ExpectSuccess(t, b.ended)
}
