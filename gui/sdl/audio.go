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

package sdl

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/beeper"
	"github.com/veandco/go-sdl2/sdl"
)

// the number of samples requested from the audio device in each callback.
// the precise value is not critical
const bufferLength = 512

// the maximum amount of audio (in bytes) that is allowed to be queued. any
// more than this and new audio is dropped. this prevents the sound lagging
// behind the display if the emulation runs faster than the audio device
const maxQueued = beeper.SamplesPerFrame * 4

// Audio implements the beeper.Mixer interface. Audio is played through the
// default SDL audio device.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
}

// NewAudio is the preferred method of initialisation for the Audio type. SDL
// must have been initialised with audio support, as it is by NewSDL().
func NewAudio() (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     beeper.SampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf("sdl: audio: %v", err)
	}

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio implements the beeper.Mixer interface.
func (aud *Audio) SetAudio(samples []uint8) error {
	if sdl.GetQueuedAudioSize(aud.id) > maxQueued {
		return nil
	}
	err := sdl.QueueAudio(aud.id, samples)
	if err != nil {
		return curated.Errorf("sdl: audio: %v", err)
	}
	return nil
}

// EndMixing implements the beeper.Mixer interface.
func (aud *Audio) EndMixing() error {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	return nil
}
