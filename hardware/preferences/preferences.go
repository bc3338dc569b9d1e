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

package preferences

import (
	"sync/atomic"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/resources"
)

// Default values.
const (
	DefaultCPUClock   = 500.0
	DefaultTimerClock = 60.0
	DefaultPollClock  = 10.0
	DefaultTone       = 440.0
)

// Preferences for the emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// rate of each clock in Hz
	CPUClock   prefs.Float
	TimerClock prefs.Float
	PollClock  prefs.Float

	// unrecognised instructions are a fault rather than a no-op
	Strict prefs.Bool

	// SUB and SUBN wrap modulo 256 and set VF to NOT borrow. the default is
	// to saturate at zero
	WrappingSub prefs.Bool

	// log every instruction as it is executed
	Trace prefs.Bool

	// pitch of the beeper in Hz
	Tone prefs.Float

	// the mapping of logical keys to physical keys. see input.ParseKeyMap()
	KeyMap prefs.String

	// the key map parsed from KeyMap. updated by the KeyMap post hook
	keyMap atomic.Value

	// colours of the display. the value is a display.Palette and can be set
	// with a Palette or with a string accepted by display.ParsePalette()
	Palette *prefs.Generic
	palette atomic.Value

	// seed for the random number generator. zero means seed from the time
	RandSeed prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resource directory.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	return newPreferences(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() but values are
// loaded from the named file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	return newPreferences(pth)
}

// NewTransientPreferences returns preferences with default values that are
// never loaded from or saved to disk. Values on the command line stack are
// not used.
func NewTransientPreferences() *Preferences {
	p := &Preferences{}
	p.setHooks()
	p.SetDefaults()
	return p
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.setHooks()
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.cpu.clock", &p.CPUClock)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.timer.clock", &p.TimerClock)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.input.poll", &p.PollClock)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cpu.strict", &p.Strict)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cpu.wrappingSub", &p.WrappingSub)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cpu.trace", &p.Trace)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.beeper.tone", &p.Tone)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.input.keymap", &p.KeyMap)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.display.palette", p.Palette)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.random.seed", &p.RandSeed)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

// clock rates must be positive and the keymap must be valid. the palette
// preference is also created here because it needs somewhere to store its value
func (p *Preferences) setHooks() {
	positive := func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return curated.Errorf("preferences: clock rate must be positive (%v)", v)
		}
		return nil
	}
	p.CPUClock.SetHookPre(positive)
	p.TimerClock.SetHookPre(positive)
	p.PollClock.SetHookPre(positive)
	p.Tone.SetHookPre(positive)

	p.KeyMap.SetHookPre(func(v prefs.Value) error {
		_, err := input.ParseKeyMap(v.(string))
		return err
	})
	p.KeyMap.SetHookPost(func(v prefs.Value) error {
		km, err := input.ParseKeyMap(v.(string))
		if err != nil {
			return err
		}
		p.keyMap.Store(km)
		return nil
	})

	p.Palette = prefs.NewGeneric(
		func(v prefs.Value) error {
			switch v := v.(type) {
			case display.Palette:
				p.palette.Store(v)
			case string:
				pal, err := display.ParsePalette(v)
				if err != nil {
					return err
				}
				p.palette.Store(pal)
			default:
				return curated.Errorf("preferences: cannot use %T as a palette", v)
			}
			return nil
		},
		func() prefs.Value {
			return p.GetPalette()
		},
	)
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.CPUClock.Set(DefaultCPUClock)
	p.TimerClock.Set(DefaultTimerClock)
	p.PollClock.Set(DefaultPollClock)
	p.Strict.Set(false)
	p.WrappingSub.Set(false)
	p.Trace.Set(false)
	p.Tone.Set(DefaultTone)
	p.KeyMap.Set(input.DefaultKeyMap.String())
	p.Palette.Set(display.DefaultPalette)
	p.RandSeed.Set(0)
}

// GetKeyMap returns the key map from the KeyMap string.
func (p *Preferences) GetKeyMap() input.KeyMap {
	if km, ok := p.keyMap.Load().(input.KeyMap); ok {
		return km
	}
	return input.DefaultKeyMap
}

// GetPalette returns the current value of the Palette preference.
func (p *Preferences) GetPalette() display.Palette {
	if pal, ok := p.palette.Load().(display.Palette); ok {
		return pal
	}
	return display.DefaultPalette
}

// Load preferences from disk. Transient preferences are unaffected.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save preferences to disk. Transient preferences are never saved.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return curated.Errorf("preferences: transient preferences cannot be saved")
	}
	return p.dsk.Save()
}
