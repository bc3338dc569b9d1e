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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.NewTransientPreferences()
	test.ExpectEquality(t, p.CPUClock.Get().(float64), preferences.DefaultCPUClock)
	test.ExpectEquality(t, p.TimerClock.Get().(float64), preferences.DefaultTimerClock)
	test.ExpectEquality(t, p.PollClock.Get().(float64), preferences.DefaultPollClock)
	test.ExpectFailure(t, p.Strict.Get().(bool))
	test.ExpectFailure(t, p.WrappingSub.Get().(bool))
	test.ExpectEquality(t, p.GetKeyMap(), input.DefaultKeyMap)

	// transient preferences can not be saved
	test.ExpectFailure(t, p.Save())
	test.ExpectSuccess(t, p.Load())
}

func TestValidation(t *testing.T) {
	p := preferences.NewTransientPreferences()
	test.ExpectFailure(t, p.CPUClock.Set(0))
	test.ExpectFailure(t, p.TimerClock.Set(-60))
	test.ExpectEquality(t, p.TimerClock.Get().(float64), preferences.DefaultTimerClock)

	test.ExpectFailure(t, p.KeyMap.Set("ABC"))
	test.ExpectEquality(t, p.GetKeyMap(), input.DefaultKeyMap)

	test.ExpectSuccess(t, p.KeyMap.Set("0123456789ABCDEF"))
	k, ok := p.GetKeyMap().Lookup("A")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, uint8(0xa))
}

func TestFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.CPUClock.Set(1000))
	test.DemandSuccess(t, p.Strict.Set(true))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.CPUClock.Get().(float64), 1000.0)
	test.ExpectSuccess(t, q.Strict.Get().(bool))
}

func TestCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	prefs.PushCommandLineStack("hardware.cpu.wrappingSub::true; hardware.cpu.clock::700")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.WrappingSub.Get().(bool))
	test.ExpectEquality(t, p.CPUClock.Get().(float64), 700.0)
}

func TestPalette(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.GetPalette(), display.DefaultPalette)

	test.ExpectSuccess(t, p.Palette.Set("ff8000,000000"))
	test.ExpectEquality(t, p.GetPalette().Foreground, uint32(0xff8000ff))
	test.ExpectEquality(t, p.Palette.String(), "ff8000ff,000000ff")

	// the previous value is kept if the new value is invalid
	test.ExpectFailure(t, p.Palette.Set("ff8000"))
	test.ExpectFailure(t, p.Palette.Set(10))
	test.ExpectEquality(t, p.GetPalette().Foreground, uint32(0xff8000ff))

	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.GetPalette(), p.GetPalette())

	q.SetDefaults()
	test.ExpectEquality(t, q.GetPalette(), display.DefaultPalette)
}
