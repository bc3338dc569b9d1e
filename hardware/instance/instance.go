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

// Package instance defines those parts of the emulation that might change
// between instances of the Chip8 type, but are not actually the emulated
// hardware itself.
package instance

import (
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/random"
)

// Instance is the collection of values shared by the emulated hardware.
type Instance struct {
	// the preferences of the running instance. can be shared with other
	// running instances of the emulation
	Prefs *preferences.Preferences

	// the source of random numbers for the RND instruction. seeded by the
	// hardware.random.seed preference
	Random *random.Random
}

// NewInstance is the preferred method of initialisation for the Instance
// type. If prefs is nil then transient preferences with default values are
// used.
func NewInstance(prefs *preferences.Preferences) *Instance {
	if prefs == nil {
		prefs = preferences.NewTransientPreferences()
	}
	return &Instance{
		Prefs:  prefs,
		Random: random.NewRandom(int64(prefs.RandSeed.Get().(int))),
	}
}

// Normalise the instance. Preferences are reverted to their defaults and the
// random number generator is given a fixed seed. Useful for reproducible
// runs.
func (ins *Instance) Normalise(seed int64) {
	ins.Prefs.SetDefaults()
	ins.Random.Reseed(seed)
}
