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

// Package input holds the state of the sixteen key hexadecimal keypad.
//
// The Keypad is not updated by individual key events. Instead, the entire
// state is replaced at regular intervals from a Source with the Replace()
// function. A KeyMap maps each of the sixteen logical keys to the symbol
// used by the Source for the physical key.
//
// KeySet is a simple Source implementation that is safe to update from a
// goroutine other than the one running the emulation. The GUI packages use
// it to record key events.
package input
