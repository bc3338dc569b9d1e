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

// Package terminal is a frontend for the emulation that runs entirely inside
// a text terminal. The display is drawn with ANSI colour sequences, two
// pixels to a character cell, and keypresses are read from the terminal in
// raw mode.
//
// Terminals do not report when a key is released so a key is considered to
// be held for a short time after it has been pressed. Holding a key down will
// cause the terminal to repeat the key and so it will remain held.
//
// The space bar pauses and resumes the emulation. The escape key and CTRL-C
// both end the emulation.
package terminal
