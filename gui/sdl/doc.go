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

// Package sdl is the windowed frontend for the emulation. It presents the
// display in an SDL window, reads the keyboard and plays the beeper through
// an SDL audio device.
//
// SDL requires that all window handling happens on the main thread. The
// ContinueCheck() function services the SDL event queue and so the emulation
// must be run on the main thread when using this package.
//
// The space bar pauses and resumes the emulation. The escape key and closing
// the window both end the emulation.
package sdl
