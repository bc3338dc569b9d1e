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

// Package hardware is the base package for the CHIP-8 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Chip8 type is the root of the emulation and contains external
// references to all the sub-components of the machine. From here, the
// emulation can either be started to run continuously (with optional
// callback to check for continuation); or it can be stepped one instruction
// at a time.
//
// Timing is governed by three independent clocks. The CPU clock sets the
// rate at which instructions are executed, the timer clock sets the rate at
// which the delay and sound timers are decremented, and the poll clock sets
// the rate at which the keypad is read from the input source.
//
// Presentation of the display, playback of the sound and the source of
// keypresses are all attached to the Chip8 from outside the package. The
// hardware itself never touches a window, a file or a sound device.
package hardware
