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

// Package cpu emulates the CHIP-8 interpreter's fetch-decode-execute cycle.
//
// The Step() function executes exactly one instruction. It fetches the
// instruction word at the program counter, decodes it with the instructions
// package and then executes it against the Memory, Display and Keypad
// arguments. The state of those three components is owned by the caller.
// The CPU owns only the registers, the stack and the timers.
//
// Every instruction handler returns a Directive that says how the program
// counter should be updated. The "wait for key" instruction (LD Vx, K)
// returns the Wait directive until a key is held, which leaves the program
// counter unchanged so that the instruction is executed again on the next
// step.
//
// The timers are decremented by TickTimers(). This is independent of Step()
// and should be called at the rate of the timer clock (60Hz).
//
// Faults, such as stack overflow or a memory access outside of the address
// space, are returned as curated errors. The Fault pattern wraps the
// underlying error and includes a dump of the registers. The program counter
// is not advanced when a fault occurs.
package cpu
