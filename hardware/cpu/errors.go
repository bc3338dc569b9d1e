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

package cpu

// Sentinal error patterns. StackOverflow, StackUnderflow and UnknownOpcode
// are always wrapped by the Fault pattern when returned by Step().
const (
	StackOverflow  = "cpu: stack overflow"
	StackUnderflow = "cpu: stack underflow"
	UnknownOpcode  = "cpu: unknown opcode (%04x)"
	Fault          = "cpu: %v [%s]"
)
