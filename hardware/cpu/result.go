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

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Result of a single call to Step().
type Result struct {
	// the address the instruction was fetched from
	Address uint16

	// the decoded instruction
	Opcode instructions.Opcode

	// how the program counter was changed
	Directive Directive

	// the display was changed and should be presented again
	Redraw bool
}

func (r Result) String() string {
	return fmt.Sprintf("%03x %04x %-16s %s", r.Address, r.Opcode.Word, r.Opcode, r.Directive)
}
