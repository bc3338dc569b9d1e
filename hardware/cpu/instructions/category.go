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

package instructions

// Category is a broad classification of the effect of an instruction.
type Category int

// List of valid categories.
const (
	Misc Category = iota
	Display
	Flow
	Subroutine
	Skip
	Arithmetic
	Memory
	Timer
	Input
)

func (c Category) String() string {
	switch c {
	case Display:
		return "Display"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Skip:
		return "Skip"
	case Arithmetic:
		return "Arithmetic"
	case Memory:
		return "Memory"
	case Timer:
		return "Timer"
	case Input:
		return "Input"
	}
	return "Misc"
}

// Category returns the category for the kind of instruction.
func (k Kind) Category() Category {
	switch k {
	case CLS, DRW:
		return Display
	case JP, JPV0:
		return Flow
	case CALL, RET:
		return Subroutine
	case SE, SNE, SER, SNER:
		return Skip
	case LD, ADD, LDR, OR, AND, XOR, ADDR, SUB, SHR, SUBN, SHL, RND:
		return Arithmetic
	case LDI, ADDI, LDF, LDB, LDM, LDVM:
		return Memory
	case LDVDT, LDDT, LDST:
		return Timer
	case SKP, SKNP, LDK:
		return Input
	}
	return Misc
}
