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

// Kind identifies the instruction.
type Kind int

// List of instruction kinds. The comment is the instruction word pattern.
const (
	NOP   Kind = iota // unrecognised instruction word
	CLS               // 00E0
	RET               // 00EE
	SYS               // 0nnn
	JP                // 1nnn
	CALL              // 2nnn
	SE                // 3xkk
	SNE               // 4xkk
	SER               // 5xy0
	LD                // 6xkk
	ADD               // 7xkk
	LDR               // 8xy0
	OR                // 8xy1
	AND               // 8xy2
	XOR               // 8xy3
	ADDR              // 8xy4
	SUB               // 8xy5
	SHR               // 8xy6
	SUBN              // 8xy7
	SHL               // 8xyE
	SNER              // 9xy0
	LDI               // Annn
	JPV0              // Bnnn
	RND               // Cxkk
	DRW               // Dxyn
	SKP               // Ex9E
	SKNP              // ExA1
	LDVDT             // Fx07
	LDK               // Fx0A
	LDDT              // Fx15
	LDST              // Fx18
	ADDI              // Fx1E
	LDF               // Fx29
	LDB               // Fx33
	LDM               // Fx55
	LDVM              // Fx65
)

// NumKinds is the number of distinct instruction kinds, including NOP.
const NumKinds = int(LDVM) + 1

// Mnemonic returns the assembler mnemonic for the kind. Several kinds share
// the same mnemonic and are distinguished by their operands.
func (k Kind) Mnemonic() string {
	switch k {
	case CLS:
		return "CLS"
	case RET:
		return "RET"
	case SYS:
		return "SYS"
	case JP, JPV0:
		return "JP"
	case CALL:
		return "CALL"
	case SE, SER:
		return "SE"
	case SNE, SNER:
		return "SNE"
	case LD, LDR, LDI, LDVDT, LDK, LDDT, LDST, LDF, LDB, LDM, LDVM:
		return "LD"
	case ADD, ADDR, ADDI:
		return "ADD"
	case OR:
		return "OR"
	case AND:
		return "AND"
	case XOR:
		return "XOR"
	case SUB:
		return "SUB"
	case SHR:
		return "SHR"
	case SUBN:
		return "SUBN"
	case SHL:
		return "SHL"
	case RND:
		return "RND"
	case DRW:
		return "DRW"
	case SKP:
		return "SKP"
	case SKNP:
		return "SKNP"
	}
	return "NOP"
}

// String returns the name of the kind constant. Unlike Mnemonic() this is
// unique for every kind.
func (k Kind) String() string {
	switch k {
	case CLS:
		return "CLS"
	case RET:
		return "RET"
	case SYS:
		return "SYS"
	case JP:
		return "JP"
	case CALL:
		return "CALL"
	case SE:
		return "SE"
	case SNE:
		return "SNE"
	case SER:
		return "SER"
	case LD:
		return "LD"
	case ADD:
		return "ADD"
	case LDR:
		return "LDR"
	case OR:
		return "OR"
	case AND:
		return "AND"
	case XOR:
		return "XOR"
	case ADDR:
		return "ADDR"
	case SUB:
		return "SUB"
	case SHR:
		return "SHR"
	case SUBN:
		return "SUBN"
	case SHL:
		return "SHL"
	case SNER:
		return "SNER"
	case LDI:
		return "LDI"
	case JPV0:
		return "JPV0"
	case RND:
		return "RND"
	case DRW:
		return "DRW"
	case SKP:
		return "SKP"
	case SKNP:
		return "SKNP"
	case LDVDT:
		return "LDVDT"
	case LDK:
		return "LDK"
	case LDDT:
		return "LDDT"
	case LDST:
		return "LDST"
	case ADDI:
		return "ADDI"
	case LDF:
		return "LDF"
	case LDB:
		return "LDB"
	case LDM:
		return "LDM"
	case LDVM:
		return "LDVM"
	}
	return "NOP"
}
