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

import "fmt"

// Opcode is a decoded instruction word.
type Opcode struct {
	Kind Kind

	// register indexes
	X uint8
	Y uint8

	// the low nibble. the number of rows for the DRW instruction
	N uint8

	// the low byte. an immediate value
	KK uint8

	// the low 12 bits. an address
	NNN uint16

	// the instruction word the opcode was decoded from
	Word uint16
}

// Decode the instruction word.
func Decode(word uint16) Opcode {
	op := Opcode{
		Word: word,
		X:    uint8(word>>8) & 0x0f,
		Y:    uint8(word>>4) & 0x0f,
		N:    uint8(word) & 0x0f,
		KK:   uint8(word),
		NNN:  word & 0x0fff,
	}

	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00e0:
			op.Kind = CLS
		case 0x00ee:
			op.Kind = RET
		default:
			op.Kind = SYS
		}
	case 0x1:
		op.Kind = JP
	case 0x2:
		op.Kind = CALL
	case 0x3:
		op.Kind = SE
	case 0x4:
		op.Kind = SNE
	case 0x5:
		if op.N == 0x0 {
			op.Kind = SER
		}
	case 0x6:
		op.Kind = LD
	case 0x7:
		op.Kind = ADD
	case 0x8:
		switch op.N {
		case 0x0:
			op.Kind = LDR
		case 0x1:
			op.Kind = OR
		case 0x2:
			op.Kind = AND
		case 0x3:
			op.Kind = XOR
		case 0x4:
			op.Kind = ADDR
		case 0x5:
			op.Kind = SUB
		case 0x6:
			op.Kind = SHR
		case 0x7:
			op.Kind = SUBN
		case 0xe:
			op.Kind = SHL
		}
	case 0x9:
		if op.N == 0x0 {
			op.Kind = SNER
		}
	case 0xa:
		op.Kind = LDI
	case 0xb:
		op.Kind = JPV0
	case 0xc:
		op.Kind = RND
	case 0xd:
		op.Kind = DRW
	case 0xe:
		switch op.KK {
		case 0x9e:
			op.Kind = SKP
		case 0xa1:
			op.Kind = SKNP
		}
	case 0xf:
		switch op.KK {
		case 0x07:
			op.Kind = LDVDT
		case 0x0a:
			op.Kind = LDK
		case 0x15:
			op.Kind = LDDT
		case 0x18:
			op.Kind = LDST
		case 0x1e:
			op.Kind = ADDI
		case 0x29:
			op.Kind = LDF
		case 0x33:
			op.Kind = LDB
		case 0x55:
			op.Kind = LDM
		case 0x65:
			op.Kind = LDVM
		}
	}

	return op
}

// Operands returns the operand part of the assembly text. An empty string
// for instructions with no operands.
func (op Opcode) Operands() string {
	switch op.Kind {
	case CLS, RET:
		return ""
	case SYS, JP, CALL:
		return fmt.Sprintf("$%03X", op.NNN)
	case SE, SNE, LD, ADD, RND:
		return fmt.Sprintf("V%X, $%02X", op.X, op.KK)
	case SER, SNER, LDR, OR, AND, XOR, ADDR, SUB, SUBN:
		return fmt.Sprintf("V%X, V%X", op.X, op.Y)
	case SHR, SHL, SKP, SKNP:
		return fmt.Sprintf("V%X", op.X)
	case LDI:
		return fmt.Sprintf("I, $%03X", op.NNN)
	case JPV0:
		return fmt.Sprintf("V0, $%03X", op.NNN)
	case DRW:
		return fmt.Sprintf("V%X, V%X, $%X", op.X, op.Y, op.N)
	case LDVDT:
		return fmt.Sprintf("V%X, DT", op.X)
	case LDK:
		return fmt.Sprintf("V%X, K", op.X)
	case LDDT:
		return fmt.Sprintf("DT, V%X", op.X)
	case LDST:
		return fmt.Sprintf("ST, V%X", op.X)
	case ADDI:
		return fmt.Sprintf("I, V%X", op.X)
	case LDF:
		return fmt.Sprintf("F, V%X", op.X)
	case LDB:
		return fmt.Sprintf("B, V%X", op.X)
	case LDM:
		return fmt.Sprintf("[I], V%X", op.X)
	case LDVM:
		return fmt.Sprintf("V%X, [I]", op.X)
	}

	// unrecognised instructions show the instruction word as data
	return fmt.Sprintf("$%04X", op.Word)
}

// String returns the assembly text for the opcode. For example,
//
//	LD V3, $0A
//	JP $234
//	DRW V1, V2, $3
func (op Opcode) String() string {
	if o := op.Operands(); o != "" {
		return fmt.Sprintf("%s %s", op.Kind.Mnemonic(), o)
	}
	return op.Kind.Mnemonic()
}
