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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// execute the instruction. returns the program counter directive and whether
// the display was changed.
func (mc *CPU) execute(op instructions.Opcode, mem Memory, disp Display, keys Keypad) (Directive, bool, error) {
	vx := &mc.V[op.X]
	vy := mc.V[op.Y]

	switch op.Kind {
	case instructions.CLS:
		disp.Clear()
		return next, true, nil

	case instructions.RET:
		addr, err := mc.pop()
		if err != nil {
			return next, false, err
		}

		// the stack holds the address of the CALL instruction
		return jump(addr + 2), false, nil

	case instructions.SYS:
		return next, false, nil

	case instructions.JP:
		return jump(op.NNN), false, nil

	case instructions.CALL:
		if err := mc.push(mc.PC); err != nil {
			return next, false, err
		}
		return jump(op.NNN), false, nil

	case instructions.SE:
		return skipIf(*vx == op.KK), false, nil

	case instructions.SNE:
		return skipIf(*vx != op.KK), false, nil

	case instructions.SER:
		return skipIf(*vx == vy), false, nil

	case instructions.SNER:
		return skipIf(*vx != vy), false, nil

	case instructions.LD:
		*vx = op.KK

	case instructions.ADD:
		*vx += op.KK

	case instructions.LDR:
		*vx = vy

	case instructions.OR:
		*vx |= vy

	case instructions.AND:
		*vx &= vy

	case instructions.XOR:
		*vx ^= vy

	// the flag is written before the result for all arithmetic instructions.
	// if the destination register is VF then the result is what remains
	case instructions.ADDR:
		sum := uint16(*vx) + uint16(vy)
		mc.V[0xf] = flag(sum > 0xff)
		*vx = uint8(sum)

	case instructions.SUB:
		*vx = mc.subtract(*vx, vy)

	case instructions.SUBN:
		*vx = mc.subtract(vy, *vx)

	case instructions.SHR:
		v := *vx
		mc.V[0xf] = v & 0x01
		*vx = v >> 1

	case instructions.SHL:
		v := *vx
		mc.V[0xf] = v >> 7
		*vx = v << 1

	case instructions.LDI:
		mc.I = op.NNN

	case instructions.JPV0:
		return jump(op.NNN + uint16(mc.V[0])), false, nil

	case instructions.RND:
		*vx = mc.instance.Random.Byte() & op.KK

	case instructions.DRW:
		sprite, err := mem.ReadSlice(mc.I, int(op.N))
		if err != nil {
			return next, false, err
		}
		mc.V[0xf] = flag(disp.Draw(*vx, vy, sprite))
		return next, true, nil

	// there is no key for values of Vx above 0xf. such a key is never held
	case instructions.SKP:
		return skipIf(*vx <= 0x0f && keys.Held(*vx)), false, nil

	case instructions.SKNP:
		return skipIf(*vx > 0x0f || !keys.Held(*vx)), false, nil

	case instructions.LDVDT:
		*vx = mc.DT

	case instructions.LDK:
		k, ok := keys.Lowest()
		if !ok {
			return wait, false, nil
		}
		*vx = k

	case instructions.LDDT:
		mc.DT = *vx

	case instructions.LDST:
		mc.ST = *vx

	case instructions.ADDI:
		mc.I += uint16(*vx)

	case instructions.LDF:
		mc.I = memory.GlyphAddress(*vx)

	case instructions.LDB:
		v := *vx
		if err := mem.WriteSlice(mc.I, []uint8{v / 100, (v / 10) % 10, v % 10}); err != nil {
			return next, false, err
		}

	case instructions.LDM:
		if err := mem.WriteSlice(mc.I, mc.V[:op.X+1]); err != nil {
			return next, false, err
		}

	case instructions.LDVM:
		data, err := mem.ReadSlice(mc.I, int(op.X)+1)
		if err != nil {
			return next, false, err
		}
		copy(mc.V[:], data)

	default:
		if mc.instance.Prefs.Strict.Get().(bool) {
			return next, false, curated.Errorf(UnknownOpcode, op.Word)
		}
	}

	return next, false, nil
}

// subtract b from a and set the flag register. the behaviour depends on the
// WrappingSub preference.
func (mc *CPU) subtract(a uint8, b uint8) uint8 {
	if mc.instance.Prefs.WrappingSub.Get().(bool) {
		mc.V[0xf] = flag(a >= b)
		return a - b
	}

	// saturating subtraction
	if a > b {
		mc.V[0xf] = 1
		return a - b
	}
	mc.V[0xf] = 0
	return 0
}

func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
