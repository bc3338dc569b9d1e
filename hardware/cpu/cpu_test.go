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

package cpu_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/test"
)

func TestReset(t *testing.T) {
	mc := cpu.NewCPU(nil)
	test.ExpectEquality(t, mc.PC, uint16(0x200))

	mc.V[3] = 10
	mc.I = 0x300
	mc.DT = 5
	mc.Reset()
	test.ExpectEquality(t, mc.PC, uint16(0x200))
	test.ExpectEquality(t, mc.V[3], uint8(0))
	test.ExpectEquality(t, mc.I, uint16(0))
	test.ExpectEquality(t, mc.DT, uint8(0))
}

func TestEndToEnd(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))

	// LD V0, $05; ADD V0, $03; LD I, $300
	m.load(0x6005, 0x7003, 0xa300)

	m.run(t, 2)
	test.ExpectEquality(t, m.mc.V[0], uint8(8))
	test.ExpectEquality(t, m.mc.I, uint16(0))
	test.ExpectEquality(t, m.mc.PC, uint16(0x204))

	m.step(t)
	test.ExpectEquality(t, m.mc.I, uint16(0x300))
	test.ExpectEquality(t, m.mc.PC, uint16(0x206))
}

func TestResult(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))
	m.load(0x630a)

	res := m.step(t)
	test.ExpectEquality(t, res.Address, uint16(0x200))
	test.ExpectEquality(t, res.Opcode.Kind, instructions.LD)
	test.ExpectEquality(t, res.Directive.Kind, cpu.Next)
	test.ExpectFailure(t, res.Redraw)
	test.ExpectEquality(t, m.mc.LastResult, res)
	test.ExpectEquality(t, res.String(), "200 630a LD V3, $0A       Next")
}

func TestCallAndReturn(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))

	// CALL $300 at $200
	m.load(0x2300)
	m.mem.putInstructions(0x300, 0x00ee)

	res := m.step(t)
	test.ExpectEquality(t, res.Directive.Kind, cpu.Jump)
	test.ExpectEquality(t, m.mc.PC, uint16(0x300))
	test.ExpectEquality(t, m.mc.SP, uint8(1))
	test.ExpectEquality(t, m.mc.Stack[0], uint16(0x200))

	m.step(t)
	test.ExpectEquality(t, m.mc.PC, uint16(0x202))
	test.ExpectEquality(t, m.mc.SP, uint8(0))
}

func TestNestedCalls(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))

	m.load(0x2300)
	m.mem.putInstructions(0x300, 0x2400, 0x00ee)
	m.mem.putInstructions(0x400, 0x00ee)

	m.run(t, 2)
	test.ExpectEquality(t, m.mc.PC, uint16(0x400))
	test.ExpectEquality(t, m.mc.SP, uint8(2))

	m.step(t)
	test.ExpectEquality(t, m.mc.PC, uint16(0x302))
	m.step(t)
	test.ExpectEquality(t, m.mc.PC, uint16(0x202))
	test.ExpectEquality(t, m.mc.SP, uint8(0))
}

func TestStackFaults(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))

	// RET with an empty stack
	m.load(0x00ee)
	_, err := m.mc.Step(m.mem, m.disp, m.keys)
	test.ExpectSuccess(t, curated.Is(err, cpu.Fault))
	test.ExpectSuccess(t, curated.Has(err, cpu.StackUnderflow))
	test.ExpectEquality(t, m.mc.PC, uint16(0x200))

	// a subroutine that calls itself. the seventeenth call overflows
	m.load(0x2200)
	for i := range cpu.StackDepth {
		m.step(t)
		test.ExpectEquality(t, m.mc.SP, uint8(i+1))
	}
	_, err = m.mc.Step(m.mem, m.disp, m.keys)
	test.ExpectSuccess(t, curated.Has(err, cpu.StackOverflow))
	test.ExpectEquality(t, m.mc.SP, uint8(cpu.StackDepth))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "PC=200"))
}

func TestAddressFaults(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))

	// jump to the last address in memory. the fetch runs past the end
	m.load(0x1fff)
	m.step(t)
	test.ExpectEquality(t, m.mc.PC, uint16(0xfff))
	_, err := m.mc.Step(m.mem, m.disp, m.keys)
	test.ExpectSuccess(t, curated.Is(err, cpu.Fault))
	test.ExpectSuccess(t, curated.Has(err, memory.AddressError))
	test.ExpectEquality(t, m.mc.PC, uint16(0xfff))

	// sprite data past the end of memory
	m.load(0xaffe, 0xd005)
	m.step(t)
	_, err = m.mc.Step(m.mem, m.disp, m.keys)
	test.ExpectSuccess(t, curated.Has(err, memory.AddressError))
	test.ExpectEquality(t, m.mc.PC, uint16(0x202))

	// storing registers past the end of memory
	m.load(0xaffe, 0xf255)
	m.step(t)
	_, err = m.mc.Step(m.mem, m.disp, m.keys)
	test.ExpectSuccess(t, curated.Has(err, memory.AddressError))
	m.mem.assert(t, 0xffe, 0x00)
}

func TestLoadAndAdd(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))

	// LD V1, $FF; ADD V1, $02; LD V2, V1
	m.load(0x61ff, 0x7102, 0x8210)
	m.run(t, 3)
	test.ExpectEquality(t, m.mc.V[1], uint8(0x01))
	test.ExpectEquality(t, m.mc.V[2], uint8(0x01))

	// ADD Vx, byte does not change the flag
	test.ExpectEquality(t, m.mc.V[0xf], uint8(0))
}

func TestAddRegisters(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))
	m.load(0x8014)

	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b++ {
			m.mc.PC = 0x200
			m.mc.V[0] = uint8(a)
			m.mc.V[1] = uint8(b)
			m.step(t)

			if m.mc.V[0] != uint8((a+b)%256) {
				t.Fatalf("ADD V0, V1 with %d and %d: V0 is %d", a, b, m.mc.V[0])
			}
			if (m.mc.V[0xf] == 1) != (a+b > 255) {
				t.Fatalf("ADD V0, V1 with %d and %d: VF is %d", a, b, m.mc.V[0xf])
			}
		}
	}
}

func TestSaturatingSub(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))

	// SUB V0, V1
	m.load(0x8015)

	tests := []struct{ a, b, result, vf uint8 }{
		{10, 3, 7, 1},
		{3, 10, 0, 0},
		{5, 5, 0, 0},
		{255, 0, 255, 1},
	}
	for _, tt := range tests {
		tag := fmt.Sprintf("%d-%d", tt.a, tt.b)
		m.mc.PC = 0x200
		m.mc.V[0] = tt.a
		m.mc.V[1] = tt.b
		m.step(t)
		test.ExpectEquality(t, m.mc.V[0], tt.result, tag)
		test.ExpectEquality(t, m.mc.V[0xf], tt.vf, tag)
	}

	// SUBN V0, V1 is V1 - V0
	m.load(0x8017)
	m.mc.V[0] = 3
	m.mc.V[1] = 10
	m.step(t)
	test.ExpectEquality(t, m.mc.V[0], uint8(7))
	test.ExpectEquality(t, m.mc.V[0xf], uint8(1))
}

func TestWrappingSub(t *testing.T) {
	ins := instance.NewInstance(nil)
	ins.Prefs.WrappingSub.Set(true)
	m := newMachine(cpu.NewCPU(ins))

	// SUB V0, V1
	m.load(0x8015)

	tests := []struct{ a, b, result, vf uint8 }{
		{10, 3, 7, 1},
		{3, 10, 249, 0},
		{5, 5, 0, 1},
		{0, 1, 255, 0},
	}
	for _, tt := range tests {
		tag := fmt.Sprintf("%d-%d", tt.a, tt.b)
		m.mc.PC = 0x200
		m.mc.V[0] = tt.a
		m.mc.V[1] = tt.b
		m.step(t)
		test.ExpectEquality(t, m.mc.V[0], tt.result, tag)
		test.ExpectEquality(t, m.mc.V[0xf], tt.vf, tag)
	}

	// SUBN V0, V1 is V1 - V0
	m.load(0x8017)
	m.mc.V[0] = 10
	m.mc.V[1] = 3
	m.step(t)
	test.ExpectEquality(t, m.mc.V[0], uint8(249))
	test.ExpectEquality(t, m.mc.V[0xf], uint8(0))
}

func TestBitwise(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))

	// OR V0, V1
	m.load(0x8011)
	m.mc.V[0], m.mc.V[1], m.mc.V[0xf] = 0xf0, 0x0f, 0x55
	m.step(t)
	test.ExpectEquality(t, m.mc.V[0], uint8(0xff))
	test.ExpectEquality(t, m.mc.V[0xf], uint8(0x55))

	// AND V0, V1
	m.load(0x8012)
	m.mc.V[0], m.mc.V[1] = 0xfc, 0x3f
	m.step(t)
	test.ExpectEquality(t, m.mc.V[0], uint8(0x3c))

	// XOR V0, V1
	m.load(0x8013)
	m.mc.V[0], m.mc.V[1] = 0xff, 0x0f
	m.step(t)
	test.ExpectEquality(t, m.mc.V[0], uint8(0xf0))
}

func TestShifts(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))

	// SHR V0
	m.load(0x8006)
	m.mc.V[0] = 0x05
	m.step(t)
	test.ExpectEquality(t, m.mc.V[0], uint8(0x02))
	test.ExpectEquality(t, m.mc.V[0xf], uint8(1))

	m.load(0x8006)
	m.mc.V[0] = 0x04
	m.step(t)
	test.ExpectEquality(t, m.mc.V[0], uint8(0x02))
	test.ExpectEquality(t, m.mc.V[0xf], uint8(0))

	// SHL V0
	m.load(0x800e)
	m.mc.V[0] = 0x81
	m.step(t)
	test.ExpectEquality(t, m.mc.V[0], uint8(0x02))
	test.ExpectEquality(t, m.mc.V[0xf], uint8(1))

	m.load(0x800e)
	m.mc.V[0] = 0x41
	m.step(t)
	test.ExpectEquality(t, m.mc.V[0], uint8(0x82))
	test.ExpectEquality(t, m.mc.V[0xf], uint8(0))
}

func TestFlagRegisterDestination(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))

	// ADD VF, V1. the carry is written first and then overwritten by the sum
	m.load(0x8f14)
	m.mc.V[0xf] = 0xff
	m.mc.V[1] = 0x02
	m.step(t)
	test.ExpectEquality(t, m.mc.V[0xf], uint8(0x01))

	m.load(0x8f14)
	m.mc.V[0xf] = 0x10
	m.mc.V[1] = 0x20
	m.step(t)
	test.ExpectEquality(t, m.mc.V[0xf], uint8(0x30))

	// SUB VF, V1
	m.load(0x8f15)
	m.mc.V[0xf] = 0x30
	m.mc.V[1] = 0x10
	m.step(t)
	test.ExpectEquality(t, m.mc.V[0xf], uint8(0x20))

	m.load(0x8f15)
	m.mc.V[0xf] = 0x10
	m.mc.V[1] = 0x30
	m.step(t)
	test.ExpectEquality(t, m.mc.V[0xf], uint8(0x00))

	// SHR VF
	m.load(0x8f06)
	m.mc.V[0xf] = 0x05
	m.step(t)
	test.ExpectEquality(t, m.mc.V[0xf], uint8(0x02))

	// SHL VF
	m.load(0x8f0e)
	m.mc.V[0xf] = 0x81
	m.step(t)
	test.ExpectEquality(t, m.mc.V[0xf], uint8(0x02))
}

func TestSkips(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))

	tests := []struct {
		word uint16
		v0   uint8
		v1   uint8
		skip bool
	}{
		{0x3010, 0x10, 0, true},  // SE V0, $10
		{0x3010, 0x11, 0, false}, // SE V0, $10
		{0x4010, 0x10, 0, false}, // SNE V0, $10
		{0x4010, 0x11, 0, true},  // SNE V0, $10
		{0x5010, 0x22, 0x22, true},
		{0x5010, 0x22, 0x23, false},
		{0x9010, 0x22, 0x22, false},
		{0x9010, 0x22, 0x23, true},
	}

	for _, tt := range tests {
		tag := fmt.Sprintf("%04x %02x %02x", tt.word, tt.v0, tt.v1)
		m.load(tt.word)
		m.mc.V[0] = tt.v0
		m.mc.V[1] = tt.v1
		res := m.step(t)
		if tt.skip {
			test.ExpectEquality(t, m.mc.PC, uint16(0x204), tag)
			test.ExpectEquality(t, res.Directive.Kind, cpu.Skip, tag)
		} else {
			test.ExpectEquality(t, m.mc.PC, uint16(0x202), tag)
		}
	}
}

func TestJumps(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))

	m.load(0x1456)
	m.step(t)
	test.ExpectEquality(t, m.mc.PC, uint16(0x456))

	// JP V0, $300
	m.load(0xb300)
	m.mc.V[0] = 0x24
	m.step(t)
	test.ExpectEquality(t, m.mc.PC, uint16(0x324))

	// SYS is ignored
	m.load(0x0123)
	m.step(t)
	test.ExpectEquality(t, m.mc.PC, uint16(0x202))
}

func TestRandom(t *testing.T) {
	ins := instance.NewInstance(nil)
	ins.Random.Reseed(1234)
	m := newMachine(cpu.NewCPU(ins))

	expected := random.NewRandom(1234)

	// RND V0, $0F
	for range 50 {
		m.load(0xc00f)
		m.step(t)
		test.ExpectEquality(t, m.mc.V[0], expected.Byte()&0x0f)
	}
}

func TestDraw(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))

	// LD I, $050; DRW V0, V1, $5; DRW V0, V1, $5
	m.load(0xa050, 0xd015, 0xd015)
	m.mc.V[0] = 2
	m.mc.V[1] = 3
	m.step(t)

	res := m.step(t)
	test.ExpectSuccess(t, res.Redraw)
	test.ExpectEquality(t, m.mc.V[0xf], uint8(0))
	test.ExpectSuccess(t, m.disp.Pixel(2, 3))
	test.ExpectSuccess(t, m.disp.Pixel(5, 3))
	test.ExpectFailure(t, m.disp.Pixel(6, 3))
	test.ExpectSuccess(t, m.disp.Pixel(2, 4))
	test.ExpectFailure(t, m.disp.Pixel(3, 4))

	// drawing again erases the sprite and sets the collision flag
	res = m.step(t)
	test.ExpectSuccess(t, res.Redraw)
	test.ExpectEquality(t, m.mc.V[0xf], uint8(1))
	test.ExpectFailure(t, m.disp.Pixel(2, 3))

	// the index register is unchanged by drawing
	test.ExpectEquality(t, m.mc.I, uint16(0x050))
}

func TestClearScreen(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))
	m.disp.Draw(0, 0, []uint8{0xff})

	m.load(0x00e0)
	res := m.step(t)
	test.ExpectSuccess(t, res.Redraw)
	test.ExpectFailure(t, m.disp.Pixel(0, 0))
}

func TestKeySkips(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))

	// SKP V0
	m.load(0xe09e)
	m.mc.V[0] = 0xa
	m.step(t)
	test.ExpectEquality(t, m.mc.PC, uint16(0x202))

	m.load(0xe09e)
	m.mc.V[0] = 0xa
	m.keys.Set(0xa, true)
	m.step(t)
	test.ExpectEquality(t, m.mc.PC, uint16(0x204))

	// SKNP V0
	m.load(0xe0a1)
	m.mc.V[0] = 0xa
	m.step(t)
	test.ExpectEquality(t, m.mc.PC, uint16(0x202))

	m.keys.Reset()
	m.load(0xe0a1)
	m.mc.V[0] = 0xa
	m.step(t)
	test.ExpectEquality(t, m.mc.PC, uint16(0x204))
}

func TestKeySkipsOutOfRange(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))

	// there is no key 0x1a. the low nibble (key 0xa) is held but that is
	// not the key being tested
	m.keys.Set(0xa, true)

	// SKP V0
	m.load(0xe09e)
	m.mc.V[0] = 0x1a
	m.step(t)
	test.ExpectEquality(t, m.mc.PC, uint16(0x202))

	// SKNP V0
	m.load(0xe0a1)
	m.mc.V[0] = 0x1a
	m.step(t)
	test.ExpectEquality(t, m.mc.PC, uint16(0x204))
}

func TestWaitForKey(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))

	// LD V5, K
	m.load(0xf50a)

	for range 10 {
		res := m.step(t)
		test.ExpectEquality(t, res.Directive.Kind, cpu.Wait)
		test.ExpectEquality(t, m.mc.PC, uint16(0x200))
	}

	// the lowest held key is used
	m.keys.Set(0xc, true)
	m.keys.Set(0x3, true)
	res := m.step(t)
	test.ExpectEquality(t, res.Directive.Kind, cpu.Next)
	test.ExpectEquality(t, m.mc.V[5], uint8(0x3))
	test.ExpectEquality(t, m.mc.PC, uint16(0x202))
}

func TestTimers(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))

	// LD V0, $02; LD DT, V0; LD ST, V0; LD V1, DT
	m.load(0x6002, 0xf015, 0xf018, 0xf107)
	m.run(t, 3)
	test.ExpectEquality(t, m.mc.DT, uint8(2))
	test.ExpectEquality(t, m.mc.ST, uint8(2))

	m.mc.TickTimers()
	m.step(t)
	test.ExpectEquality(t, m.mc.V[1], uint8(1))

	m.mc.TickTimers()
	test.ExpectEquality(t, m.mc.DT, uint8(0))
	test.ExpectEquality(t, m.mc.ST, uint8(0))

	// timers never go below zero
	m.mc.TickTimers()
	test.ExpectEquality(t, m.mc.DT, uint8(0))
	test.ExpectEquality(t, m.mc.ST, uint8(0))
}

func TestIndexRegister(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))

	// LD I, $300; ADD I, V0
	m.load(0xa300, 0xf01e)
	m.mc.V[0] = 0xff
	m.run(t, 2)
	test.ExpectEquality(t, m.mc.I, uint16(0x3ff))
	test.ExpectEquality(t, m.mc.V[0xf], uint8(0))

	// LD F, V0
	m.load(0xf029)
	m.mc.V[0] = 0x1a
	m.step(t)
	test.ExpectEquality(t, m.mc.I, memory.GlyphAddress(0xa))
}

func TestBCD(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))

	// LD I, $300; LD B, V0
	m.load(0xa300, 0xf033)
	m.mc.V[0] = 254
	m.run(t, 2)
	m.mem.assert(t, 0x300, 2)
	m.mem.assert(t, 0x301, 5)
	m.mem.assert(t, 0x302, 4)
	test.ExpectEquality(t, m.mc.I, uint16(0x300))

	m.load(0xa300, 0xf033)
	m.mc.V[0] = 7
	m.run(t, 2)
	m.mem.assert(t, 0x300, 0)
	m.mem.assert(t, 0x301, 0)
	m.mem.assert(t, 0x302, 7)
}

func TestStoreAndLoadRegisters(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))

	// LD I, $300; LD [I], V3
	m.load(0xa300, 0xf355)
	for i := range m.mc.V {
		m.mc.V[i] = uint8(i + 1)
	}
	m.run(t, 2)
	m.mem.assert(t, 0x300, 1)
	m.mem.assert(t, 0x303, 4)
	m.mem.assert(t, 0x304, 0)
	test.ExpectEquality(t, m.mc.I, uint16(0x300))

	// LD I, $300; LD V3, [I]
	m.load(0xa300, 0xf365)
	m.mc.V = [16]uint8{}
	m.mem.putInstructions(0x300, 0x0a0b, 0x0c0d, 0x0e0f)
	m.run(t, 2)
	test.ExpectEquality(t, m.mc.V[0], uint8(0x0a))
	test.ExpectEquality(t, m.mc.V[3], uint8(0x0d))
	test.ExpectEquality(t, m.mc.V[4], uint8(0x00))
	test.ExpectEquality(t, m.mc.I, uint16(0x300))
}

func TestUnknownOpcode(t *testing.T) {
	m := newMachine(cpu.NewCPU(nil))

	// unknown opcodes are skipped by default
	m.load(0xffff)
	res := m.step(t)
	test.ExpectEquality(t, res.Opcode.Kind, instructions.NOP)
	test.ExpectEquality(t, m.mc.PC, uint16(0x202))

	// strict mode
	ins := instance.NewInstance(nil)
	ins.Prefs.Strict.Set(true)
	m = newMachine(cpu.NewCPU(ins))
	m.load(0xffff)
	_, err := m.mc.Step(m.mem, m.disp, m.keys)
	test.ExpectSuccess(t, curated.Has(err, cpu.UnknownOpcode))
	test.ExpectEquality(t, m.mc.PC, uint16(0x200))

	// SYS is a known instruction and is never a fault
	m.load(0x0123)
	m.step(t)
	test.ExpectEquality(t, m.mc.PC, uint16(0x202))
}

func TestTrace(t *testing.T) {
	ins := instance.NewInstance(nil)
	ins.Prefs.Trace.Set(true)
	m := newMachine(cpu.NewCPU(ins))

	logger.Clear()
	defer logger.Clear()

	m.load(0x630a)
	m.step(t)

	w := &test.Writer{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "cpu: 200 630a LD V3, $0A       Next\n")
}

func TestString(t *testing.T) {
	mc := cpu.NewCPU(nil)
	mc.V[0xa] = 0x12
	s := mc.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "PC=200 I=000 SP=0 DT=00 ST=00 V0=00"))
	test.ExpectSuccess(t, strings.Contains(s, "VA=12"))
}
