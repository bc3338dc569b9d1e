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
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	mem := &mockMem{
		internal: make([]uint8, memory.MemorySize),
	}
	copy(mem.internal[memory.FontOrigin:], []uint8{0xf0, 0x90, 0x90, 0x90, 0xf0})
	return mem
}

func (mem *mockMem) check(address uint16, n int) error {
	if int(address)+n > len(mem.internal) {
		return curated.Errorf(memory.AddressError, fmt.Sprintf("%#03x", address))
	}
	return nil
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if err := mem.check(address, 1); err != nil {
		return 0, err
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if err := mem.check(address, 1); err != nil {
		return err
	}
	mem.internal[address] = data
	return nil
}

func (mem *mockMem) ReadWord(address uint16) (uint16, error) {
	if err := mem.check(address, 2); err != nil {
		return 0, err
	}
	return uint16(mem.internal[address])<<8 | uint16(mem.internal[address+1]), nil
}

func (mem *mockMem) ReadSlice(address uint16, n int) ([]uint8, error) {
	if err := mem.check(address, n); err != nil {
		return nil, err
	}
	return append([]uint8{}, mem.internal[address:int(address)+n]...), nil
}

func (mem *mockMem) WriteSlice(address uint16, data []uint8) error {
	if err := mem.check(address, len(data)); err != nil {
		return err
	}
	copy(mem.internal[address:], data)
	return nil
}

// putInstructions writes the instruction words to memory beginning at
// origin. returns the address following the last instruction
func (mem *mockMem) putInstructions(origin uint16, words ...uint16) uint16 {
	for _, w := range words {
		mem.internal[origin] = uint8(w >> 8)
		mem.internal[origin+1] = uint8(w)
		origin += 2
	}
	return origin
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if d := mem.internal[address]; d != value {
		t.Errorf("memory assertion failed (%02x - wanted %02x at address %03x)", d, value, address)
	}
}

// machine bundles the CPU with the components it operates on
type machine struct {
	mc   *cpu.CPU
	mem  *mockMem
	disp *display.Display
	keys *input.Keypad
}

func newMachine(mc *cpu.CPU) *machine {
	return &machine{
		mc:   mc,
		mem:  newMockMem(),
		disp: display.NewDisplay(),
		keys: &input.Keypad{},
	}
}

// load instructions at the program origin and reset the CPU
func (m *machine) load(words ...uint16) {
	m.mem.putInstructions(memory.ProgramOrigin, words...)
	m.mc.Reset()
}

func (m *machine) step(t *testing.T) cpu.Result {
	t.Helper()
	res, err := m.mc.Step(m.mem, m.disp, m.keys)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func (m *machine) run(t *testing.T, n int) {
	t.Helper()
	for range n {
		m.step(t)
	}
}
