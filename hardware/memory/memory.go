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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Memory layout.
const (
	MemorySize     = 4096
	ProgramOrigin  = 0x200
	MaxProgramSize = MemorySize - ProgramOrigin
)

// Sentinal error patterns.
const (
	AddressError    = "memory: address out of range (%s)"
	ProgramTooLarge = "memory: program too large (%d bytes, maximum %d)"
)

// Memory is the CHIP-8 address space.
type Memory struct {
	data [MemorySize]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The font is loaded into memory.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset clears memory and reloads the font.
func (mem *Memory) Reset() {
	clear(mem.data[:])
	copy(mem.data[FontOrigin:], fontset[:])
}

// check that a region of length n beginning at address is inside the
// address space. the error names the whole region.
func check(address uint16, n int) error {
	if int(address)+n > MemorySize {
		if n <= 1 {
			return curated.Errorf(AddressError, fmt.Sprintf("%#03x", address))
		}
		return curated.Errorf(AddressError, fmt.Sprintf("%#03x-%#03x", address, int(address)+n-1))
	}
	return nil
}

// Read a single byte.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if err := check(address, 1); err != nil {
		return 0, err
	}
	return mem.data[address], nil
}

// Write a single byte.
func (mem *Memory) Write(address uint16, data uint8) error {
	if err := check(address, 1); err != nil {
		return err
	}
	mem.data[address] = data
	return nil
}

// ReadWord reads two bytes, big-endian. An instruction fetch in other words.
func (mem *Memory) ReadWord(address uint16) (uint16, error) {
	if err := check(address, 2); err != nil {
		return 0, err
	}
	return uint16(mem.data[address])<<8 | uint16(mem.data[address+1]), nil
}

// ReadSlice returns a copy of n bytes beginning at address.
func (mem *Memory) ReadSlice(address uint16, n int) ([]uint8, error) {
	if err := check(address, n); err != nil {
		return nil, err
	}
	c := make([]uint8, n)
	copy(c, mem.data[address:])
	return c, nil
}

// WriteSlice writes data to memory beginning at address.
func (mem *Memory) WriteSlice(address uint16, data []uint8) error {
	if err := check(address, len(data)); err != nil {
		return err
	}
	copy(mem.data[address:], data)
	return nil
}

// LoadProgram resets memory and copies the program to ProgramOrigin.
func (mem *Memory) LoadProgram(program []uint8) error {
	if len(program) > MaxProgramSize {
		return curated.Errorf(ProgramTooLarge, len(program), MaxProgramSize)
	}
	mem.Reset()
	copy(mem.data[ProgramOrigin:], program)
	return nil
}

// Dump returns a hex dump of the region of memory between from and to
// inclusive. Each line is sixteen bytes.
func (mem *Memory) Dump(from uint16, to uint16) (string, error) {
	if err := check(to, 1); err != nil {
		return "", err
	}

	s := strings.Builder{}
	from &= 0xfff0
	for a := int(from); a <= int(to); a += 16 {
		s.WriteString(fmt.Sprintf("%03x:", a))
		for i := a; i < a+16 && i < MemorySize; i++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[i]))
		}
		s.WriteString("\n")
	}
	return s.String(), nil
}
