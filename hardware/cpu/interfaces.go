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

// Memory defines the memory operations required by the CPU.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
	ReadWord(address uint16) (uint16, error)
	ReadSlice(address uint16, n int) ([]uint8, error)
	WriteSlice(address uint16, data []uint8) error
}

// Display defines the display operations required by the CPU.
type Display interface {
	Clear()
	Draw(x uint8, y uint8, sprite []uint8) bool
}

// Keypad defines the keypad state required by the CPU.
type Keypad interface {
	Held(key uint8) bool
	Lowest() (uint8, bool)
}
