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

// Package instructions decodes CHIP-8 instruction words.
//
// The Decode() function is pure and total. Every 16-bit value decodes to an
// Opcode. Values that do not match a known instruction decode to an Opcode
// with the NOP kind.
//
// The Opcode type records the kind of instruction and the operand fields
// extracted from the instruction word. Fields that are not used by the
// instruction are still extracted and are available for inspection but have
// no meaning.
package instructions
