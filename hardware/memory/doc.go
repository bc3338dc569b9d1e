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

// Package memory implements the 4096 byte address space of the CHIP-8.
//
// Programs are loaded at ProgramOrigin. The built-in hexadecimal font is
// stored below the program area at FontOrigin. Every access is range
// checked. An address outside the address space (including a multi-byte
// access that would run past the end of memory) is an AddressError and
// nothing is read or written. Addresses never wrap.
package memory
