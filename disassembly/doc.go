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

// Package disassembly creates an assembly listing of a CHIP-8 program.
//
// Instructions are decoded from every word of the program, starting at the
// program origin. The flow of the program is then followed from the origin
// to find which words can be reached as instructions. Words that can not be
// reached are usually sprite data and are listed as data bytes.
//
// The targets of jump and call instructions are labelled in the listing.
// Indirect jumps (JP V0, addr) can not be followed and so code reached only
// through such jumps will be listed as data.
package disassembly
