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

package disassembly

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// Entry is a single word of the disassembled program.
type Entry struct {
	Address uint16
	Opcode  instructions.Opcode

	// a program with an odd number of bytes has a final entry of a single
	// byte. the low byte of the Opcode.Word field will be zero
	Partial bool

	// the entry can be reached by following the flow of the program from the
	// origin
	Reachable bool

	// the entry is the target of a jump or call instruction
	Label bool
}

// String returns the entry as it would appear in a listing, without the
// label.
func (e Entry) String() string {
	if e.Partial {
		return fmt.Sprintf("%03x  %02x    db $%02X", e.Address, e.Opcode.Word>>8, e.Opcode.Word>>8)
	}
	if !e.Reachable {
		return fmt.Sprintf("%03x  %04x  db $%02X, $%02X", e.Address, e.Opcode.Word, e.Opcode.Word>>8, e.Opcode.Word&0xff)
	}
	return fmt.Sprintf("%03x  %04x  %s", e.Address, e.Opcode.Word, e.Opcode)
}

// Disassembly of a program.
type Disassembly struct {
	Entries []Entry
}

// FromProgram disassembles the program. The program is assumed to be loaded
// at the program origin.
func FromProgram(data []byte) (*Disassembly, error) {
	if len(data) == 0 {
		return nil, curated.Errorf("disassembly: %v", "program is empty")
	}
	if len(data) > memory.MaxProgramSize {
		return nil, curated.Errorf("disassembly: %v", curated.Errorf(memory.ProgramTooLarge, len(data), memory.MaxProgramSize))
	}

	dsm := &Disassembly{
		Entries: make([]Entry, 0, (len(data)+1)/2),
	}

	for i := 0; i < len(data); i += 2 {
		e := Entry{
			Address: memory.ProgramOrigin + uint16(i),
		}
		if i+1 < len(data) {
			e.Opcode = instructions.Decode(uint16(data[i])<<8 | uint16(data[i+1]))
		} else {
			e.Opcode = instructions.Decode(uint16(data[i]) << 8)
			e.Partial = true
		}
		dsm.Entries = append(dsm.Entries, e)
	}

	dsm.flow()

	return dsm, nil
}

// entry returns the entry for the address or nil if the address is outside
// of the program or is not word aligned with the program origin.
func (dsm *Disassembly) entry(address uint16) *Entry {
	if address < memory.ProgramOrigin || address&0x01 != 0 {
		return nil
	}
	i := int(address-memory.ProgramOrigin) / 2
	if i >= len(dsm.Entries) {
		return nil
	}
	return &dsm.Entries[i]
}

// follow the flow of the program from the origin, marking every entry that
// can be reached and labelling every jump target.
func (dsm *Disassembly) flow() {
	pending := []uint16{memory.ProgramOrigin}

	for len(pending) > 0 {
		address := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		e := dsm.entry(address)
		if e == nil || e.Reachable || e.Partial {
			continue
		}
		e.Reachable = true

		switch e.Opcode.Kind {
		case instructions.JP:
			if t := dsm.entry(e.Opcode.NNN); t != nil {
				t.Label = true
			}
			pending = append(pending, e.Opcode.NNN)
		case instructions.CALL:
			if t := dsm.entry(e.Opcode.NNN); t != nil {
				t.Label = true
			}
			pending = append(pending, e.Opcode.NNN, address+2)
		case instructions.RET, instructions.JPV0:
		default:
			if e.Opcode.Kind.Category() == instructions.Skip || e.Opcode.Kind == instructions.SKP || e.Opcode.Kind == instructions.SKNP {
				pending = append(pending, address+4)
			}
			pending = append(pending, address+2)
		}
	}
}

// Write the listing to the io.Writer.
func (dsm *Disassembly) Write(output io.Writer) error {
	for _, e := range dsm.Entries {
		if e.Label {
			if _, err := fmt.Fprintf(output, "L%03x:\n", e.Address); err != nil {
				return curated.Errorf("disassembly: %v", err)
			}
		}
		if _, err := fmt.Fprintln(output, e.String()); err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
	}
	return nil
}

// Summary writes the number of reachable instructions in each category to
// the io.Writer. Categories with no instructions are not written.
func (dsm *Disassembly) Summary(output io.Writer) error {
	var counts [instructions.Input + 1]int
	var data int

	for _, e := range dsm.Entries {
		if e.Reachable {
			counts[e.Opcode.Kind.Category()]++
		} else {
			data++
		}
	}

	s := strings.Builder{}
	for c, n := range counts {
		if n > 0 {
			s.WriteString(fmt.Sprintf("%-12s %d\n", instructions.Category(c), n))
		}
	}
	if data > 0 {
		s.WriteString(fmt.Sprintf("%-12s %d\n", "Data", data))
	}

	if _, err := io.WriteString(output, s.String()); err != nil {
		return curated.Errorf("disassembly: %v", err)
	}
	return nil
}

// Grep writes every entry in the listing that matches the pattern. The
// pattern is a regular expression.
func (dsm *Disassembly) Grep(output io.Writer, pattern string, caseSensitive bool) error {
	if !caseSensitive {
		pattern = "(?i)" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return curated.Errorf("disassembly: %v", err)
	}

	for _, e := range dsm.Entries {
		s := e.String()
		if re.MatchString(s) {
			if _, err := fmt.Fprintln(output, s); err != nil {
				return curated.Errorf("disassembly: %v", err)
			}
		}
	}

	return nil
}
