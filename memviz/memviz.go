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

// Package memviz writes a graph of the emulated machine's state. The graph is
// in the DOT format and can be viewed with graphviz or similar. The graph is
// created with "github.com/bradleyjkemp/memviz".
package memviz

import (
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/logger"
)

// the parts of the machine that are included in the graph. memory and
// display are left out because they are large and are better viewed in other
// ways
type machine struct {
	CPU    cpu.CPU
	Keypad input.Keypad
}

// Write a graph of the machine state to the io.Writer.
func Write(output io.Writer, ch *hardware.Chip8) {
	m := &machine{
		CPU:    *ch.CPU,
		Keypad: *ch.Keypad,
	}
	memviz.Map(output, m)
}

// WriteFile writes a graph of the machine state to the named file.
func WriteFile(filename string, ch *hardware.Chip8) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("memviz: %v", err)
		}
	}()

	Write(f, ch)
	logger.Logf(logger.Allow, "memviz", "machine state written to %s", filename)

	return nil
}
