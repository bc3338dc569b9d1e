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

package memviz_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/memviz"
	"github.com/jetsetilly/gopher8/test"
)

func TestWriteFile(t *testing.T) {
	ch, err := hardware.NewChip8(nil, clocks.NewManualTime())
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ch.LoadProgram([]byte{0x60, 0x05}))
	_, err = ch.Step()
	test.DemandSuccess(t, err)

	pth := filepath.Join(t.TempDir(), "state.dot")
	test.DemandSuccess(t, memviz.WriteFile(pth, ch))

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))

	test.ExpectFailure(t, memviz.WriteFile(filepath.Join(t.TempDir(), "missing", "state.dot"), ch))
}
