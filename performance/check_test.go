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

package performance_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/programloader"
	"github.com/jetsetilly/gopher8/test"
)

func writeProgram(t *testing.T, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "loop.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func TestCheck(t *testing.T) {
	// ADD V0, 1 ; JP 200
	fn := writeProgram(t, []byte{0x70, 0x01, 0x12, 0x00})

	w := &strings.Builder{}
	res, err := performance.Check(w, false, false, preferences.NewTransientPreferences(), programloader.NewLoader(fn), 50*time.Millisecond)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, res.Real >= 50*time.Millisecond)
	test.ExpectSuccess(t, res.Emulated > 0)
	test.ExpectSuccess(t, res.Instructions > 0)
	test.ExpectSuccess(t, res.Speed() > 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "real time"))
}

func TestCheckNormalised(t *testing.T) {
	fn := writeProgram(t, []byte{0x70, 0x01, 0x12, 0x00})

	p := preferences.NewTransientPreferences()
	test.DemandSuccess(t, p.CPUClock.Set(100.0))
	test.DemandSuccess(t, p.RandSeed.Set(99))

	w := &strings.Builder{}
	res, err := performance.Check(w, false, true, p, programloader.NewLoader(fn), 20*time.Millisecond)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, res.Instructions > 0)

	test.ExpectEquality(t, p.CPUClock.Get().(float64), preferences.DefaultCPUClock)
	test.ExpectEquality(t, p.RandSeed.Get().(int), 0)
}

func TestCheckFailures(t *testing.T) {
	w := &strings.Builder{}

	fn := writeProgram(t, []byte{0x70, 0x01, 0x12, 0x00})
	_, err := performance.Check(w, false, false, preferences.NewTransientPreferences(), programloader.NewLoader(fn), 0)
	test.ExpectFailure(t, err)

	missing := filepath.Join(t.TempDir(), "missing.ch8")
	_, err = performance.Check(w, false, false, preferences.NewTransientPreferences(), programloader.NewLoader(missing), time.Second)
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, w.String(), "")
}

func TestResult(t *testing.T) {
	var r performance.Result
	test.ExpectEquality(t, r.Speed(), 0.0)
	test.ExpectEquality(t, r.InstructionsPerSecond(), 0.0)

	r = performance.Result{
		Real:         time.Second,
		Emulated:     10 * time.Second,
		Instructions: 5000,
	}
	test.ExpectEquality(t, r.Speed(), 10.0)
	test.ExpectEquality(t, r.InstructionsPerSecond(), 5000.0)
}

func TestProfiling(t *testing.T) {
	dir := t.TempDir()
	cpuFile := filepath.Join(dir, "cpu.profile")
	memFile := filepath.Join(dir, "mem.profile")

	var ran bool
	err := performance.ProfileCPU(false, cpuFile, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)
	_, err = os.Stat(cpuFile)
	test.ExpectFailure(t, err)

	err = performance.ProfileCPU(true, cpuFile, func() error {
		return nil
	})
	test.ExpectSuccess(t, err)
	_, err = os.Stat(cpuFile)
	test.ExpectSuccess(t, err)

	test.ExpectSuccess(t, performance.ProfileMem(true, memFile))
	_, err = os.Stat(memFile)
	test.ExpectSuccess(t, err)
}
