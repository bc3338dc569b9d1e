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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/programloader"
)

// Result of a call to Check().
type Result struct {
	// the amount of real time spent running the emulation
	Real time.Duration

	// the amount of emulated time
	Emulated time.Duration

	// the number of instructions executed
	Instructions int
}

// Speed returns the speed of the emulation as a multiple of real time.
func (r Result) Speed() float64 {
	if r.Real <= 0 {
		return 0
	}
	return r.Emulated.Seconds() / r.Real.Seconds()
}

// InstructionsPerSecond returns the number of instructions executed per
// second of real time.
func (r Result) InstructionsPerSecond() float64 {
	if r.Real <= 0 {
		return 0
	}
	return float64(r.Instructions) / r.Real.Seconds()
}

func (r Result) String() string {
	return fmt.Sprintf("%.2fx real time (%s emulated in %s) %.0f instructions/sec",
		r.Speed(), r.Emulated.Round(time.Millisecond), r.Real.Round(time.Millisecond), r.InstructionsPerSecond())
}

// the seed for the random number generator when the emulation is normalised
const normalisedSeed = 1

// Check runs the program for the specified duration of real time and writes
// the result to output. If profile is true then CPU and memory profiles are
// written to the current directory.
//
// If normalise is true then the preferences are reverted to their defaults
// and the random number generator is given a fixed seed, so that the results
// of different runs can be compared.
//
// The emulation runs with a ManualTime clock source, so that the emulation
// never sleeps between passes. Keypresses are never reported.
func Check(output io.Writer, profile bool, normalise bool, prefs *preferences.Preferences, pl programloader.Loader, duration time.Duration) (Result, error) {
	if duration <= 0 {
		return Result{}, curated.Errorf("performance: %v", fmt.Sprintf("duration must be positive (%v)", duration))
	}

	err := pl.Load()
	if err != nil {
		return Result{}, curated.Errorf("performance: %v", err)
	}

	mt := clocks.NewManualTime()

	ch, err := hardware.NewChip8(prefs, mt)
	if err != nil {
		return Result{}, curated.Errorf("performance: %v", err)
	}
	ch.SetLogging(false)

	err = ch.LoadProgram(pl.Data)
	if err != nil {
		return Result{}, curated.Errorf("performance: %v", err)
	}

	if normalise {
		ch.Instance.Normalise(normalisedSeed)
	}

	var res Result
	var start time.Time
	var emulatedStart time.Time

	performanceFilter := 0

	run := func() error {
		start = time.Now()
		emulatedStart = mt.Now()

		return ch.Run(func() (govern.State, error) {
			performanceFilter++
			if performanceFilter >= hardware.PerformanceBrake {
				performanceFilter = 0
				if time.Since(start) >= duration {
					return govern.Ending, nil
				}
			}
			return govern.Running, nil
		})
	}

	err = ProfileCPU(profile, "cpu.profile", run)
	if err != nil {
		return Result{}, curated.Errorf("performance: %v", err)
	}

	res.Real = time.Since(start)
	res.Instructions = ch.Instructions()
	res.Emulated = mt.Now().Sub(emulatedStart)

	fmt.Fprintln(output, res)

	err = ProfileMem(profile, "mem.profile")
	if err != nil {
		return res, curated.Errorf("performance: %v", err)
	}

	return res, nil
}
