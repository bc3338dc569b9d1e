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

package clocks_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/test"
)

func TestPeriod(t *testing.T) {
	clk := clocks.NewClock(clocks.CPU, clocks.NewManualTime())
	test.ExpectEquality(t, clk.Period(), 2*time.Millisecond)

	clk.SetRate(clocks.Timer)
	test.ExpectEquality(t, clk.Period(), 16666*time.Microsecond)

	// invalid rates are ignored
	test.ExpectEquality(t, clk.Rate(), clocks.Timer)

	clk.SetRate(0)
	test.ExpectEquality(t, clk.Period(), 16666*time.Microsecond)
	test.ExpectEquality(t, clk.Rate(), clocks.Timer)
}

func TestConsumeTicks(t *testing.T) {
	mt := clocks.NewManualTime()
	clk := clocks.NewClock(clocks.CPU, mt)

	test.ExpectEquality(t, clk.ConsumeTicks(), 0)

	mt.Advance(time.Millisecond)
	test.ExpectEquality(t, clk.ConsumeTicks(), 0)

	mt.Advance(time.Millisecond)
	test.ExpectEquality(t, clk.ConsumeTicks(), 1)

	// ticks are only consumed once
	test.ExpectEquality(t, clk.ConsumeTicks(), 0)

	mt.Advance(20 * time.Millisecond)
	test.ExpectEquality(t, clk.ConsumeTicks(), 10)
}

func TestRemainderPreserved(t *testing.T) {
	mt := clocks.NewManualTime()
	clk := clocks.NewClock(clocks.CPU, mt)

	// 3ms is one tick with 1ms remaining
	mt.Advance(3 * time.Millisecond)
	test.ExpectEquality(t, clk.ConsumeTicks(), 1)
	test.ExpectEquality(t, clk.UntilNext(), time.Millisecond)

	// the remainder makes up the next tick
	mt.Advance(time.Millisecond)
	test.ExpectEquality(t, clk.ConsumeTicks(), 1)

	// over a long run the total number of ticks is exact
	total := 0
	for range 1000 {
		mt.Advance(3 * time.Millisecond)
		total += clk.ConsumeTicks()
	}
	test.ExpectEquality(t, total, 1500)
}

func TestRebase(t *testing.T) {
	mt := clocks.NewManualTime()
	clk := clocks.NewClock(clocks.Timer, mt)

	mt.Advance(time.Second)
	clk.Rebase()
	test.ExpectEquality(t, clk.ConsumeTicks(), 0)
	test.ExpectEquality(t, clk.UntilNext(), clk.Period())
}

func TestIndependentClocks(t *testing.T) {
	mt := clocks.NewManualTime()
	cpu := clocks.NewClock(clocks.CPU, mt)
	timer := clocks.NewClock(clocks.Timer, mt)
	poll := clocks.NewClock(clocks.Poll, mt)

	mt.Advance(time.Second)
	test.ExpectEquality(t, cpu.ConsumeTicks(), 500)
	test.ExpectEquality(t, timer.ConsumeTicks(), 60)
	test.ExpectEquality(t, poll.ConsumeTicks(), 10)
}

func TestRealTime(t *testing.T) {
	test.ExpectImplements[clocks.TimeSource](t, clocks.RealTime{})
	clk := clocks.NewClock(clocks.CPU, nil)
	test.ExpectSuccess(t, clk.UntilNext() <= clk.Period())
}

func TestManualSleep(t *testing.T) {
	mt := clocks.NewManualTime()
	clk := clocks.NewClock(clocks.Timer, mt)
	mt.Sleep(clk.UntilNext())
	test.ExpectEquality(t, clk.ConsumeTicks(), 1)
	test.ExpectEquality(t, clk.UntilNext(), clk.Period())
}
