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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
)

// StackDepth is the number of entries in the call stack.
const StackDepth = 16

// CPU implements the registers, stack and timers of the CHIP-8 interpreter.
type CPU struct {
	instance *instance.Instance

	// general purpose registers. VF is also the flag register
	V [16]uint8

	// index register
	I uint16

	// program counter
	PC uint16

	// stack pointer and call stack. SP is the number of entries on the stack
	SP    uint8
	Stack [StackDepth]uint16

	// delay timer and sound timer
	DT uint8
	ST uint8

	// the most recent result from Step()
	LastResult Result
}

// NewCPU is the preferred method of initialisation for the CPU type. A nil
// instance is allowed, in which case default preferences are used.
func NewCPU(ins *instance.Instance) *CPU {
	if ins == nil {
		ins = instance.NewInstance(nil)
	}
	mc := &CPU{
		instance: ins,
	}
	mc.Reset()
	return mc
}

// Reset sets every register to zero and the program counter to the program
// origin.
func (mc *CPU) Reset() {
	mc.V = [16]uint8{}
	mc.I = 0
	mc.PC = memory.ProgramOrigin
	mc.SP = 0
	mc.Stack = [StackDepth]uint16{}
	mc.DT = 0
	mc.ST = 0
	mc.LastResult = Result{}
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%03x I=%03x SP=%d DT=%02x ST=%02x", mc.PC, mc.I, mc.SP, mc.DT, mc.ST))
	for i, v := range mc.V {
		s.WriteString(fmt.Sprintf(" V%X=%02x", i, v))
	}
	return s.String()
}

// TickTimers decrements the delay and sound timers if they are not already
// zero.
func (mc *CPU) TickTimers() {
	if mc.DT > 0 {
		mc.DT--
	}
	if mc.ST > 0 {
		mc.ST--
	}
}

// Step executes a single instruction. On error the program counter is not
// changed and the error is a Fault.
func (mc *CPU) Step(mem Memory, disp Display, keys Keypad) (Result, error) {
	word, err := mem.ReadWord(mc.PC)
	if err != nil {
		return Result{}, curated.Errorf(Fault, err, mc.String())
	}

	res := Result{
		Address: mc.PC,
		Opcode:  instructions.Decode(word),
	}

	res.Directive, res.Redraw, err = mc.execute(res.Opcode, mem, disp, keys)
	if err != nil {
		return res, curated.Errorf(Fault, err, mc.String())
	}

	mc.PC = res.Directive.apply(mc.PC)
	mc.LastResult = res

	if mc.instance.Prefs.Trace.Get().(bool) {
		logger.Log(logger.Allow, "cpu", res)
	}

	return res, nil
}

func (mc *CPU) push(address uint16) error {
	if mc.SP >= StackDepth {
		return curated.Errorf(StackOverflow)
	}
	mc.Stack[mc.SP] = address
	mc.SP++
	return nil
}

func (mc *CPU) pop() (uint16, error) {
	if mc.SP == 0 {
		return 0, curated.Errorf(StackUnderflow)
	}
	mc.SP--
	return mc.Stack[mc.SP], nil
}
