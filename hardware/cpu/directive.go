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

import "fmt"

// DirectiveKind says how the program counter should change after an
// instruction has executed.
type DirectiveKind int

// List of valid DirectiveKind values.
const (
	// advance to the next instruction
	Next DirectiveKind = iota

	// skip the next instruction
	Skip

	// set the program counter to the Address field of the Directive
	Jump

	// leave the program counter unchanged. the instruction will be executed
	// again on the next step
	Wait
)

// Directive is returned by every instruction handler.
type Directive struct {
	Kind    DirectiveKind
	Address uint16
}

func (d Directive) String() string {
	switch d.Kind {
	case Next:
		return "Next"
	case Skip:
		return "Skip"
	case Jump:
		return fmt.Sprintf("Jump(%03x)", d.Address)
	case Wait:
		return "Wait"
	}
	return "unknown directive"
}

var (
	next = Directive{Kind: Next}
	skip = Directive{Kind: Skip}
	wait = Directive{Kind: Wait}
)

func jump(address uint16) Directive {
	return Directive{Kind: Jump, Address: address}
}

// skipIf returns the Skip directive if the condition is true.
func skipIf(condition bool) Directive {
	if condition {
		return skip
	}
	return next
}

// apply the directive to the program counter.
func (d Directive) apply(pc uint16) uint16 {
	switch d.Kind {
	case Skip:
		return pc + 4
	case Jump:
		return d.Address
	case Wait:
		return pc
	}
	return pc + 2
}
