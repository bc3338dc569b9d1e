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

package input

import (
	"fmt"
	"strings"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Source is implemented by anything that can report whether a physical key
// is held down. Symbols are case-insensitive.
type Source interface {
	Pressed(symbol string) bool
}

// Keypad is the state of the sixteen logical keys.
type Keypad struct {
	held [NumKeys]bool
}

// Replace the state of every key with the state reported by the Source. A
// nil Source releases every key.
func (kp *Keypad) Replace(src Source, km KeyMap) {
	for k := range kp.held {
		kp.held[k] = src != nil && src.Pressed(km[k])
	}
}

// Set the state of a single key. Only the low nibble of key is used.
func (kp *Keypad) Set(key uint8, held bool) {
	kp.held[key&0x0f] = held
}

// Reset releases every key.
func (kp *Keypad) Reset() {
	kp.held = [NumKeys]bool{}
}

// Held returns true if the key is held. Only the low nibble of key is used.
func (kp *Keypad) Held(key uint8) bool {
	return kp.held[key&0x0f]
}

// Lowest returns the lowest numbered key that is held. The second return
// value is false if no key is held.
func (kp *Keypad) Lowest() (uint8, bool) {
	for k, h := range kp.held {
		if h {
			return uint8(k), true
		}
	}
	return 0, false
}

func (kp *Keypad) String() string {
	s := strings.Builder{}
	for k, h := range kp.held {
		if h {
			s.WriteString(fmt.Sprintf("%X", k))
		} else {
			s.WriteRune('-')
		}
	}
	return s.String()
}
