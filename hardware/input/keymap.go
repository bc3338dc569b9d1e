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
	"unicode/utf8"

	"github.com/jetsetilly/gopher8/curated"
)

// KeyMapError is returned by ParseKeyMap() for an invalid key map string.
const KeyMapError = "input: keymap: %v"

// KeyMap maps each logical key (the index) to the symbol for the physical key.
type KeyMap [NumKeys]string

// DefaultKeyMap is the conventional mapping of the hexadecimal keypad onto the
// left hand side of a QWERTY keyboard.
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   <-   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
var DefaultKeyMap = KeyMap{
	0x0: "X", 0x1: "1", 0x2: "2", 0x3: "3",
	0x4: "Q", 0x5: "W", 0x6: "E", 0x7: "A",
	0x8: "S", 0x9: "D", 0xa: "Z", 0xb: "C",
	0xc: "4", 0xd: "R", 0xe: "F", 0xf: "V",
}

// String returns the key map as sixteen characters, one for each logical key
// in order. Only meaningful if every symbol is a single character.
func (km KeyMap) String() string {
	return strings.Join(km[:], "")
}

// Lookup returns the logical key for the symbol. The second return value is
// false if the symbol is not mapped.
func (km KeyMap) Lookup(symbol string) (uint8, bool) {
	for k, s := range km {
		if strings.EqualFold(s, symbol) {
			return uint8(k), true
		}
	}
	return 0, false
}

// ParseKeyMap creates a KeyMap from a string of sixteen characters. The first
// character is the symbol for logical key 0, the second for key 1, etc.
func ParseKeyMap(s string) (KeyMap, error) {
	var km KeyMap

	if utf8.RuneCountInString(s) != NumKeys {
		return km, curated.Errorf(KeyMapError, fmt.Sprintf("must be %d characters", NumKeys))
	}

	i := 0
	for _, r := range strings.ToUpper(s) {
		sym := string(r)
		if _, ok := km.Lookup(sym); ok {
			return KeyMap{}, curated.Errorf(KeyMapError, fmt.Sprintf("duplicate symbol (%s)", sym))
		}
		km[i] = sym
		i++
	}

	return km, nil
}
