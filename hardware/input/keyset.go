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
	"strings"
	"sync"
)

// KeySet records which physical keys are currently held. It implements the
// Source interface and is safe for concurrent use.
type KeySet struct {
	crit sync.Mutex
	held map[string]bool
}

// NewKeySet is the preferred method of initialisation for the KeySet type.
func NewKeySet() *KeySet {
	return &KeySet{
		held: make(map[string]bool),
	}
}

// Press marks the symbol as held.
func (ks *KeySet) Press(symbol string) {
	ks.crit.Lock()
	defer ks.crit.Unlock()
	ks.held[strings.ToUpper(symbol)] = true
}

// Release marks the symbol as not held.
func (ks *KeySet) Release(symbol string) {
	ks.crit.Lock()
	defer ks.crit.Unlock()
	delete(ks.held, strings.ToUpper(symbol))
}

// ReleaseAll marks every symbol as not held.
func (ks *KeySet) ReleaseAll() {
	ks.crit.Lock()
	defer ks.crit.Unlock()
	clear(ks.held)
}

// Pressed implements the Source interface.
func (ks *KeySet) Pressed(symbol string) bool {
	ks.crit.Lock()
	defer ks.crit.Unlock()
	return ks.held[strings.ToUpper(symbol)]
}
