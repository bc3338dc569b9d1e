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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// the command line stack is a list of maps. each map is the set of key/value
// pairs pushed by a single call to PushCommandLineStack()
var commandLineStack []map[string]string
var commandLineCrit sync.Mutex

// PushCommandLineStack forwards command line arguments to the prefs system.
// The string should be a list of key::value pairs separated by semicolons.
// For example:
//
//	hardware.cpu.clock::1000; hardware.cpu.strict::true
//
// Pairs that cannot be parsed are silently ignored.
func PushCommandLineStack(prefs string) {
	commandLineCrit.Lock()
	defer commandLineCrit.Unlock()

	cl := make(map[string]string)
	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			k := strings.TrimSpace(kv[0])
			if k != "" {
				cl[k] = strings.TrimSpace(kv[1])
			}
		}
	}
	commandLineStack = append(commandLineStack, cl)
}

// PopCommandLineStack removes the top of the stack and returns any unused
// entries as a prefs string, in the same format as accepted by
// PushCommandLineStack(). Entries are sorted by key.
func PopCommandLineStack() string {
	commandLineCrit.Lock()
	defer commandLineCrit.Unlock()

	if len(commandLineStack) == 0 {
		return ""
	}

	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(popped))
	for k := range popped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s::%s; ", k, popped[k]))
	}

	return strings.TrimSuffix(s.String(), "; ")
}

// SizeCommandLineStack returns the number of entries on the command line
// stack.
func SizeCommandLineStack() int {
	commandLineCrit.Lock()
	defer commandLineCrit.Unlock()
	return len(commandLineStack)
}

// GetCommandLinePref returns the value of the key from the top of the stack.
// The entry is removed once it has been returned.
func GetCommandLinePref(key string) (bool, string) {
	commandLineCrit.Lock()
	defer commandLineCrit.Unlock()

	if len(commandLineStack) == 0 {
		return false, ""
	}

	cl := commandLineStack[len(commandLineStack)-1]
	if v, ok := cl[key]; ok {
		delete(cl, key)
		return true, v
	}

	return false, ""
}
