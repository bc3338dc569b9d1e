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
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written as the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand while gopher8 is running ***"

// separates key and value in the preferences file.
const keySep = " :: "

// Sentinal error patterns.
const (
	NoPrefsFile  = "prefs: no prefs file (%s)"
	PrefsError   = "prefs: %v"
	DuplicateKey = "prefs: duplicate key (%s)"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store/load from disk. Keys
// should be dotted and in lower-camel-case. For example,
// "hardware.cpu.clock".
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) || strings.ContainsAny(key, " \n") {
		return curated.Errorf(PrefsError, fmt.Errorf("illegal key (%s)", key))
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all entries to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(PrefsError, err)
		}
	}
	return nil
}

// Save current preference values to disk. Entries in the file that are not
// part of this Disk instance are preserved.
func (dsk *Disk) Save() error {
	// load entries that are already on disk, a missing file is fine
	existing, err := readFile(dsk.path)
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, p := range dsk.entries {
		existing[k] = p.String()
	}

	keys := make([]string, 0, len(existing))
	for k := range existing {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(PrefsError, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, existing[k])
	}
	if err := w.Flush(); err != nil {
		return curated.Errorf(PrefsError, err)
	}

	return nil
}

// Load preference values from disk. Values on the top of the command line
// stack take priority over values in the file and are applied even if the
// file does not exist. Returns a NoPrefsFile error if the file does not exist.
func (dsk *Disk) Load() error {
	onDisk, diskErr := readFile(dsk.path)
	if diskErr != nil && !curated.Is(diskErr, NoPrefsFile) {
		return diskErr
	}

	for _, k := range dsk.keys() {
		p := dsk.entries[k]

		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsError, err)
			}
			continue
		}

		if v, ok := onDisk[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsError, err)
			}
		}
	}

	return diskErr
}

// readFile returns the key/value pairs in the named file. The map is never
// nil, even on error.
func readFile(path string) (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, curated.Errorf(NoPrefsFile, path)
		}
		return entries, curated.Errorf(PrefsError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line is the boilerplate warning
	if !scanner.Scan() {
		return entries, scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return entries, curated.Errorf(PrefsError, fmt.Errorf("not a valid prefs file (%s)", path))
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), keySep)
		if ok {
			entries[strings.TrimSpace(k)] = v
		}
	}

	if err := scanner.Err(); err != nil {
		return entries, curated.Errorf(PrefsError, err)
	}

	return entries, nil
}
