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

// Package prefs facilitates the storage of preferential values in the
// Gopher8 system. It is the configuration layer for every other package.
//
// The Bool, Int, Float and String types are atomic so preferences can be
// shared between goroutines. For example, the emulation goroutine and a GUI
// goroutine. Hooks can be attached to a value with SetHookPre() and
// SetHookPost(). The pre-hook can veto a change by returning an error.
//
// A Disk instance associates a preference value with a key and loads/saves
// values to a file. Values are stored one per line in the form
//
//	key :: value
//
// Many Disk instances can share the same file. When saving, entries in the
// file that are not known to the Disk instance are preserved.
//
// Values can also be set from the command line with the "command line
// stack". PushCommandLineStack() accepts a string of key::value pairs
// separated by semicolons. The next call to Disk.Load() will use the values
// on the top of the stack in preference to the values stored on disk. A value
// taken from the stack is removed from it, so it is used only once.
package prefs
