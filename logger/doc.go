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

// Package logger is the central log repository for Gopher8. The log is not
// written to any output device by default. SetEcho() should be used to echo
// new entries to an io.Writer as they are added. Write() and Tail() can be
// used to write the contents of the log on demand.
//
// Log entries are made up of a tag and a detail. The tag is a short string
// that identifies the part of the emulation making the entry. For example,
// "cpu" or "programloader". The detail is the message to log and can be a
// string, an error, a fmt.Stringer or any other value that can be formatted
// with the %v verb.
//
// Consecutive entries with the same tag and detail are folded into a single
// entry with a repeat count. This prevents the log being flooded by an
// emulation that is stuck in a tight loop.
//
// Every call to Log() or Logf() takes a Permission argument. If the
// AllowLogging() function of the Permission returns false then the entry is
// not made. The Allow value can be used when logging should always happen.
package logger
