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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Instead of defining flags globally, flags are added to a
// Modes instance. For example:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	scale := md.AddInt("scale", 10, "window scaling")
//	p, err := md.Parse()
//
// Modes are added with AddSubModes(). The first sub-mode is the default mode
// and is selected when the first non-flag argument does not match any of the
// sub-modes. After a call to Parse() the Mode() function returns the selected
// mode. Flags for that mode are then added after a call to NewMode() and
// Parse() is called again:
//
//	md.AddSubModes("RUN", "DISASM")
//	p, err := md.Parse()
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddInt("scale", 10, "window scaling")
//		p, err := md.Parse()
//	}
//
// Sub-modes are case insensitive on the command line. The Path() function
// returns the list of modes selected so far, separated by a slash.
//
// Help is requested with the -help flag (or -h) in the usual way. The help
// output lists the flags and the available sub-modes for the current mode.
package modalflag
