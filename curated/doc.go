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

// Package curated wraps the plain Go error type with a "pattern" that can be
// tested for later. Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. The pattern argument
// is a formatting string in the same manner as fmt.Errorf(). Unlike
// fmt.Errorf() the pattern is retained and the Is() and Has() functions use it
// to identify the error. For example:
//
//	e := curated.Errorf("memory: address out of range: %03x", addr)
//
//	if curated.Is(e, "memory: address out of range: %03x") {
//		fmt.Println("true")
//	}
//
// Pattern strings that are tested for elsewhere should be stored as a named
// const in the package that creates the error. The hardware packages do this
// for all their fault conditions.
//
// The Has() function is similar to Is() but checks whether the pattern occurs
// anywhere in the error chain. An error is in the chain if it is one of the
// values of a curated error (normally as a %v placeholder).
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. Put another way, it returns true if the error is 'expected' and false
// if the error is 'unexpected'.
//
// The Error() implementation normalises the message so that duplicate
// adjacent parts of the chain are removed. Parts are separated by the
// sub-string ": ". So the following chain
//
//	cpu: cpu: stack overflow
//
// is printed as
//
//	cpu: stack overflow
package curated
