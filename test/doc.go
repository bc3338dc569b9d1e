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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and DemandEquality() functions are the most useful. The
// first reports a test error and the test continues, the second is a fatality
// and the test stops immediately. Use the Demand*() variety when later
// assertions in a test would be meaningless if the value is wrong.
//
// The ExpectSuccess() and ExpectFailure() functions test for "success" and
// "failure" values, the meaning of which depends on the type. For bool types,
// success is true; for error types, success is nil.
//
// All functions accept an optional list of tags. The tags are printed as part
// of the failure message and are useful when testing values inside a loop.
package test
