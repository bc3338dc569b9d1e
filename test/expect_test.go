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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, !false)
	test.ExpectEquality(t, uint16(0x200), 0x200)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestExpectApproximate(t *testing.T) {
	test.ExpectApproximate(t, 10.0, 10.5, 0.1)
	test.ExpectApproximate(t, 500, 495, 0.02)
}

func TestWriters(t *testing.T) {
	w := &test.Writer{}
	w.Write([]byte("hello"))
	test.ExpectSuccess(t, w.Compare("hello"))
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))

	c, err := test.NewCappedWriter(4)
	test.DemandSuccess(t, err)
	n, _ := c.Write([]byte("abcdef"))
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, c.String(), "abcd")
	n, _ = c.Write([]byte("g"))
	test.ExpectEquality(t, n, 0)

	_, err = test.NewCappedWriter(0)
	test.ExpectFailure(t, err)
}
