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

package random

import (
	"math/rand"
	"time"
)

// Random is a seeded source of random numbers. It is not safe for concurrent
// use.
type Random struct {
	seed int64
	src  *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed of zero means that the seed will be taken from the current time.
func NewRandom(seed int64) *Random {
	rnd := &Random{}
	rnd.Reseed(seed)
	return rnd
}

// Reseed the random number generator. A seed of zero means that the seed will
// be taken from the current time.
func (rnd *Random) Reseed(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd.seed = seed
	rnd.src = rand.New(rand.NewSource(seed))
}

// Seed returns the seed used by the most recent call to Reseed().
func (rnd *Random) Seed() int64 {
	return rnd.seed
}

// Intn returns a number in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.src.Intn(n)
}

// Byte returns a random 8-bit value.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.src.Intn(256))
}
