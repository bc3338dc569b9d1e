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

package display

import (
	"strings"
)

// Dimensions of the display in logical pixels.
const (
	Width  = 64
	Height = 32
)

// Display is the CHIP-8 framebuffer.
type Display struct {
	pixels [Height][Width]bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	return &Display{}
}

// Clear turns off every pixel.
func (dsp *Display) Clear() {
	dsp.pixels = [Height][Width]bool{}
}

// Draw composites the sprite onto the display at the x, y coordinates. Each
// byte of the sprite is one row, most significant bit leftmost. Coordinates
// wrap modulo the dimensions of the display.
//
// Returns true if any sprite bit turned off a pixel that was already on.
func (dsp *Display) Draw(x uint8, y uint8, sprite []uint8) bool {
	var collision bool

	for row, b := range sprite {
		py := (int(y) + row) % Height
		for col := 0; col < 8; col++ {
			if b&(0x80>>col) == 0 {
				continue
			}
			px := (int(x) + col) % Width
			if dsp.pixels[py][px] {
				collision = true
			}
			dsp.pixels[py][px] = !dsp.pixels[py][px]
		}
	}

	return collision
}

// Pixel returns the state of the pixel at x, y. Coordinates outside the
// display are always off.
func (dsp *Display) Pixel(x int, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return dsp.pixels[y][x]
}

// String returns the framebuffer as text. On pixels are '#' and off pixels
// are '.'. Each row ends with a newline.
func (dsp *Display) String() string {
	s := strings.Builder{}
	s.Grow((Width + 1) * Height)
	for y := range dsp.pixels {
		for _, p := range dsp.pixels[y] {
			if p {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}
