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
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// RenderError is returned by the Render functions if the destination buffer
// is the wrong size for the scaling factor.
const RenderError = "display: render: %v"

// Palette defines the two colours of the display. Colours are packed as
// 0xRRGGBBAA.
type Palette struct {
	Foreground uint32
	Background uint32
}

// DefaultPalette is white pixels on a transparent black background.
var DefaultPalette = Palette{
	Foreground: 0xffffffff,
	Background: 0x00000000,
}

// String returns the palette as two RRGGBBAA values separated by a comma.
// The result can be parsed with ParsePalette().
func (pal Palette) String() string {
	return fmt.Sprintf("%08x,%08x", pal.Foreground, pal.Background)
}

// ParsePalette parses a foreground and background colour separated by a
// comma. Each colour is of the form accepted by ParseColor().
func ParsePalette(s string) (Palette, error) {
	fg, bg, ok := strings.Cut(s, ",")
	if !ok {
		return Palette{}, curated.Errorf("display: %v", fmt.Sprintf("palette must be two colours separated by a comma (%s)", s))
	}

	var pal Palette
	var err error

	pal.Foreground, err = ParseColor(fg)
	if err != nil {
		return Palette{}, err
	}
	pal.Background, err = ParseColor(bg)
	if err != nil {
		return Palette{}, err
	}

	return pal, nil
}

// ParseColor parses a hexadecimal colour string of the form RRGGBB or
// RRGGBBAA, with an optional leading '#'. Colours without an alpha component
// are fully opaque.
func ParseColor(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(s) {
	case 6:
		s = s + "ff"
	case 8:
	default:
		return 0, curated.Errorf("display: %v", fmt.Sprintf("colour must be RRGGBB or RRGGBBAA (%s)", s))
	}

	c, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, curated.Errorf("display: %v", fmt.Sprintf("colour must be hexadecimal (%s)", s))
	}

	return uint32(c), nil
}

// RenderSize returns the dimensions of the rendered framebuffer for the scale.
func RenderSize(scale int) (int, int) {
	return Width * scale, Height * scale
}

func checkScale(scale int, have int, unit int) error {
	if scale < 1 {
		return curated.Errorf(RenderError, "scale must be one or greater")
	}
	w, h := RenderSize(scale)
	if have != w*h*unit {
		return curated.Errorf(RenderError, "destination is the wrong size for the scale")
	}
	return nil
}

// Render copies the framebuffer to dst with each logical pixel replicated as
// a block of scale x scale entries. The length of dst must be exactly
// Width*scale*Height*scale.
func (dsp *Display) Render(dst []uint32, scale int, pal Palette) error {
	if err := checkScale(scale, len(dst), 1); err != nil {
		return err
	}

	stride := Width * scale
	for y := 0; y < Height*scale; y++ {
		row := dsp.pixels[y/scale]
		line := dst[y*stride : (y+1)*stride]
		for x := range line {
			if row[x/scale] {
				line[x] = pal.Foreground
			} else {
				line[x] = pal.Background
			}
		}
	}

	return nil
}

// RenderRGBA is the same as Render() except that the destination is a byte
// slice of four bytes per pixel in the order red, green, blue, alpha.
func (dsp *Display) RenderRGBA(dst []byte, scale int, pal Palette) error {
	if err := checkScale(scale, len(dst), 4); err != nil {
		return err
	}

	fg := unpack(pal.Foreground)
	bg := unpack(pal.Background)

	stride := Width * scale * 4
	for y := 0; y < Height*scale; y++ {
		row := dsp.pixels[y/scale]
		line := dst[y*stride : (y+1)*stride]
		for x := 0; x < Width*scale; x++ {
			c := &bg
			if row[x/scale] {
				c = &fg
			}
			copy(line[x*4:], c[:])
		}
	}

	return nil
}

func unpack(c uint32) [4]byte {
	return [4]byte{byte(c >> 24), byte(c >> 16), byte(c >> 8), byte(c)}
}
