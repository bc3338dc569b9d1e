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

// Package display implements the 64x32 monochrome framebuffer of the CHIP-8.
//
// Pixels are changed only by the Draw() function, which composites a sprite
// onto the framebuffer with XOR, or by Clear(). Sprite coordinates wrap at the
// edges of the screen.
//
// The framebuffer is exported to a presentation surface with Render() or
// RenderRGBA(). Both functions upscale the logical pixels by an integer
// factor and apply the colours of a Palette. They have no effect on the state
// of the Display.
package display
