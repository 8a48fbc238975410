// seehuhn.de/go/bresenham - integer line rasterization
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package bresenham

import "image/color"

// Color is an RGB triple.  Channels are nominally in the range [0, 255],
// but values outside this range are stored and written to PPM files
// verbatim.  Use [Bound] or [Canvas.Clamp] to restrict them.
type Color struct {
	R, G, B int
}

// Predefined colors used by the demo scene.
var (
	Black   = Color{0, 0, 0}
	Red     = Color{255, 0, 0}
	Green   = Color{0, 255, 0}
	Cyan    = Color{0, 255, 255}
	Magenta = Color{255, 0, 255}
	Yellow  = Color{255, 255, 0}
)

// Bound restricts a channel value to the range [0, 255].
func Bound(v int) int {
	return max(0, min(255, v))
}

// Clamped returns c with every channel passed through [Bound].
func (c Color) Clamped() Color {
	return Color{R: Bound(c.R), G: Bound(c.G), B: Bound(c.B)}
}

// RGBA implements the [color.Color] interface.
// Out-of-range channels are clamped.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(Bound(c.R))
	r |= r << 8
	g = uint32(Bound(c.G))
	g |= g << 8
	b = uint32(Bound(c.B))
	b |= b << 8
	return r, g, b, 0xffff
}

// ColorModel converts arbitrary colors to [Color].
// Alpha is ignored: colors are treated as opaque.
var ColorModel = color.ModelFunc(colorModel)

func colorModel(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Color{R: int(r >> 8), G: int(g >> 8), B: int(b >> 8)}
}
