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

// Package displayer draws onto displays supported by the TinyGo drivers.
package displayer

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"

	"seehuhn.de/go/bresenham"
)

// Blit copies c to the top-left corner of d and refreshes the display.
// Pixels which do not fit on the display are dropped.
func Blit(d drivers.Displayer, c *bresenham.Canvas) error {
	dw, dh := d.Size()
	w := min(c.Width(), int(dw))
	h := min(c.Height(), int(dh))
	for y := range h {
		row := c.Pix[y*c.Stride:]
		for x := range w {
			d.SetPixel(int16(x), int16(y), toRGBA(row[x]))
		}
	}
	return d.Display()
}

// DrawLine plots the line from a to b directly onto d, without refreshing
// the display.  Both end points must lie on the display.
func DrawLine(d drivers.Displayer, a, b image.Point, col bresenham.Color) error {
	dw, dh := d.Size()
	bounds := image.Rect(0, 0, int(dw), int(dh))
	for _, p := range []image.Point{a, b} {
		if !p.In(bounds) {
			return &bresenham.RangeError{Point: p, Bounds: bounds}
		}
	}

	c := toRGBA(col)
	for p := range bresenham.Line(a, b) {
		d.SetPixel(int16(p.X), int16(p.Y), c)
	}
	return nil
}

func toRGBA(c bresenham.Color) color.RGBA {
	c = c.Clamped()
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 255}
}
