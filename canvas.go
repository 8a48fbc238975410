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

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Canvas is a grid of RGB pixels.  Rows run from top to bottom, columns
// from left to right, and the point (x, y) is stored in row y, column x.
//
// The Pix, Stride and Rect fields follow the conventions of the image
// types in the standard library.  The pixel accessors check bounds;
// direct access to Pix does not.
type Canvas struct {
	// Pix holds the pixels in row-major order.  The pixel at (x, y) is
	// Pix[y*Stride+x].
	Pix []Color

	// Stride is the distance in Pix between vertically adjacent pixels.
	Stride int

	// Rect is the canvas area.  Rect.Min is always the origin.
	Rect image.Rectangle
}

// NewCanvas allocates a canvas with the given number of columns (width)
// and rows (height).  All pixels start out black.
func NewCanvas(width, height int) *Canvas {
	if width < 0 || height < 0 {
		panic("bresenham: negative canvas size")
	}
	return &Canvas{
		Pix:    make([]Color, width*height),
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.Rect.Dx() }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.Rect.Dy() }

// Clear sets every pixel to black.
func (c *Canvas) Clear() {
	c.Fill(Black)
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col Color) {
	for y := range c.Height() {
		row := c.Pix[y*c.Stride : y*c.Stride+c.Width()]
		for x := range row {
			row[x] = col
		}
	}
}

// Clamp restricts all channels of all pixels to the range [0, 255].
func (c *Canvas) Clamp() {
	for y := range c.Height() {
		row := c.Pix[y*c.Stride : y*c.Stride+c.Width()]
		for x, col := range row {
			row[x] = col.Clamped()
		}
	}
}

// Pixel returns the color at p.
func (c *Canvas) Pixel(p image.Point) (Color, error) {
	if !p.In(c.Rect) {
		return Color{}, &RangeError{Point: p, Bounds: c.Rect}
	}
	return c.Pix[p.Y*c.Stride+p.X], nil
}

// SetPixel sets the color at p.
func (c *Canvas) SetPixel(p image.Point, col Color) error {
	if !p.In(c.Rect) {
		return &RangeError{Point: p, Bounds: c.Rect}
	}
	c.Pix[p.Y*c.Stride+p.X] = col
	return nil
}

// ColorModel implements the [image.Image] interface.
func (c *Canvas) ColorModel() color.Model { return ColorModel }

// Bounds implements the [image.Image] interface.
func (c *Canvas) Bounds() image.Rectangle { return c.Rect }

// At implements the [image.Image] interface.
// Points outside the canvas are black.
func (c *Canvas) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(c.Rect)) {
		return Black
	}
	return c.Pix[y*c.Stride+x]
}

// RGBA converts the canvas to an 8-bit RGBA image, enlarged by the given
// integer factor using nearest-neighbour sampling.  Channels are clamped
// to [0, 255].  A scale below 1 is treated as 1.
func (c *Canvas) RGBA(scale int) *image.RGBA {
	scale = max(scale, 1)
	dst := image.NewRGBA(image.Rect(0, 0, c.Width()*scale, c.Height()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), c, c.Rect, xdraw.Src, nil)
	return dst
}
