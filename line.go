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
	"iter"

	"seehuhn.de/go/geom/matrix"
)

// Rasterizer draws straight lines using Bresenham's midpoint algorithm.
// The zero value is ready to use.
type Rasterizer struct {
	// Legacy starts the decision variable with the opposite sign for
	// steep lines with negative slope, as earlier versions of the demo
	// did.  These lines can then end one pixel beside their end point.
	// All other lines are unaffected.
	Legacy bool

	// CTM maps path coordinates to pixel coordinates in DrawPath.
	// The zero value means identity.
	CTM matrix.Matrix
}

// Line returns the pixels of the line from a to b, including both end
// points, in order of increasing dominant-axis coordinate.
func Line(a, b image.Point) iter.Seq[image.Point] {
	return Rasterizer{}.Line(a, b)
}

// Line returns the pixels of the line from a to b.
//
// The dominant axis is the axis with the larger coordinate difference (x
// on ties).  Exactly one pixel is produced for every dominant-axis
// coordinate between the end points, and consecutive pixels differ by at
// most one step on the minor axis.  Drawing from b to a gives the same
// pixels in the same order.
func (r Rasterizer) Line(a, b image.Point) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		dx, dy := b.X-a.X, b.Y-a.Y
		steep := abs(dx) < abs(dy)

		// Walk in the direction of increasing dominant-axis coordinate.
		if steep && dy < 0 || !steep && dx < 0 {
			a = b
			dx, dy = -dx, -dy
		}

		major, minor := dx, dy
		majorStep, minorStep := image.Point{X: 1}, image.Point{Y: 1}
		if steep {
			major, minor = dy, dx
			majorStep, minorStep = minorStep, majorStep
		}
		if minor < 0 {
			minor = -minor
			minorStep = minorStep.Mul(-1)
		}

		// d is twice the signed distance between the true line and the
		// midpoint between the two candidate pixels, scaled by major.
		d := 2*minor - major
		if r.Legacy && steep && minorStep.X < 0 {
			d = -d
		}

		p := a
		for range major + 1 {
			if !yield(p) {
				return
			}
			if d >= 0 {
				p = p.Add(minorStep)
				d -= 2 * major
			}
			d += 2 * minor
			p = p.Add(majorStep)
		}
	}
}

// Draw plots the line from a to b onto c.
//
// If either end point lies outside the canvas, a [*RangeError] is returned
// and the canvas is left unchanged.  In legacy mode a line can also leave
// the canvas part way; drawing then stops at the first outside pixel and
// the error is returned.
func (r Rasterizer) Draw(c *Canvas, a, b image.Point, col Color) error {
	if !a.In(c.Rect) {
		return &RangeError{Point: a, Bounds: c.Rect}
	}
	if !b.In(c.Rect) {
		return &RangeError{Point: b, Bounds: c.Rect}
	}
	for p := range r.Line(a, b) {
		if err := c.SetPixel(p, col); err != nil {
			return err
		}
	}
	return nil
}

// DrawLine plots the line from a to b using the default [Rasterizer].
func (c *Canvas) DrawLine(a, b image.Point, col Color) error {
	return Rasterizer{}.Draw(c, a, b, col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
