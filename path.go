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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DrawPath draws the outline of a path made of straight segments.
//
// Path coordinates are transformed by r.CTM, and every point is replaced
// by the pixel containing it; pixel (x, y) covers [x, x+1) × [y, y+1).
// ClosePath adds the segment back to the start of the subpath.
// Quadratic and cubic segments cause [ErrCurve] to be returned before
// anything is drawn.
func (r Rasterizer) DrawPath(c *Canvas, p path.Path, col Color) error {
	for cmd := range p {
		if cmd == path.CmdQuadTo || cmd == path.CmdCubeTo {
			return ErrCurve
		}
	}

	var err error
	r.segments(p, func(a, b image.Point) bool {
		err = r.Draw(c, a, b, col)
		return err == nil
	})
	return err
}

// segments calls emit for every straight segment of p, in device
// coordinates.  Iteration stops early if emit returns false.
// Curve segments are skipped.
func (r Rasterizer) segments(p path.Path, emit func(a, b image.Point) bool) {
	ctm := r.CTM
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}

	var current, start image.Point
	inSubpath := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			current = toDevice(ctm, pts[0])
			start = current
			inSubpath = true

		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			next := toDevice(ctm, pts[0])
			if !emit(current, next) {
				return
			}
			current = next

		case path.CmdQuadTo:
			current = toDevice(ctm, pts[1])

		case path.CmdCubeTo:
			current = toDevice(ctm, pts[2])

		case path.CmdClose:
			if !inSubpath {
				continue
			}
			if current != start && !emit(current, start) {
				return
			}
			current = start
		}
	}
}

// toDevice maps a path point to the pixel containing its image under ctm.
func toDevice(ctm matrix.Matrix, v vec.Vec2) image.Point {
	x := ctm[0]*v.X + ctm[2]*v.Y + ctm[4]
	y := ctm[1]*v.X + ctm[3]*v.Y + ctm[5]
	return image.Point{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}
