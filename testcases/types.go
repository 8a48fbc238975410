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

package testcases

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name     string        // lowercase a-z, 0-9 and _ only
	Width    int           // canvas width in pixels
	Height   int           // canvas height in pixels
	Segments []Segment     // lines to draw, in order
	Outlines []Outline     // outlines to draw after the segments
	CTM      matrix.Matrix // transformation for the outlines (zero-value means no transform)
}

// RGB is a color given by its red, green and blue channel values.
type RGB [3]int

// Colors used by the demo scene.
var (
	Green   = RGB{0, 255, 0}
	Cyan    = RGB{0, 255, 255}
	Red     = RGB{255, 0, 0}
	Magenta = RGB{255, 0, 255}
	Yellow  = RGB{255, 255, 0}
	White   = RGB{255, 255, 255}
)

// Segment is a straight line between two pixels, both end points included.
type Segment struct {
	X0, Y0 int
	X1, Y1 int
	Color  RGB
}

// From returns the start point of the segment.
func (s Segment) From() image.Point { return image.Point{X: s.X0, Y: s.Y0} }

// To returns the end point of the segment.
func (s Segment) To() image.Point { return image.Point{X: s.X1, Y: s.Y1} }

// Outline is a path made of straight segments, drawn in a single color.
type Outline struct {
	Path  path.Path
	Color RGB
}

// seg is a helper to create a Segment.
func seg(x0, y0, x1, y1 int, c RGB) Segment {
	return Segment{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: c}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func moveTo(yield func(path.Command, []vec.Vec2) bool, x, y float64) bool {
	return yield(path.CmdMoveTo, []vec.Vec2{pt(x, y)})
}

func lineTo(yield func(path.Command, []vec.Vec2) bool, x, y float64) bool {
	return yield(path.CmdLineTo, []vec.Vec2{pt(x, y)})
}

func closePath(yield func(path.Command, []vec.Vec2) bool) bool {
	return yield(path.CmdClose, nil)
}
