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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var subpathCases = []TestCase{
	{
		Name:     "two_triangles",
		Outlines: []Outline{{Path: twoTriangles(16, 32, 48, 32, 12), Color: Green}},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "overlapping_rectangles",
		Outlines: []Outline{{Path: overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54), Color: Cyan}},
		Width:    64,
		Height:   64,
	},
	{
		Name:   "overlapping_colors",
		Width:  64,
		Height: 64,
		Outlines: []Outline{
			{Path: rectangle(10, 10, 40, 40), Color: Red},
			{Path: rectangle(24, 24, 54, 54), Color: Yellow},
		},
	},
	{
		Name:     "many_small_shapes",
		Outlines: []Outline{{Path: manySmallShapes(8, 8), Color: Magenta}},
		Width:    128,
		Height:   128,
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		// First triangle
		if !moveTo(yield, cx1, cy1-size) {
			return
		}
		if !lineTo(yield, cx1+size, cy1+size) {
			return
		}
		if !lineTo(yield, cx1-size, cy1+size) {
			return
		}
		if !closePath(yield) {
			return
		}

		// Second triangle
		if !moveTo(yield, cx2, cy2-size) {
			return
		}
		if !lineTo(yield, cx2+size, cy2+size) {
			return
		}
		if !lineTo(yield, cx2-size, cy2+size) {
			return
		}
		closePath(yield)
	}
}

// overlappingRectangles builds two overlapping rectangles in one path.
func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for cmd, pts := range rectangle(x1a, y1a, x2a, y2a) {
			if !yield(cmd, pts) {
				return
			}
		}
		for cmd, pts := range rectangle(x1b, y1b, x2b, y2b) {
			if !yield(cmd, pts) {
				return
			}
		}
	}
}

// manySmallShapes builds a grid of small triangles (stress test).
func manySmallShapes(rows, cols int) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		size := 5.0
		spacing := 14.0

		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				cx := 10.0 + float64(col)*spacing
				cy := 10.0 + float64(row)*spacing

				// Small triangle
				if !moveTo(yield, cx, cy-size) {
					return
				}
				if !lineTo(yield, cx+size, cy+size) {
					return
				}
				if !lineTo(yield, cx-size, cy+size) {
					return
				}
				if !closePath(yield) {
					return
				}
			}
		}
	}
}
