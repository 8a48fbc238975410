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

var largeCases = []TestCase{
	// long segments with a minor delta of one
	{
		Name:   "long_lines",
		Width:  512,
		Height: 512,
		Segments: []Segment{
			seg(0, 0, 511, 1, Green),
			seg(511, 510, 0, 511, Cyan),
			seg(0, 511, 1, 0, Red),
			seg(510, 0, 511, 511, Magenta),
		},
	},

	{
		Name:     "large_rectangle",
		Width:    512,
		Height:   512,
		Outlines: []Outline{{Path: rectangle(50, 50, 462, 462), Color: White}},
	},
	{
		Name:   "large_concentric",
		Width:  512,
		Height: 512,
		Outlines: []Outline{
			{Path: concentricRectangles(256, 256, 200, 100), Color: Yellow},
		},
	},
	{
		Name:     "large_diamond",
		Width:    512,
		Height:   512,
		Outlines: []Outline{{Path: diamond(256, 256, 180), Color: Cyan}},
	},
	{
		Name:     "large_grid",
		Width:    512,
		Height:   512,
		Outlines: []Outline{{Path: rectangleGrid(8, 8, 512, 512, 4), Color: Green}},
	},
}

// concentricRectangles returns two squares around (cx, cy), the outer one
// with half-width r1 and the inner one with half-width r2.
func concentricRectangles(cx, cy, r1, r2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, r := range []float64{r1, r2} {
			for cmd, pts := range rectangle(cx-r, cy-r, cx+r, cy+r) {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}

func diamond(cx, cy, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, cx, cy-r) {
			return
		}
		if !lineTo(yield, cx+r, cy) {
			return
		}
		if !lineTo(yield, cx, cy+r) {
			return
		}
		if !lineTo(yield, cx-r, cy) {
			return
		}
		closePath(yield)
	}
}

func rectangleGrid(rows, cols, width, height int, gap float64) path.Path {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	return func(yield func(path.Command, []vec.Vec2) bool) {
		for row := range rows {
			for col := range cols {
				x1 := float64(col)*cellW + gap
				y1 := float64(row)*cellH + gap
				x2 := float64(col+1)*cellW - gap
				y2 := float64(row+1)*cellH - gap

				ok := moveTo(yield, x1, y1) &&
					lineTo(yield, x2, y1) &&
					lineTo(yield, x2, y2) &&
					lineTo(yield, x1, y2) &&
					closePath(yield)
				if !ok {
					return
				}
			}
		}
	}
}
