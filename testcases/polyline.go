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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// polylineCases draw open and closed paths whose vertices are not on
// integer coordinates.
var polylineCases = []TestCase{
	{
		Name:     "spiral",
		Width:    64,
		Height:   64,
		Outlines: []Outline{{Path: spiralPath(32, 32, 5, 25, 3), Color: Cyan}},
	},
	{
		Name:     "zigzag_wide",
		Width:    64,
		Height:   64,
		Outlines: []Outline{{Path: zigzagPath(8, 32, 56, 16), Color: Yellow}},
	},
	{
		Name:   "zigzag_sharp",
		Width:  64,
		Height: 64,
		Outlines: []Outline{
			{Path: zigzag(4, 60, 16.5, 4.5, 28, 60, 40.25, 4, 60, 59.75), Color: Green},
		},
	},
	{
		Name:   "corner_angles",
		Width:  64,
		Height: 64,
		Outlines: []Outline{
			{Path: cornerFan(32, 32, 15), Color: White},
		},
	},
	{
		Name:   "closed_squares",
		Width:  64,
		Height: 64,
		Outlines: []Outline{
			{Path: closedSquare(4.5, 4.5, 20), Color: Red},
			{Path: closedSquare(20.25, 20.75, 35.5), Color: Magenta},
		},
	},
}

// spiralPath approximates an Archimedean spiral by 32 line segments
// per turn.
func spiralPath(cx, cy, rMin, rMax float64, turns float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		steps := max(int(turns*32), 8)

		totalAngle := turns * 2 * math.Pi
		rGrowth := (rMax - rMin) / totalAngle

		if !moveTo(yield, cx+rMin, cy) {
			return
		}
		for i := 1; i <= steps; i++ {
			angle := float64(i) / float64(steps) * totalAngle
			r := rMin + rGrowth*angle
			if !lineTo(yield, cx+r*math.Cos(angle), cy+r*math.Sin(angle)) {
				return
			}
		}
	}
}

// zigzagPath builds five segments alternating above and below cy.
func zigzagPath(x1, cy, x2, amplitude float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		segments := 5
		segWidth := (x2 - x1) / float64(segments)

		if !moveTo(yield, x1, cy) {
			return
		}
		for i := 1; i <= segments; i++ {
			y := cy + amplitude
			if i%2 == 1 {
				y = cy - amplitude
			}
			if !lineTo(yield, x1+float64(i)*segWidth, y) {
				return
			}
		}
	}
}

func zigzag(x1, y1, x2, y2, x3, y3, x4, y4, x5, y5 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x1, y1) {
			return
		}
		if !lineTo(yield, x2, y2) {
			return
		}
		if !lineTo(yield, x3, y3) {
			return
		}
		if !lineTo(yield, x4, y4) {
			return
		}
		lineTo(yield, x5, y5)
	}
}

// cornerFan draws one corner for every multiple of stepDeg degrees.
// Each corner comes in horizontally from the left edge, meets the centre
// and leaves at the given angle.
func cornerFan(cx, cy, stepDeg float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for a := 0.0; a < 360; a += stepDeg {
			for cmd, pts := range cornerAngle(cx-28, cy, cx, cy, a) {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}

// cornerAngle builds two segments: from (x1, y1) to (cx, cy), and from
// there 28 pixels in the direction angleDeg, counter-clockwise from the
// positive x-axis with y pointing down.
func cornerAngle(x1, y1, cx, cy float64, angleDeg float64) path.Path {
	const length = 28.0
	angleRad := angleDeg * math.Pi / 180
	x2 := cx + length*math.Cos(angleRad)
	y2 := cy - length*math.Sin(angleRad)

	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x1, y1) {
			return
		}
		if !lineTo(yield, cx, cy) {
			return
		}
		lineTo(yield, x2, y2)
	}
}

func closedSquare(x, y, side float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x, y) {
			return
		}
		if !lineTo(yield, x+side, y) {
			return
		}
		if !lineTo(yield, x+side, y+side) {
			return
		}
		if !lineTo(yield, x, y+side) {
			return
		}
		closePath(yield)
	}
}
