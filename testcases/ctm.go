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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var ctmCases = []TestCase{
	// uniform scaling
	{
		Name:     "scale_2x",
		Outlines: []Outline{{Path: rectangle(0, 0, 20, 20), Color: Green}},
		Width:    128,
		Height:   128,
		CTM:      matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:     "scale_half",
		Outlines: []Outline{{Path: rectangle(0, 0, 80, 80), Color: Green}},
		Width:    64,
		Height:   64,
		CTM:      matrix.Scale(0.5, 0.5).Translate(12, 12),
	},

	// rotation
	{
		Name:     "rotate_45deg",
		Outlines: []Outline{{Path: rectangle(-10, -10, 10, 10), Color: Cyan}},
		Width:    64,
		Height:   64,
		CTM:      matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:     "rotate_5deg",
		Outlines: []Outline{{Path: rectangle(-20, -10, 20, 10), Color: Cyan}},
		Width:    64,
		Height:   64,
		CTM:      matrix.RotateDeg(5).Translate(32, 32),
	},

	// non-uniform scaling and shear
	{
		Name:     "scale_2x_1y",
		Outlines: []Outline{{Path: rectangle(-10, -10, 10, 10), Color: Red}},
		Width:    128,
		Height:   64,
		CTM:      matrix.Scale(2, 1).Translate(64, 32),
	},
	{
		Name:     "shear_horizontal",
		Outlines: []Outline{{Path: rectangle(-15, -15, 15, 15), Color: Magenta}},
		Width:    64,
		Height:   64,
		// Shear matrix: [1, 0, 0.5, 1, 0, 0] then translate
		CTM: matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
	},
	{
		Name:     "corner_rotated",
		Outlines: []Outline{{Path: cornerCentered(0, 0, math.Pi/3), Color: Yellow}},
		Width:    64,
		Height:   64,
		CTM:      matrix.RotateDeg(30).Translate(32, 32),
	},
}

// cornerCentered creates a corner path centered at (cx, cy) with given angle.
func cornerCentered(cx, cy float64, angle float64) path.Path {
	length := 20.0
	halfAngle := angle / 2
	return func(yield func(path.Command, []vec.Vec2) bool) {
		// First arm extends up-left
		x1 := cx - length*math.Cos(halfAngle)
		y1 := cy - length*math.Sin(halfAngle)
		// Second arm extends up-right
		x2 := cx + length*math.Cos(halfAngle)
		y2 := cy - length*math.Sin(halfAngle)

		if !moveTo(yield, x1, y1) {
			return
		}
		if !lineTo(yield, cx, cy) {
			return
		}
		lineTo(yield, x2, y2)
	}
}
