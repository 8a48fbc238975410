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

// precisionCases exercise lines where the true line passes exactly
// through the midpoint between two candidate pixels.
var precisionCases = []TestCase{
	{
		Name:   "half_slope",
		Width:  16,
		Height: 16,
		Segments: []Segment{
			seg(0, 0, 4, 2, Green),
			seg(0, 8, 4, 6, Cyan),
			seg(8, 0, 10, 4, Red),
			seg(8, 15, 10, 11, Magenta),
		},
	},
	{
		Name:   "odd_ratio",
		Width:  32,
		Height: 32,
		Segments: []Segment{
			seg(0, 0, 31, 1, Green),
			seg(0, 31, 1, 0, Red),
			seg(31, 31, 0, 30, Cyan),
			seg(30, 0, 31, 31, Magenta),
		},
	},
	{
		Name:   "near_diagonal",
		Width:  32,
		Height: 32,
		Segments: []Segment{
			seg(0, 0, 31, 30, Green),
			seg(0, 0, 30, 31, Red),
			seg(31, 0, 0, 30, Cyan),
			seg(31, 0, 1, 31, Magenta),
		},
	},
}
