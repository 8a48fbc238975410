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

// octantCases contain one line per octant, each starting at the canvas
// centre, and the same lines drawn towards the centre.
var octantCases = []TestCase{
	{
		Name:   "outward",
		Width:  33,
		Height: 33,
		Segments: []Segment{
			seg(16, 16, 31, 22, Green),   // shallow, down-right
			seg(16, 16, 22, 31, Red),     // steep, down-right
			seg(16, 16, 10, 31, Magenta), // steep, down-left
			seg(16, 16, 1, 22, Cyan),     // shallow, down-left
			seg(16, 16, 1, 10, Green),    // shallow, up-left
			seg(16, 16, 10, 1, Red),      // steep, up-left
			seg(16, 16, 22, 1, Magenta),  // steep, up-right
			seg(16, 16, 31, 10, Cyan),    // shallow, up-right
		},
	},
	{
		Name:   "inward",
		Width:  33,
		Height: 33,
		Segments: []Segment{
			seg(31, 22, 16, 16, Green),
			seg(22, 31, 16, 16, Red),
			seg(10, 31, 16, 16, Magenta),
			seg(1, 22, 16, 16, Cyan),
			seg(1, 10, 16, 16, Green),
			seg(10, 1, 16, 16, Red),
			seg(22, 1, 16, 16, Magenta),
			seg(31, 10, 16, 16, Cyan),
		},
	},
	{
		Name:   "diagonals",
		Width:  16,
		Height: 16,
		Segments: []Segment{
			seg(0, 0, 15, 15, Green),
			seg(0, 15, 15, 0, Cyan),
		},
	},
	{
		Name:   "long_steep",
		Width:  64,
		Height: 64,
		Segments: []Segment{
			seg(40, 0, 30, 63, Magenta),
			seg(20, 0, 30, 63, Red),
			seg(60, 63, 59, 0, Magenta),
		},
	},
}

var axisCases = []TestCase{
	{
		Name:   "horizontal",
		Width:  16,
		Height: 8,
		Segments: []Segment{
			seg(0, 0, 15, 0, Yellow),
			seg(15, 7, 0, 7, Yellow),
			seg(3, 4, 12, 4, White),
		},
	},
	{
		Name:   "vertical",
		Width:  8,
		Height: 16,
		Segments: []Segment{
			seg(0, 0, 0, 15, Yellow),
			seg(7, 15, 7, 0, Yellow),
			seg(4, 3, 4, 12, White),
		},
	},
	{
		Name:   "single_pixel",
		Width:  4,
		Height: 4,
		Segments: []Segment{
			seg(0, 0, 0, 0, White),
			seg(3, 3, 3, 3, Red),
			seg(2, 1, 2, 1, Green),
		},
	},
}
